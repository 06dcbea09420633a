package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"boxarena/internal/handler/api"
	"boxarena/internal/handler/middleware"
	"boxarena/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	facilityHandler *api.FacilityHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	paymentHandler *api.PaymentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, facilityHandler, availabilityHandler, bookingHandler, paymentHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	facilityHandler *api.FacilityHandler,
	availabilityHandler *api.AvailabilityHandler,
	bookingHandler *api.BookingHandler,
	paymentHandler *api.PaymentHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/otp/request", Handler: authHandler.RequestOTP},
				{Method: http.MethodPost, Path: "/otp/verify", Handler: authHandler.VerifyOTP},
				{Method: http.MethodPost, Path: "/otp/phone/request", Handler: authHandler.RequestPhoneOTP},
				{Method: http.MethodPost, Path: "/otp/phone/verify", Handler: authHandler.VerifyPhoneOTP},
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		facilities := apiGroup.Group("/facilities")
		{
			addRoutes(facilities, []route{
				{Method: http.MethodGet, Path: "", Handler: facilityHandler.ListFacilities},
				{Method: http.MethodGet, Path: "/grouped", Handler: facilityHandler.ListFacilitiesGrouped},
				{Method: http.MethodGet, Path: "/:id", Handler: facilityHandler.GetFacility},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: availabilityHandler.GetAvailability},
				{Method: http.MethodGet, Path: "/:id/quote", Handler: availabilityHandler.QuotePrice},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: bookingHandler.CancelBooking},
				{Method: http.MethodPost, Path: "/:id/payment/verify", Handler: paymentHandler.VerifyPayment},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
