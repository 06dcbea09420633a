package api

import (
	"errors"
	"net/http"

	reqdto "boxarena/internal/handler/dto/request"
	resdto "boxarena/internal/handler/dto/response"
	"boxarena/internal/handler/middleware"
	"boxarena/internal/pkg/errs"
	"boxarena/internal/usecase/commands"
	"boxarena/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	otpCommands  commands.OTPCommands
	userQueries  queries.UserQueries
}

func NewAuthHandler(
	authCommands commands.AuthCommands,
	otpCommands commands.OTPCommands,
	userQueries queries.UserQueries,
) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		otpCommands:  otpCommands,
		userQueries:  userQueries,
	}
}

// @Summary Request email OTP
// @Description Send a one-time verification code to the given email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RequestOTPRequest true "OTP request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /auth/otp/request [post]
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req reqdto.RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.otpCommands.RequestEmailOTP(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid email address",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Verification code sent",
	})
}

// @Summary Verify email OTP
// @Description Verify the one-time code sent to an email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyOTPRequest true "OTP verification"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/otp/verify [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req reqdto.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.otpCommands.VerifyEmailOTP(c.Request.Context(), req.Email, req.Code); err != nil {
		switch {
		case errors.Is(err, errs.ErrOTPNotFound):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Code expired or not requested",
			})
		case errors.Is(err, errs.ErrOTPMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Incorrect verification code",
			})
		case errors.Is(err, errs.ErrOTPTooManyAttempts):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many attempts, request a new code",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid email address",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Email verified",
	})
}

// @Summary Request phone OTP
// @Description Send a one-time verification code to the given phone number
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RequestPhoneOTPRequest true "OTP request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /auth/otp/phone/request [post]
func (h *AuthHandler) RequestPhoneOTP(c *gin.Context) {
	var req reqdto.RequestPhoneOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.otpCommands.RequestPhoneOTP(c.Request.Context(), req.Phone); err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid phone number",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Verification code sent",
	})
}

// @Summary Verify phone OTP
// @Description Verify the one-time code sent to a phone number
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyPhoneOTPRequest true "OTP verification"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/otp/phone/verify [post]
func (h *AuthHandler) VerifyPhoneOTP(c *gin.Context) {
	var req reqdto.VerifyPhoneOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.otpCommands.VerifyPhoneOTP(c.Request.Context(), req.Phone, req.Code); err != nil {
		switch {
		case errors.Is(err, errs.ErrOTPNotFound):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Code expired or not requested",
			})
		case errors.Is(err, errs.ErrOTPMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Incorrect verification code",
			})
		case errors.Is(err, errs.ErrOTPTooManyAttempts):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many attempts, request a new code",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid phone number",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Phone verified",
	})
}

// @Summary Register
// @Description Create an account for a verified email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Register(c.Request.Context(), commands.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmailNotVerified):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Email not verified",
			})
		case errors.Is(err, errs.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Email already registered",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid registration details",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAuthResult(result))
}

// @Summary Login
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.AuthResponse
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

// @Summary Current user
// @Description Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
