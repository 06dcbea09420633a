package facility

type Type string

const (
	TypeCricket    Type = "cricket"
	TypeFootball   Type = "football"
	TypeBadminton  Type = "badminton"
	TypeVolleyball Type = "volleyball"
	TypeSnooker    Type = "snooker"
	TypeGym        Type = "gym"
	TypeKidsZone   Type = "kids_zone"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeCricket, TypeFootball, TypeBadminton, TypeVolleyball, TypeSnooker, TypeGym, TypeKidsZone:
		return true
	default:
		return false
	}
}
