package domain

type Role string

const (
	RoleStudent  Role = "student"
	RoleLandlord Role = "landlord"
)

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	PasswordHash string `json:"-"`
	FullName     string `json:"full_name"`
	Role         Role   `json:"role"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// Identity is the authenticated caller threaded through every core
// operation. The role comes from the user_roles table at login and is
// trusted for authorization decisions.
type Identity struct {
	UserID string
	Role   Role
}

func (i Identity) IsStudent() bool  { return i.Role == RoleStudent }
func (i Identity) IsLandlord() bool { return i.Role == RoleLandlord }
