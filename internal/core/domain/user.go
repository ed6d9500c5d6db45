package domain

type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleWarden        Role = "Warden"
	RoleStaff         Role = "Staff"
	RoleTeacher       Role = "Teacher"
	RoleStudent       Role = "Student"
)

type User struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	Password   string `json:"-"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	Email      string `json:"email"`
	RoomNumber string `json:"room_number,omitempty"`
}

// NewUser carries the caller-supplied fields for user creation.
// The store assigns the id.
type NewUser struct {
	Username   string `validate:"required"`
	Password   string `validate:"required"`
	Name       string `validate:"required"`
	Role       Role   `validate:"required"`
	Email      string `validate:"required"`
	RoomNumber string
}
