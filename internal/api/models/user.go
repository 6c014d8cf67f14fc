package models

// Notification is an entry in a user's notification feed. No handler writes
// notifications yet; the field is carried so the profile template can render
// an empty feed.
type Notification struct {
	Author      string `db:"author"`
	Description string `db:"description"`
}

// User represents a registered user. Username is the mapping key.
type User struct {
	Username       string `db:"username"`
	Name           string `db:"name"`
	Email          string `db:"email"`
	HashedPassword string `db:"hashed_password"`
	Birthday       string `db:"birthday"`
	Friends        []string
	Notifications  []Notification
}

// WithoutPassword returns a copy safe to hand to a template.
func (u User) WithoutPassword() User {
	u.HashedPassword = ""
	return u
}

// RegisterRequest defines the structure for the registration form.
type RegisterRequest struct {
	Username string `form:"username" validate:"required,min=3,max=20"`
	Name     string `form:"name" validate:"required"`
	Password string `form:"password" validate:"required,min=6,max=50"`
	Email    string `form:"email" validate:"required,email"`
	Birthday string `form:"birthday" validate:"omitempty"`
}

// LoginRequest defines the structure for the login form.
type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}
