package domain

// User represents an admin account.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// NewUser holds the fields accepted when creating a user.
type NewUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Build materialises the user row with the given id.
func (n NewUser) Build(id int64) User {
	return User{
		ID:       id,
		Username: n.Username,
		Password: n.Password,
	}
}
