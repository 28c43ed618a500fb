package models

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleViewer  Role = "viewer"
)

// User is keyed by username, not id. Passwords are stored in plaintext;
// the storage layout is part of the external interface.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Plant    string `json:"plant,omitempty"`
	Name     string `json:"name"`
}

// Session is the currentUser record: the logged-in user minus the password.
type Session struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Plant    string `json:"plant,omitempty"`
	Name     string `json:"name"`
}
