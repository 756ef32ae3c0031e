package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered club member.
// Fetcher marks the member currently responsible for picking up the coffee run;
// daily order summaries are mailed to every fetcher.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Mobile       string    `json:"mobile"`
	Fetcher      bool      `json:"fetcher"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
