package domain

import (
	"strings"
	"time"
)

type User struct {
	ID           uint64
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}

// FullName falls back to the username when no name parts are set.
func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

type RegisterUserInput struct {
	Username  string
	FirstName string
	LastName  string
	Password  string
}

type UpdateUserInput struct {
	Username  string
	FirstName string
	LastName  string
	Password  string
}
