package model

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}

const (
	// MaxUsernameLength matches the users.username column.
	MaxUsernameLength = 80
	// MaxPasswordBytes is the longest input bcrypt accepts.
	MaxPasswordBytes = 72
)

// Credentials is the body of both /login and /register.
type Credentials struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func (c Credentials) Validate() error {
	var missing []string
	if c.Username == nil || strings.TrimSpace(*c.Username) == "" {
		missing = append(missing, "username")
	}
	if c.Password == nil || *c.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return MissingFields(missing...)
	}
	return nil
}

// ValidateRegistration also enforces the storage limits of a new account.
func (c Credentials) ValidateRegistration() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(*c.Username)); n > MaxUsernameLength {
		return InvalidRequest(fmt.Sprintf("username must be at most %d characters", MaxUsernameLength))
	}
	if len(*c.Password) > MaxPasswordBytes {
		return InvalidRequest(fmt.Sprintf("password must be at most %d bytes", MaxPasswordBytes))
	}
	return nil
}

// Identity is what a verified access token asserts about its bearer.
type Identity struct {
	Username  string
	Role      Role
	TokenID   string
	ExpiresAt time.Time
}

type AccessToken struct {
	Token     string `json:"access_token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"`
}
