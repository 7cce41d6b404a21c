// Package validation holds the request payload shapes and the pure
// validators that run ahead of the handlers. Each validator checks
// fields in a fixed order and fails on the first violation with a
// BadRequest carrying the exact client-facing message; the messages are
// part of the public API contract.
//
// Pointer fields distinguish an absent field from a present-but-empty
// one: update validators skip nil fields entirely.
package validation

import (
	"regexp"
	"strings"

	"github.com/foodexpress/foodexpress-api/internal/apperr"
)

var (
	emailRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// UserRegistrationInput is the POST /api/users payload.
type UserRegistrationInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserLoginInput is the POST /api/users/login payload.
type UserLoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdateInput is the PUT /api/users/:id payload. All fields are
// optional; at least one must be present.
type UserUpdateInput struct {
	Email    *string  `json:"email"`
	Username *string  `json:"username"`
	Password *string  `json:"password"`
	Roles    []string `json:"roles"`
}

// blank reports a whitespace-only (but non-empty) string.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateUserRegistration enforces the full-strength creation rules.
func ValidateUserRegistration(in *UserRegistrationInput) error {
	if in.Email == "" || in.Username == "" || in.Password == "" {
		return apperr.BadRequest("Email, username and password are required")
	}
	if blank(in.Email) || blank(in.Username) || blank(in.Password) {
		return apperr.BadRequest("Email, username and password cannot be empty or whitespace")
	}
	if !emailRegex.MatchString(in.Email) {
		return apperr.BadRequest("Invalid email format")
	}
	if len(in.Password) < 8 {
		return apperr.BadRequest("Password must be at least 8 characters long")
	}
	if len(in.Username) < 3 {
		return apperr.BadRequest("Username must be at least 3 characters long")
	}
	if len(in.Username) > 20 {
		return apperr.BadRequest("Username must be less than 20 characters")
	}
	if !usernameRegex.MatchString(in.Username) {
		return apperr.BadRequest("Username can only contain letters, numbers, and underscores")
	}
	return nil
}

// ValidateUserLogin checks the login payload shape; credential checking
// itself happens in the handler.
func ValidateUserLogin(in *UserLoginInput) error {
	if in.Email == "" || in.Password == "" {
		return apperr.BadRequest("Email and password are required")
	}
	if blank(in.Email) || blank(in.Password) {
		return apperr.BadRequest("Email and password cannot be empty or whitespace")
	}
	if !emailRegex.MatchString(in.Email) {
		return apperr.BadRequest("Invalid email format")
	}
	return nil
}

// ValidateUserUpdate requires at least one recognized field and runs
// the creation-strength checks on whichever fields are present.
func ValidateUserUpdate(in *UserUpdateInput) error {
	provided := func(s *string) bool { return s != nil && *s != "" }

	if !provided(in.Email) && !provided(in.Username) && !provided(in.Password) {
		return apperr.BadRequest("At least one field (email, username, or password) must be provided for update")
	}

	if in.Email != nil {
		if !emailRegex.MatchString(*in.Email) {
			return apperr.BadRequest("Invalid email format")
		}
		if blank(*in.Email) {
			return apperr.BadRequest("Email cannot be empty or whitespace")
		}
	}

	if in.Username != nil {
		if len(*in.Username) < 3 {
			return apperr.BadRequest("Username must be at least 3 characters long")
		}
		if len(*in.Username) > 20 {
			return apperr.BadRequest("Username must be less than 20 characters")
		}
		if !usernameRegex.MatchString(*in.Username) {
			return apperr.BadRequest("Username can only contain letters, numbers, and underscores")
		}
		if blank(*in.Username) {
			return apperr.BadRequest("Username cannot be empty or whitespace")
		}
	}

	if in.Password != nil {
		if len(*in.Password) < 8 {
			return apperr.BadRequest("Password must be at least 8 characters long")
		}
		if blank(*in.Password) {
			return apperr.BadRequest("Password cannot be empty or whitespace")
		}
	}

	return nil
}
