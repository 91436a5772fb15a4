package validator

import (
	"net/mail"
	"regexp"
	"strings"

	"github.com/vedran77/foo/internal/domain"
)

type ValidationErrors map[string]string

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for field, msg := range v {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateRegister checks a signup payload. The password policy runs
// against an account that exists only in memory, so rules comparing the
// password with the account's own attributes can apply before anything is
// stored.
func ValidateRegister(email, username, uprn, token, password string) ValidationErrors {
	errs := make(ValidationErrors)

	// Email
	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	// Username
	username = strings.TrimSpace(username)
	if username == "" {
		errs.Add("username", "Username is required")
	} else if len(username) < 3 {
		errs.Add("username", "Username must be at least 3 characters")
	} else if len(username) > 50 {
		errs.Add("username", "Username is too long")
	} else if !usernameRegex.MatchString(username) {
		errs.Add("username", "Username can only contain letters, numbers, ., _ and -")
	}

	if strings.TrimSpace(uprn) == "" {
		errs.Add("uprn", "UPRN is required")
	}
	if strings.TrimSpace(token) == "" {
		errs.Add("token", "Token is required")
	}

	if password == "" {
		errs.Add("password", "Password is required")
		return errs
	}

	candidate := &domain.Account{Email: email, Username: username}
	for field, msg := range ValidatePassword(password, candidate) {
		errs.Add(field, msg)
	}

	return errs
}

func ValidateLogin(email, password string) ValidationErrors {
	errs := make(ValidationErrors)

	email = strings.TrimSpace(email)
	if email == "" {
		errs.Add("email", "Email is required")
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs.Add("email", "Invalid email address")
	}

	if password == "" {
		errs.Add("password", "Password is required")
	}

	return errs
}
