package validator

import (
	"errors"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"userdocs-api/internal/domain/document"
	"userdocs-api/internal/interface/api/rest/dto/auth"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt safe
)

func ValidateSignup(r auth.SignupRequest) map[string]string {
	errs := make(map[string]string)

	// Normalize
	email := strings.ToLower(strings.TrimSpace(r.Email))
	password := r.Password

	// email (required + format)
	if email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "invalid email format"
	}

	// password (required + length)
	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	} else if l := utf8.RuneCountInString(password); l < minPasswordLen || l > maxPasswordLen {
		errs["password"] = "password length must be 8–72 characters"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// ValidateLogin only checks presence: anything beyond that is answered with
// the same 401 as a wrong password, so the form reveals nothing.
func ValidateLogin(username, password string) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(username) == "" {
		errs["username"] = "username is required"
	}
	if strings.TrimSpace(password) == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func ParseDocID(s string) (document.ID, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("doc_id must be a positive integer")
	}
	return document.ID(id), nil
}
