package service

import "github.com/go-playground/validator/v10"

// Field messages surfaced verbatim on the login form.
const (
	MsgUsernameTooShort = "Usernames must be at least 3 characters long"
	MsgPasswordTooShort = "Passwords must be at least 6 characters long"
)

var fieldChecks = validator.New()

// CheckUsername returns an advisory message when the username fails the shape
// rule (fewer than 3 characters), or "" when it passes. It never fails hard:
// a bad username must not stop the password from being checked too.
func CheckUsername(username string) string {
	if err := fieldChecks.Var(username, "min=3"); err != nil {
		return MsgUsernameTooShort
	}
	return ""
}

// CheckPassword returns an advisory message when the password is shorter than
// 6 characters, or "" when it passes.
func CheckPassword(password string) string {
	if err := fieldChecks.Var(password, "min=6"); err != nil {
		return MsgPasswordTooShort
	}
	return ""
}
