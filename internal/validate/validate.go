// Package validate contains the pure form validators. Each validator takes
// the raw field values of one form and returns an ordered list of
// human-readable messages, empty when the form is valid. Checks accumulate;
// a validator never stops at the first failure.
package validate

import (
	"regexp"
	"strings"
)

// emailShape is a deliberately loose local@domain.tld shape test, not a
// full RFC 5322 parser.
var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

const specialChars = "!@#$%^&*"

// RegistrationForm holds the raw values of the registration form.
type RegistrationForm struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginForm holds the raw values of the login form.
type LoginForm struct {
	Username string
	Password string
}

// ComplaintForm holds the raw values of the complaint form.
type ComplaintForm struct {
	FullName         string
	CollegeName      string
	Year             string
	ComplaintType    string
	Subject          string
	Description      string
	AttachedFileName string
}

// Registration validates the registration form. Check order is fixed:
// username, email, password length, password composition, confirmation.
func Registration(f RegistrationForm) []string {
	var errs []string

	username := strings.TrimSpace(f.Username)
	email := strings.TrimSpace(f.Email)
	password := f.Password

	if username == "" {
		errs = append(errs, "Username is required.")
	}
	if email == "" || !emailShape.MatchString(email) {
		errs = append(errs, "Valid email is required.")
	}
	if len(password) < 8 {
		errs = append(errs, "Password must be at least 8 characters.")
	}
	if password != "" && !hasComposition(password) {
		errs = append(errs, "Password must contain an upper-case letter, a lower-case letter, a digit, and one of !@#$%^&*.")
	}
	if password != f.ConfirmPassword {
		errs = append(errs, "Passwords do not match.")
	}

	return errs
}

// Login validates the login form. Credentials are checked elsewhere; this
// only requires that both fields are present.
func Login(f LoginForm) []string {
	var errs []string

	if strings.TrimSpace(f.Username) == "" {
		errs = append(errs, "Username is required.")
	}
	if f.Password == "" {
		errs = append(errs, "Password is required.")
	}

	return errs
}

// Complaint validates the complaint form. Check order is fixed: full name,
// college, year, type, subject, description.
func Complaint(f ComplaintForm) []string {
	var errs []string

	if strings.TrimSpace(f.FullName) == "" {
		errs = append(errs, "Full Name is required.")
	}
	if strings.TrimSpace(f.CollegeName) == "" {
		errs = append(errs, "College Name is required.")
	}
	if strings.TrimSpace(f.Year) == "" {
		errs = append(errs, "Year is required.")
	}
	if strings.TrimSpace(f.ComplaintType) == "" {
		errs = append(errs, "Complaint Type is required.")
	}
	if strings.TrimSpace(f.Subject) == "" {
		errs = append(errs, "Subject is required.")
	}
	if strings.TrimSpace(f.Description) == "" {
		errs = append(errs, "Complaint description is required.")
	}

	return errs
}

func hasComposition(password string) bool {
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(specialChars, r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// Error carries the ordered validation messages of a rejected form. It is
// returned by operations that validate their input before mutating state.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	return strings.Join(e.Messages, " ")
}

// AsError wraps the messages in an *Error, or returns nil when the list is
// empty.
func AsError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &Error{Messages: messages}
}
