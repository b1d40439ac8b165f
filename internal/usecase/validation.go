package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"

	domainErrors "github.com/polkiloo/gopherauth/internal/domain/errors"
	"github.com/polkiloo/gopherauth/internal/domain/model"
)

const (
	minPasswordLength = 8
	// bcrypt rejects longer inputs.
	maxPasswordBytes = 72
)

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern   = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	digitPattern   = regexp.MustCompile(`[0-9]`)
	specialPattern = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

type passwordRule struct {
	ok      func(string) bool
	message string
}

var passwordRules = []passwordRule{
	{
		ok:      func(p string) bool { return utf8.RuneCountInString(p) >= minPasswordLength },
		message: "Password must be at least 8 characters long",
	},
	{ok: upperPattern.MatchString, message: "Password must contain at least one uppercase letter"},
	{ok: lowerPattern.MatchString, message: "Password must contain at least one lowercase letter"},
	{ok: digitPattern.MatchString, message: "Password must contain at least one number"},
	{ok: specialPattern.MatchString, message: "Password must contain at least one special character"},
	{
		ok:      func(p string) bool { return len(p) <= maxPasswordBytes },
		message: "Password must be at most 72 bytes long",
	},
}

// ValidateEmail checks the local@domain.tld shape.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePassword returns one message per unmet strength rule.
func ValidatePassword(password string) []string {
	var violations []string
	for _, rule := range passwordRules {
		if !rule.ok(password) {
			violations = append(violations, rule.message)
		}
	}
	return violations
}

// ValidatePhone accepts digits, spaces and hyphens with an optional leading +, at least 10 characters.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidateRegistration collects every violated rule into a single validation error.
func ValidateRegistration(input model.RegisterInput) error {
	var violations []string

	if !ValidateEmail(input.Email) {
		violations = append(violations, "Invalid email format")
	}

	violations = append(violations, ValidatePassword(input.Password)...)

	if strings.TrimSpace(input.FirstName) == "" {
		violations = append(violations, "First name is required")
	}
	if strings.TrimSpace(input.LastName) == "" {
		violations = append(violations, "Last name is required")
	}

	switch phone := strings.TrimSpace(input.Phone); {
	case phone == "":
		violations = append(violations, "Phone number is required")
	case !ValidatePhone(phone):
		violations = append(violations, "Invalid phone number format")
	}

	if len(violations) > 0 {
		return domainErrors.Validation("Validation failed", violations)
	}
	return nil
}
