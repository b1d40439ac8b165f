package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "github.com/polkiloo/gopherauth/internal/domain/errors"
	"github.com/polkiloo/gopherauth/internal/domain/model"
	testhelpers "github.com/polkiloo/gopherauth/internal/test"
)

func validInput() model.RegisterInput {
	return model.RegisterInput{
		Email:     "a@b.com",
		Password:  "Abcdef1!",
		FirstName: "A",
		LastName:  "B",
		Phone:     "1234567890",
	}
}

func TestValidateEmail(t *testing.T) {
	for _, email := range []string{"a@b.com", "first.last@sub.example.org", "UPPER@CASE.IO"} {
		assert.True(t, ValidateEmail(email), email)
	}
	for _, email := range []string{"", "plain", "a@b", "@b.com", "a b@c.com", "a@b c.com", "a@@b.com"} {
		assert.False(t, ValidateEmail(email), email)
	}
}

func TestValidatePasswordRules(t *testing.T) {
	cases := []struct {
		password string
		want     []string
	}{
		{"Abcdef1!", nil},
		{"Ab1!", []string{"Password must be at least 8 characters long"}},
		{"abcdef1!", []string{"Password must contain at least one uppercase letter"}},
		{"ABCDEF1!", []string{"Password must contain at least one lowercase letter"}},
		{"Abcdefg!", []string{"Password must contain at least one number"}},
		{"Abcdefg1", []string{"Password must contain at least one special character"}},
		{"Abcdef1!" + strings.Repeat("x", 64), nil},
		{"Abcdef1!" + strings.Repeat("x", 65), []string{"Password must be at most 72 bytes long"}},
		{"Abcdef1!" + strings.Repeat("é", 33), []string{"Password must be at most 72 bytes long"}},
		{"", []string{
			"Password must be at least 8 characters long",
			"Password must contain at least one uppercase letter",
			"Password must contain at least one lowercase letter",
			"Password must contain at least one number",
			"Password must contain at least one special character",
		}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidatePassword(tc.password), tc.password)
	}
}

func TestValidatePhone(t *testing.T) {
	for _, phone := range []string{"1234567890", "+1 234 567 890", "123-456-7890"} {
		assert.True(t, ValidatePhone(phone), phone)
	}
	for _, phone := range []string{"", "12345", "phone-number", "++1234567890", "12345678x0"} {
		assert.False(t, ValidatePhone(phone), phone)
	}
}

func TestValidateRegistrationAccepts(t *testing.T) {
	require.NoError(t, ValidateRegistration(validInput()))
}

func TestValidateRegistrationCollectsEveryViolation(t *testing.T) {
	err := ValidateRegistration(model.RegisterInput{
		Email:     "nope",
		Password:  "abc",
		FirstName: "   ",
		LastName:  "",
		Phone:     " ",
	})
	require.Error(t, err)

	domainErr, ok := domainErrors.AsError(err)
	require.True(t, ok)
	assert.Equal(t, domainErrors.KindValidation, domainErr.Kind)
	assert.Equal(t, "Validation failed", domainErr.Message)
	assert.Equal(t, []string{
		"Invalid email format",
		"Password must be at least 8 characters long",
		"Password must contain at least one uppercase letter",
		"Password must contain at least one number",
		"Password must contain at least one special character",
		"First name is required",
		"Last name is required",
		"Phone number is required",
	}, domainErr.Violations)
}

func TestValidateRegistrationPhoneFormat(t *testing.T) {
	input := validInput()
	input.Phone = "12-34"

	domainErr, ok := domainErrors.AsError(ValidateRegistration(input))
	require.True(t, ok)
	assert.Equal(t, []string{"Invalid phone number format"}, domainErr.Violations)
}

func TestValidateRegistrationOneMessagePerPasswordRule(t *testing.T) {
	input := validInput()
	input.Password = "short"

	domainErr, ok := domainErrors.AsError(ValidateRegistration(input))
	require.True(t, ok)
	assert.Len(t, domainErr.Violations, 4)
}

func TestValidateRegistrationAcceptsGeneratedCredentials(t *testing.T) {
	for i := 0; i < 20; i++ {
		input := validInput()
		input.Email = testhelpers.RandomEmail()
		input.Password = testhelpers.RandomStrongPassword()
		assert.NoError(t, ValidateRegistration(input), "email=%q password=%q", input.Email, input.Password)
	}
}

func TestValidateRegistrationRejectsPasswordBcryptCannotHash(t *testing.T) {
	input := validInput()
	input.Password = "Abcdef1!" + strings.Repeat("x", 70)

	domainErr, ok := domainErrors.AsError(ValidateRegistration(input))
	require.True(t, ok)
	assert.Equal(t, domainErrors.KindValidation, domainErr.Kind)
	assert.Equal(t, []string{"Password must be at most 72 bytes long"}, domainErr.Violations)
}
