package validation

import (
	"net/mail"
	"strings"

	zxcvbn "github.com/nbutton23/zxcvbn-go"

	"github.com/hearsay-social/hearsay/internal/pkg/log"
	"github.com/hearsay-social/hearsay/users/models"
)

// ValidateRegister checks the registration credentials and returns one
// FieldError per violation. An empty slice means the input is valid.
func ValidateRegister(input models.RegisterInput) []models.FieldError {
	var errs []models.FieldError

	if !isValidEmail(input.Email) {
		errs = append(errs, models.FieldError{
			Field:   "email",
			Message: "Invalid email address",
		})
	}

	if len(input.Username) < 3 {
		errs = append(errs, models.FieldError{
			Field:   "username",
			Message: "Username should be at least 3 characters long",
		})
	}

	if strings.Contains(input.Username, "@") {
		errs = append(errs, models.FieldError{
			Field:   "username",
			Message: `Username should not include an "@" symbol`,
		})
	}

	if len(input.Password) < 3 {
		errs = append(errs, models.FieldError{
			Field:   "password",
			Message: "Password should be at least 3 characters long",
		})
	} else if strength := zxcvbn.PasswordStrength(input.Password, []string{input.Username, input.Email}); strength.Score == 0 {
		// Weak passwords are allowed but worth surfacing in the logs.
		log.Warn("very weak password chosen at registration for username %q", input.Username)
	}

	return errs
}

// ValidateNewPassword checks a replacement password during a reset.
func ValidateNewPassword(newPassword string) []models.FieldError {
	if len(newPassword) < 3 {
		return []models.FieldError{{
			Field:   "newPassword",
			Message: "Password should be at least 3 characters long",
		}}
	}
	return nil
}

func isValidEmail(address string) bool {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" || trimmed != address {
		return false
	}
	parsed, err := mail.ParseAddress(trimmed)
	if err != nil || parsed.Address != trimmed {
		return false
	}
	// net/mail accepts local-only addresses; require a dotted domain.
	at := strings.LastIndex(trimmed, "@")
	if at < 1 || !strings.Contains(trimmed[at+1:], ".") {
		return false
	}
	return true
}
