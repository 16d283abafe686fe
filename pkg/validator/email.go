package validator

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// EmailCheck is the result of validating an email address. When the address
// is invalid, Suggestions explains what is wrong in user-facing terms.
type EmailCheck struct {
	IsValid     bool
	Suggestions []string
}

// CheckEmail validates an email address format and, for invalid input,
// produces actionable suggestions.
func CheckEmail(email string) EmailCheck {
	check := EmailCheck{IsValid: emailRegex.MatchString(email)}
	if check.IsValid {
		return check
	}

	if !strings.Contains(email, "@") {
		check.Suggestions = append(check.Suggestions, "Must contain @ symbol")
		return check
	}

	local, domain, _ := strings.Cut(email, "@")
	if local == "" {
		check.Suggestions = append(check.Suggestions, "Username part is required")
	}
	if !strings.Contains(domain, ".") {
		check.Suggestions = append(check.Suggestions, "Invalid domain format")
	}
	return check
}

// ValidEmail validates that a string is a well-formed email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool { return CheckEmail(value).IsValid },
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}
