package validator

import "unicode"

// StrengthLevel buckets a password score into a coarse rating for display.
type StrengthLevel string

const (
	LevelWeak       StrengthLevel = "weak"
	LevelMedium     StrengthLevel = "medium"
	LevelStrong     StrengthLevel = "strong"
	LevelVeryStrong StrengthLevel = "very-strong"
)

// minPasswordLength is the length threshold contributing to the score and
// enforced by StrongPassword.
const minPasswordLength = 8

// PasswordStrength is the result of scoring a password. Score awards one
// point per satisfied criterion (lowercase, uppercase, digit, special
// character, minimum length), so it ranges 0 through 5.
type PasswordStrength struct {
	Score        int
	Level        StrengthLevel
	HasLower     bool
	HasUpper     bool
	HasDigit     bool
	HasSpecial   bool
	IsLongEnough bool
	Suggestions  []string
}

// CheckPassword scores a password and suggests what is missing.
func CheckPassword(password string) PasswordStrength {
	strength := PasswordStrength{
		IsLongEnough: len(password) >= minPasswordLength,
	}

	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			strength.HasLower = true
		case unicode.IsUpper(r):
			strength.HasUpper = true
		case unicode.IsDigit(r):
			strength.HasDigit = true
		default:
			strength.HasSpecial = true
		}
	}

	if strength.HasLower {
		strength.Score++
	} else {
		strength.Suggestions = append(strength.Suggestions, "Add lowercase letters")
	}
	if strength.HasUpper {
		strength.Score++
	} else {
		strength.Suggestions = append(strength.Suggestions, "Add uppercase letters")
	}
	if strength.HasDigit {
		strength.Score++
	} else {
		strength.Suggestions = append(strength.Suggestions, "Add numbers")
	}
	if strength.HasSpecial {
		strength.Score++
	} else {
		strength.Suggestions = append(strength.Suggestions, "Add special characters")
	}
	if strength.IsLongEnough {
		strength.Score++
	} else {
		strength.Suggestions = append(strength.Suggestions, "Make it at least 8 characters long")
	}

	switch {
	case strength.Score <= 2:
		strength.Level = LevelWeak
	case strength.Score == 3:
		strength.Level = LevelMedium
	case strength.Score == 4:
		strength.Level = LevelStrong
	default:
		strength.Level = LevelVeryStrong
	}

	return strength
}

// StrongPassword validates that a password reaches at least the medium
// strength bucket and the minimum length.
func StrongPassword(field, password string) Rule {
	return Rule{
		Check: func() bool {
			strength := CheckPassword(password)
			return strength.IsLongEnough && strength.Level != LevelWeak
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be at least 8 characters long and mix character types",
		},
	}
}
