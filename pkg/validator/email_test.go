package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthlens/healthlens-go/pkg/validator"
)

func TestCheckEmail_Valid(t *testing.T) {
	t.Parallel()

	for _, email := range []string{
		"a@b.co",
		"user@example.com",
		"first.last+tag@sub.example.org",
		"UPPER@EXAMPLE.COM",
	} {
		check := validator.CheckEmail(email)
		assert.True(t, check.IsValid, "email: %q", email)
		assert.Empty(t, check.Suggestions, "email: %q", email)
	}
}

func TestCheckEmail_MissingAtSymbol(t *testing.T) {
	t.Parallel()

	check := validator.CheckEmail("abc")

	assert.False(t, check.IsValid)
	require.Len(t, check.Suggestions, 1)
	assert.Contains(t, check.Suggestions[0], "@")
}

func TestCheckEmail_BadDomain(t *testing.T) {
	t.Parallel()

	check := validator.CheckEmail("a@b")

	assert.False(t, check.IsValid)
	assert.Contains(t, check.Suggestions, "Invalid domain format")
}

func TestCheckEmail_MissingLocalPart(t *testing.T) {
	t.Parallel()

	check := validator.CheckEmail("@example.com")

	assert.False(t, check.IsValid)
	assert.Contains(t, check.Suggestions, "Username part is required")
}

func TestValidEmail_Rule(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.ValidEmail("email", "a@b.co")))

	err := validator.Apply(validator.ValidEmail("email", "nope"))
	require.Error(t, err)
	assert.Contains(t, validator.Extract(err).Get("email"), "must be a valid email address")
}
