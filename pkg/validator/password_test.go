package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthlens/healthlens-go/pkg/validator"
)

func TestCheckPassword_Empty(t *testing.T) {
	t.Parallel()

	strength := validator.CheckPassword("")

	assert.Equal(t, 0, strength.Score)
	assert.Equal(t, validator.LevelWeak, strength.Level)
	assert.Len(t, strength.Suggestions, 5)
}

func TestCheckPassword_AllClasses(t *testing.T) {
	t.Parallel()

	strength := validator.CheckPassword("Abcdef12!xyz") // 12 chars, all four classes

	assert.Equal(t, 5, strength.Score)
	assert.Equal(t, validator.LevelVeryStrong, strength.Level)
	assert.Empty(t, strength.Suggestions)
}

func TestCheckPassword_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		score    int
		level    validator.StrengthLevel
	}{
		{"lowercase only, short", "abc", 1, validator.LevelWeak},
		{"lower and upper, short", "abcDEF", 2, validator.LevelWeak},
		{"three classes, short", "abcDE12", 3, validator.LevelMedium},
		{"three classes, long", "abcdeFGHIJ12", 4, validator.LevelStrong},
		{"digits only, long", "123456789012", 2, validator.LevelWeak},
		{"all classes, short", "aB1!", 4, validator.LevelStrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			strength := validator.CheckPassword(tt.password)
			assert.Equal(t, tt.score, strength.Score, "score for %q", tt.password)
			assert.Equal(t, tt.level, strength.Level, "level for %q", tt.password)
		})
	}
}

func TestCheckPassword_Suggestions(t *testing.T) {
	t.Parallel()

	strength := validator.CheckPassword("abcdefgh")

	assert.NotContains(t, strength.Suggestions, "Add lowercase letters")
	assert.Contains(t, strength.Suggestions, "Add uppercase letters")
	assert.Contains(t, strength.Suggestions, "Add numbers")
	assert.Contains(t, strength.Suggestions, "Add special characters")
	assert.NotContains(t, strength.Suggestions, "Make it at least 8 characters long")
}

func TestStrongPassword(t *testing.T) {
	t.Parallel()

	t.Run("accepted", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(validator.StrongPassword("password", "Abcdef12!xyz"))
		assert.NoError(t, err)
	})

	t.Run("rejected weak", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(validator.StrongPassword("password", "abc"))
		require.Error(t, err)

		errs := validator.Extract(err)
		require.NotNil(t, errs)
		assert.True(t, errs.Has("password"))
	})

	t.Run("rejected short", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(validator.StrongPassword("password", "aB1!"))
		assert.Error(t, err)
	})
}
