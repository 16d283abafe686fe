package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/healthlens/healthlens-go/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want environment.Environment
	}{
		{"production", environment.Production},
		{"prod", environment.Production},
		{"staging", environment.Staging},
		{"stage", environment.Staging},
		{"development", environment.Development},
		{"dev", environment.Development},
		{"", environment.Development},
		{"garbage", environment.Development},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, environment.Parse(tt.in), "input %q", tt.in)
	}
}
