// Package environment defines the application environment names shared by
// configuration and logging defaults.
package environment

// Environment represents the application environment.
type Environment string

const (
	// Development for local development.
	Development Environment = "development"
	// Staging for pre-production.
	Staging Environment = "staging"
	// Production for production.
	Production Environment = "production"
)

// Parse normalizes an environment string, accepting common short forms.
// Unrecognized values map to Development.
func Parse(s string) Environment {
	switch s {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}
