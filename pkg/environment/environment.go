package environment

import "strings"

// Environment represents the deployment environment the service runs in.
type Environment string

const (
	// Development for local runs.
	Development Environment = "development"
	// Production for live deployments.
	Production Environment = "production"
	// Staging for pre-production deployments.
	Staging Environment = "staging"
)

// Parse maps a config value to an Environment, accepting the short aliases
// "dev", "prod" and "stage". Unknown values fall back to Development.
func Parse(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool {
	return e == Production
}

// IsDevelopment reports whether e is the development environment.
func (e Environment) IsDevelopment() bool {
	return e == Development
}

func (e Environment) String() string {
	return string(e)
}
