// Package environment names the deployment environments the service
// understands and normalizes config values into them.
package environment
