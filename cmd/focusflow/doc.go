// Command focusflow runs the notification triage API.
//
//	focusflow                      serve the HTTP API (same as "serve")
//	focusflow classify --focus APP  show the triage decision for apps
//	focusflow version
//
// Configuration comes from the environment and an optional dotenv file
// (--env-file, default .env).
package main
