package classifier

import "errors"

var (
	// ErrInvalidRules is returned when a rules document cannot be decoded.
	ErrInvalidRules = errors.New("invalid classifier rules")

	// ErrNoUrgentApps is returned when a rules document lists no usable identifiers.
	ErrNoUrgentApps = errors.New("rules must list at least one urgent app")

	// ErrRulesFile is returned when the rules file cannot be opened.
	ErrRulesFile = errors.New("failed to open classifier rules file")
)
