package classifier

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ananyap2024/focus-flow/pkg/notification"
)

// DefaultUrgentApps lists app identifiers that bypass deferral unless
// overridden with WithUrgentApps.
var DefaultUrgentApps = []string{"calendar", "slack", "phone", "pagerduty"}

const (
	reasonNotFocused = "user is not in focus mode"
	reasonUrgentFmt  = "app '%s' is marked as urgent"
	reasonDeferred   = "focus mode is active and app is not urgent"
)

// Result is the outcome of a classification. Reason is never empty.
type Result struct {
	Decision notification.Decision
	Reason   string
}

// Classifier decides whether a notification is delivered now or queued.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	urgent []string
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithUrgentApps replaces the urgent app set.
// Identifiers are trimmed and lowercased; blank ones are dropped since an
// empty identifier would match every app name.
func WithUrgentApps(apps ...string) Option {
	return func(c *Classifier) {
		c.urgent = normalize(apps)
	}
}

// New creates a Classifier with the default urgent set unless overridden.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		urgent: normalize(DefaultUrgentApps),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the decision and justification for n.
//
// Outside focus mode everything is allowed. In focus mode a notification is
// allowed when its app name contains any urgent identifier, compared
// case-insensitively; otherwise it is queued.
func (c *Classifier) Classify(n notification.Notification, focused bool) Result {
	if !focused {
		return Result{Decision: notification.DecisionAllow, Reason: reasonNotFocused}
	}

	if c.IsUrgent(n.AppName) {
		return Result{
			Decision: notification.DecisionAllow,
			Reason:   fmt.Sprintf(reasonUrgentFmt, n.AppName),
		}
	}

	return Result{Decision: notification.DecisionQueue, Reason: reasonDeferred}
}

// IsUrgent reports whether appName contains one of the urgent identifiers.
func (c *Classifier) IsUrgent(appName string) bool {
	lowered := lower(appName)
	for _, id := range c.urgent {
		if strings.Contains(lowered, id) {
			return true
		}
	}
	return false
}

// UrgentApps returns the effective urgent identifiers in sorted order.
func (c *Classifier) UrgentApps() []string {
	out := slices.Clone(c.urgent)
	slices.Sort(out)
	return out
}

// lower applies plain Unicode lowercasing, not case folding, so that
// characters like U+017F keep their identity. It builds a fresh caser per
// call; cases.Caser is stateful and must not be shared between goroutines.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func normalize(apps []string) []string {
	out := make([]string, 0, len(apps))
	for _, a := range apps {
		a = lower(strings.TrimSpace(a))
		if a == "" || slices.Contains(out, a) {
			continue
		}
		out = append(out, a)
	}
	return out
}
