// Package classifier decides whether a notification is delivered right away
// or deferred to the summary queue.
//
// The decision is a pure function of the notification and the focus state:
//
//	c := classifier.New()
//	res := c.Classify(n, true)
//	if res.Decision == notification.DecisionQueue {
//		// defer
//	}
//
// The urgent app set can be replaced with WithUrgentApps or loaded from a
// YAML rules file with LoadRulesFile.
package classifier
