// Package triage is the notification triage service.
//
// Submit runs a notification through focus evaluation and classification and
// defers it when the user is focused and the app is not urgent. DrainSummary
// snapshots the deferred queue, summarizes it without holding the queue lock,
// and then discards the summarized entries.
//
//	svc := triage.New(classifier.New(), deferred.New(), summarizer.New(nil))
//	out, _ := svc.Submit(ctx, n, focus.On(true))
//	res := svc.DrainSummary(ctx)
package triage
