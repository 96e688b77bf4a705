// Package summarizer produces the digest shown to a user when they leave
// focus mode.
//
// An empty batch yields EmptyText. Otherwise the Summarizer computes the
// deterministic fallback ("You missed N notifications while focusing.") and,
// when a Generator is configured, asks it for a richer digest built from
// BuildPrompt. A generator error, blank response, panic or deadline expiry is
// logged and answered with the fallback; it is never retried and never
// returned to the caller.
//
//	s := summarizer.New(gen, summarizer.WithTimeout(10*time.Second))
//	sum := s.Summarize(ctx, batch)
//	fmt.Println(sum.Text, sum.Source)
//
// The gemini subpackage provides a Generator backed by the Gemini API.
package summarizer
