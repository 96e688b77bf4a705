package summarizer

import (
	"fmt"
	"strings"

	"github.com/ananyap2024/focus-flow/pkg/notification"
)

const promptHeader = "Summarize the following missed notifications for a user who just finished a focus session. " +
	"Group them by app and highlight anything important:"

// BuildPrompt renders the digest request sent to the generator, one line per
// notification in queue order.
func BuildPrompt(ns []notification.Notification) string {
	var b strings.Builder
	b.WriteString(promptHeader)
	b.WriteString("\n\n")
	for _, n := range ns {
		fmt.Fprintf(&b, "- App: %s, Title: %s, Message: %s\n", n.AppName, n.Title, n.Message)
	}
	return b.String()
}
