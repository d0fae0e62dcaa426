package telegram

import (
	"fmt"
	"strings"

	"github.com/nikmy/timekeeper/internal/availability"
)

func formatResult(r *availability.Result) string {
	var sb strings.Builder

	_, _ = fmt.Fprintf(
		&sb, "%s - %s\n",
		availability.FormatDateTime(r.Window.Start),
		availability.FormatDateTime(r.Window.End),
	)

	writeUsers(&sb, "Free", r.Available)
	writeUsers(&sb, "Busy", r.Unavailable)

	return strings.TrimRight(sb.String(), "\n")
}

func writeUsers(sb *strings.Builder, title string, users []availability.User) {
	_, _ = fmt.Fprintf(sb, "\n%s (%d):\n", title, len(users))
	if len(users) == 0 {
		sb.WriteString("nobody\n")
		return
	}

	for _, u := range users {
		_, _ = fmt.Fprintf(sb, "• %s\n", u.DisplayName)
	}
}
