// Package brief renders meeting preparation briefs and post-meeting debrief
// skeletons as markdown. Both generators are pure: they read the inputs they
// are handed and return formatted text, with no validation beyond accepting
// their typed arguments and no state of their own.
package brief

import (
	"fmt"
	"strings"

	"github.com/hupe1980/meetmesh/core"
)

// Build renders a markdown attendee brief for the given emails, pulling known
// profile details (name, timezone, preferences, notes) from the contact
// store. Unknown attendees are listed with their email only.
func Build(contacts core.ContactStore, emails []string) (string, error) {
	var sb strings.Builder
	sb.WriteString("# Meeting Brief\n\n")

	for _, email := range emails {
		p, found, err := contacts.Get(email)
		if err != nil {
			return "", fmt.Errorf("contact lookup for %s: %w", email, err)
		}

		if !found {
			fmt.Fprintf(&sb, "## %s\n\n- No profile on record\n\n", email)
			continue
		}

		title := p.Email
		if p.Name != "" {
			title = fmt.Sprintf("%s (%s)", p.Name, p.Email)
		}
		fmt.Fprintf(&sb, "## %s\n\n", title)
		fmt.Fprintf(&sb, "- Timezone: %s\n", p.Timezone)
		if p.Preferences.MorningOnly {
			sb.WriteString("- Prefers mornings\n")
		}
		if len(p.Preferences.AvoidDays) > 0 {
			fmt.Fprintf(&sb, "- Avoids: %s\n", strings.Join(p.Preferences.AvoidDays, ", "))
		}
		if p.Notes != "" {
			fmt.Fprintf(&sb, "- Notes: %s\n", p.Notes)
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// Debrief renders a markdown post-meeting summary skeleton for a confirmed
// booking, ready to be filled in after the meeting.
func Debrief(eventID string, b core.Booking) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Debrief: %s\n\n", b.Subject)
	fmt.Fprintf(&sb, "- Event: %s\n", eventID)
	fmt.Fprintf(&sb, "- When: %s\n", b.Slot)
	fmt.Fprintf(&sb, "- Attendees: %s\n\n", strings.Join(b.Emails, ", "))

	sb.WriteString("## Key Points\n\n- \n\n")
	sb.WriteString("## Decisions\n\n- \n\n")
	sb.WriteString("## Next Steps\n\n- \n")

	return sb.String()
}
