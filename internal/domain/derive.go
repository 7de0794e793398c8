package domain

import "strings"

const (
	replyPrefix = "Re: "
	quotePrefix = "> "
)

// Reply derives an unsaved draft addressed back to the sender of the
// original message. The title is prefixed with "Re: " exactly once and
// the body is left empty for the reply text.
func Reply(original *Message) *Message {
	return &Message{
		Recipient: original.Sender,
		Title:     replyTitle(original.Title),
		Status:    StatusDraft,
	}
}

// Quote derives the same draft as Reply, but pre-fills the body with a
// block-quoted rendering of the original body followed by a blank line
// for the reply text.
func Quote(original *Message) *Message {
	draft := Reply(original)
	draft.Body = quoteBody(original.Body)
	return draft
}

func replyTitle(title string) string {
	if strings.HasPrefix(title, replyPrefix) {
		return title
	}
	return replyPrefix + title
}

func quoteBody(body string) string {
	var b strings.Builder
	for _, line := range strings.Split(body, "\n") {
		b.WriteString(quotePrefix)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}
