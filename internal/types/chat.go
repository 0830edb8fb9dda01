package types

import "strings"

// Mode is the caller-supplied routing directive.
type Mode string

const (
	ModeAuto         Mode = "auto"
	ModeResearch     Mode = "investigacion"
	ModeConversation Mode = "conversacion"
)

// ParseMode normalizes a wire value. Unknown or empty values select auto.
func ParseMode(raw string) Mode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "investigacion", "investigación", "research":
		return ModeResearch
	case "conversacion", "conversación", "conversation":
		return ModeConversation
	default:
		return ModeAuto
	}
}

// SearchResult is one hit returned by the search capability.
type SearchResult struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

// Turn is one prior message of the conversation supplied by the caller.
type Turn struct {
	Content string `json:"content"`
	IsUser  bool   `json:"is_user"`
}
