// Package matchmaking simulates the wait for a random chat or video partner.
package matchmaking

import (
	"fmt"
	"strings"
)

// Kind selects text chat or video matchmaking.
type Kind int

const (
	KindChat Kind = iota
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindChat:
		return "chat"
	case KindVideo:
		return "video"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind parses "chat" or "video".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chat":
		return KindChat, nil
	case "video":
		return KindVideo, nil
	default:
		return 0, fmt.Errorf("unknown match kind %q", s)
	}
}

// SessionParams initialize the chat or video session a match hands off to.
type SessionParams struct {
	Kind        Kind
	PartnerName string
	Avatar      string
	// Score is the compatibility score in [80,100]. Nil for video.
	Score *int
	// Rating is the label for Score, empty when Score is nil.
	Rating string
	// IsRandom distinguishes a matched stranger from a friend chat.
	IsRandom bool
}
