package matchmaking

import (
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// RoomState is the lifecycle of a chat room.
type RoomState int

const (
	RoomActive RoomState = iota
	RoomExitRequested
	RoomTerminated
)

func (s RoomState) String() string {
	switch s {
	case RoomActive:
		return "active"
	case RoomExitRequested:
		return "exit_requested"
	case RoomTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// ExitOutcome is the result of RequestExit.
type ExitOutcome int

const (
	// ExitNow means the room is terminated and the caller may leave.
	ExitNow ExitOutcome = iota
	// ExitNeedsConfirmation means the caller must ConfirmExit or DismissExit.
	ExitNeedsConfirmation
)

// Message is one line of a chat room transcript.
type Message struct {
	FromMe bool
	Text   string
	At     time.Time
}

// ChatRoom is the session a chat match hands off to. Leaving a random
// chat requires confirmation; friend chats close immediately.
type ChatRoom struct {
	params SessionParams
	clock  clockwork.Clock

	mu       sync.Mutex
	state    RoomState
	messages []Message
}

// NewChatRoom opens a room for params. A nil clock uses the real clock.
func NewChatRoom(params SessionParams, clock clockwork.Clock) *ChatRoom {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &ChatRoom{params: params, clock: clock}
}

// Params returns the session parameters.
func (r *ChatRoom) Params() SessionParams {
	return r.params
}

// State returns the room state.
func (r *ChatRoom) State() RoomState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// RequestExit starts leaving the room.
func (r *ChatRoom) RequestExit() ExitOutcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case r.state == RoomTerminated:
		return ExitNow
	case !r.params.IsRandom:
		r.state = RoomTerminated
		return ExitNow
	default:
		r.state = RoomExitRequested
		return ExitNeedsConfirmation
	}
}

// ConfirmExit terminates a room whose exit was requested. It reports
// whether the room was terminated by this call.
func (r *ChatRoom) ConfirmExit() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != RoomExitRequested {
		return false
	}
	r.state = RoomTerminated
	return true
}

// DismissExit returns a room with a pending exit request to active.
func (r *ChatRoom) DismissExit() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != RoomExitRequested {
		return false
	}
	r.state = RoomActive
	return true
}

// Send appends the user's message. Blank messages and sends to a
// terminated room are ignored.
func (r *ChatRoom) Send(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == RoomTerminated {
		return false
	}
	r.messages = append(r.messages, Message{FromMe: true, Text: text, At: r.clock.Now()})
	return true
}

// Messages returns the transcript.
func (r *ChatRoom) Messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.messages...)
}
