package assistant

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Role tags a transcript message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry. Timestamp is unix milliseconds.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Timestamp int64
}

// Greeting seeds a fresh transcript so the widget never opens empty.
const Greeting = "Hey, I am Raghav's AI sidekick. Want to talk builds, automations, or security ideas?"

// Fallback replaces the assistant turn when the completion call fails. The
// failure stays inside the transcript; callers never see an error.
const Fallback = "I'm having a bit of trouble connecting right now. Please try again later!"

// Transcript is the append-only message log for one chat session. It lives
// in memory only and resets with the process, like the widget it mirrors.
type Transcript struct {
	mu        sync.Mutex
	messages  []Message
	completer Completer
	now       func() time.Time
}

func NewTranscript(completer Completer) *Transcript {
	t := &Transcript{
		completer: completer,
		now:       time.Now,
	}
	t.append(RoleAssistant, Greeting)
	return t
}

// Messages returns a copy of the log in append order.
func (t *Transcript) Messages() []Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Transcript) append(role Role, content string) Message {
	msg := Message{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: t.now().UnixMilli(),
	}
	t.messages = append(t.messages, msg)
	return msg
}

// Send appends the user turn immediately and returns it along with a resolve
// function that performs the completion. Resolve appends exactly one
// assistant turn — the reply on success, Fallback on any failure — and never
// returns an error. The caller serializes sends by keeping input disabled
// until resolve returns.
func (t *Transcript) Send(text string) (Message, func(ctx context.Context) Message) {
	t.mu.Lock()
	history := make([]Turn, len(t.messages))
	for i, m := range t.messages {
		history[i] = Turn{Role: m.Role, Content: m.Content}
	}
	user := t.append(RoleUser, text)
	t.mu.Unlock()

	resolve := func(ctx context.Context) Message {
		reply, err := t.completer.Complete(ctx, history, text)
		if err != nil || reply == "" {
			reply = Fallback
		}

		t.mu.Lock()
		defer t.mu.Unlock()
		return t.append(RoleAssistant, reply)
	}
	return user, resolve
}
