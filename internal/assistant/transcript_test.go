package assistant

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type scriptedCompleter struct {
	mu      sync.Mutex
	calls   [][]Turn
	replies []string
	errs    []error
	block   chan struct{}
}

func (s *scriptedCompleter) Complete(_ context.Context, history []Turn, message string) (string, error) {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, append([]Turn{}, history...))
	i := len(s.calls) - 1
	var err error
	if i < len(s.errs) {
		err = s.errs[i]
	}
	reply := ""
	if i < len(s.replies) {
		reply = s.replies[i]
	}
	return reply, err
}

func TestSend_AppendsUserThenAssistant(t *testing.T) {
	sc := &scriptedCompleter{replies: []string{"I build things in Go and TypeScript."}}
	tr := NewTranscript(sc)

	user, resolve := tr.Send("what do you build?")

	// User turn is visible before the completion resolves.
	msgs := tr.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected greeting + user turn, got %d messages", len(msgs))
	}
	if msgs[1].ID != user.ID || msgs[1].Role != RoleUser || msgs[1].Content != "what do you build?" {
		t.Fatalf("unexpected user turn: %+v", msgs[1])
	}

	reply := resolve(context.Background())
	if reply.Role != RoleAssistant || reply.Content != "I build things in Go and TypeScript." {
		t.Fatalf("unexpected assistant turn: %+v", reply)
	}

	msgs = tr.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages after resolve, got %d", len(msgs))
	}
	if msgs[2].ID != reply.ID {
		t.Fatalf("assistant turn not appended last")
	}
}

func TestSend_HistoryExcludesNewTurn(t *testing.T) {
	sc := &scriptedCompleter{replies: []string{"a", "b"}}
	tr := NewTranscript(sc)

	_, resolve := tr.Send("first")
	resolve(context.Background())
	_, resolve = tr.Send("second")
	resolve(context.Background())

	if len(sc.calls) != 2 {
		t.Fatalf("expected 2 completion calls, got %d", len(sc.calls))
	}
	// First call: just the greeting.
	if len(sc.calls[0]) != 1 || sc.calls[0][0].Content != Greeting {
		t.Fatalf("first call history should be the greeting only, got %+v", sc.calls[0])
	}
	// Second call: greeting, first user turn, first reply.
	second := sc.calls[1]
	if len(second) != 3 {
		t.Fatalf("expected 3 turns of history, got %d", len(second))
	}
	if second[1].Role != RoleUser || second[1].Content != "first" {
		t.Fatalf("unexpected history turn: %+v", second[1])
	}
	if second[2].Role != RoleAssistant || second[2].Content != "a" {
		t.Fatalf("unexpected history turn: %+v", second[2])
	}
}

func TestSend_FailureBecomesFallback(t *testing.T) {
	sc := &scriptedCompleter{errs: []error{errors.New("boom")}}
	tr := NewTranscript(sc)

	_, resolve := tr.Send("hi")
	reply := resolve(context.Background())

	if reply.Role != RoleAssistant || reply.Content != Fallback {
		t.Fatalf("expected fallback assistant turn, got %+v", reply)
	}
	msgs := tr.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected exactly one new assistant entry, got %d messages", len(msgs))
	}
}

func TestSend_SecondSendDoesNotInterleave(t *testing.T) {
	// The UI disables input while a completion is pending; this mirrors that
	// serialization and checks replies land after their own user turns.
	sc := &scriptedCompleter{replies: []string{"r1", "r2"}, block: make(chan struct{})}
	tr := NewTranscript(sc)

	_, resolve1 := tr.Send("q1")
	done := make(chan Message)
	go func() { done <- resolve1(context.Background()) }()

	close(sc.block)
	<-done

	_, resolve2 := tr.Send("q2")
	resolve2(context.Background())

	msgs := tr.Messages()
	want := []struct {
		role    Role
		content string
	}{
		{RoleAssistant, Greeting},
		{RoleUser, "q1"},
		{RoleAssistant, "r1"},
		{RoleUser, "q2"},
		{RoleAssistant, "r2"},
	}
	if len(msgs) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(msgs))
	}
	for i, w := range want {
		if msgs[i].Role != w.role || msgs[i].Content != w.content {
			t.Fatalf("position %d: expected (%s, %q), got (%s, %q)", i, w.role, w.content, msgs[i].Role, msgs[i].Content)
		}
	}
}

func TestNewTranscript_SeedsGreeting(t *testing.T) {
	tr := NewTranscript(MockCompleter{})
	msgs := tr.Messages()
	if len(msgs) != 1 || msgs[0].Role != RoleAssistant || msgs[0].Content != Greeting {
		t.Fatalf("expected seeded greeting, got %+v", msgs)
	}
}
