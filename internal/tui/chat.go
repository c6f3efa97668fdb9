package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbletea"

	"github.com/raghavdwd/folio/internal/app"
	"github.com/raghavdwd/folio/internal/assistant"
)

// assistantReplyMsg delivers the resolved assistant turn. The transcript has
// already appended it by the time this message arrives.
type assistantReplyMsg struct{}

type chatSpinMsg struct{}

type chatModel struct {
	app   *app.Application
	theme Theme

	input   textarea.Model
	pending bool
	spin    int
	width   int
	height  int
}

func newChatModel(application *app.Application, theme Theme) chatModel {
	ta := textarea.New()
	ta.Placeholder = "Ask about projects, skills, experience…"
	ta.Focus()
	ta.CharLimit = 2000
	ta.SetWidth(80)
	ta.SetHeight(3)
	ta.Prompt = "▍ "
	return chatModel{
		app:    application,
		theme:  theme,
		input:  ta,
		width:  80,
		height: 20,
	}
}

func (m chatModel) init() tea.Cmd {
	return textarea.Blink
}

func (m *chatModel) setSize(width, height int) {
	m.width = width
	m.height = height
	m.input.SetWidth(width - 4)
}

// capturing is true while the textarea holds focus and a send is possible.
func (m chatModel) capturing() bool {
	return m.input.Focused()
}

func (m chatModel) update(msg tea.Msg) (chatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.input.Blur()
			return m, nil
		case "i":
			if !m.input.Focused() {
				m.input.Focus()
				return m, textarea.Blink
			}
		case "enter":
			// A pending completion blocks further sends: the caller-side
			// serialization the transcript contract asks for.
			if m.pending || strings.TrimSpace(m.input.Value()) == "" {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			m.pending = true
			m.spin = 0

			_, resolve := m.app.Transcript.Send(text)
			send := func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
				defer cancel()
				resolve(ctx)
				return assistantReplyMsg{}
			}
			return m, tea.Batch(send, m.spinCmd())
		}

	case assistantReplyMsg:
		m.pending = false
		return m, nil

	case chatSpinMsg:
		if m.pending {
			m.spin++
			return m, m.spinCmd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) spinCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return chatSpinMsg{}
	})
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (m chatModel) view() string {
	t := m.theme
	var b strings.Builder

	transcriptHeight := m.height - 6
	if transcriptHeight < 3 {
		transcriptHeight = 3
	}

	lines := m.renderTranscript()
	if len(lines) > transcriptHeight {
		lines = lines[len(lines)-transcriptHeight:]
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")

	if m.pending {
		frame := spinnerFrames[m.spin%len(spinnerFrames)]
		b.WriteString(t.Spinner.Render(frame + " thinking…"))
		b.WriteString("\n")
	}

	box := t.InputBox
	if m.input.Focused() {
		box = t.InputBoxF
	}
	b.WriteString(box.Width(m.width - 2).Render(m.input.View()))
	return b.String()
}

func (m chatModel) renderTranscript() []string {
	t := m.theme
	var lines []string
	for _, msg := range m.app.Transcript.Messages() {
		stamp := time.UnixMilli(msg.Timestamp).Format("15:04:05")
		switch msg.Role {
		case assistant.RoleUser:
			lines = append(lines, t.RoleYou.Render(fmt.Sprintf("You · %s", stamp)))
		default:
			lines = append(lines, t.RoleAI.Render(fmt.Sprintf("Assistant · %s", stamp)))
		}
		for _, l := range wrap(msg.Content, m.width-4) {
			lines = append(lines, "  "+l)
		}
		lines = append(lines, "")
	}
	return lines
}

// wrap is a plain word wrapper; transcripts carry prose, not code.
func wrap(s string, width int) []string {
	if width < 10 {
		width = 10
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			if len(line)+1+len(w) > width {
				lines = append(lines, line)
				line = w
				continue
			}
			line += " " + w
		}
		lines = append(lines, line)
	}
	return lines
}
