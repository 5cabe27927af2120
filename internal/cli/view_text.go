package cli

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"planshop/internal/cli/formatter"
)

// textStepEditor is a free-text step backed by a textarea. Every keystroke is
// committed straight to the plan so navigation never loses input.
type textStepEditor struct {
	ta     textarea.Model
	commit func(string)
}

func newTextStepEditor(placeholder, initial string, commit func(string)) *textStepEditor {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(8)
	ta.SetValue(initial)
	ta.Cursor.Style = formatter.StyleHeader
	ta.Focus()
	return &textStepEditor{ta: ta, commit: commit}
}

func (e *textStepEditor) Init() tea.Cmd { return textarea.Blink }

func (e *textStepEditor) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	e.ta, cmd = e.ta.Update(msg)
	e.commit(e.ta.Value())
	return cmd
}

func (e *textStepEditor) View(width int) string {
	e.ta.SetWidth(min(width, 80))
	return e.ta.View()
}

func (e *textStepEditor) Hints() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "new line")),
	}
}
