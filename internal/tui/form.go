package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formField is one labelled input and the parser that must accept it
type formField struct {
	label       string
	placeholder string
	charLimit   int
	width       int
	check       func(string) error
}

// form walks the user through its fields. Enter runs the focused field's
// check; a rejected value keeps focus and shows the parser's message until
// it is corrected.
type form struct {
	fields []formField
	inputs []textinput.Model
	focus  int
	errMsg string
}

func newForm(fields []formField) *form {
	f := &form{
		fields: fields,
		inputs: make([]textinput.Model, len(fields)),
	}
	for i, field := range fields {
		f.inputs[i] = textinput.New()
		f.inputs[i].Placeholder = field.placeholder
		f.inputs[i].CharLimit = field.charLimit
		f.inputs[i].Width = field.width
	}
	f.inputs[0].Focus()
	return f
}

// Init returns the cursor blink for the focused input
func (f *form) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles a message and reports whether every field was accepted
func (f *form) Update(msg tea.Msg) (bool, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case msg.String() == "enter":
			if err := f.checkField(f.focus); err != nil {
				return false, nil
			}
			if f.focus == len(f.fields)-1 {
				return f.checkAll(), nil
			}
			return false, f.setFocus(f.focus + 1)

		case key.Matches(msg, DefaultKeyMap.Save):
			return f.checkAll(), nil

		case key.Matches(msg, DefaultKeyMap.NextField):
			return false, f.setFocus((f.focus + 1) % len(f.fields))

		case key.Matches(msg, DefaultKeyMap.PrevField):
			return false, f.setFocus((f.focus - 1 + len(f.fields)) % len(f.fields))
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return false, cmd
}

// checkField runs the check of field i and records its message
func (f *form) checkField(i int) error {
	if err := f.fields[i].check(f.inputs[i].Value()); err != nil {
		f.errMsg = err.Error()
		return err
	}
	f.errMsg = ""
	return nil
}

// checkAll moves focus to the first rejected field, if any
func (f *form) checkAll() bool {
	for i := range f.fields {
		if err := f.checkField(i); err != nil {
			f.setFocus(i)
			return false
		}
	}
	return true
}

func (f *form) setFocus(i int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[f.focus].Focus()
}

// Value returns the raw text of field i
func (f *form) Value(i int) string {
	return f.inputs[i].Value()
}

// SetError shows a message that did not come from a field check
func (f *form) SetError(msg string) {
	f.errMsg = msg
}

func (f *form) View() string {
	var s string
	for i, field := range f.fields {
		indicator := "  "
		labelStyle := subtitleStyle
		if i == f.focus {
			indicator = "> "
			labelStyle = focusStyle
		}
		s += fmt.Sprintf("%s%s\n  %s\n\n", indicator, labelStyle.Render(field.label), f.inputs[i].View())
	}

	if f.errMsg != "" {
		s += errorStyle.Render("  "+f.errMsg) + "\n\n"
	}

	s += helpStyle.Render("  enter: check and next  tab/shift+tab: move  ctrl+s: save  esc: cancel")
	return s
}
