package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formModel is a column of labelled text inputs used by the login and signup
// screens.
type formModel struct {
	title      string
	action     string
	labels     []string
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

type formField struct {
	label    string
	limit    int
	password bool
}

func newFormModel(title, action string, fields ...formField) formModel {
	m := formModel{title: title, action: action}
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = strings.ToLower(f.label)
		in.CharLimit = f.limit
		in.Width = 40
		if f.password {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		if i == 0 {
			in.Focus()
		}
		m.labels = append(m.labels, f.label)
		m.inputs = append(m.inputs, in)
	}
	return m
}

func newLoginForm() formModel {
	return newFormModel("LOG IN", "Log in",
		formField{label: "Email", limit: 254},
		formField{label: "Password", limit: 256, password: true},
	)
}

func newSignupForm() formModel {
	return newFormModel("SIGN UP", "Create account",
		formField{label: "First name", limit: 64},
		formField{label: "Last name", limit: 64},
		formField{label: "Email", limit: 254},
		formField{label: "Password", limit: 256, password: true},
	)
}

// values returns the trimmed input values; passwords are returned as typed.
func (m formModel) values() []string {
	out := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		if in.EchoMode == textinput.EchoPassword {
			out[i] = in.Value()
		} else {
			out[i] = strings.TrimSpace(in.Value())
		}
	}
	return out
}

// missing returns the label of the first empty field.
func (m formModel) missing() (string, bool) {
	for i, v := range m.values() {
		if v == "" {
			return m.labels[i], true
		}
	}
	return "", false
}

func (m formModel) focusNext() formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) focusPrev() formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func (m formModel) updateInput(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) View(sessionErr string) string {
	var b strings.Builder
	for i, in := range m.inputs {
		fmt.Fprintf(&b, "%-11s│ [%s]\n", m.labels[i], in.View())
	}

	if m.submitting {
		fmt.Fprintf(&b, "\n[%s...]\n", m.action)
	} else {
		fmt.Fprintf(&b, "\n[%s]\n", m.action)
	}

	errMsg := m.errMsg
	if errMsg == "" {
		errMsg = sessionErr
	}
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(errMsg))
		b.WriteString("\n")
	}

	return renderPage(m.title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
