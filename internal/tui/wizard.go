package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/okto-client/internal/onboarding"
	"github.com/MKhiriev/okto-client/models"
)

type wizardModel struct {
	flow *onboarding.Flow

	field  int
	option int

	// editing is set when the wizard was opened from the profile screen.
	editing    bool
	submitting bool
	errMsg     string
}

func newWizardModel(flow *onboarding.Flow, editing bool) wizardModel {
	return wizardModel{flow: flow, editing: editing}
}

func (m wizardModel) fields() []wizardField {
	if m.flow == nil {
		return nil
	}
	return wizardFields[m.flow.Step()]
}

func (m wizardModel) current() (wizardField, bool) {
	fields := m.fields()
	if m.field < 0 || m.field >= len(fields) {
		return wizardField{}, false
	}
	return fields[m.field], true
}

func (m wizardModel) moveField(dir int) wizardModel {
	n := len(m.fields())
	if n == 0 {
		return m
	}
	m.field = min(max(m.field+dir, 0), n-1)
	m.option = 0
	return m
}

// adjust handles left/right: sliders and choices change value, multi-select
// fields move the option cursor.
func (m wizardModel) adjust(dir int) wizardModel {
	f, ok := m.current()
	if !ok {
		return m
	}
	if f.multi() {
		m.option = min(max(m.option+dir, 0), len(f.options)-1)
		return m
	}
	if f.adjust != nil {
		m.flow.Update(func(a *models.OnboardingAnswers) { f.adjust(a, dir) })
	}
	return m
}

func (m wizardModel) toggle() wizardModel {
	f, ok := m.current()
	if !ok || f.toggle == nil {
		return m
	}
	m.flow.Update(func(a *models.OnboardingAnswers) { f.toggle(a, m.option) })
	return m
}

func (m wizardModel) View() string {
	if m.flow == nil {
		return renderPage("PROFILE SETUP", "", "")
	}

	step := m.flow.Step()
	answers := m.flow.Answers()

	var b strings.Builder
	fmt.Fprintf(&b, "Step %d of %d · %s\n\n", int(step), len(onboarding.Steps), step.Title())

	for i, f := range wizardFields[step] {
		focused := i == m.field
		label := fmt.Sprintf("%-16s", f.label)
		if focused {
			label = selectedStyle.Render(label)
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor(focused), label, f.value(answers))

		if f.multi() && focused {
			chosen := f.chosen(answers)
			for j, opt := range f.options {
				mark := "[ ]"
				if slices.Contains(chosen, opt) {
					mark = "[x]"
				}
				line := fmt.Sprintf("      %s %s", mark, opt)
				if j == m.option {
					line = selectedStyle.Render(line)
				}
				b.WriteString(line)
				b.WriteString("\n")
			}
		}
	}

	switch {
	case m.submitting:
		b.WriteString("\nSaving profile...\n")
	case step == onboarding.Step4:
		b.WriteString("\n[Finish]\n")
	default:
		b.WriteString("\n[Next]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	help := "↑/↓: field │ ←/→: change │ space: toggle │ enter: next │ esc: back │ x: log out"
	return renderPage("PROFILE SETUP", strings.TrimRight(b.String(), "\n"), help)
}
