package tui

import "strings"

type welcomeModel struct {
	items []string
	idx   int
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Log in", "Sign up"}}
}

func (m welcomeModel) View(errMsg string) string {
	var b strings.Builder
	b.WriteString("Personal finance news, tailored to you.\n\n")
	for i, item := range m.items {
		b.WriteString(cursor(i == m.idx))
		b.WriteString(item)
		b.WriteString("\n")
	}
	if errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(errMsg))
	}
	return renderPage("OKTO", strings.TrimRight(b.String(), "\n"), "enter: select │ v: about │ q: quit")
}
