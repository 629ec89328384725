package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/okto-client/models"
)

type articleModel struct {
	article models.NewsArticle
	status  string
}

func (m articleModel) View() string {
	a := m.article

	var b strings.Builder
	b.WriteString(titleStyle.Render(a.Title))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Source:     %s\n", a.Source)
	fmt.Fprintf(&b, "Author:     %s\n", valueOrDash(a.Author))
	fmt.Fprintf(&b, "Published:  %s\n", a.PublishedAt)
	fmt.Fprintf(&b, "Category:   %s\n", a.Category)
	b.WriteString("\n")
	b.WriteString(a.Description)
	b.WriteString("\n\n")
	b.WriteString(a.URL)
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage("ARTICLE", strings.TrimRight(b.String(), "\n"), "c: copy link │ esc: back")
}
