package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/okto-client/models"
	"github.com/charmbracelet/bubbles/spinner"
)

const maxInsights = 3

type feedModel struct {
	state   models.FeedState
	idx     int
	spinner spinner.Model
	status  string
}

func newFeedModel(state models.FeedState) feedModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return feedModel{state: state, spinner: s}
}

func (m feedModel) visible() []models.NewsArticle {
	return m.state.VisibleArticles()
}

// setState replaces the snapshot and keeps the cursor inside the visible
// list.
func (m feedModel) setState(state models.FeedState) feedModel {
	m.state = state
	if n := len(m.visible()); m.idx >= n {
		m.idx = max(n-1, 0)
	}
	return m
}

func (m feedModel) current() (models.NewsArticle, bool) {
	articles := m.visible()
	if m.idx < 0 || m.idx >= len(articles) {
		return models.NewsArticle{}, false
	}
	return articles[m.idx], true
}

// neighbourCategory returns the category label dir positions away from the
// selected one, wrapping around.
func (m feedModel) neighbourCategory(dir int) string {
	return cycle(models.Categories, m.state.SelectedCategory, dir)
}

func (m feedModel) View(user *models.User) string {
	var b strings.Builder

	if user != nil && user.FirstName != "" {
		fmt.Fprintf(&b, "Hi, %s", user.FirstName)
	}
	if m.state.Loading {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
	}
	b.WriteString("\n\n")

	pills := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		if c == m.state.SelectedCategory {
			pills = append(pills, activePillStyle.Render(c))
		} else {
			pills = append(pills, pillStyle.Render(c))
		}
	}
	b.WriteString(strings.Join(pills, " "))
	b.WriteString("\n\n")

	if len(m.state.Insights) > 0 {
		b.WriteString(titleStyle.Render("Insights"))
		b.WriteString("\n")
		for _, in := range m.state.Insights[:min(len(m.state.Insights), maxInsights)] {
			fmt.Fprintf(&b, "%s %s: %s\n", insightBadge(in.Kind), in.Title, fitText(in.Description, 60))
		}
		b.WriteString("\n")
	}

	articles := m.visible()
	switch {
	case m.state.Loading && len(m.state.Articles) == 0:
		b.WriteString("Loading...\n")
	case len(articles) == 0:
		b.WriteString("No articles\n")
	default:
		for i, a := range articles {
			line := fmt.Sprintf("%s%s  %s", cursor(i == m.idx), fitText(a.Title, 56), helpStyle.Render(a.Source))
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if len(m.state.Sources) > 0 {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Sources: " + strings.Join(slices.Sorted(slices.Values(m.state.Sources)), ", ")))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.state.ErrorMessage != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.state.ErrorMessage))
		b.WriteString("\n")
	}

	help := "←/→: category │ enter: open │ c: copy link │ r: reload │ n: fetch news │ p: profile │ x: log out │ q: quit"
	return renderPage("NEWS FEED", strings.TrimRight(b.String(), "\n"), help)
}
