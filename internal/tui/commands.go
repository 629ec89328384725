package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Every service call runs inside a command: the services publish snapshots
// synchronously and the program only receives them outside of Update.

func (m appModel) cmdLogin(email, password string) tea.Cmd {
	ctx, sessions := m.ctx, m.services.SessionService
	return func() tea.Msg {
		return authDoneMsg{err: sessions.Login(ctx, email, password)}
	}
}

func (m appModel) cmdSignup(firstName, lastName, email, password string) tea.Cmd {
	ctx, sessions := m.ctx, m.services.SessionService
	return func() tea.Msg {
		return authDoneMsg{err: sessions.Signup(ctx, firstName, lastName, email, password)}
	}
}

func (m appModel) cmdRetry() tea.Cmd {
	ctx, sessions := m.ctx, m.services.SessionService
	return func() tea.Msg {
		return authDoneMsg{err: sessions.LoadCurrentUser(ctx)}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx, sessions := m.ctx, m.services.SessionService
	return func() tea.Msg {
		sessions.Logout(ctx)
		return nil
	}
}

func (m appModel) cmdResetFeed() tea.Cmd {
	feed := m.services.FeedService
	return func() tea.Msg {
		feed.Reset()
		return nil
	}
}

func (m appModel) cmdLoadFeed() tea.Cmd {
	if m.session.UserID == nil {
		return nil
	}
	ctx, feed, userID := m.ctx, m.services.FeedService, *m.session.UserID
	return func() tea.Msg {
		return feedLoadedMsg{err: feed.LoadFeed(ctx, userID)}
	}
}

func (m appModel) cmdManualRefresh() tea.Cmd {
	ctx, feed := m.ctx, m.services.FeedService
	return func() tea.Msg {
		return newsRefreshedMsg{err: feed.ManualRefreshNews(ctx)}
	}
}

func (m appModel) cmdSelectCategory(label string) tea.Cmd {
	feed := m.services.FeedService
	return func() tea.Msg {
		return categorySelectedMsg{err: feed.SelectCategory(label)}
	}
}

func (m appModel) cmdOnboardingNext() tea.Cmd {
	ctx, flow := m.ctx, m.wizard.flow
	return func() tea.Msg {
		return onboardingMsg{err: flow.Next(ctx)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
