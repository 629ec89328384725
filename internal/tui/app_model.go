package tui

import (
	"context"

	"github.com/MKhiriev/okto-client/internal/logger"
	"github.com/MKhiriev/okto-client/internal/onboarding"
	"github.com/MKhiriev/okto-client/internal/service"
	"github.com/MKhiriev/okto-client/internal/validators"
	"github.com/MKhiriev/okto-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenSignup
	screenLoading
	screenRetry
	screenOnboarding
	screenFeed
	screenArticle
	screenProfile
)

// route picks the screen for session. Screens the user navigated to inside
// the signed-in area are kept.
func route(s models.Session, current screen) screen {
	switch {
	case s.NeedsOnboarding():
		return screenOnboarding
	case s.IsAuthenticated():
		switch current {
		case screenFeed, screenArticle, screenProfile, screenOnboarding:
			return current
		}
		return screenFeed
	case s.Status == models.SessionAuthenticating:
		if current == screenLogin || current == screenSignup {
			return current
		}
		return screenLoading
	case s.Token != "":
		return screenRetry
	default:
		switch current {
		case screenWelcome, screenLogin, screenSignup:
			return current
		}
		return screenWelcome
	}
}

func isSignedInScreen(s screen) bool {
	return s == screenFeed || s == screenArticle || s == screenProfile
}

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	validator validators.Validator
	currency  string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	currentScreen screen
	session       models.Session
	spinner       spinner.Model

	welcome welcomeModel
	login   formModel
	signup  formModel
	wizard  wizardModel
	feed    feedModel
	article articleModel

	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel
}

func newAppModel(ctx context.Context, services *service.ClientServices, validator validators.Validator, currency string, buildInfo models.AppBuildInfo, logger *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	m := appModel{
		ctx:       ctx,
		services:  services,
		validator: validator,
		currency:  currency,
		buildInfo: buildInfo,
		logger:    logger,
		spinner:   s,
		welcome:   newWelcomeModel(),
		login:     newLoginForm(),
		signup:    newSignupForm(),
		feed:      newFeedModel(services.FeedService.Snapshot()),
	}

	m.session = services.SessionService.Snapshot()
	m.currentScreen = route(m.session, screenWelcome)
	if m.currentScreen == screenOnboarding {
		m.wizard = m.newWizard(false)
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spinner.Tick, m.feed.spinner.Tick}
	if m.currentScreen == screenFeed {
		cmds = append(cmds, m.cmdLoadFeed())
	}
	return tea.Batch(cmds...)
}

func (m appModel) newWizard(editing bool) wizardModel {
	flow := onboarding.NewFlow(m.services.SessionService, m.validator, m.logger)
	if m.session.Profile != nil {
		answers := onboarding.AnswersFromProfile(*m.session.Profile)
		flow.Update(func(a *models.OnboardingAnswers) { *a = answers })
	}
	return newWizardModel(flow, editing)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case sessionChangedMsg:
		return m.applySession(msg.session)
	case feedChangedMsg:
		m.feed = m.feed.setState(msg.state)
		return m, nil
	case authDoneMsg:
		m.login.submitting = false
		m.signup.submitting = false
		if msg.err == nil {
			m.login = newLoginForm()
			m.signup = newSignupForm()
		}
		return m, nil
	case feedLoadedMsg:
		return m, nil
	case newsRefreshedMsg:
		if msg.err != nil {
			m.showErrorf(service.UserMessage(msg.err))
			return m, nil
		}
		m.feed.status = "News refresh requested"
		return m, tea.Batch(m.cmdLoadFeed(), cmdClearStatus())
	case categorySelectedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
		}
		return m, nil
	case onboardingMsg:
		return m.onboardingDone(msg.err)
	case copiedMsg:
		m.feed.status = "Link copied"
		m.article.status = "Link copied"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.showErrorf(msg.err.Error())
		return m, nil
	case clearStatusMsg:
		m.feed.status = ""
		m.article.status = ""
		return m, nil
	case spinner.TickMsg:
		var cmd1, cmd2 tea.Cmd
		m.spinner, cmd1 = m.spinner.Update(msg)
		m.feed.spinner, cmd2 = m.feed.spinner.Update(msg)
		return m, tea.Batch(cmd1, cmd2)
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenSignup:
		return m.updateSignup(msg)
	case screenRetry:
		return m.updateRetry(msg)
	case screenOnboarding:
		return m.updateOnboarding(msg)
	case screenFeed:
		return m.updateFeed(msg)
	case screenArticle:
		return m.updateArticle(msg)
	case screenProfile:
		return m.updateProfile(msg)
	}

	return m, nil
}

// applySession stores a new snapshot and moves to the screen it implies.
func (m appModel) applySession(s models.Session) (tea.Model, tea.Cmd) {
	prev := m.session
	m.session = s

	var cmds []tea.Cmd
	if s.Status == models.SessionAnonymous && prev.Status != models.SessionAnonymous {
		cmds = append(cmds, m.cmdResetFeed())
	}

	next := route(s, m.currentScreen)
	if next == screenOnboarding && m.currentScreen != screenOnboarding {
		m.wizard = m.newWizard(false)
	}
	if next == screenFeed && !isSignedInScreen(m.currentScreen) {
		cmds = append(cmds, m.cmdLoadFeed())
	}
	m.currentScreen = next

	return m, tea.Batch(cmds...)
}

func (m appModel) onboardingDone(err error) (tea.Model, tea.Cmd) {
	m.wizard.submitting = false
	if err != nil {
		m.wizard.errMsg = wizardErrorMessage(err, m.session.ErrorMessage)
		return m, nil
	}

	m.wizard.errMsg = ""
	if m.wizard.flow == nil || !m.wizard.flow.Done() {
		m.wizard.field = 0
		m.wizard.option = 0
		return m, nil
	}

	m.currentScreen = screenFeed
	return m, m.cmdLoadFeed()
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View(m.session.ErrorMessage)
	case screenLogin:
		body = m.login.View(m.session.ErrorMessage)
	case screenSignup:
		body = m.signup.View(m.session.ErrorMessage)
	case screenLoading:
		body = renderLoading(m.spinner.View())
	case screenRetry:
		body = renderRetry(m.session, m.spinner.View())
	case screenOnboarding:
		body = m.wizard.View()
	case screenFeed:
		body = m.feed.View(m.session.User)
	case screenArticle:
		body = m.article.View()
	case screenProfile:
		body = renderProfile(m.session, m.currency)
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenSignup
		}
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.login.errMsg = ""
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = m.login.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = m.login.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			if label, missing := m.login.missing(); missing {
				m.login.errMsg = label + " is required"
				return m, nil
			}
			v := m.login.values()
			m.login.errMsg = ""
			m.login.submitting = true
			return m, m.cmdLogin(v[0], v[1])
		}
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.updateInput(msg)
	return m, cmd
}

func (m appModel) updateSignup(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.signup.errMsg = ""
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.signup = m.signup.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.signup = m.signup.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.signup.submitting {
				return m, nil
			}
			if label, missing := m.signup.missing(); missing {
				m.signup.errMsg = label + " is required"
				return m, nil
			}
			v := m.signup.values()
			m.signup.errMsg = ""
			m.signup.submitting = true
			return m, m.cmdSignup(v[0], v[1], v[2], v[3])
		}
	}

	var cmd tea.Cmd
	m.signup, cmd = m.signup.updateInput(msg)
	return m, cmd
}

func (m appModel) updateRetry(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.retry):
		if m.session.Loading {
			return m, nil
		}
		return m, m.cmdRetry()
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateOnboarding(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.wizard.submitting {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.wizard = m.wizard.moveField(-1)
	case key.Matches(keyMsg, keys.down):
		m.wizard = m.wizard.moveField(1)
	case key.Matches(keyMsg, keys.left):
		m.wizard = m.wizard.adjust(-1)
	case key.Matches(keyMsg, keys.right):
		m.wizard = m.wizard.adjust(1)
	case key.Matches(keyMsg, keys.space):
		m.wizard = m.wizard.toggle()
	case key.Matches(keyMsg, keys.enter):
		m.wizard.errMsg = ""
		m.wizard.submitting = true
		return m, m.cmdOnboardingNext()
	case key.Matches(keyMsg, keys.esc):
		m.wizard.errMsg = ""
		if m.wizard.flow.Step() == onboarding.Step1 && m.wizard.editing {
			m.currentScreen = screenProfile
			return m, nil
		}
		m.wizard.flow.Back()
		m.wizard.field = 0
		m.wizard.option = 0
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	}
	return m, nil
}

func (m appModel) updateFeed(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.feed.idx > 0 {
			m.feed.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.feed.idx < len(m.feed.visible())-1 {
			m.feed.idx++
		}
	case key.Matches(keyMsg, keys.left):
		m.feed.idx = 0
		return m, m.cmdSelectCategory(m.feed.neighbourCategory(-1))
	case key.Matches(keyMsg, keys.right):
		m.feed.idx = 0
		return m, m.cmdSelectCategory(m.feed.neighbourCategory(1))
	case key.Matches(keyMsg, keys.enter):
		article, ok := m.feed.current()
		if !ok {
			return m, nil
		}
		m.article = articleModel{article: article}
		m.currentScreen = screenArticle
	case key.Matches(keyMsg, keys.copy):
		article, ok := m.feed.current()
		if !ok {
			return m, nil
		}
		return m, cmdCopy(article.URL)
	case key.Matches(keyMsg, keys.reload):
		if m.feed.state.Loading {
			return m, nil
		}
		return m, m.cmdLoadFeed()
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdManualRefresh()
	case key.Matches(keyMsg, keys.profile):
		m.currentScreen = screenProfile
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateArticle(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopy(m.article.article.URL)
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenFeed
	}
	return m, nil
}

func (m appModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.edit):
		m.wizard = m.newWizard(true)
		m.currentScreen = screenOnboarding
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenFeed
	}
	return m, nil
}
