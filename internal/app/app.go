package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/concursados/internal/content"
	"github.com/abhisek/concursados/internal/router"
	"github.com/abhisek/concursados/internal/screen"
	"github.com/abhisek/concursados/internal/screens/dashboard"
	"github.com/abhisek/concursados/internal/screens/essay"
	"github.com/abhisek/concursados/internal/screens/informatics"
	"github.com/abhisek/concursados/internal/screens/logic"
	"github.com/abhisek/concursados/internal/screens/onboarding"
	"github.com/abhisek/concursados/internal/screens/pdfscreen"
	"github.com/abhisek/concursados/internal/screens/plan"
	"github.com/abhisek/concursados/internal/screens/questions"
	"github.com/abhisek/concursados/internal/screens/splash"
	"github.com/abhisek/concursados/internal/screens/stats"
	"github.com/abhisek/concursados/internal/screens/study"
	"github.com/abhisek/concursados/internal/screens/tfm"
	"github.com/abhisek/concursados/internal/store"
	"github.com/abhisek/concursados/internal/ui/layout"
)

// Options carries the services the UI runs on.
type Options struct {
	Store   *store.Store
	Content *content.Service
}

// screenFactories builds each main view fresh on entry, so every screen
// starts from a clean ephemeral state.
type screenFactories struct {
	Dashboard   func() screen.Screen
	Plan        func() screen.Screen
	Questions   func() screen.Screen
	Logic       func() screen.Screen
	Informatics func() screen.Screen
	Essay       func() screen.Screen
	PDFs        func() screen.Screen
	Stats       func() screen.Screen
	Tfm         func() screen.Screen
}

func newScreenFactories(opts Options) screenFactories {
	f := screenFactories{
		Plan: func() screen.Screen {
			return plan.New(opts.Store, opts.Content, func(subject, topic string) screen.Screen {
				return study.New(opts.Store, opts.Content, subject, topic)
			})
		},
		Questions:   func() screen.Screen { return questions.New(opts.Store, opts.Content) },
		Logic:       func() screen.Screen { return logic.New(opts.Store, opts.Content) },
		Informatics: func() screen.Screen { return informatics.New(opts.Store, opts.Content) },
		Essay:       func() screen.Screen { return essay.New(opts.Store, opts.Content) },
		PDFs:        func() screen.Screen { return pdfscreen.New(opts.Store) },
		Stats:       func() screen.Screen { return stats.New(opts.Store) },
		Tfm:         func() screen.Screen { return tfm.New(opts.Store, opts.Content) },
	}
	f.Dashboard = func() screen.Screen {
		return dashboard.New(opts.Store, dashboard.Factories{
			Plan:        f.Plan,
			Questions:   f.Questions,
			Essay:       f.Essay,
			Stats:       f.Stats,
			PDFs:        f.PDFs,
			Tfm:         f.Tfm,
			Logic:       f.Logic,
			Informatics: f.Informatics,
		})
	}
	return f
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts      Options
	factories screenFactories
	router    *router.Router
	width     int
	height    int
}

// newAppModel creates the root model starting at the splash screen.
func newAppModel(opts Options) AppModel {
	m := AppModel{opts: opts, factories: newScreenFactories(opts)}

	onboardingFactory := func() screen.Screen {
		return onboarding.New(opts.Store, m.factories.Dashboard)
	}
	splashScreen := splash.New(opts.Store, m.factories.Dashboard, onboardingFactory)
	m.router = router.New(splashScreen)
	return m
}

// quickNavTarget maps the global digit shortcuts to their screens.
func (m AppModel) quickNavTarget(key string) func() screen.Screen {
	switch key {
	case "1":
		return m.factories.Dashboard
	case "2":
		return m.factories.Plan
	case "3":
		return m.factories.Questions
	case "4":
		return m.factories.Logic
	case "5":
		return m.factories.Informatics
	case "6":
		return m.factories.Essay
	case "7":
		return m.factories.PDFs
	case "8":
		return m.factories.Stats
	case "9":
		return m.factories.Tfm
	}
	return nil
}

// quickNavAllowed reports whether the digit shortcuts apply right now. They
// never fire during the splash, onboarding or an active study session, and
// pause whenever the active screen is capturing text input.
func (m AppModel) quickNavAllowed() bool {
	switch active := m.router.Active().(type) {
	case *splash.SplashScreen, *onboarding.OnboardingScreen, *study.StudyScreen:
		return false
	case screen.InputCapturer:
		return !active.CapturingInput()
	}
	return true
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m, tea.Quit
		}
		if target := m.quickNavTarget(key); target != nil && m.quickNavAllowed() {
			return m, m.router.Reset(target())
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// The splash runs full-bleed without chrome.
	if title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	stats := m.opts.Store.Stats()
	header := layout.RenderHeader(title, stats.XP, stats.Streak, m.width)

	footerHints := []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Sair"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, footerHints...)
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
