package splash

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/concursados/internal/router"
	"github.com/abhisek/concursados/internal/screen"
	"github.com/abhisek/concursados/internal/store"
	"github.com/abhisek/concursados/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 800 * time.Millisecond
	phase2End    = 1800 * time.Millisecond
	totalDur     = 3 * time.Second
)

const emblemArt = `      ▲
     ▲ ▲
    ▲▲▲▲▲
   ╔═════╗
   ║ ★★★ ║
   ╚═════╝`

var scanFrames = []string{"▰▱▱▱▱▱", "▰▰▱▱▱▱", "▰▰▰▱▱▱", "▰▰▰▰▱▱", "▰▰▰▰▰▱", "▰▰▰▰▰▰"}

type tickMsg time.Time

// SplashScreen shows the boot animation, then routes to the dashboard or,
// for first-time users, to onboarding. The animation always plays in full;
// keypresses do not skip it.
type SplashScreen struct {
	store             *store.Store
	dashboardFactory  func() screen.Screen
	onboardingFactory func() screen.Screen
	elapsed           time.Duration
	tickCount         int
	transitioned      bool
}

var _ screen.Screen = (*SplashScreen)(nil)

// New creates a SplashScreen routing to one of the two factories once the
// animation completes.
func New(st *store.Store, dashboardFactory, onboardingFactory func() screen.Screen) *SplashScreen {
	return &SplashScreen{
		store:             st,
		dashboardFactory:  dashboardFactory,
		onboardingFactory: onboardingFactory,
	}
}

func (s *SplashScreen) Title() string {
	return ""
}

func (s *SplashScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *SplashScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tickMsg); !ok {
		// Keypresses and everything else are ignored until the timer runs out.
		return s, nil
	}

	s.elapsed += tickInterval
	s.tickCount++

	if s.elapsed >= totalDur {
		return s, s.transition()
	}

	return s, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *SplashScreen) transition() tea.Cmd {
	if s.transitioned {
		return nil
	}
	s.transitioned = true

	var next screen.Screen
	if s.store.Profile() != nil {
		next = s.dashboardFactory()
	} else {
		next = s.onboardingFactory()
	}
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *SplashScreen) View(width, height int) string {
	var sections []string

	emblem := lipgloss.NewStyle().Foreground(theme.Primary).Render(emblemArt)
	sections = append(sections, emblem)

	if s.elapsed >= phase1End {
		sections = append(sections, "")
		title := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("CONCURSADOS.AI")
		sections = append(sections, title)

		sub := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("Central de Treinamento Tático")
		sections = append(sections, sub)
	}

	if s.elapsed >= phase2End {
		sections = append(sections, "")
		frame := s.tickCount % len(scanFrames)
		bar := lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render(scanFrames[frame])
		sections = append(sections, bar)

		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("iniciando sistemas...")
		sections = append(sections, hint)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
