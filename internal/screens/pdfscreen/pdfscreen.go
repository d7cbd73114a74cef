package pdfscreen

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/concursados/internal/pdfs"
	"github.com/abhisek/concursados/internal/router"
	"github.com/abhisek/concursados/internal/screen"
	"github.com/abhisek/concursados/internal/store"
	"github.com/abhisek/concursados/internal/ui/components"
	"github.com/abhisek/concursados/internal/ui/layout"
	"github.com/abhisek/concursados/internal/ui/theme"
)

// PDFScreen lists the past-exam catalogue with search and category filters.
// Selecting a file marks it downloaded and shows its URL; the first download
// of each file earns XP.
type PDFScreen struct {
	store *store.Store

	search    components.TextInput
	searching bool
	category  int
	selected  int
	lastURL   string
}

var _ screen.Screen = (*PDFScreen)(nil)
var _ screen.KeyHintProvider = (*PDFScreen)(nil)
var _ screen.InputCapturer = (*PDFScreen)(nil)

// New creates a PDFScreen.
func New(st *store.Store) *PDFScreen {
	return &PDFScreen{
		store:  st,
		search: components.NewTextInput("Buscar prova...", false, 40),
	}
}

func (p *PDFScreen) Title() string {
	return "Provas Anteriores"
}

func (p *PDFScreen) Init() tea.Cmd {
	return nil
}

func (p *PDFScreen) CapturingInput() bool {
	return p.searching
}

func (p *PDFScreen) KeyHints() []layout.KeyHint {
	if p.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Aplicar busca"},
			{Key: "Esc", Description: "Cancelar"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navegar"},
		{Key: "←/→", Description: "Categoria"},
		{Key: "/", Description: "Buscar"},
		{Key: "Enter", Description: "Baixar"},
		{Key: "Esc", Description: "Voltar"},
	}
}

func (p *PDFScreen) visible() []pdfs.File {
	return pdfs.Filter(p.search.Value(), pdfs.Categories()[p.category])
}

func (p *PDFScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if p.searching {
			var cmd tea.Cmd
			p.search, cmd = p.search.Update(msg)
			return p, cmd
		}
		return p, nil
	}

	key := kmsg.String()

	if p.searching {
		switch key {
		case "enter", "esc":
			p.searching = false
			p.selected = 0
			return p, nil
		}
		var cmd tea.Cmd
		p.search, cmd = p.search.Update(msg)
		p.selected = 0
		return p, cmd
	}

	files := p.visible()
	cats := pdfs.Categories()

	switch key {
	case "esc":
		return p, func() tea.Msg { return router.PopScreenMsg{} }
	case "/":
		p.searching = true
		return p, p.search.Init()
	case "left", "h":
		if p.category > 0 {
			p.category--
			p.selected = 0
		}
	case "right", "l":
		if p.category < len(cats)-1 {
			p.category++
			p.selected = 0
		}
	case "up", "k":
		if p.selected > 0 {
			p.selected--
		}
	case "down", "j":
		if p.selected < len(files)-1 {
			p.selected++
		}
	case "enter":
		if p.selected < len(files) {
			f := files[p.selected]
			_, _ = p.store.RegisterDownload(f.ID)
			p.lastURL = f.URL
		}
	}

	return p, nil
}

func (p *PDFScreen) View(width, height int) string {
	rec := p.store.Record()
	downloaded := make(map[string]bool, len(rec.DownloadHistory))
	for _, id := range rec.DownloadHistory {
		downloaded[id] = true
	}

	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("ARSENAL DE PROVAS ANTERIORES")
	sections = append(sections, title, "")

	// Category tabs.
	var tabs []string
	for i, c := range pdfs.Categories() {
		if i == p.category {
			tabs = append(tabs, theme.Selected.Render("["+c+"]"))
		} else {
			tabs = append(tabs, theme.Unselected.Render(" "+c+" "))
		}
	}
	sections = append(sections, strings.Join(tabs, " "))

	if p.searching || p.search.Value() != "" {
		sections = append(sections, "", p.search.View())
	}
	sections = append(sections, "")

	files := p.visible()
	if len(files) == 0 {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).Italic(true).
			Render("Nenhuma prova encontrada."))
	}

	for i, f := range files {
		mark := "  "
		if downloaded[f.ID] {
			mark = lipgloss.NewStyle().Foreground(theme.Success).Render("✓ ")
		}
		line := fmt.Sprintf("%s (%s · %s)", f.Title, f.Exam, f.Size)
		if i == p.selected && !p.searching {
			sections = append(sections, mark+theme.Selected.Render("▸ "+line))
		} else {
			sections = append(sections, mark+theme.Unselected.Render("  "+line))
		}
	}

	if p.lastURL != "" {
		sections = append(sections, "",
			lipgloss.NewStyle().Foreground(theme.Accent).
				Render(fmt.Sprintf("Download registrado (+%d XP na primeira vez):", store.XPDownload)),
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(p.lastURL))
	}

	body := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
