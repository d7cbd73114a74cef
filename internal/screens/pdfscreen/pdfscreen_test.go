package pdfscreen

import (
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/concursados/internal/pdfs"
	"github.com/abhisek/concursados/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "record.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func TestDownloadAwardsXPOnce(t *testing.T) {
	st := openTestStore(t)
	p := New(st)

	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	stats := st.Stats()
	if stats.PDFsDownloaded != 1 {
		t.Errorf("PDFsDownloaded = %d, want 1", stats.PDFsDownloaded)
	}
	if stats.XP != store.XPDownload {
		t.Errorf("XP = %d, want %d", stats.XP, store.XPDownload)
	}

	// Second download of the same file is a no-op.
	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	stats = st.Stats()
	if stats.PDFsDownloaded != 1 || stats.XP != store.XPDownload {
		t.Error("re-downloading should not award XP again")
	}
	if p.lastURL == "" {
		t.Error("URL should be shown after download")
	}
}

func TestCategoryFilterNarrowsList(t *testing.T) {
	p := New(openTestStore(t))

	all := len(p.visible())
	if all != len(pdfs.All()) {
		t.Fatalf("Todos should show the whole catalogue, got %d", all)
	}

	// Move to the first real category.
	p.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	filtered := p.visible()
	if len(filtered) == 0 || len(filtered) >= all {
		t.Errorf("category filter returned %d of %d files", len(filtered), all)
	}
	for _, f := range filtered {
		if f.Exam != pdfs.Categories()[1] {
			t.Errorf("file %s leaked into category %s", f.ID, pdfs.Categories()[1])
		}
	}
}

func TestSearchFilters(t *testing.T) {
	p := New(openTestStore(t))

	p.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	if !p.searching {
		t.Fatal("/ should open search")
	}
	for _, r := range "2023" {
		p.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	files := p.visible()
	if len(files) == 0 {
		t.Fatal("search for 2023 should match the catalogue")
	}
	for _, f := range files {
		if f.Year != "2023" {
			t.Errorf("file %s does not match search", f.ID)
		}
	}
}
