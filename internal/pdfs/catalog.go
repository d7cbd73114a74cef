// Package pdfs holds the static catalogue of past exam papers.
package pdfs

import "strings"

// File is one downloadable exam paper or official archive link.
type File struct {
	ID    string
	Title string
	Year  string
	Exam  string
	Size  string
	URL   string
}

// Categories lists the filter tags in menu order.
func Categories() []string {
	return []string{"Todos", "ESA", "EsPCEx", "PM-SP", "ENEM", "Bancário"}
}

// Official sites reorganize links often, so the catalogue points at
// persistent repositories (INEP, official archives) instead of deep links.
var catalog = []File{
	{
		ID:    "enem-2023-azul",
		Title: "ENEM 2023 - Caderno Azul",
		Year:  "2023",
		Exam:  "ENEM",
		Size:  "PDF Direto",
		URL:   "https://download.inep.gov.br/enem/provas_gabaritos/2023/PV_impresso_D1_CD1_AZUL.pdf",
	},
	{
		ID:    "enem-2022-amarelo",
		Title: "ENEM 2022 - Caderno Amarelo",
		Year:  "2022",
		Exam:  "ENEM",
		Size:  "PDF Direto",
		URL:   "https://download.inep.gov.br/enem/provas_gabaritos/2022/PV_impresso_D1_CD2_AMARELA.pdf",
	},
	{
		ID:    "esa-repo",
		Title: "Acervo Oficial de Provas ESA",
		Year:  "2010-2023",
		Exam:  "ESA",
		Size:  "Site Oficial",
		URL:   "https://esa.eb.mil.br/index.php/concurso/provas-anteriores",
	},
	{
		ID:    "espcex-repo",
		Title: "Acervo Oficial de Provas EsPCEx",
		Year:  "2015-2023",
		Exam:  "EsPCEx",
		Size:  "Site Oficial",
		URL:   "https://espcex.eb.mil.br/index.php/provas-anteriores",
	},
	{
		ID:    "pmsp-vunesp",
		Title: "Página do Concurso PM-SP (Vunesp)",
		Year:  "2023",
		Exam:  "PM-SP",
		Size:  "Site da Banca",
		URL:   "https://www.vunesp.com.br/PMES2203",
	},
	{
		ID:    "bb-2021-g",
		Title: "Prova Banco do Brasil 2021 (A)",
		Year:  "2021",
		Exam:  "Bancário",
		Size:  "PDF Direto",
		URL:   "https://blog.grancursosonline.com.br/wp-content/uploads/2021/09/PROVA-A-GAB-1.pdf",
	},
}

// All returns the full catalogue.
func All() []File {
	out := make([]File, len(catalog))
	copy(out, catalog)
	return out
}

// Filter returns the files matching a case-insensitive title search and a
// category tag. Category "Todos" (or empty) matches every exam.
func Filter(search, category string) []File {
	search = strings.ToLower(search)

	var out []File
	for _, f := range catalog {
		if search != "" && !strings.Contains(strings.ToLower(f.Title), search) {
			continue
		}
		if category != "" && category != "Todos" && f.Exam != category {
			continue
		}
		out = append(out, f)
	}
	return out
}
