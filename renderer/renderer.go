// Package renderer turns portfolio views into markdown.
//
// Each view is a plain struct built from a pms.Portfolio, with every amount
// already formatted, and rendered through the embedded text templates.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// RenderHoldings renders the list of holdings and the portfolio total.
func RenderHoldings(h *Holdings) string {
	partials := map[string]string{
		"holdings_table": "holdings_table.md",
	}
	return renderTemplate("holdings", "holdings.md", partials, h)
}

// RenderDiversification renders the breakdown by asset class.
func RenderDiversification(d *Diversification) string {
	return renderTemplate("diversification", "diversification.md", nil, d)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
