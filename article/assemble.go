package article

import (
	_ "embed"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// DefaultTitle is the title of the page when none is configured.
const DefaultTitle = "Vector vs SIMD Intructions"

const (
	listOpen  = "<ul>"
	listClose = "</ul>"
)

// The placeholders in the page template
const (
	contentPlaceholder = "HERE_GOES_THE_CONTENT"
	titlePlaceholder   = "{#title}"
)

//go:embed assets/page.html
var pageTemplate string

// Fragment is the rendered HTML of a paragraph, tagged with the kind of the paragraph.
type Fragment struct {
	Kind BlockKind
	HTML string
}

// listFold is the accumulator of the list grouping.
// It is passed by value, so every step returns the new state.
type listFold struct {
	inList bool
	lines  []string
}

// step adds one fragment, opening a list before the first list item of a run
// and closing it before the first fragment that follows the run.
func (s listFold) step(f Fragment) listFold {
	line := f.HTML
	isItem := f.Kind == ListItem

	switch {
	case isItem && !s.inList:
		line = listOpen + line
		s.inList = true
	case !isItem && s.inList:
		line = listClose + line
		s.inList = false
	}

	s.lines = append(s.lines, line)
	return s
}

// GroupLists wraps every run of consecutive list items in a single list.
// A list still open after the last fragment is left open.
func GroupLists(frags []Fragment) []string {
	acc := listFold{lines: make([]string, 0, len(frags))}
	for _, f := range frags {
		acc = acc.step(f)
	}
	return acc.lines
}

// Body joins the grouped fragments, one per line.
func Body(frags []Fragment) string {
	var sb strings.Builder
	for _, line := range GroupLists(frags) {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Page embeds the body in the page template.
func Page(title string, body string) string {
	replacer := strings.NewReplacer(titlePlaceholder, title, contentPlaceholder, body)
	return replacer.Replace(pageTemplate)
}

// RenderFragments renders every paragraph. Failures of all paragraphs are
// reported together, and no fragment is returned if any of them failed.
func (r *Renderer) RenderFragments(paras []Paragraph) ([]Fragment, error) {
	var errs error

	frags := make([]Fragment, 0, len(paras))
	for i := range paras {
		html, err := r.RenderParagraph(&paras[i])
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("paragraph %d: %w", i, err))
			continue
		}
		r.log.Debugw("rendered paragraph", "index", i, "kind", paras[i].Kind, "markups", len(paras[i].Markups))
		frags = append(frags, Fragment{Kind: paras[i].Kind, HTML: html})
	}

	if errs != nil {
		return nil, errs
	}
	return frags, nil
}

// RenderDocument normalizes the paragraphs in place and returns the complete HTML page.
func (r *Renderer) RenderDocument(paras []Paragraph) (string, error) {
	if err := Normalize(paras, r.opts); err != nil {
		return "", err
	}

	frags, err := r.RenderFragments(paras)
	if err != nil {
		return "", err
	}

	return Page(r.opts.Title, Body(frags)), nil
}
