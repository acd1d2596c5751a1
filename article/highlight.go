package article

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	hlhtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultCodeStyle is the chroma style used when highlighting is enabled.
const DefaultCodeStyle = "github"

// highlight returns the text of a code paragraph as highlighted HTML with inline styles.
// The caller wraps it in the tags of the paragraph.
func (r *Renderer) highlight(text string) (string, error) {

	// Determine lexer from the content
	l := lexers.Analyse(text)
	if l == nil {
		l = lexers.Fallback
	}
	l = chroma.Coalesce(l)

	s := styles.Get(r.opts.CodeStyle)

	f := hlhtml.New(hlhtml.Standalone(false), hlhtml.PreventSurroundingPre(true))

	it, err := l.Tokenise(nil, text)
	if err != nil {
		return "", fmt.Errorf("tokenising code: %w", err)
	}

	rb := &bytes.Buffer{}
	if err := f.Format(rb, s, it); err != nil {
		return "", fmt.Errorf("formatting code: %w", err)
	}

	r.log.Debugw("highlighted code", "lexer", l.Config().Name, "style", s.Name)
	return rb.String(), nil
}
