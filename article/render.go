package article

import (
	"fmt"
	"sort"

	"github.com/hesusruiz/arthtml/sliceedit"
	"go.uber.org/zap"
)

// DefaultImageBaseURL is prepended to the normalized image references.
const DefaultImageBaseURL = "https://miro.medium.com/v2/format:webp/"

// Options tailors normalization and rendering. The zero value uses the defaults.
type Options struct {
	// Title of the HTML page
	Title string

	ImageBaseURL  string
	ImagePrefix   string
	ArchivePrefix string

	// Strict rejects markups whose ranges cross each other instead of
	// emitting non-nested tags.
	Strict bool

	// Highlight renders code and preformatted paragraphs without markups
	// through a syntax highlighter, using the CodeStyle style.
	Highlight bool
	CodeStyle string

	Log *zap.SugaredLogger
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.ImageBaseURL == "" {
		o.ImageBaseURL = DefaultImageBaseURL
	}
	if o.ImagePrefix == "" {
		o.ImagePrefix = DefaultImagePrefix
	}
	if o.ArchivePrefix == "" {
		o.ArchivePrefix = DefaultArchivePrefix
	}
	if o.CodeStyle == "" {
		o.CodeStyle = DefaultCodeStyle
	}
	if o.Log == nil {
		o.Log = zap.NewNop().Sugar()
	}
	return o
}

// Renderer converts paragraphs into HTML fragments
type Renderer struct {
	opts Options
	log  *zap.SugaredLogger
}

func NewRenderer(opts Options) *Renderer {
	opts = opts.withDefaults()
	return &Renderer{opts: opts, log: opts.Log}
}

// tagPair is the opening and closing HTML of an element
type tagPair struct {
	open  string
	close string
}

func elementPair(name string) tagPair {
	return tagPair{open: "<" + name + ">", close: "</" + name + ">"}
}

// blockTags returns the tag pair wrapping the whole paragraph.
func (r *Renderer) blockTags(p *Paragraph) (tagPair, error) {
	if p.Kind == Image {
		if p.Metadata == nil {
			return tagPair{}, fmt.Errorf("%w: image paragraph without metadata", ErrMissingAssociation)
		}
		src := r.opts.ImageBaseURL + p.Metadata.ImageRef
		return tagPair{
			open:  "<figure><img src=\"" + src + "\"><figcaption>",
			close: "</figcaption></figure>",
		}, nil
	}
	if int(p.Kind) >= len(elementNames) {
		return tagPair{}, fmt.Errorf("%w: paragraph kind %v", ErrUnsupportedKind, p.Kind)
	}
	return elementPair(elementNames[p.Kind]), nil
}

// inlineTags returns the tag pair of a markup span.
func inlineTags(m *Markup) (tagPair, error) {
	if m.Kind == Link {
		if m.Href == nil || *m.Href == "" {
			return tagPair{}, fmt.Errorf("%w: link markup without href", ErrMissingAssociation)
		}
		return tagPair{open: "<a href=\"" + *m.Href + "\">", close: "</a>"}, nil
	}
	if int(m.Kind) >= len(elementNames) {
		return tagPair{}, fmt.Errorf("%w: markup kind %v", ErrUnsupportedKind, m.Kind)
	}
	return elementPair(elementNames[m.Kind]), nil
}

type tagRole uint8

const (
	roleOpen tagRole = iota
	roleClose
)

// tagInsertion is a tag to be inserted before the codepoint at offset
type tagInsertion struct {
	offset int
	tag    string
	role   tagRole
	markup int
}

// RenderParagraph returns the HTML fragment of a single paragraph.
//
// Inline tags are placed by offset only. Tags sharing an offset keep the order
// of the markups in the input, whatever their role. Ranges must not cross, and
// where ranges share an offset the markups must be listed so that input order
// is also nesting order: a markup closing at the same offset as an enclosing one
// must be listed before it. Otherwise the tags are not nested, unless Strict is
// set, in which case the paragraph is rejected.
func (r *Renderer) RenderParagraph(p *Paragraph) (string, error) {
	block, err := r.blockTags(p)
	if err != nil {
		return "", err
	}

	if len(p.Markups) == 0 {
		if r.opts.Highlight && (p.Kind == Code || p.Kind == Preformatted) {
			code, err := r.highlight(p.Text)
			if err != nil {
				return "", err
			}
			return block.open + code + block.close, nil
		}
		return block.open + p.Text + block.close, nil
	}

	buf := sliceedit.NewBuffer(p.Text)

	tags := make([]tagInsertion, 0, 2*len(p.Markups))
	for i := range p.Markups {
		m := &p.Markups[i]
		if m.Start > m.End || m.End > buf.Len() {
			return "", fmt.Errorf("%w: markup %d range [%d, %d) outside text of %d codepoints",
				ErrMalformedInput, i, m.Start, m.End, buf.Len())
		}
		pair, err := inlineTags(m)
		if err != nil {
			return "", fmt.Errorf("markup %d: %w", i, err)
		}
		tags = append(tags,
			tagInsertion{offset: m.Start, tag: pair.open, role: roleOpen, markup: i},
			tagInsertion{offset: m.End, tag: pair.close, role: roleClose, markup: i},
		)
	}

	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].offset < tags[j].offset
	})

	if r.opts.Strict {
		if err := checkNesting(tags, p.Markups); err != nil {
			return "", err
		}
	}

	// The buffer applies all insertions against the original text, which gives the
	// same result as inserting from the highest offset to the lowest: tags sharing
	// an offset end up in sorted order and lower offsets are never shifted.
	for _, t := range tags {
		if err := buf.InsertString(t.offset, t.tag); err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
	}

	return block.open + buf.String() + block.close, nil
}

// checkNesting fails if the sorted tags would not be properly nested:
// every close tag must match the innermost open one.
func checkNesting(tags []tagInsertion, markups []Markup) error {
	var open []int
	for _, t := range tags {
		if t.role == roleOpen {
			open = append(open, t.markup)
			continue
		}
		inner := open[len(open)-1]
		if inner != t.markup {
			a, b := &markups[inner], &markups[t.markup]
			return fmt.Errorf("%w: markup %d [%d, %d) closes inside markup %d [%d, %d)",
				ErrCrossingMarkup, t.markup, b.Start, b.End, inner, a.Start, a.End)
		}
		open = open[:len(open)-1]
	}
	return nil
}
