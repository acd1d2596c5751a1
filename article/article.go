// Package article converts a structured article, a list of paragraphs with
// inline markup spans addressed by codepoint offsets, into a self-contained
// HTML document.
package article

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Paragraph is one block of the article.
type Paragraph struct {
	Text     string
	Kind     BlockKind
	Markups  []Markup
	Layout   *Layout
	Metadata *Metadata
}

// Markup is an inline span over the half-open codepoint range [Start, End) of its paragraph text.
type Markup struct {
	Start int
	End   int
	Kind  InlineKind
	Href  *string
}

// Metadata carries the image reference of Image paragraphs.
type Metadata struct {
	ImageRef string
}

// The shape of the records in the input file.
// Pointers are used to detect required fields that are missing.
type rawParagraph struct {
	Text     *string      `json:"text"`
	Type     *BlockKind   `json:"type"`
	Markups  *[]rawMarkup `json:"markups"`
	Layout   *Layout      `json:"layout"`
	Metadata *rawMetadata `json:"metadata"`
}

type rawMarkup struct {
	Start *int        `json:"start"`
	End   *int        `json:"end"`
	Type  *InlineKind `json:"type"`
	Href  *string     `json:"href"`
}

type rawMetadata struct {
	Ref *string `json:"__ref"`
}

// ReadFile reads and decodes the article stored in fileName
func ReadFile(fileName string) ([]Paragraph, error) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputUnreadable, err)
	}
	return Decode(src)
}

// Decode parses a JSON array of paragraph records.
// Unknown fields are ignored, but every required field must be present and well typed.
func Decode(src []byte) ([]Paragraph, error) {
	if len(bytes.TrimSpace(src)) == 0 {
		return nil, fmt.Errorf("%w: no content", ErrMalformedInput)
	}

	var raw []rawParagraph
	if err := json.Unmarshal(src, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	paras := make([]Paragraph, len(raw))
	for i, r := range raw {
		p, err := r.paragraph()
		if err != nil {
			return nil, fmt.Errorf("paragraph %d: %w", i, err)
		}
		paras[i] = p
	}
	return paras, nil
}

func (r rawParagraph) paragraph() (Paragraph, error) {
	var p Paragraph

	switch {
	case r.Text == nil:
		return p, fmt.Errorf("%w: missing field \"text\"", ErrMalformedInput)
	case r.Type == nil:
		return p, fmt.Errorf("%w: missing field \"type\"", ErrMalformedInput)
	case r.Markups == nil:
		return p, fmt.Errorf("%w: missing field \"markups\"", ErrMalformedInput)
	}

	p.Text = *r.Text
	p.Kind = *r.Type
	p.Layout = r.Layout

	if r.Metadata != nil {
		if r.Metadata.Ref == nil {
			return p, fmt.Errorf("%w: missing field \"metadata.__ref\"", ErrMalformedInput)
		}
		p.Metadata = &Metadata{ImageRef: *r.Metadata.Ref}
	}

	for j, m := range *r.Markups {
		switch {
		case m.Start == nil:
			return p, fmt.Errorf("markup %d: %w: missing field \"start\"", j, ErrMalformedInput)
		case m.End == nil:
			return p, fmt.Errorf("markup %d: %w: missing field \"end\"", j, ErrMalformedInput)
		case m.Type == nil:
			return p, fmt.Errorf("markup %d: %w: missing field \"type\"", j, ErrMalformedInput)
		case *m.Start < 0 || *m.End < 0:
			return p, fmt.Errorf("markup %d: %w: negative offset", j, ErrMalformedInput)
		}
		p.Markups = append(p.Markups, Markup{
			Start: *m.Start,
			End:   *m.End,
			Kind:  *m.Type,
			Href:  m.Href,
		})
	}

	return p, nil
}
