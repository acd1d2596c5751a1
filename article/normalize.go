package article

import (
	"fmt"
	"strings"
)

const (
	// DefaultImagePrefix is stripped from image references.
	DefaultImagePrefix = "ImageMetadata:"

	// DefaultArchivePrefix marks links wrapped by a web archive snapshot,
	// like https://web.archive.org/web/20200101000000/https://example.com/x
	DefaultArchivePrefix = "https://web.archive.org/web/"
)

// Normalize strips the long-form prefixes of image references and archived links,
// in place, so the renderer emits compact values. Running it twice is a no-op.
func Normalize(paras []Paragraph, opts Options) error {
	opts = opts.withDefaults()

	for i := range paras {
		p := &paras[i]

		if p.Metadata != nil {
			p.Metadata.ImageRef = strings.TrimPrefix(p.Metadata.ImageRef, opts.ImagePrefix)
		}

		for j := range p.Markups {
			m := &p.Markups[j]
			if m.Href == nil {
				continue
			}
			href, err := unwrapArchived(*m.Href, opts.ArchivePrefix)
			if err != nil {
				return fmt.Errorf("paragraph %d, markup %d: %w", i, j, err)
			}
			*m.Href = href
		}
	}

	return nil
}

// unwrapArchived returns the original target of an archived link.
// The part after the prefix is a snapshot identifier terminated by '/'.
func unwrapArchived(href string, prefix string) (string, error) {
	if !strings.HasPrefix(href, prefix) {
		return href, nil
	}

	rest := href[len(prefix):]
	i := strings.IndexByte(rest, '/')
	if i == -1 {
		return "", fmt.Errorf("%w: %w: no target after archive prefix in %q", ErrMalformedHref, ErrMalformedInput, href)
	}
	return rest[i+1:], nil
}
