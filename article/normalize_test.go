package article

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		imageRef string
		href     string
		wantRef  string
		wantHref string
		wantErr  error
	}{
		{
			name:     "Image prefix",
			imageRef: "ImageMetadata:abc123",
			wantRef:  "abc123",
		},
		{
			name:     "Bare image ref",
			imageRef: "abc123",
			wantRef:  "abc123",
		},
		{
			name:     "Archived link",
			href:     "https://web.archive.org/web/20200101000000/https://example.com/x",
			wantHref: "https://example.com/x",
		},
		{
			name:     "Plain link",
			href:     "https://example.com/web/x",
			wantHref: "https://example.com/web/x",
		},
		{
			name:    "Archive prefix without target",
			href:    "https://web.archive.org/web/20200101000000",
			wantErr: ErrMalformedHref,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paragraph{Kind: KindParagraph, Text: "text"}
			if tt.imageRef != "" {
				p.Metadata = &Metadata{ImageRef: tt.imageRef}
			}
			if tt.href != "" {
				p.Markups = []Markup{{Start: 0, End: 4, Kind: Link, Href: strPtr(tt.href)}}
			}
			paras := []Paragraph{p}

			// The second pass must not change anything
			for pass := 1; pass <= 2; pass++ {
				err := Normalize(paras, Options{})
				if tt.wantErr != nil {
					if !errors.Is(err, tt.wantErr) {
						t.Fatalf("Normalize() error = %v, want %v", err, tt.wantErr)
					}
					if !errors.Is(err, ErrMalformedInput) {
						t.Errorf("Normalize() error = %v, want it to be malformed input too", err)
					}
					return
				}
				if err != nil {
					t.Fatalf("pass %d: Normalize() error = %v", pass, err)
				}
				if tt.imageRef != "" && paras[0].Metadata.ImageRef != tt.wantRef {
					t.Errorf("pass %d: image ref = %q, want %q", pass, paras[0].Metadata.ImageRef, tt.wantRef)
				}
				if tt.href != "" && *paras[0].Markups[0].Href != tt.wantHref {
					t.Errorf("pass %d: href = %q, want %q", pass, *paras[0].Markups[0].Href, tt.wantHref)
				}
			}
		})
	}
}

func TestNormalizeCustomPrefixes(t *testing.T) {
	paras := []Paragraph{{
		Kind:     Image,
		Metadata: &Metadata{ImageRef: "img:42"},
		Markups:  []Markup{{Kind: Link, Href: strPtr("https://archive.example/snap/123/https://a.test")}},
	}}
	opts := Options{ImagePrefix: "img:", ArchivePrefix: "https://archive.example/snap/"}
	if err := Normalize(paras, opts); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if got := paras[0].Metadata.ImageRef; got != "42" {
		t.Errorf("image ref = %q, want %q", got, "42")
	}
	if got := *paras[0].Markups[0].Href; got != "https://a.test" {
		t.Errorf("href = %q, want %q", got, "https://a.test")
	}
}
