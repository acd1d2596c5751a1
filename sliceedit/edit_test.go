package sliceedit

import (
	"errors"
	"testing"
)

func TestBufferInsertString(t *testing.T) {
	type insert struct {
		offset int
		s      string
	}
	tests := []struct {
		name    string
		text    string
		inserts []insert
		want    string
	}{
		{
			name: "No edits",
			text: "hello",
			want: "hello",
		},
		{
			name:    "Start and end",
			text:    "hello",
			inserts: []insert{{0, "<a>"}, {5, "</a>"}},
			want:    "<a>hello</a>",
		},
		{
			name:    "Same offset keeps queue order",
			text:    "ab",
			inserts: []insert{{1, "1"}, {1, "2"}, {1, "3"}},
			want:    "a123b",
		},
		{
			name:    "Codepoint offsets",
			text:    "héllo wörld",
			inserts: []insert{{6, "<b>"}, {11, "</b>"}},
			want:    "héllo <b>wörld</b>",
		},
		{
			name:    "After multibyte character",
			text:    "€x",
			inserts: []insert{{1, "|"}},
			want:    "€|x",
		},
		{
			name:    "Empty text",
			text:    "",
			inserts: []insert{{0, "<i>"}, {0, "</i>"}},
			want:    "<i></i>",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.text)
			for _, in := range tt.inserts {
				if err := b.InsertString(in.offset, in.s); err != nil {
					t.Fatalf("InsertString(%d) error = %v", in.offset, err)
				}
			}
			if got := b.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBufferOutOfRange(t *testing.T) {
	b := NewBuffer("añb")
	if got := b.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	for _, offset := range []int{-1, 4} {
		if err := b.InsertString(offset, "x"); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("InsertString(%d) error = %v, want ErrOutOfRange", offset, err)
		}
	}
	if pos, err := b.BytePos(3); err != nil || pos != 4 {
		t.Errorf("BytePos(3) = %d, %v, want 4, nil", pos, err)
	}
}
