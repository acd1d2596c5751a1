// Copyright 2023 Jesus Ruiz. All rights reserved.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

// Package sliceedit extends the functionalities of rsc.io/edit to
// implement efficient buffered editing of text addressed by codepoint.
// All insertions are queued against the original text and applied with a
// single allocation when the result is requested.
package sliceedit

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"rsc.io/edit"
)

var ErrOutOfRange = errors.New("offset out of range")

// A Buffer is a queue of edits to apply to a given text.
type Buffer struct {
	ed  *edit.Buffer
	buf []byte

	// starts[i] is the byte position of the i-th codepoint.
	// The last element is len(buf), so a text with n codepoints has n+1 entries.
	starts []int
}

// NewBuffer returns a new buffer to accumulate changes to an initial text.
func NewBuffer(text string) *Buffer {
	b := &Buffer{}
	b.buf = []byte(text)
	b.ed = edit.NewBuffer(b.buf)

	b.starts = make([]int, 0, utf8.RuneCount(b.buf)+1)
	for i := range text {
		b.starts = append(b.starts, i)
	}
	b.starts = append(b.starts, len(b.buf))
	return b
}

// Len returns the length of the original text in codepoints.
func (b *Buffer) Len() int {
	return len(b.starts) - 1
}

// BytePos converts a codepoint offset into a byte position in the original text.
func (b *Buffer) BytePos(offset int) (int, error) {
	if offset < 0 || offset >= len(b.starts) {
		return 0, fmt.Errorf("%w: %d not in [0, %d]", ErrOutOfRange, offset, b.Len())
	}
	return b.starts[offset], nil
}

// InsertString queues the insertion of s before the codepoint at offset.
// An offset equal to Len appends at the end of the text.
// Strings inserted at the same offset appear in the order they were queued.
func (b *Buffer) InsertString(offset int, s string) error {
	pos, err := b.BytePos(offset)
	if err != nil {
		return err
	}
	b.ed.Insert(pos, s)
	return nil
}

// Bytes returns a new byte slice containing the original data
// with the queued edits applied.
func (b *Buffer) Bytes() []byte {
	return b.ed.Bytes()
}

// String returns a string containing the original data
// with the queued edits applied.
func (b *Buffer) String() string {
	return string(b.ed.Bytes())
}
