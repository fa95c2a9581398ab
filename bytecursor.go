// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package bytecursor provides a growable byte buffer with a cursor for
// sequential typed reads and writes of fixed-width integers, in both byte
// orders, and null-terminated strings. It is a building block for encoding
// and decoding binary protocols and file formats; the layout of any higher
// level format is the responsibility of code built on top of it.
//
// A Cursor is single-threaded and synchronous. Reads never grow the backing
// storage and fail with ErrOutOfBounds past the end of data. Fixed-width
// numeric writes do not grow storage either; callers encoding structures of
// known size should pre-size via NewFromSize. Only the variable-length
// writers (strings and raw bytes) grow storage, and growth allocates exactly
// the required size, so many small growing writes are quadratic in the total
// bytes written.
package bytecursor

import (
	"github.com/pkg/errors"
)

// ErrOutOfBounds indicates that a read, peek, seek, or fixed-width write was
// attempted outside the valid storage extent.
var ErrOutOfBounds = errors.New("out of bounds")

// Cursor owns a contiguous, growable byte buffer and tracks the next
// read/write position within it. The zero value is an empty buffer at
// offset 0 and is ready to use.
type Cursor struct {
	buf    []byte
	offset int
}

// New returns a Cursor wrapping buf with the offset at 0. The Cursor takes
// ownership of buf; the caller must not modify it afterwards.
func New(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// NewAt returns a Cursor wrapping buf with the offset at the given starting
// position.
func NewAt(buf []byte, offset int) *Cursor {
	return &Cursor{buf: buf, offset: offset}
}

// NewFromSize returns a Cursor over a freshly allocated, zero-filled buffer
// of exactly size bytes, with the offset at 0.
func NewFromSize(size int) *Cursor {
	return &Cursor{buf: make([]byte, size)}
}

// Len returns the current length of the backing storage in bytes.
func (c *Cursor) Len() int { return len(c.buf) }

// Offset returns the next read/write position.
func (c *Cursor) Offset() int { return c.offset }

// AtEnd reports whether the offset has reached the end of the data.
func (c *Cursor) AtEnd() bool { return c.offset >= len(c.buf) }

// Bytes returns the backing storage. The returned slice aliases the
// Cursor's buffer and is only valid until the next growing write.
func (c *Cursor) Bytes() []byte { return c.buf }

// Seek repositions the cursor for random access. The new offset must lie
// within [0, Len()]; Len() itself is valid and leaves the cursor at the end
// of the data.
func (c *Cursor) Seek(offset int) error {
	if offset < 0 || offset > len(c.buf) {
		return errors.Wrapf(ErrOutOfBounds, "cannot seek to %d in buffer of length %d", offset, len(c.buf))
	}
	c.offset = offset
	return nil
}

// Skip advances the offset by n bytes without decoding them.
func (c *Cursor) Skip(n int) error {
	if n < 0 || c.offset+n > len(c.buf) {
		return errors.Wrapf(ErrOutOfBounds, "cannot skip %d bytes at offset %d of %d", n, c.offset, len(c.buf))
	}
	c.offset += n
	return nil
}

// Grow guarantees that the storage can hold n more bytes at the current
// offset. If the current length already suffices, the storage is left
// untouched. Otherwise a new region of exactly offset+n bytes replaces it,
// with the prior content copied into the prefix and the remainder
// zero-filled. Storage never shrinks.
func (c *Cursor) Grow(n int) {
	if c.offset+n <= len(c.buf) {
		return
	}
	grown := make([]byte, c.offset+n)
	copy(grown, c.buf)
	c.buf = grown
}

// ReadBytes consumes the next n bytes and returns them. The returned slice
// aliases the backing storage.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || c.offset+n > len(c.buf) {
		return nil, ErrOutOfBounds
	}
	b := c.buf[c.offset : c.offset+n]
	c.offset += n
	return b, nil
}

// WriteBytes stores p at the current offset, growing the storage as needed,
// and advances the offset past it.
func (c *Cursor) WriteBytes(p []byte) {
	c.Grow(len(p))
	copy(c.buf[c.offset:], p)
	c.offset += len(p)
}

// rest returns the unconsumed portion of the buffer.
func (c *Cursor) rest() []byte {
	if c.offset >= len(c.buf) {
		return nil
	}
	return c.buf[c.offset:]
}

// window returns the buffer from pos onward, or nil when pos is outside the
// storage extent.
func (c *Cursor) window(pos int) []byte {
	if pos < 0 || pos >= len(c.buf) {
		return nil
	}
	return c.buf[pos:]
}
