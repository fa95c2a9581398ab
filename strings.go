// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bytecursor

import (
	"bytes"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrInvalidUTF8 indicates that a byte sequence is not well-formed UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 byte sequence")

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// String reads stop at a zero terminator or at the end of the data,
// whichever comes first. A zero terminator is consumed but excluded from the
// result. String writes store one byte per character and are paired with
// ReadString; content outside ISO 8859-1 (code points above U+00FF) must
// travel through the UTF-8 variants instead.

// ReadString consumes bytes up to a zero terminator or the end of the data
// and returns them decoded one byte per character (ISO 8859-1).
func (c *Cursor) ReadString() string {
	raw := c.scanCString()
	// ISO 8859-1 maps every byte to a code point; decoding cannot fail.
	decoded, _ := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	return string(decoded)
}

// ReadString16 consumes 2-byte little-endian code units up to a zero unit or
// the end of the data and returns them decoded as UTF-16. A lone trailing
// byte cannot form a code unit and is left unconsumed.
func (c *Cursor) ReadString16() string {
	rest := c.rest()
	end := len(rest) - len(rest)%2

	span := rest[:end]
	consumed := end
	for i := 0; i <= end-2; i += 2 {
		if rest[i] == 0x00 && rest[i+1] == 0x00 {
			span = rest[:i]
			consumed = i + 2
			break
		}
	}
	c.offset += consumed

	// The decoder substitutes U+FFFD for unpaired surrogates and cannot
	// fail on even-length input.
	decoded, _ := utf16le.NewDecoder().Bytes(span)
	return string(decoded)
}

// ReadUTF8 consumes bytes up to a zero terminator or the end of the data and
// interprets them as UTF-8 encoded text. Malformed sequences fail with
// ErrInvalidUTF8. This is the counterpart of WriteUTF8 and recovers
// multi-byte content stored through the byte-per-character primitives.
func (c *Cursor) ReadUTF8() (string, error) {
	raw := c.scanCString()
	if !utf8.Valid(raw) {
		return "", errors.Wrapf(ErrInvalidUTF8, "cannot decode % x", raw)
	}
	return string(raw), nil
}

// WriteString stores s one byte per character (ISO 8859-1) at the current
// offset, growing the storage as needed. Characters above U+00FF cannot be
// represented in a single byte and fail the write.
func (c *Cursor) WriteString(s string) error {
	encoded, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return errors.Wrapf(err, "cannot write %q one byte per character", s)
	}
	c.WriteBytes(encoded)
	return nil
}

// WriteCString stores s via WriteString followed by a single zero
// terminator.
func (c *Cursor) WriteCString(s string) error {
	if err := c.WriteString(s); err != nil {
		return err
	}
	c.Grow(1)
	c.buf[c.offset] = 0x00
	c.offset++
	return nil
}

// WriteString16 stores s as little-endian UTF-16 code units at the current
// offset, growing the storage as needed.
func (c *Cursor) WriteString16(s string) error {
	encoded, err := utf16le.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return errors.Wrapf(err, "cannot encode %q as UTF-16", s)
	}
	c.WriteBytes(encoded)
	return nil
}

// WriteCString16 stores s via WriteString16 followed by a zero code unit.
func (c *Cursor) WriteCString16(s string) error {
	if err := c.WriteString16(s); err != nil {
		return err
	}
	c.Grow(2)
	c.buf[c.offset] = 0x00
	c.buf[c.offset+1] = 0x00
	c.offset += 2
	return nil
}

// WriteUTF8 stores the UTF-8 encoding of s byte by byte at the current
// offset, growing the storage as needed, so that arbitrary Unicode content
// can round-trip through the byte-per-character primitives. Strings that are
// not well-formed UTF-8 fail with ErrInvalidUTF8.
func (c *Cursor) WriteUTF8(s string) error {
	if !utf8.ValidString(s) {
		return errors.Wrapf(ErrInvalidUTF8, "cannot write %q", s)
	}
	c.WriteBytes([]byte(s))
	return nil
}

// scanCString consumes and returns the raw bytes up to a zero terminator or
// the end of the data. The terminator, if present, is consumed but excluded.
func (c *Cursor) scanCString() []byte {
	rest := c.rest()
	idx := bytes.IndexByte(rest, 0x00)
	if idx < 0 {
		c.offset += len(rest)
		return rest
	}
	c.offset += idx + 1
	return rest[:idx]
}
