// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bytecursor

import (
	"math"

	"github.com/ikmak/bytecursor/bytecore"
)

// Reads consume the value at the current offset and advance past it. Peeks
// decode at an explicit position and never move the offset. Writes store at
// the current offset and advance past it; they do not grow the storage and
// fail with ErrOutOfBounds when the backing region is undersized. Signed
// values use the standard two's-complement interpretation.

// ReadUint8 consumes one byte as a uint8.
func (c *Cursor) ReadUint8() (uint8, error) {
	v, _, ok := bytecore.ReadU8(c.rest())
	if !ok {
		return 0, ErrOutOfBounds
	}
	c.offset++
	return v, nil
}

// ReadInt8 consumes one byte as an int8.
func (c *Cursor) ReadInt8() (int8, error) {
	v, err := c.ReadUint8()
	return int8(v), err
}

// ReadUint16LE consumes two bytes as a little-endian uint16.
func (c *Cursor) ReadUint16LE() (uint16, error) {
	v, _, ok := bytecore.ReadU16LE(c.rest())
	if !ok {
		return 0, ErrOutOfBounds
	}
	c.offset += 2
	return v, nil
}

// ReadUint16BE consumes two bytes as a big-endian uint16.
func (c *Cursor) ReadUint16BE() (uint16, error) {
	v, _, ok := bytecore.ReadU16BE(c.rest())
	if !ok {
		return 0, ErrOutOfBounds
	}
	c.offset += 2
	return v, nil
}

// ReadInt16LE consumes two bytes as a little-endian int16.
func (c *Cursor) ReadInt16LE() (int16, error) {
	v, err := c.ReadUint16LE()
	return int16(v), err
}

// ReadInt16BE consumes two bytes as a big-endian int16.
func (c *Cursor) ReadInt16BE() (int16, error) {
	v, err := c.ReadUint16BE()
	return int16(v), err
}

// ReadUint32LE consumes four bytes as a little-endian uint32.
func (c *Cursor) ReadUint32LE() (uint32, error) {
	v, _, ok := bytecore.ReadU32LE(c.rest())
	if !ok {
		return 0, ErrOutOfBounds
	}
	c.offset += 4
	return v, nil
}

// ReadUint32BE consumes four bytes as a big-endian uint32.
func (c *Cursor) ReadUint32BE() (uint32, error) {
	v, _, ok := bytecore.ReadU32BE(c.rest())
	if !ok {
		return 0, ErrOutOfBounds
	}
	c.offset += 4
	return v, nil
}

// ReadInt32LE consumes four bytes as a little-endian int32.
func (c *Cursor) ReadInt32LE() (int32, error) {
	v, err := c.ReadUint32LE()
	return int32(v), err
}

// ReadInt32BE consumes four bytes as a big-endian int32.
func (c *Cursor) ReadInt32BE() (int32, error) {
	v, err := c.ReadUint32BE()
	return int32(v), err
}

// ReadUint64LE consumes eight bytes as a little-endian uint64.
func (c *Cursor) ReadUint64LE() (uint64, error) {
	v, _, ok := bytecore.ReadU64LE(c.rest())
	if !ok {
		return 0, ErrOutOfBounds
	}
	c.offset += 8
	return v, nil
}

// ReadUint64BE consumes eight bytes as a big-endian uint64.
func (c *Cursor) ReadUint64BE() (uint64, error) {
	v, _, ok := bytecore.ReadU64BE(c.rest())
	if !ok {
		return 0, ErrOutOfBounds
	}
	c.offset += 8
	return v, nil
}

// ReadInt64LE consumes eight bytes as a little-endian int64.
func (c *Cursor) ReadInt64LE() (int64, error) {
	v, err := c.ReadUint64LE()
	return int64(v), err
}

// ReadInt64BE consumes eight bytes as a big-endian int64.
func (c *Cursor) ReadInt64BE() (int64, error) {
	v, err := c.ReadUint64BE()
	return int64(v), err
}

// ReadFloat32LE consumes four bytes as a little-endian IEEE-754 float32.
func (c *Cursor) ReadFloat32LE() (float32, error) {
	v, err := c.ReadUint32LE()
	return math.Float32frombits(v), err
}

// ReadFloat32BE consumes four bytes as a big-endian IEEE-754 float32.
func (c *Cursor) ReadFloat32BE() (float32, error) {
	v, err := c.ReadUint32BE()
	return math.Float32frombits(v), err
}

// ReadFloat64LE consumes eight bytes as a little-endian IEEE-754 float64.
func (c *Cursor) ReadFloat64LE() (float64, error) {
	v, err := c.ReadUint64LE()
	return math.Float64frombits(v), err
}

// ReadFloat64BE consumes eight bytes as a big-endian IEEE-754 float64.
func (c *Cursor) ReadFloat64BE() (float64, error) {
	v, err := c.ReadUint64BE()
	return math.Float64frombits(v), err
}

// PeekUint8 decodes one byte at pos without moving the offset.
func (c *Cursor) PeekUint8(pos int) (uint8, error) {
	v, _, ok := bytecore.ReadU8(c.window(pos))
	if !ok {
		return 0, ErrOutOfBounds
	}
	return v, nil
}

// PeekInt8 decodes one byte at pos as an int8 without moving the offset.
func (c *Cursor) PeekInt8(pos int) (int8, error) {
	v, err := c.PeekUint8(pos)
	return int8(v), err
}

// PeekUint16LE decodes a little-endian uint16 at pos without moving the
// offset.
func (c *Cursor) PeekUint16LE(pos int) (uint16, error) {
	v, _, ok := bytecore.ReadU16LE(c.window(pos))
	if !ok {
		return 0, ErrOutOfBounds
	}
	return v, nil
}

// PeekUint16BE decodes a big-endian uint16 at pos without moving the offset.
func (c *Cursor) PeekUint16BE(pos int) (uint16, error) {
	v, _, ok := bytecore.ReadU16BE(c.window(pos))
	if !ok {
		return 0, ErrOutOfBounds
	}
	return v, nil
}

// PeekInt16LE decodes a little-endian int16 at pos without moving the
// offset.
func (c *Cursor) PeekInt16LE(pos int) (int16, error) {
	v, err := c.PeekUint16LE(pos)
	return int16(v), err
}

// PeekInt16BE decodes a big-endian int16 at pos without moving the offset.
func (c *Cursor) PeekInt16BE(pos int) (int16, error) {
	v, err := c.PeekUint16BE(pos)
	return int16(v), err
}

// PeekUint32LE decodes a little-endian uint32 at pos without moving the
// offset.
func (c *Cursor) PeekUint32LE(pos int) (uint32, error) {
	v, _, ok := bytecore.ReadU32LE(c.window(pos))
	if !ok {
		return 0, ErrOutOfBounds
	}
	return v, nil
}

// PeekUint32BE decodes a big-endian uint32 at pos without moving the offset.
func (c *Cursor) PeekUint32BE(pos int) (uint32, error) {
	v, _, ok := bytecore.ReadU32BE(c.window(pos))
	if !ok {
		return 0, ErrOutOfBounds
	}
	return v, nil
}

// PeekInt32LE decodes a little-endian int32 at pos without moving the
// offset.
func (c *Cursor) PeekInt32LE(pos int) (int32, error) {
	v, err := c.PeekUint32LE(pos)
	return int32(v), err
}

// PeekInt32BE decodes a big-endian int32 at pos without moving the offset.
func (c *Cursor) PeekInt32BE(pos int) (int32, error) {
	v, err := c.PeekUint32BE(pos)
	return int32(v), err
}

// PeekUint64LE decodes a little-endian uint64 at pos without moving the
// offset.
func (c *Cursor) PeekUint64LE(pos int) (uint64, error) {
	v, _, ok := bytecore.ReadU64LE(c.window(pos))
	if !ok {
		return 0, ErrOutOfBounds
	}
	return v, nil
}

// PeekUint64BE decodes a big-endian uint64 at pos without moving the offset.
func (c *Cursor) PeekUint64BE(pos int) (uint64, error) {
	v, _, ok := bytecore.ReadU64BE(c.window(pos))
	if !ok {
		return 0, ErrOutOfBounds
	}
	return v, nil
}

// PeekInt64LE decodes a little-endian int64 at pos without moving the
// offset.
func (c *Cursor) PeekInt64LE(pos int) (int64, error) {
	v, err := c.PeekUint64LE(pos)
	return int64(v), err
}

// PeekInt64BE decodes a big-endian int64 at pos without moving the offset.
func (c *Cursor) PeekInt64BE(pos int) (int64, error) {
	v, err := c.PeekUint64BE(pos)
	return int64(v), err
}

// WriteUint8 stores one byte at the current offset.
func (c *Cursor) WriteUint8(v uint8) error {
	if !bytecore.PutU8(c.rest(), v) {
		return ErrOutOfBounds
	}
	c.offset++
	return nil
}

// WriteInt8 stores one byte at the current offset.
func (c *Cursor) WriteInt8(v int8) error {
	return c.WriteUint8(uint8(v))
}

// WriteUint16LE stores a little-endian uint16 at the current offset.
func (c *Cursor) WriteUint16LE(v uint16) error {
	if !bytecore.PutU16LE(c.rest(), v) {
		return ErrOutOfBounds
	}
	c.offset += 2
	return nil
}

// WriteUint16BE stores a big-endian uint16 at the current offset.
func (c *Cursor) WriteUint16BE(v uint16) error {
	if !bytecore.PutU16BE(c.rest(), v) {
		return ErrOutOfBounds
	}
	c.offset += 2
	return nil
}

// WriteInt16LE stores a little-endian int16 at the current offset.
func (c *Cursor) WriteInt16LE(v int16) error {
	return c.WriteUint16LE(uint16(v))
}

// WriteInt16BE stores a big-endian int16 at the current offset.
func (c *Cursor) WriteInt16BE(v int16) error {
	return c.WriteUint16BE(uint16(v))
}

// WriteUint32LE stores a little-endian uint32 at the current offset.
func (c *Cursor) WriteUint32LE(v uint32) error {
	if !bytecore.PutU32LE(c.rest(), v) {
		return ErrOutOfBounds
	}
	c.offset += 4
	return nil
}

// WriteUint32BE stores a big-endian uint32 at the current offset.
func (c *Cursor) WriteUint32BE(v uint32) error {
	if !bytecore.PutU32BE(c.rest(), v) {
		return ErrOutOfBounds
	}
	c.offset += 4
	return nil
}

// WriteInt32LE stores a little-endian int32 at the current offset.
func (c *Cursor) WriteInt32LE(v int32) error {
	return c.WriteUint32LE(uint32(v))
}

// WriteInt32BE stores a big-endian int32 at the current offset.
func (c *Cursor) WriteInt32BE(v int32) error {
	return c.WriteUint32BE(uint32(v))
}

// WriteUint64LE stores a little-endian uint64 at the current offset.
func (c *Cursor) WriteUint64LE(v uint64) error {
	if !bytecore.PutU64LE(c.rest(), v) {
		return ErrOutOfBounds
	}
	c.offset += 8
	return nil
}

// WriteUint64BE stores a big-endian uint64 at the current offset.
func (c *Cursor) WriteUint64BE(v uint64) error {
	if !bytecore.PutU64BE(c.rest(), v) {
		return ErrOutOfBounds
	}
	c.offset += 8
	return nil
}

// WriteInt64LE stores a little-endian int64 at the current offset.
func (c *Cursor) WriteInt64LE(v int64) error {
	return c.WriteUint64LE(uint64(v))
}

// WriteInt64BE stores a big-endian int64 at the current offset.
func (c *Cursor) WriteInt64BE(v int64) error {
	return c.WriteUint64BE(uint64(v))
}

// WriteFloat32LE stores a little-endian IEEE-754 float32 at the current
// offset.
func (c *Cursor) WriteFloat32LE(v float32) error {
	return c.WriteUint32LE(math.Float32bits(v))
}

// WriteFloat32BE stores a big-endian IEEE-754 float32 at the current offset.
func (c *Cursor) WriteFloat32BE(v float32) error {
	return c.WriteUint32BE(math.Float32bits(v))
}

// WriteFloat64LE stores a little-endian IEEE-754 float64 at the current
// offset.
func (c *Cursor) WriteFloat64LE(v float64) error {
	return c.WriteUint64LE(math.Float64bits(v))
}

// WriteFloat64BE stores a big-endian IEEE-754 float64 at the current offset.
func (c *Cursor) WriteFloat64BE(v float64) error {
	return c.WriteUint64BE(math.Float64bits(v))
}
