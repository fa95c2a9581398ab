// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bytecore

import "bytes"

// ReadU8 reads a single byte from src returning the value, remaining bytes,
// and ok flag.
func ReadU8(src []byte) (uint8, []byte, bool) {
	if len(src) < 1 {
		return 0, src, false
	}
	return src[0], src[1:], true
}

// ReadU16LE reads a 2-byte little-endian uint16 from src returning the
// value, remaining bytes, and ok flag.
func ReadU16LE(src []byte) (uint16, []byte, bool) {
	if len(src) < 2 {
		return 0, src, false
	}

	_ = src[1] // bounds check hint to compiler

	value := uint16(src[0]) | uint16(src[1])<<8

	return value, src[2:], true
}

// ReadU16BE reads a 2-byte big-endian uint16 from src returning the value,
// remaining bytes, and ok flag.
func ReadU16BE(src []byte) (uint16, []byte, bool) {
	if len(src) < 2 {
		return 0, src, false
	}

	_ = src[1] // bounds check hint to compiler

	value := uint16(src[0])<<8 | uint16(src[1])

	return value, src[2:], true
}

// ReadU32LE reads a 4-byte little-endian uint32 from src returning the
// value, remaining bytes, and ok flag.
func ReadU32LE(src []byte) (uint32, []byte, bool) {
	if len(src) < 4 {
		return 0, src, false
	}

	_ = src[3] // bounds check hint to compiler

	value := uint32(src[0]) |
		uint32(src[1])<<8 |
		uint32(src[2])<<16 |
		uint32(src[3])<<24

	return value, src[4:], true
}

// ReadU32BE reads a 4-byte big-endian uint32 from src returning the value,
// remaining bytes, and ok flag.
func ReadU32BE(src []byte) (uint32, []byte, bool) {
	if len(src) < 4 {
		return 0, src, false
	}

	_ = src[3] // bounds check hint to compiler

	value := uint32(src[0])<<24 |
		uint32(src[1])<<16 |
		uint32(src[2])<<8 |
		uint32(src[3])

	return value, src[4:], true
}

// ReadU64LE reads an 8-byte little-endian uint64 from src returning the
// value, remaining bytes, and ok flag.
func ReadU64LE(src []byte) (uint64, []byte, bool) {
	if len(src) < 8 {
		return 0, src, false
	}

	_ = src[7] // bounds check hint to compiler

	value := uint64(src[0]) |
		uint64(src[1])<<8 |
		uint64(src[2])<<16 |
		uint64(src[3])<<24 |
		uint64(src[4])<<32 |
		uint64(src[5])<<40 |
		uint64(src[6])<<48 |
		uint64(src[7])<<56

	return value, src[8:], true
}

// ReadU64BE reads an 8-byte big-endian uint64 from src returning the value,
// remaining bytes, and ok flag.
func ReadU64BE(src []byte) (uint64, []byte, bool) {
	if len(src) < 8 {
		return 0, src, false
	}

	_ = src[7] // bounds check hint to compiler

	value := uint64(src[0])<<56 |
		uint64(src[1])<<48 |
		uint64(src[2])<<40 |
		uint64(src[3])<<32 |
		uint64(src[4])<<24 |
		uint64(src[5])<<16 |
		uint64(src[6])<<8 |
		uint64(src[7])

	return value, src[8:], true
}

// PutU8 stores a single byte at the front of dst and reports whether it fit.
func PutU8(dst []byte, x uint8) bool {
	if len(dst) < 1 {
		return false
	}
	dst[0] = x
	return true
}

// PutU16LE stores a uint16 at the front of dst in little-endian byte order
// and reports whether it fit.
func PutU16LE(dst []byte, x uint16) bool {
	if len(dst) < 2 {
		return false
	}
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	return true
}

// PutU16BE stores a uint16 at the front of dst in big-endian byte order and
// reports whether it fit.
func PutU16BE(dst []byte, x uint16) bool {
	if len(dst) < 2 {
		return false
	}
	dst[0] = byte(x >> 8)
	dst[1] = byte(x)
	return true
}

// PutU32LE stores a uint32 at the front of dst in little-endian byte order
// and reports whether it fit.
func PutU32LE(dst []byte, x uint32) bool {
	if len(dst) < 4 {
		return false
	}
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	return true
}

// PutU32BE stores a uint32 at the front of dst in big-endian byte order and
// reports whether it fit.
func PutU32BE(dst []byte, x uint32) bool {
	if len(dst) < 4 {
		return false
	}
	dst[0] = byte(x >> 24)
	dst[1] = byte(x >> 16)
	dst[2] = byte(x >> 8)
	dst[3] = byte(x)
	return true
}

// PutU64LE stores a uint64 at the front of dst in little-endian byte order
// and reports whether it fit.
func PutU64LE(dst []byte, x uint64) bool {
	if len(dst) < 8 {
		return false
	}
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
	return true
}

// PutU64BE stores a uint64 at the front of dst in big-endian byte order and
// reports whether it fit.
func PutU64BE(dst []byte, x uint64) bool {
	if len(dst) < 8 {
		return false
	}
	dst[0] = byte(x >> 56)
	dst[1] = byte(x >> 48)
	dst[2] = byte(x >> 40)
	dst[3] = byte(x >> 32)
	dst[4] = byte(x >> 24)
	dst[5] = byte(x >> 16)
	dst[6] = byte(x >> 8)
	dst[7] = byte(x)
	return true
}

// AppendU8 appends a single byte to dst.
func AppendU8(dst []byte, x uint8) []byte {
	return append(dst, x)
}

// AppendU16LE appends a uint16 to dst in little-endian byte order.
func AppendU16LE(dst []byte, x uint16) []byte {
	return append(dst, byte(x), byte(x>>8))
}

// AppendU16BE appends a uint16 to dst in big-endian byte order.
func AppendU16BE(dst []byte, x uint16) []byte {
	return append(dst, byte(x>>8), byte(x))
}

// AppendU32LE appends a uint32 to dst in little-endian byte order.
func AppendU32LE(dst []byte, x uint32) []byte {
	return append(dst, byte(x), byte(x>>8), byte(x>>16), byte(x>>24))
}

// AppendU32BE appends a uint32 to dst in big-endian byte order.
func AppendU32BE(dst []byte, x uint32) []byte {
	return append(dst, byte(x>>24), byte(x>>16), byte(x>>8), byte(x))
}

// AppendU64LE appends a uint64 to dst in little-endian byte order.
func AppendU64LE(dst []byte, x uint64) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// AppendU64BE appends a uint64 to dst in big-endian byte order.
func AppendU64BE(dst []byte, x uint64) []byte {
	return append(dst,
		byte(x>>56),
		byte(x>>48),
		byte(x>>40),
		byte(x>>32),
		byte(x>>24),
		byte(x>>16),
		byte(x>>8),
		byte(x),
	)
}

// ReadCString reads a null-terminated string from src. The 0x00 terminator
// is consumed but not included in the returned string. If no terminator is
// present, false is returned.
func ReadCString(src []byte) (string, []byte, bool) {
	idx := bytes.IndexByte(src, 0x00)
	if idx < 0 {
		return "", src, false
	}
	return string(src[:idx]), src[idx+1:], true
}

// ReadCStringBytes reads a null-terminated byte sequence from src. The 0x00
// terminator is consumed but not included in the returned slice. The
// returned slice aliases src.
func ReadCStringBytes(src []byte) ([]byte, []byte, bool) {
	idx := bytes.IndexByte(src, 0x00)
	if idx < 0 {
		return nil, src, false
	}
	return src[:idx], src[idx+1:], true
}

// AppendCString appends str and a 0x00 terminator to dst.
func AppendCString(dst []byte, str string) []byte {
	dst = append(dst, str...)
	return append(dst, 0x00)
}
