// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package bytecore contains functions that can be used to encode and decode
// fixed-width integers and null-terminated strings to or from a slice of
// bytes. These functions are aimed at allowing low level manipulation of
// binary data and can be used to build a higher level cursor or codec
// library.
//
// The Read* functions within this package return the decoded value, the
// remaining bytes, and a boolean indicating if the value is valid. A boolean
// was used instead of an error because any error that would be returned
// would be the same: not enough bytes. This package attempts to do no
// validation, it will only return false if there are not enough bytes for an
// item to be read. It is the consumer's responsibility to validate the
// decoded values.
//
// The Put* functions store a value in place at the front of the destination
// slice and report whether it fit. The Append* functions extend the
// destination slice and return the extended buffer.
package bytecore
