// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/bitmark-inc/marketd/fault"
)

// AppendUint64 - append a Varint64 encoded value
func AppendUint64(buffer []byte, value uint64) []byte {
	return append(buffer, ToVarint64(value)...)
}

// AppendBytes - append a Varint64 length prefixed byte slice
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = append(buffer, ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// AppendString - append a Varint64 length prefixed string
func AppendString(buffer []byte, s string) []byte {
	return AppendBytes(buffer, []byte(s))
}

// Unpacker - sequential reader over a packed record
//
// the first error sticks; all further reads return zero values so a
// caller can read every field and check Err once at the end
type Unpacker struct {
	buffer []byte
	n      int
	err    error
}

// NewUnpacker - start reading at the beginning of a record
func NewUnpacker(buffer []byte) *Unpacker {
	return &Unpacker{
		buffer: buffer,
	}
}

// Uint64 - read a Varint64
func (u *Unpacker) Uint64() uint64 {
	if nil != u.err {
		return 0
	}
	value, count := FromVarint64(u.buffer[u.n:])
	if 0 == count {
		u.err = fault.RecordTruncated
		return 0
	}
	u.n += count
	return value
}

// Byte - read a single byte
func (u *Unpacker) Byte() byte {
	if nil != u.err {
		return 0
	}
	if u.n >= len(u.buffer) {
		u.err = fault.RecordTruncated
		return 0
	}
	b := u.buffer[u.n]
	u.n += 1
	return b
}

// Fixed - read exactly count bytes, a copy is returned
func (u *Unpacker) Fixed(count int) []byte {
	if nil != u.err {
		return nil
	}
	if count < 0 || u.n+count > len(u.buffer) {
		u.err = fault.RecordTruncated
		return nil
	}
	result := make([]byte, count)
	copy(result, u.buffer[u.n:u.n+count])
	u.n += count
	return result
}

// Bytes - read a Varint64 length prefixed byte slice
func (u *Unpacker) Bytes() []byte {
	length := u.Uint64()
	if nil != u.err {
		return nil
	}
	if length > uint64(len(u.buffer)-u.n) {
		u.err = fault.RecordTruncated
		return nil
	}
	return u.Fixed(int(length))
}

// String - read a Varint64 length prefixed string
func (u *Unpacker) String() string {
	return string(u.Bytes())
}

// Remaining - count of bytes not yet read
func (u *Unpacker) Remaining() int {
	return len(u.buffer) - u.n
}

// Err - first error encountered
func (u *Unpacker) Err() error {
	return u.err
}

// Done - finish reading, the whole record must have been consumed
func (u *Unpacker) Done() error {
	if nil != u.err {
		return u.err
	}
	if u.n != len(u.buffer) {
		return fault.RecordHasExtraData
	}
	return nil
}
