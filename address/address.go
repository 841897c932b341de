// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/util"
)

// Length - number of bytes in an address
const Length = 32

// marker appended to every derivation so that derived addresses
// cannot collide with a plain digest of the same seeds
const derivationMarker = "ProgramDerivedAddress"

// Address - a content addressed key, also used as an asset identity
// and as a program identifier
type Address [Length]byte

// Program - create a program identifier from its configured name
func Program(name string) Address {
	return sha3.Sum256([]byte(name))
}

// Derive - deterministic address from a program and a list of seeds
//
// each seed is prefixed by its Varint64 length so that seed
// boundaries cannot be shifted to produce the same digest
func Derive(program Address, seeds ...[]byte) Address {
	buffer := make([]byte, 0, 128)
	for _, seed := range seeds {
		buffer = util.AppendBytes(buffer, seed)
	}
	buffer = append(buffer, program[:]...)
	buffer = append(buffer, derivationMarker...)
	return sha3.Sum256(buffer)
}

// FromBytes - convert and validate a byte slice to an address
func FromBytes(address *Address, buffer []byte) error {
	if Length != len(buffer) {
		return fault.InvalidAddress
	}
	copy(address[:], buffer)
	return nil
}

// Bytes - the address as a byte slice
func (address Address) Bytes() []byte {
	return address[:]
}

// IsZero - true for the all zero address
func (address Address) IsZero() bool {
	return address == Address{}
}

// String - hex string for use by the fmt package (for %s)
func (address Address) String() string {
	return hex.EncodeToString(address[:])
}

// GoString - hex string for use by the fmt package (for %#v)
func (address Address) GoString() string {
	return "<address:" + hex.EncodeToString(address[:]) + ">"
}

// Scan - convert a hex representation to an address for use by the format package scan routines
func (address *Address) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	return address.UnmarshalText(token)
}

// MarshalText - convert address to hex text
func (address Address) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(address))
	buffer := make([]byte, size)
	hex.Encode(buffer, address[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an address
func (address *Address) UnmarshalText(s []byte) error {
	if Length != hex.DecodedLen(len(s)) {
		return fault.InvalidAddress
	}
	buffer := make([]byte, Length)
	_, err := hex.Decode(buffer, s)
	if nil != err {
		return fault.InvalidAddress
	}
	copy(address[:], buffer)
	return nil
}
