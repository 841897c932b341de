// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - type codes and helpers shared by all stored records
//
// every stored value is packed as Varint64(tag) followed by its
// fields in order
package record

import (
	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/util"
)

// TagType - type code for stored records
type TagType uint64

// enumerate the possible stored record types
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	SettingsTag = TagType(iota) // policy settings singleton
	RegistryTag = TagType(iota) // global listing registry
	ListingTag  = TagType(iota) // live listing
	CustodyTag  = TagType(iota) // asset held by an owner
	AssetTag    = TagType(iota) // issued asset

	// this item must be last
	InvalidTag = TagType(iota)
)

// Start - begin a packed record with its tag
func Start(tag TagType) []byte {
	return util.ToVarint64(uint64(tag))
}

// Open - begin unpacking a record, checking its tag
func Open(packed []byte, tag TagType) (*util.Unpacker, error) {
	u := util.NewUnpacker(packed)
	recordType := u.Uint64()
	if nil != u.Err() {
		return nil, u.Err()
	}
	if recordType >= uint64(InvalidTag) || NullTag == TagType(recordType) {
		return nil, fault.UnknownRecordTag
	}
	if TagType(recordType) != tag {
		return nil, fault.WrongRecordType
	}
	return u, nil
}

// AppendAccount - append a length prefixed account
func AppendAccount(buffer []byte, a *account.Account) []byte {
	return util.AppendBytes(buffer, a.Bytes())
}

// ReadAccount - read a length prefixed account
func ReadAccount(u *util.Unpacker) (*account.Account, error) {
	b := u.Bytes()
	if nil != u.Err() {
		return nil, u.Err()
	}
	return account.AccountFromBytes(b)
}

// Varint - a Varint64 encoded field
func Varint(value uint64) []byte {
	return util.ToVarint64(value)
}

// AppendString - append a length prefixed string
func AppendString(buffer []byte, s string) []byte {
	return util.AppendString(buffer, s)
}
