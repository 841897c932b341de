// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the global index of live listings
//
// the registry has a fixed amount of reserved space; it holds only
// as many entries as fit and must be grown explicitly
package registry

import (
	"encoding/binary"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/address"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/record"
)

// space accounting in bytes
const (
	InitialSpace   = 10196            // reserved by initialise
	SpaceIncrement = 10188            // added by each grow
	MaximumSpace   = 10 * 1024 * 1024 // no growth beyond this
	HeaderSize     = 8 + 8 + 4        // discriminator ++ space ++ count
	EntrySize      = address.Length + sellerSize
)

// account.Bytes() of an ed25519 account
const sellerSize = 1 + 32

// Entry - one live listing
type Entry struct {
	Asset  address.Address  `json:"asset"`
	Seller *account.Account `json:"seller"`
}

// Registry - ordered entries and the space reserved for them
type Registry struct {
	Space   uint64  `json:"space"`
	Entries []Entry `json:"entries"`
}

// New - an empty registry with the initial space
func New() *Registry {
	return &Registry{
		Space:   InitialSpace,
		Entries: []Entry{},
	}
}

// CapacityFor - number of entries that fit in a given space
func CapacityFor(space uint64) int {
	if space < HeaderSize {
		return 0
	}
	return int((space - HeaderSize) / EntrySize)
}

// Capacity - number of entries that fit in the current space
func (r *Registry) Capacity() int {
	return CapacityFor(r.Space)
}

// IsFull - no more entries can be appended
func (r *Registry) IsFull() bool {
	return len(r.Entries) >= r.Capacity()
}

// Grow - reserve another increment of space
func (r *Registry) Grow() error {
	if r.Space+SpaceIncrement > MaximumSpace {
		return fault.RegistrySpaceExhausted
	}
	r.Space += SpaceIncrement
	return nil
}

// Append - add an entry at the end
func (r *Registry) Append(asset address.Address, seller *account.Account) error {
	if r.IsFull() {
		return fault.RegistryFull
	}
	r.Entries = append(r.Entries, Entry{
		Asset:  asset,
		Seller: seller,
	})
	return nil
}

// Index - position of the first exact match or -1
func (r *Registry) Index(asset address.Address, seller *account.Account) int {
	for i, e := range r.Entries {
		if e.Asset == asset && e.Seller.Equal(seller) {
			return i
		}
	}
	return -1
}

// Remove - delete the first exact match keeping the order of the rest
//
// returns false if there was no match
func (r *Registry) Remove(asset address.Address, seller *account.Account) bool {
	i := r.Index(asset, seller)
	if i < 0 {
		return false
	}
	r.Entries = append(r.Entries[:i], r.Entries[i+1:]...)
	return true
}

// Pack - Varint64(tag) ++ space(8) ++ count(4) ++ count × (asset ++ seller)
func (r *Registry) Pack() ([]byte, error) {
	if len(r.Entries) > r.Capacity() {
		return nil, fault.RegistryFull
	}

	packed := record.Start(record.RegistryTag)

	header := make([]byte, 12)
	binary.BigEndian.PutUint64(header[:8], r.Space)
	binary.BigEndian.PutUint32(header[8:], uint32(len(r.Entries)))
	packed = append(packed, header...)

	for _, e := range r.Entries {
		seller := e.Seller.Bytes()
		if sellerSize != len(seller) {
			return nil, fault.InvalidKeyLength
		}
		packed = append(packed, e.Asset[:]...)
		packed = append(packed, seller...)
	}
	return packed, nil
}

// Unpack - decode a packed registry
func Unpack(packed []byte) (*Registry, error) {
	u, err := record.Open(packed, record.RegistryTag)
	if nil != err {
		return nil, err
	}

	header := u.Fixed(12)
	if nil != u.Err() {
		return nil, u.Err()
	}
	space := binary.BigEndian.Uint64(header[:8])
	count := int(binary.BigEndian.Uint32(header[8:]))

	// the stored count must describe exactly the entry bytes present
	if count > CapacityFor(space) || uint64(count)*EntrySize != uint64(u.Remaining()) {
		return nil, fault.RegistryCorrupt
	}

	r := &Registry{
		Space:   space,
		Entries: make([]Entry, 0, count),
	}
	for i := 0; i < count; i += 1 {
		var asset address.Address
		copy(asset[:], u.Fixed(address.Length))
		sellerBytes := u.Fixed(sellerSize)
		if nil != u.Err() {
			return nil, u.Err()
		}
		seller, err := account.AccountFromBytes(sellerBytes)
		if nil != err {
			return nil, err
		}
		r.Entries = append(r.Entries, Entry{
			Asset:  asset,
			Seller: seller,
		})
	}

	if err := u.Done(); nil != err {
		return nil, err
	}
	return r, nil
}
