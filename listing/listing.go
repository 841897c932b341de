// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listing - an asset offered for sale by a seller
package listing

import (
	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/address"
	"github.com/bitmark-inc/marketd/record"
)

// Listing - a live listing; its existence is the source of truth
// for the registry entry with the same asset and seller
type Listing struct {
	Seller *account.Account `json:"seller"`       // base58
	Asset  address.Address  `json:"asset"`        // hex
	Price  uint64           `json:"price,string"` // smallest currency unit
}

// Pack - Varint64(tag) ++ seller ++ asset(32) ++ Varint64(price)
func (l *Listing) Pack() []byte {
	packed := record.Start(record.ListingTag)
	packed = record.AppendAccount(packed, l.Seller)
	packed = append(packed, l.Asset[:]...)
	return append(packed, record.Varint(l.Price)...)
}

// Unpack - decode a packed listing
func Unpack(packed []byte) (*Listing, error) {
	u, err := record.Open(packed, record.ListingTag)
	if nil != err {
		return nil, err
	}

	seller, err := record.ReadAccount(u)
	if nil != err {
		return nil, err
	}

	l := &Listing{
		Seller: seller,
	}
	err = address.FromBytes(&l.Asset, u.Fixed(address.Length))
	if nil != u.Err() {
		return nil, u.Err()
	}
	if nil != err {
		return nil, err
	}
	l.Price = u.Uint64()

	if err := u.Done(); nil != err {
		return nil, err
	}
	return l, nil
}
