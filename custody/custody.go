// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package custody - the holding of an asset by an owner, and the
// delegation that lets the marketplace move it while it is listed
//
// the owner of a custody record never changes; delegation is the only
// way another party gains authority over the asset
package custody

import (
	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/address"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/record"
)

// Custody - an owner's holding of one asset
type Custody struct {
	Asset           address.Address  `json:"asset"`
	Owner           *account.Account `json:"owner"`
	Delegate        *account.Account `json:"delegate,omitempty"`
	Amount          uint64           `json:"amount"`
	DelegatedAmount uint64           `json:"delegatedAmount"`
}

// New - a holding with no delegate
func New(asset address.Address, owner *account.Account, amount uint64) *Custody {
	return &Custody{
		Asset:  asset,
		Owner:  owner,
		Amount: amount,
	}
}

// Approve - allow a delegate to move up to amount
func (c *Custody) Approve(delegate *account.Account, amount uint64) error {
	if nil == delegate {
		return fault.MissingParameters
	}
	if amount > c.Amount {
		return fault.InsufficientBalance
	}
	c.Delegate = delegate
	c.DelegatedAmount = amount
	return nil
}

// Revoke - remove any delegate
func (c *Custody) Revoke() {
	c.Delegate = nil
	c.DelegatedAmount = 0
}

// IsDelegatedTo - true if the given account is the current delegate
func (c *Custody) IsDelegatedTo(a *account.Account) bool {
	return nil != c.Delegate && c.Delegate.Equal(a)
}

// Pack - Varint64(tag) ++ asset(32) ++ owner ++ 0x00 | 0x01 ++ delegate ++ Varint64(amount) ++ Varint64(delegated)
func (c *Custody) Pack() []byte {
	packed := record.Start(record.CustodyTag)
	packed = append(packed, c.Asset[:]...)
	packed = record.AppendAccount(packed, c.Owner)
	if nil == c.Delegate {
		packed = append(packed, 0x00)
	} else {
		packed = append(packed, 0x01)
		packed = record.AppendAccount(packed, c.Delegate)
	}
	packed = append(packed, record.Varint(c.Amount)...)
	return append(packed, record.Varint(c.DelegatedAmount)...)
}

// Unpack - decode a packed custody record
func Unpack(packed []byte) (*Custody, error) {
	u, err := record.Open(packed, record.CustodyTag)
	if nil != err {
		return nil, err
	}

	c := &Custody{}
	err = address.FromBytes(&c.Asset, u.Fixed(address.Length))
	if nil != u.Err() {
		return nil, u.Err()
	}
	if nil != err {
		return nil, err
	}

	c.Owner, err = record.ReadAccount(u)
	if nil != err {
		return nil, err
	}

	switch u.Byte() {
	case 0x00:
	case 0x01:
		c.Delegate, err = record.ReadAccount(u)
		if nil != err {
			return nil, err
		}
	default:
		return nil, fault.WrongRecordType
	}
	if nil != u.Err() {
		return nil, u.Err()
	}

	c.Amount = u.Uint64()
	c.DelegatedAmount = u.Uint64()

	if err := u.Done(); nil != err {
		return nil, err
	}
	return c, nil
}
