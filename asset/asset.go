// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - a unique issued asset with a supply of exactly one
package asset

import (
	"unicode/utf8"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/record"
)

// limits on descriptive fields, counted in runes
const (
	minNameLength   = 1
	maxNameLength   = 32
	minSymbolLength = 1
	maxSymbolLength = 10
)

// every asset is unique
const (
	Supply   = 1
	Decimals = 0
)

// Asset - the issuance record
type Asset struct {
	Creator  *account.Account `json:"creator"`
	Name     string           `json:"name"`
	Symbol   string           `json:"symbol"`
	Supply   uint64           `json:"supply"`
	Decimals uint8            `json:"decimals"`
}

// New - validate the descriptive fields and create an asset
func New(creator *account.Account, name string, symbol string) (*Asset, error) {
	a := &Asset{
		Creator:  creator,
		Name:     name,
		Symbol:   symbol,
		Supply:   Supply,
		Decimals: Decimals,
	}
	if err := a.Validate(); nil != err {
		return nil, err
	}
	return a, nil
}

// Validate - check field lengths
func (a *Asset) Validate() error {
	if nil == a.Creator {
		return fault.MissingParameters
	}

	n := utf8.RuneCountInString(a.Name)
	if n < minNameLength {
		return fault.NameTooShort
	}
	if n > maxNameLength {
		return fault.NameTooLong
	}

	n = utf8.RuneCountInString(a.Symbol)
	if n < minSymbolLength {
		return fault.SymbolTooShort
	}
	if n > maxSymbolLength {
		return fault.SymbolTooLong
	}
	return nil
}

// Pack - Varint64(tag) ++ creator ++ name ++ symbol ++ Varint64(supply) ++ decimals
func (a *Asset) Pack() ([]byte, error) {
	if err := a.Validate(); nil != err {
		return nil, err
	}
	packed := record.Start(record.AssetTag)
	packed = record.AppendAccount(packed, a.Creator)
	packed = record.AppendString(packed, a.Name)
	packed = record.AppendString(packed, a.Symbol)
	packed = append(packed, record.Varint(a.Supply)...)
	return append(packed, a.Decimals), nil
}

// Unpack - decode a packed asset
func Unpack(packed []byte) (*Asset, error) {
	u, err := record.Open(packed, record.AssetTag)
	if nil != err {
		return nil, err
	}

	creator, err := record.ReadAccount(u)
	if nil != err {
		return nil, err
	}

	a := &Asset{
		Creator:  creator,
		Name:     u.String(),
		Symbol:   u.String(),
		Supply:   u.Uint64(),
		Decimals: u.Byte(),
	}
	if err := u.Done(); nil != err {
		return nil, err
	}
	return a, nil
}
