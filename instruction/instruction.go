// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - signed requests for the mutating marketplace
// operations
//
// the caller of an operation is the account whose signature verifies
// over the packed instruction
package instruction

import (
	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/address"
)

// TagType - type code for instructions
type TagType uint64

// enumerate the possible instruction types
// this is encoded a Varint64 at start of "Packed"
const (
	// null marks beginning of list - not used as an instruction type
	NullTag = TagType(iota)

	InitialiseTag       = TagType(iota) // create settings and registry
	ModifySettingsTag   = TagType(iota) // partial settings update
	IncreaseCapacityTag = TagType(iota) // grow the registry
	IssueTag            = TagType(iota) // create a unique asset
	ListTag             = TagType(iota) // offer an asset for sale
	DelistTag           = TagType(iota) // withdraw an offer

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed instructions are just a byte slice
type Packed []byte

// Instruction - generic instruction interface
type Instruction interface {
	Pack(caller *account.Account) (Packed, error)
	Sign(key *account.PrivateKey) error
}

const maxSignatureLength = 1024

// Initialise - create the policy settings and an empty registry
type Initialise struct {
	Administrator      *account.Account  `json:"administrator"`      // base58
	Treasury           *account.Account  `json:"treasury"`           // base58
	AssetSaleFeeRate   uint64            `json:"assetSaleFeeRate"`   // 0..10
	GeneralSaleFeeRate uint64            `json:"generalSaleFeeRate"` // 0..10
	Nonce              uint64            `json:"nonce,string"`       // distinguish identical requests
	Signature          account.Signature `json:"signature"`          // hex
}

// ModifySettings - change some of the settings, nil fields are unchanged
type ModifySettings struct {
	Administrator      *account.Account  `json:"administrator,omitempty"`
	Treasury           *account.Account  `json:"treasury,omitempty"`
	AssetSaleFeeRate   *uint64           `json:"assetSaleFeeRate,omitempty"`
	GeneralSaleFeeRate *uint64           `json:"generalSaleFeeRate,omitempty"`
	Nonce              uint64            `json:"nonce,string"`
	Signature          account.Signature `json:"signature"`
}

// IncreaseCapacity - reserve more space in the registry
type IncreaseCapacity struct {
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Issue - create a unique asset held by the caller
type Issue struct {
	Name      string            `json:"name"`         // utf-8
	Symbol    string            `json:"symbol"`       // utf-8
	Nonce     uint64            `json:"nonce,string"` // also selects the asset identity
	Signature account.Signature `json:"signature"`
}

// List - offer an asset held by the caller
type List struct {
	Asset     address.Address   `json:"asset"`
	Price     uint64            `json:"price,string"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

// Delist - withdraw the offer of an asset by a seller
type Delist struct {
	Seller    *account.Account  `json:"seller"`
	Asset     address.Address   `json:"asset"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}
