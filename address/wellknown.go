// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/util"
)

// seeds of the singleton records
const (
	settingsSeed  = "admin_settings"
	registrySeed  = "global_listings"
	listingSeed   = "listing"
	assetSeed     = "asset"
	authoritySeed = "authority"
)

// Settings - address of the policy settings record
func Settings(program Address) Address {
	return Derive(program, []byte(settingsSeed))
}

// Registry - address of the global listing registry
func Registry(program Address) Address {
	return Derive(program, []byte(registrySeed))
}

// Listing - address of the listing record for an asset offered by a seller
func Listing(program Address, asset Address, seller *account.Account) Address {
	return Derive(program, []byte(listingSeed), asset[:], seller.Bytes())
}

// Custody - address of the custody record of an asset held by an owner
func Custody(custodyProgram Address, owner *account.Account, asset Address) Address {
	return Derive(custodyProgram, owner.Bytes(), asset[:])
}

// Asset - identity of an asset issued by a creator
func Asset(program Address, creator *account.Account, nonce uint64) Address {
	return Derive(program, []byte(assetSeed), creator.Bytes(), util.ToVarint64(nonce))
}

// ProgramAuthority - the account that receives delegation of listed assets
//
// it has no private key, so nothing can sign on its behalf
func ProgramAuthority(program Address, testing bool) *account.Account {
	authority := Derive(program, []byte(authoritySeed))
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      testing,
			PublicKey: authority[:],
		},
	}
}
