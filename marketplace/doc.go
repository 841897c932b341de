// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package marketplace - the marketplace state machine
//
// Every operation is one storage transaction: all records are read
// and every check is made before the first write is staged, then the
// writes are committed together. A failed operation leaves no trace.
//
// Records and their keys:
//
//	settings   Settings(program)                     policy singleton
//	registry   Registry(program)                     ordered index of live listings
//	listing    Listing(program, asset, seller)       one per live (asset, seller)
//	custody    Custody(custodyProgram, owner, asset) one per owner per asset
//	asset      Asset(program, creator, nonce)        issued assets
//
// While a listing is live the seller's custody record is delegated to
// the program authority; at all other times it has no delegate.
package marketplace
