// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// All writes are staged in a single batch and become visible to other
// readers only when the batch is committed, so every marketplace
// operation is applied completely or not at all.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte SHA3-256 derived address
// 4. account      = key variant ++ 32 byte ed25519 public key
// 5. *others*     = byte values of various length
//
// Settings:
//
//	S ++ settings address      - policy settings singleton
//	                             data: packed settings
//
// Registry:
//
//	G ++ registry address      - global listing registry singleton
//	                             data: packed registry header ++ entries
//
// Listings:
//
//	L ++ listing address       - live listing record
//	                             data: packed listing
//
// Custody:
//
//	C ++ custody address       - asset held by an owner
//	                             data: packed custody record
//
// Assets:
//
//	A ++ asset identity        - issued asset
//	                             data: packed asset
//
// Testing:
//
//	Z ++ key                   - testing data
package storage
