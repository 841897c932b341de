// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/marketd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrInvalidFeeRate      = fault.InvalidError("fee rate is not a number")
	ErrMissingAccount      = fault.InvalidError("account is required")
	ErrMissingAsset        = fault.InvalidError("asset is required")
	ErrMissingKey          = fault.InvalidError("--key is required to sign")
	ErrMissingNameOrSymbol = fault.InvalidError("name and symbol are required")
)
