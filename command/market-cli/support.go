// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/address"
)

// flags shared by several commands
var (
	nonceFlag = cli.Uint64Flag{
		Name:  "nonce",
		Value: 0,
		Usage: " distinguish otherwise identical requests `N` (default: current time)",
	}
	assetFlag = cli.StringFlag{
		Name:  "asset, a",
		Value: "",
		Usage: "*asset identity `HEX`",
	}
)

// the nonce option or a time based value
func getNonce(c *cli.Context) uint64 {
	if n := c.Uint64("nonce"); 0 != n {
		return n
	}
	return uint64(time.Now().UnixNano())
}

// decode a required base58 account
func getAccount(s string) (*account.Account, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, ErrMissingAccount
	}
	return account.AccountFromBase58(s)
}

// decode an optional base58 account, a blank value is nil
func getOptionalAccount(s string) (*account.Account, error) {
	if "" == strings.TrimSpace(s) {
		return nil, nil
	}
	return getAccount(s)
}

// decode an optional account that defaults to the signer
func getAccountOrSigner(s string, key *account.PrivateKey) (*account.Account, error) {
	if "" == strings.TrimSpace(s) {
		if nil == key {
			return nil, ErrMissingAccount
		}
		return key.Account(), nil
	}
	return getAccount(s)
}

// decode a required hex asset identity
func getAsset(s string) (address.Address, error) {
	var a address.Address
	s = strings.TrimSpace(s)
	if "" == s {
		return a, ErrMissingAsset
	}
	err := a.UnmarshalText([]byte(s))
	return a, err
}

// decode an optional fee rate, a blank value is nil
//
// range is checked by the daemon
func getOptionalRate(s string) (*uint64, error) {
	s = strings.TrimSpace(s)
	if "" == s {
		return nil, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return nil, ErrInvalidFeeRate
	}
	return &n, nil
}
