// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/address"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/rpc/fixtures"
)

func TestGetAccount(t *testing.T) {
	key := fixtures.MakeKey(0x04)
	text := key.Account().String()

	a, err := getAccount(" " + text + " ")
	assert.Nil(t, err, "account")
	assert.True(t, key.Account().Equal(a), "account value")

	_, err = getAccount("")
	assert.Equal(t, ErrMissingAccount, err, "blank account")

	a, err = getOptionalAccount("")
	assert.Nil(t, err, "blank optional")
	assert.Nil(t, a, "blank optional value")

	a, err = getAccountOrSigner("", key)
	assert.Nil(t, err, "signer")
	assert.True(t, key.Account().Equal(a), "signer value")

	_, err = getAccountOrSigner("", nil)
	assert.Equal(t, ErrMissingAccount, err, "no signer")
}

func TestGetAsset(t *testing.T) {
	expected := address.Address{0x7a}
	a, err := getAsset(expected.String())
	assert.Nil(t, err, "asset")
	assert.Equal(t, expected, a, "asset value")

	_, err = getAsset("")
	assert.Equal(t, ErrMissingAsset, err, "blank asset")

	_, err = getAsset(strings.Repeat("zz", 32))
	assert.Equal(t, fault.InvalidAddress, err, "not hex")

	_, err = getAsset("0102")
	assert.Equal(t, fault.InvalidAddress, err, "short")
}

func TestGetOptionalRate(t *testing.T) {
	r, err := getOptionalRate("")
	assert.Nil(t, err, "blank")
	assert.Nil(t, r, "blank value")

	r, err = getOptionalRate(" 7 ")
	assert.Nil(t, err, "rate")
	assert.Equal(t, uint64(7), *r, "rate value")

	// range is the daemon's decision
	r, err = getOptionalRate("11")
	assert.Nil(t, err, "large rate")
	assert.Equal(t, uint64(11), *r, "large rate value")

	_, err = getOptionalRate("-1")
	assert.Equal(t, ErrInvalidFeeRate, err, "negative")
}
