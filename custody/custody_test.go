// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package custody_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/address"
	"github.com/bitmark-inc/marketd/custody"
	"github.com/bitmark-inc/marketd/fault"
)

func testAccount(fill byte) *account.Account {
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: bytes.Repeat([]byte{fill}, 32),
		},
	}
}

var asset = address.Derive(address.Program("test"), []byte("asset"))

func TestApproveRevoke(t *testing.T) {
	owner := testAccount(0x01)
	delegate := testAccount(0x02)

	c := custody.New(asset, owner, 1)
	assert.False(t, c.IsDelegatedTo(delegate), "delegated before approve")

	assert.Equal(t, fault.InsufficientBalance, c.Approve(delegate, 2), "approve more than balance")
	assert.Nil(t, c.Delegate, "failed approve set delegate")

	assert.Nil(t, c.Approve(delegate, 1), "approve")
	assert.True(t, c.IsDelegatedTo(delegate), "not delegated")
	assert.Equal(t, uint64(1), c.DelegatedAmount, "delegated amount")
	assert.True(t, owner.Equal(c.Owner), "owner changed")

	c.Revoke()
	assert.False(t, c.IsDelegatedTo(delegate), "still delegated")
	assert.Equal(t, uint64(0), c.DelegatedAmount, "delegated amount")
	assert.True(t, owner.Equal(c.Owner), "owner changed")
	assert.Equal(t, uint64(1), c.Amount, "amount changed")
}

func TestPackUnpack(t *testing.T) {
	owner := testAccount(0x01)
	delegate := testAccount(0x02)

	c := custody.New(asset, owner, 1)
	for _, approve := range []bool{false, true} {
		if approve {
			assert.Nil(t, c.Approve(delegate, 1), "approve")
		}

		packed := c.Pack()
		u, err := custody.Unpack(packed)
		if !assert.Nil(t, err, "unpack") {
			continue
		}
		assert.Equal(t, c.Asset, u.Asset, "asset")
		assert.True(t, c.Owner.Equal(u.Owner), "owner")
		assert.Equal(t, c.Amount, u.Amount, "amount")
		assert.Equal(t, c.DelegatedAmount, u.DelegatedAmount, "delegated amount")
		if approve {
			assert.True(t, u.IsDelegatedTo(delegate), "delegate")
		} else {
			assert.Nil(t, u.Delegate, "delegate")
		}

		_, err = custody.Unpack(packed[:len(packed)-1])
		assert.Equal(t, fault.RecordTruncated, err, "truncated")
	}
}
