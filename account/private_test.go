// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/fault"
)

func TestPrivateKeyBase58(t *testing.T) {
	for _, testnet := range []bool{false, true} {
		p := makeKey(t, 0x42, testnet)

		text := p.String()
		q, err := account.PrivateKeyFromBase58(text)
		if !assert.Nil(t, err, "from base58") {
			continue
		}
		assert.Equal(t, p.Bytes(), q.Bytes(), "private key bytes")
		assert.Equal(t, testnet, q.IsTesting(), "testnet flag")
		assert.True(t, p.Account().Equal(q.Account()), "accounts differ")
		assert.Equal(t, testnet, q.Account().IsTesting(), "account testnet flag")
	}
}

func TestPrivateKeyIsNotAnAccount(t *testing.T) {
	p := makeKey(t, 0x17, true)

	_, err := account.AccountFromBase58(p.String())
	assert.Equal(t, fault.NotAPublicKey, err, "wrong error")

	_, err = account.PrivateKeyFromBase58(p.Account().String())
	assert.Equal(t, fault.NotAPrivateKey, err, "wrong error")
}

func TestSignature(t *testing.T) {
	p := makeKey(t, 0x01, false)
	other := makeKey(t, 0x02, false)

	message := []byte("listing for Kobeni")
	signature := p.Sign(message)

	assert.Nil(t, p.Account().CheckSignature(message, signature), "valid signature rejected")
	assert.Equal(t, fault.InvalidSignature, other.Account().CheckSignature(message, signature), "wrong signer accepted")
	assert.Equal(t, fault.InvalidSignature, p.Account().CheckSignature([]byte("other"), signature), "wrong message accepted")
	assert.Equal(t, fault.InvalidSignature, p.Account().CheckSignature(message, signature[:10]), "short signature accepted")
}

func TestDistinctKeysGenerated(t *testing.T) {
	p1, err := account.NewPrivateKey(false)
	assert.Nil(t, err, "first key")
	p2, err := account.NewPrivateKey(false)
	assert.Nil(t, err, "second key")
	assert.False(t, p1.Account().Equal(p2.Account()), "random keys are the same")
}
