// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listing_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/address"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/listing"
	"github.com/bitmark-inc/marketd/record"
)

func TestPackUnpack(t *testing.T) {
	l := &listing.Listing{
		Seller: &account.Account{
			AccountInterface: &account.ED25519Account{
				Test:      true,
				PublicKey: bytes.Repeat([]byte{0x4d}, 32),
			},
		},
		Asset: address.Derive(address.Program("test"), []byte("Kobeni")),
		Price: 1000,
	}

	packed := l.Pack()

	u, err := listing.Unpack(packed)
	if !assert.Nil(t, err, "unpack") {
		return
	}
	assert.True(t, l.Seller.Equal(u.Seller), "seller")
	assert.Equal(t, l.Asset, u.Asset, "asset")
	assert.Equal(t, l.Price, u.Price, "price")

	_, err = listing.Unpack(packed[:len(packed)-1])
	assert.Equal(t, fault.RecordTruncated, err, "truncated")

	_, err = listing.Unpack(record.Start(record.CustodyTag))
	assert.Equal(t, fault.WrongRecordType, err, "wrong record")
}
