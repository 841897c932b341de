// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/address"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/record"
	"github.com/bitmark-inc/marketd/registry"
)

func testAccount(fill byte) *account.Account {
	return &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      true,
			PublicKey: bytes.Repeat([]byte{fill}, 32),
		},
	}
}

func testAsset(n byte) address.Address {
	return address.Derive(address.Program("test"), []byte{n})
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, 65, registry.EntrySize, "entry size")
	assert.Equal(t, 156, registry.CapacityFor(registry.InitialSpace), "initial capacity")
	assert.Equal(t, 313, registry.CapacityFor(registry.InitialSpace+registry.SpaceIncrement), "capacity after one grow")
	assert.Equal(t, 0, registry.CapacityFor(10), "space smaller than header")

	r := registry.New()
	assert.Equal(t, uint64(registry.InitialSpace), r.Space, "initial space")
	assert.Equal(t, 0, len(r.Entries), "initial entries")
	assert.Equal(t, 156, r.Capacity(), "initial capacity")
}

func TestGrowIsMonotonicAndBounded(t *testing.T) {
	r := registry.New()

	previous := r.Capacity()
	assert.Nil(t, r.Grow(), "first grow")
	assert.True(t, r.Capacity() > previous, "capacity did not increase")

	n := 1
	for nil == r.Grow() {
		n += 1
	}
	assert.True(t, r.Space <= registry.MaximumSpace, "space beyond maximum")
	assert.True(t, r.Space+registry.SpaceIncrement > registry.MaximumSpace, "stopped early")
	assert.Equal(t, fault.RegistrySpaceExhausted, r.Grow(), "grow beyond maximum")
	t.Logf("grew %d times to space: %d  capacity: %d", n, r.Space, r.Capacity())
}

func TestAppendUntilFull(t *testing.T) {
	r := registry.New()
	seller := testAccount(0x01)

	for i := 0; i < r.Capacity(); i += 1 {
		err := r.Append(address.Derive(address.Program("test"), []byte{byte(i), byte(i >> 8)}), seller)
		if !assert.Nil(t, err, "append: %d", i) {
			return
		}
	}
	assert.True(t, r.IsFull(), "registry not full")
	assert.Equal(t, fault.RegistryFull, r.Append(testAsset(0xff), seller), "append to full registry")

	assert.Nil(t, r.Grow(), "grow")
	assert.Nil(t, r.Append(testAsset(0xff), seller), "append after grow")
}

func TestRemoveFirstExactMatch(t *testing.T) {
	r := registry.New()
	a := testAccount(0x01)
	b := testAccount(0x02)

	assert.Nil(t, r.Append(testAsset(1), a), "append")
	assert.Nil(t, r.Append(testAsset(2), a), "append")
	assert.Nil(t, r.Append(testAsset(1), b), "append")
	assert.Nil(t, r.Append(testAsset(3), b), "append")

	assert.False(t, r.Remove(testAsset(2), b), "removed a non-matching seller")
	assert.Equal(t, 4, len(r.Entries), "entries changed")

	assert.True(t, r.Remove(testAsset(1), b), "exact match not removed")
	if !assert.Equal(t, 3, len(r.Entries), "entry count") {
		return
	}
	assert.Equal(t, testAsset(1), r.Entries[0].Asset, "order changed")
	assert.Equal(t, testAsset(2), r.Entries[1].Asset, "order changed")
	assert.Equal(t, testAsset(3), r.Entries[2].Asset, "order changed")
	assert.True(t, a.Equal(r.Entries[0].Seller), "wrong entry removed")

	assert.Equal(t, -1, r.Index(testAsset(1), b), "removed entry still indexed")
	assert.False(t, r.Remove(testAsset(1), b), "removed twice")
}

func TestPackUnpack(t *testing.T) {
	r := registry.New()
	assert.Nil(t, r.Grow(), "grow")
	assert.Nil(t, r.Append(testAsset(1), testAccount(0x01)), "append")
	assert.Nil(t, r.Append(testAsset(2), testAccount(0x02)), "append")

	packed, err := r.Pack()
	if !assert.Nil(t, err, "pack") {
		return
	}
	assert.Equal(t, 1+12+2*registry.EntrySize, len(packed), "packed length")

	u, err := registry.Unpack(packed)
	if !assert.Nil(t, err, "unpack") {
		return
	}
	assert.Equal(t, r.Space, u.Space, "space")
	if !assert.Equal(t, 2, len(u.Entries), "entries") {
		return
	}
	for i := range r.Entries {
		assert.Equal(t, r.Entries[i].Asset, u.Entries[i].Asset, "asset: %d", i)
		assert.True(t, r.Entries[i].Seller.Equal(u.Entries[i].Seller), "seller: %d", i)
	}

	_, err = registry.Unpack(packed[:len(packed)-3])
	assert.Equal(t, fault.RegistryCorrupt, err, "truncated")

	_, err = registry.Unpack(append(packed, 0x00))
	assert.Equal(t, fault.RegistryCorrupt, err, "extra data")
}

func TestUnpackCorruptHeader(t *testing.T) {
	header := bytes.Repeat([]byte{0xff}, 12)

	packed := append(record.Start(record.RegistryTag), header...)
	_, err := registry.Unpack(packed)
	assert.Equal(t, fault.RegistryCorrupt, err, "huge count without entries")

	// count fits the space but no entries follow
	binary.BigEndian.PutUint64(header[:8], registry.MaximumSpace)
	binary.BigEndian.PutUint32(header[8:], 1000)
	packed = append(record.Start(record.RegistryTag), header...)
	_, err = registry.Unpack(packed)
	assert.Equal(t, fault.RegistryCorrupt, err, "count without entries")

	_, err = registry.Unpack(record.Start(record.RegistryTag))
	assert.Equal(t, fault.RecordTruncated, err, "missing header")
}

func TestUnpackEmpty(t *testing.T) {
	packed, err := registry.New().Pack()
	if !assert.Nil(t, err, "pack") {
		return
	}
	r, err := registry.Unpack(packed)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, 0, len(r.Entries), "entries")
	assert.Equal(t, uint64(registry.InitialSpace), r.Space, "space")
}
