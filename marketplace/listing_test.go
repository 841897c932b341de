// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/address"
	"github.com/bitmark-inc/marketd/custody"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/registry"
	"github.com/bitmark-inc/marketd/storage"
)

func TestIssue(t *testing.T) {
	m, events, who, teardown := setup(t)
	defer teardown()

	_, err := m.Issue(who.seller.Account(), "", "KBN", 1)
	assert.Equal(t, fault.NameTooShort, err, "empty name")
	_, err = m.Issue(who.seller.Account(), "Kobeni", "KOBENI-TOKEN", 1)
	assert.Equal(t, fault.SymbolTooLong, err, "long symbol")

	// issuing does not need the marketplace settings
	id, err := m.Issue(who.seller.Account(), "Kobeni", "KBN", 1)
	if !assert.Nil(t, err, "issue") {
		return
	}
	assert.Equal(t, m.AssetIdentity(who.seller.Account(), 1), id, "wrong identity")

	a, err := m.Asset(id)
	if !assert.Nil(t, err, "asset") {
		return
	}
	assert.Equal(t, "Kobeni", a.Name, "wrong name")
	assert.Equal(t, uint64(1), a.Supply, "wrong supply")
	assert.True(t, who.seller.Account().Equal(a.Creator), "wrong creator")

	c, err := m.Custody(who.seller.Account(), id)
	if !assert.Nil(t, err, "custody") {
		return
	}
	assert.Equal(t, uint64(1), c.Amount, "wrong amount")
	assert.Nil(t, c.Delegate, "unexpected delegate")

	_, err = m.Issue(who.seller.Account(), "Other", "OTH", 1)
	assert.Equal(t, fault.AssetAlreadyIssued, err, "same nonce")

	_, err = m.Asset(m.AssetIdentity(who.seller.Account(), 2))
	assert.Equal(t, fault.AssetNotFound, err, "unknown asset")
	_, err = m.Custody(who.other.Account(), id)
	assert.Equal(t, fault.CustodyNotFound, err, "not the owner")

	assert.Equal(t, []string{"issue"}, events.Commands(), "wrong events")
}

func TestList(t *testing.T) {
	m, events, who, teardown := setup(t)
	defer teardown()

	id := issue(t, m, who.seller, 1)

	_, err := m.List(who.seller.Account(), id, 1000)
	assert.Equal(t, fault.NotInitialised, err, "before initialise")

	initialise(t, m, who)

	_, err = m.List(who.other.Account(), id, 1000)
	assert.Equal(t, fault.Unauthorised, err, "not the owner")
	_, err = m.List(who.seller.Account(), m.AssetIdentity(who.seller.Account(), 99), 1000)
	assert.Equal(t, fault.Unauthorised, err, "no custody")

	l, err := m.List(who.seller.Account(), id, 1000)
	if !assert.Nil(t, err, "list") {
		return
	}
	assert.Equal(t, uint64(1000), l.Price, "wrong price")

	stored, err := m.Listing(id, who.seller.Account())
	if !assert.Nil(t, err, "listing") {
		return
	}
	assert.Equal(t, l, stored, "stored listing differs")

	g, err := m.Registry()
	assert.Nil(t, err, "registry")
	if assert.Equal(t, 1, len(g.Entries), "wrong entry count") {
		assert.Equal(t, id, g.Entries[0].Asset, "wrong asset")
		assert.True(t, who.seller.Account().Equal(g.Entries[0].Seller), "wrong seller")
	}

	c, err := m.Custody(who.seller.Account(), id)
	assert.Nil(t, err, "custody")
	assert.True(t, c.IsDelegatedTo(m.Authority()), "not escrowed")
	assert.Equal(t, uint64(1), c.DelegatedAmount, "wrong delegated amount")
	assert.True(t, who.seller.Account().Equal(c.Owner), "owner changed")

	// no double listing, whatever the price
	_, err = m.List(who.seller.Account(), id, 5)
	assert.Equal(t, fault.AlreadyListed, err, "second list")
	g, _ = m.Registry()
	assert.Equal(t, 1, len(g.Entries), "registry changed by failed list")
	stored, _ = m.Listing(id, who.seller.Account())
	assert.Equal(t, uint64(1000), stored.Price, "price changed by failed list")

	assert.Equal(t, []string{"issue", "initialise", "list"}, events.Commands(), "wrong events")
	assert.Nil(t, m.Check(), "check")
}

func TestListZeroPrice(t *testing.T) {
	m, _, who, teardown := setup(t)
	defer teardown()

	initialise(t, m, who)
	id := issue(t, m, who.seller, 1)

	l, err := m.List(who.seller.Account(), id, 0)
	assert.Nil(t, err, "list")
	assert.Equal(t, uint64(0), l.Price, "wrong price")
}

func TestListInvalidTokenAmount(t *testing.T) {
	m, _, who, teardown := setup(t)
	defer teardown()

	initialise(t, m, who)

	id := m.AssetIdentity(who.seller.Account(), 7)
	for _, amount := range []uint64{0, 2} {
		holding := custody.New(id, who.seller.Account(), amount)
		store(t, storage.Pool.Custody, m.CustodyAddress(who.seller.Account(), id), holding.Pack())

		_, err := m.List(who.seller.Account(), id, 1000)
		assert.Equal(t, fault.InvalidTokenAmount, err, "amount: %d", amount)
	}

	_, err := m.Listing(id, who.seller.Account())
	assert.Equal(t, fault.NotListed, err, "listing created")
}

func TestDelist(t *testing.T) {
	m, events, who, teardown := setup(t)
	defer teardown()

	initialise(t, m, who)
	id := issue(t, m, who.seller, 1)

	err := m.Delist(who.seller.Account(), who.seller.Account(), id)
	assert.Equal(t, fault.NotListed, err, "not listed")

	_, err = m.List(who.seller.Account(), id, 1000)
	if !assert.Nil(t, err, "list") {
		return
	}

	err = m.Delist(who.other.Account(), who.seller.Account(), id)
	assert.Equal(t, fault.Unauthorised, err, "other caller")
	err = m.Delist(nil, who.seller.Account(), id)
	assert.Equal(t, fault.Unauthorised, err, "no caller")
	err = m.Delist(who.other.Account(), who.other.Account(), id)
	assert.Equal(t, fault.NotListed, err, "other seller")

	_, err = m.Listing(id, who.seller.Account())
	assert.Nil(t, err, "listing removed by failed delist")

	err = m.Delist(who.seller.Account(), who.seller.Account(), id)
	if !assert.Nil(t, err, "delist") {
		return
	}

	_, err = m.Listing(id, who.seller.Account())
	assert.Equal(t, fault.NotListed, err, "listing still exists")

	g, _ := m.Registry()
	assert.Equal(t, 0, len(g.Entries), "registry entry remains")

	c, _ := m.Custody(who.seller.Account(), id)
	assert.Nil(t, c.Delegate, "delegate remains")
	assert.Equal(t, uint64(0), c.DelegatedAmount, "delegated amount remains")
	assert.Equal(t, uint64(1), c.Amount, "amount changed")

	// no double delisting
	err = m.Delist(who.seller.Account(), who.seller.Account(), id)
	assert.Equal(t, fault.NotListed, err, "second delist")

	// can be listed again
	_, err = m.List(who.seller.Account(), id, 2000)
	assert.Nil(t, err, "relist")

	assert.Equal(t, []string{"initialise", "issue", "list", "delist", "list"}, events.Commands(), "wrong events")
	assert.Nil(t, m.Check(), "check")
}

func TestDelistKeepsOrder(t *testing.T) {
	m, _, who, teardown := setup(t)
	defer teardown()

	initialise(t, m, who)

	ids := make([]address.Address, 4)
	for i := range ids {
		ids[i] = issue(t, m, who.seller, uint64(i))
		_, err := m.List(who.seller.Account(), ids[i], uint64(i+1))
		if !assert.Nil(t, err, "list: %d", i) {
			return
		}
	}

	err := m.Delist(who.seller.Account(), who.seller.Account(), ids[1])
	assert.Nil(t, err, "delist")

	g, _ := m.Registry()
	if assert.Equal(t, 3, len(g.Entries), "wrong entry count") {
		assert.Equal(t, ids[0], g.Entries[0].Asset, "entry 0")
		assert.Equal(t, ids[2], g.Entries[1].Asset, "entry 1")
		assert.Equal(t, ids[3], g.Entries[2].Asset, "entry 2")
	}
	assert.Nil(t, m.Check(), "check")
}

func TestDelistIntegrityGuards(t *testing.T) {
	m, _, who, teardown := setup(t)
	defer teardown()

	initialise(t, m, who)
	id := issue(t, m, who.seller, 1)
	_, err := m.List(who.seller.Account(), id, 1000)
	if !assert.Nil(t, err, "list") {
		return
	}

	// registry entry lost
	empty, err := registry.New().Pack()
	assert.Nil(t, err, "pack registry")
	store(t, storage.Pool.Registry, m.RegistryAddress(), empty)

	err = m.Delist(who.seller.Account(), who.seller.Account(), id)
	assert.Equal(t, fault.RegistryCorrupt, err, "registry entry missing")
	_, err = m.Listing(id, who.seller.Account())
	assert.Nil(t, err, "listing removed by failed delist")

	// custody record lost
	store(t, storage.Pool.Custody, m.CustodyAddress(who.seller.Account(), id), nil)
	err = m.Delist(who.seller.Account(), who.seller.Account(), id)
	assert.Equal(t, fault.CustodyNotFound, err, "custody missing")
}

func TestCapacity(t *testing.T) {
	m, _, who, teardown := setup(t)
	defer teardown()

	initialise(t, m, who)

	capacity := registry.CapacityFor(registry.InitialSpace)
	for i := 0; i < capacity; i += 1 {
		id := issue(t, m, who.seller, uint64(i))
		_, err := m.List(who.seller.Account(), id, 1)
		if !assert.Nil(t, err, "list: %d", i) {
			return
		}
	}

	last := issue(t, m, who.seller, uint64(capacity))
	_, err := m.List(who.seller.Account(), last, 1)
	assert.Equal(t, fault.RegistryFull, err, "list beyond capacity")

	_, err = m.Listing(last, who.seller.Account())
	assert.Equal(t, fault.NotListed, err, "listing created by failed list")
	c, _ := m.Custody(who.seller.Account(), last)
	assert.Nil(t, c.Delegate, "escrowed by failed list")

	_, err = m.IncreaseCapacity(who.administrator.Account())
	assert.Nil(t, err, "increase capacity")

	_, err = m.List(who.seller.Account(), last, 1)
	assert.Nil(t, err, "list after increase")

	g, _ := m.Registry()
	assert.Equal(t, capacity+1, len(g.Entries), "wrong entry count")
	assert.True(t, len(g.Entries) <= g.Capacity(), "entries exceed capacity")
	assert.Nil(t, m.Check(), "check")
}

func TestListings(t *testing.T) {
	m, _, who, teardown := setup(t)
	defer teardown()

	_, _, err := m.Listings(0, 0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")

	initialise(t, m, who)

	listed := map[address.Address]uint64{}
	for i := 0; i < 5; i += 1 {
		id := issue(t, m, who.seller, uint64(i))
		_, err := m.List(who.seller.Account(), id, uint64(100+i))
		if !assert.Nil(t, err, "list: %d", i) {
			return
		}
		listed[id] = uint64(100 + i)
	}

	seen := map[address.Address]uint64{}
	start := uint64(0)
	for pages := 0; pages < 10; pages += 1 {
		page, next, err := m.Listings(start, 2)
		if !assert.Nil(t, err, "listings") {
			return
		}
		if 0 == len(page) {
			break
		}
		assert.True(t, len(page) <= 2, "page too large")
		assert.Equal(t, start+uint64(len(page)), next, "wrong next start")
		for _, l := range page {
			seen[l.Asset] = l.Price
		}
		start = next
	}
	assert.Equal(t, listed, seen, "wrong listings")

	// past the end the next start does not move backwards
	page, next, err := m.Listings(10, 2)
	assert.Nil(t, err, "listings past end")
	assert.Equal(t, 0, len(page), "page past end")
	assert.Equal(t, uint64(10), next, "wrong next start past end")
}
