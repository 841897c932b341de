// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"bytes"

	"github.com/bitmark-inc/marketd/address"
	"github.com/bitmark-inc/marketd/custody"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/listing"
	"github.com/bitmark-inc/marketd/settings"
)

// Check - verify the stored state is consistent
//
//   - fees are in range
//   - the registry holds no more entries than its capacity
//   - registry entries and listing records correspond one to one
//   - a custody record is delegated to the program authority
//     exactly when its asset is listed by its owner
func (m *Market) Check() error {
	m.RLock()
	defer m.RUnlock()

	s, err := m.readSettings(direct{})
	if fault.NotInitialised == err {
		return m.checkEmpty()
	}
	if nil != err {
		return err
	}
	if err := settings.CheckFee(s.AssetSaleFeeRate); nil != err {
		m.log.Errorf("check: asset sale fee: %d  out of range", s.AssetSaleFeeRate)
		return err
	}
	if err := settings.CheckFee(s.GeneralSaleFeeRate); nil != err {
		m.log.Errorf("check: general sale fee: %d  out of range", s.GeneralSaleFeeRate)
		return err
	}

	g, err := m.readRegistry(direct{})
	if nil != err {
		return err
	}
	if len(g.Entries) > g.Capacity() {
		m.log.Errorf("check: registry entries: %d  exceed capacity: %d", len(g.Entries), g.Capacity())
		return fault.RegistryCorrupt
	}

	// every entry must have its own listing record
	indexed := make(map[address.Address]struct{}, len(g.Entries))
	for _, e := range g.Entries {
		key := m.ListingAddress(e.Asset, e.Seller)
		if _, ok := indexed[key]; ok {
			m.log.Errorf("check: duplicate registry entry: asset: %s  seller: %s", e.Asset, e.Seller)
			return fault.RegistryCorrupt
		}
		indexed[key] = struct{}{}

		l, err := m.readListing(direct{}, e.Asset, e.Seller)
		if nil != err {
			return err
		}
		if nil == l || l.Asset != e.Asset || !l.Seller.Equal(e.Seller) {
			m.log.Errorf("check: registry entry without listing: asset: %s  seller: %s", e.Asset, e.Seller)
			return fault.RegistryCorrupt
		}
	}

	// every listing record must be indexed and escrowed
	listings := 0
	err = m.handles.Listings.NewFetchCursor().Map(func(key []byte, value []byte) error {
		l, err := listing.Unpack(value)
		if nil != err {
			m.log.Criticalf("check: listing: %x  decode error: %s", key, err)
			return err
		}
		expected := m.ListingAddress(l.Asset, l.Seller)
		if !bytes.Equal(expected[:], key) {
			m.log.Errorf("check: listing: %x  stored under wrong key", key)
			return fault.RegistryCorrupt
		}
		if _, ok := indexed[expected]; !ok {
			m.log.Errorf("check: listing not in registry: asset: %s  seller: %s", l.Asset, l.Seller)
			return fault.RegistryCorrupt
		}
		listings += 1

		c, err := m.readCustody(direct{}, l.Seller, l.Asset)
		if nil != err {
			return err
		}
		if nil == c || !c.IsDelegatedTo(m.authority) || c.DelegatedAmount != c.Amount {
			m.log.Errorf("check: listing not escrowed: asset: %s  seller: %s", l.Asset, l.Seller)
			return fault.EscrowMismatch
		}
		return nil
	})
	if nil != err {
		return err
	}
	if listings != len(g.Entries) {
		m.log.Errorf("check: listings: %d  registry entries: %d", listings, len(g.Entries))
		return fault.RegistryCorrupt
	}

	// delegation to the authority only while listed
	return m.handles.Custody.NewFetchCursor().Map(func(key []byte, value []byte) error {
		c, err := custody.Unpack(value)
		if nil != err {
			m.log.Criticalf("check: custody: %x  decode error: %s", key, err)
			return err
		}
		if !c.IsDelegatedTo(m.authority) {
			return nil
		}
		if _, ok := indexed[m.ListingAddress(c.Asset, c.Owner)]; !ok {
			m.log.Errorf("check: escrow without listing: asset: %s  owner: %s", c.Asset, c.Owner)
			return fault.EscrowMismatch
		}
		return nil
	})
}

// before initialisation nothing can be listed or escrowed
func (m *Market) checkEmpty() error {
	registryKey := m.RegistryAddress()
	if nil != m.handles.Registry.Get(registryKey[:]) {
		m.log.Error("check: registry exists without settings")
		return fault.RegistryCorrupt
	}
	listed, err := m.handles.Listings.NewFetchCursor().Fetch(1)
	if nil != err {
		return err
	}
	if 0 != len(listed) {
		m.log.Error("check: listings exist without settings")
		return fault.RegistryCorrupt
	}
	return m.handles.Custody.NewFetchCursor().Map(func(key []byte, value []byte) error {
		c, err := custody.Unpack(value)
		if nil != err {
			return err
		}
		if c.IsDelegatedTo(m.authority) {
			m.log.Errorf("check: escrow without listing: asset: %s  owner: %s", c.Asset, c.Owner)
			return fault.EscrowMismatch
		}
		return nil
	})
}
