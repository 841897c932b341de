// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/address"
	"github.com/bitmark-inc/marketd/asset"
	"github.com/bitmark-inc/marketd/custody"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/listing"
	"github.com/bitmark-inc/marketd/registry"
	"github.com/bitmark-inc/marketd/settings"
	"github.com/bitmark-inc/marketd/storage"
)

// Initialise - create the policy settings and an empty registry
func (m *Market) Initialise(caller *account.Account, s settings.Settings) error {
	if nil == caller || !caller.Equal(m.conf.Deployer) {
		return fault.InvalidCallerData
	}

	err := m.apply(func(trx storage.Transaction) error {
		settingsKey := m.SettingsAddress()
		if trx.Has(m.handles.Settings, settingsKey[:]) {
			return fault.AlreadyInitialised
		}
		if err := s.Validate(); nil != err {
			return err
		}

		packedSettings, err := s.Pack()
		if nil != err {
			return err
		}
		packedRegistry, err := registry.New().Pack()
		if nil != err {
			return err
		}

		registryKey := m.RegistryAddress()
		trx.Put(m.handles.Settings, settingsKey[:], packedSettings)
		trx.Put(m.handles.Registry, registryKey[:], packedRegistry)
		return nil
	})
	if nil != err {
		m.log.Debugf("initialise: caller: %s  error: %s", caller, err)
		return err
	}

	m.log.Infof("initialised: administrator: %s  treasury: %s  fees: %d/%d",
		s.Administrator, s.Treasury, s.AssetSaleFeeRate, s.GeneralSaleFeeRate)
	m.publish(eventInitialise, &s)
	return nil
}

// ModifySettings - change any subset of the policy settings
//
// an empty delta changes nothing and emits no event, but still
// requires the administrator
func (m *Market) ModifySettings(caller *account.Account, delta *settings.Delta) (*settings.Settings, error) {
	if nil == delta {
		delta = &settings.Delta{}
	}

	var result settings.Settings
	err := m.apply(func(trx storage.Transaction) error {
		current, err := m.readSettings(trx)
		if nil != err {
			return err
		}
		if !current.Administrator.Equal(caller) {
			return fault.Unauthorised
		}
		if err := delta.Validate(); nil != err {
			return err
		}

		result = current.Apply(delta)
		if delta.IsEmpty() {
			return nil
		}

		packed, err := result.Pack()
		if nil != err {
			return err
		}
		key := m.SettingsAddress()
		trx.Put(m.handles.Settings, key[:], packed)
		return nil
	})
	if nil != err {
		m.log.Debugf("modify settings: caller: %s  error: %s", caller, err)
		return nil, err
	}

	if delta.IsEmpty() {
		m.log.Debugf("modify settings: caller: %s  no change", caller)
		return &result, nil
	}

	m.log.Infof("settings: administrator: %s  treasury: %s  fees: %d/%d",
		result.Administrator, result.Treasury, result.AssetSaleFeeRate, result.GeneralSaleFeeRate)
	m.publish(eventModify, &result)
	return &result, nil
}

// IncreaseCapacity - reserve space for more registry entries
func (m *Market) IncreaseCapacity(caller *account.Account) (*registry.Registry, error) {
	var g *registry.Registry
	err := m.apply(func(trx storage.Transaction) error {
		current, err := m.readSettings(trx)
		if nil != err {
			return err
		}
		if !current.Administrator.Equal(caller) {
			return fault.Unauthorised
		}

		g, err = m.readRegistry(trx)
		if nil != err {
			return err
		}
		if err := g.Grow(); nil != err {
			return err
		}

		packed, err := g.Pack()
		if nil != err {
			return err
		}
		key := m.RegistryAddress()
		trx.Put(m.handles.Registry, key[:], packed)
		return nil
	})
	if nil != err {
		m.log.Debugf("increase capacity: caller: %s  error: %s", caller, err)
		return nil, err
	}

	m.log.Infof("registry space: %d  capacity: %d", g.Space, g.Capacity())
	m.publish(eventGrow, capacityEvent{
		Space:    g.Space,
		Capacity: g.Capacity(),
		Count:    len(g.Entries),
	})
	return g, nil
}

// Issue - create a new asset held by its creator
func (m *Market) Issue(creator *account.Account, name string, symbol string, nonce uint64) (address.Address, error) {
	a, err := asset.New(creator, name, symbol)
	if nil != err {
		return address.Address{}, err
	}

	assetId := m.AssetIdentity(creator, nonce)

	err = m.apply(func(trx storage.Transaction) error {
		if trx.Has(m.handles.Assets, assetId[:]) {
			return fault.AssetAlreadyIssued
		}

		packed, err := a.Pack()
		if nil != err {
			return err
		}

		holding := custody.New(assetId, creator, a.Supply)
		custodyKey := m.CustodyAddress(creator, assetId)

		trx.Put(m.handles.Assets, assetId[:], packed)
		trx.Put(m.handles.Custody, custodyKey[:], holding.Pack())
		return nil
	})
	if nil != err {
		m.log.Debugf("issue: creator: %s  error: %s", creator, err)
		return address.Address{}, err
	}

	m.log.Infof("issued: %s  name: %q  creator: %s", assetId, name, creator)
	m.publish(eventIssue, issueEvent{
		Asset:   assetId,
		Creator: creator,
		Name:    a.Name,
		Symbol:  a.Symbol,
	})
	return assetId, nil
}

// List - offer an asset for sale and escrow it to the program authority
func (m *Market) List(caller *account.Account, assetId address.Address, price uint64) (*listing.Listing, error) {
	if nil == caller {
		return nil, fault.Unauthorised
	}

	l := &listing.Listing{
		Seller: caller,
		Asset:  assetId,
		Price:  price,
	}

	err := m.apply(func(trx storage.Transaction) error {
		if _, err := m.readSettings(trx); nil != err {
			return err
		}

		holding, err := m.readCustody(trx, caller, assetId)
		if nil != err {
			return err
		}
		if nil == holding || !holding.Owner.Equal(caller) {
			return fault.Unauthorised
		}
		if 1 != holding.Amount {
			return fault.InvalidTokenAmount
		}

		listingKey := m.ListingAddress(assetId, caller)
		if trx.Has(m.handles.Listings, listingKey[:]) {
			return fault.AlreadyListed
		}

		g, err := m.readRegistry(trx)
		if nil != err {
			return err
		}
		if err := g.Append(assetId, caller); nil != err {
			return err
		}
		if err := holding.Approve(m.authority, holding.Amount); nil != err {
			return err
		}

		packedRegistry, err := g.Pack()
		if nil != err {
			return err
		}

		registryKey := m.RegistryAddress()
		custodyKey := m.CustodyAddress(caller, assetId)
		trx.Put(m.handles.Listings, listingKey[:], l.Pack())
		trx.Put(m.handles.Registry, registryKey[:], packedRegistry)
		trx.Put(m.handles.Custody, custodyKey[:], holding.Pack())
		return nil
	})
	if nil != err {
		m.log.Debugf("list: asset: %s  seller: %s  error: %s", assetId, caller, err)
		return nil, err
	}

	m.log.Infof("listed: asset: %s  seller: %s  price: %d", assetId, caller, price)
	m.publish(eventList, l)
	return l, nil
}

// Delist - withdraw a listing and return the asset from escrow
//
// only the seller recorded in the listing may delist it
func (m *Market) Delist(caller *account.Account, seller *account.Account, assetId address.Address) error {
	if nil == seller {
		return fault.MissingParameters
	}

	err := m.apply(func(trx storage.Transaction) error {
		if _, err := m.readSettings(trx); nil != err {
			return err
		}

		l, err := m.readListing(trx, assetId, seller)
		if nil != err {
			return err
		}
		if nil == l {
			return fault.NotListed
		}
		if !l.Seller.Equal(caller) {
			return fault.Unauthorised
		}

		holding, err := m.readCustody(trx, l.Seller, assetId)
		if nil != err {
			return err
		}
		if nil == holding {
			m.log.Criticalf("delist: asset: %s  seller: %s  custody record missing", assetId, seller)
			return fault.CustodyNotFound
		}

		g, err := m.readRegistry(trx)
		if nil != err {
			return err
		}
		if !g.Remove(assetId, l.Seller) {
			m.log.Criticalf("delist: asset: %s  seller: %s  registry entry missing", assetId, seller)
			return fault.RegistryCorrupt
		}
		holding.Revoke()

		packedRegistry, err := g.Pack()
		if nil != err {
			return err
		}

		listingKey := m.ListingAddress(assetId, seller)
		registryKey := m.RegistryAddress()
		custodyKey := m.CustodyAddress(l.Seller, assetId)
		trx.Delete(m.handles.Listings, listingKey[:])
		trx.Put(m.handles.Registry, registryKey[:], packedRegistry)
		trx.Put(m.handles.Custody, custodyKey[:], holding.Pack())
		return nil
	})
	if nil != err {
		m.log.Debugf("delist: asset: %s  seller: %s  error: %s", assetId, seller, err)
		return err
	}

	m.log.Infof("delisted: asset: %s  seller: %s", assetId, seller)
	m.publish(eventDelist, delistEvent{
		Asset:  assetId,
		Seller: seller,
	})
	return nil
}
