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

// source of records: a transaction sees its own staged writes,
// queries read the pools directly
type reader interface {
	Get(storage.Handle, []byte) []byte
}

type direct struct{}

func (direct) Get(h storage.Handle, key []byte) []byte {
	return h.Get(key)
}

// a stored record that cannot be decoded means the database is damaged
func (m *Market) corrupt(kind string, key address.Address, err error) error {
	m.log.Criticalf("%s: %s  decode error: %s", kind, key, err)
	return err
}

func (m *Market) readSettings(r reader) (*settings.Settings, error) {
	key := m.SettingsAddress()
	packed := r.Get(m.handles.Settings, key[:])
	if nil == packed {
		return nil, fault.NotInitialised
	}
	s, err := settings.Unpack(packed)
	if nil != err {
		return nil, m.corrupt("settings", key, err)
	}
	return s, nil
}

// the registry is created together with the settings, so it must
// exist whenever the settings do
func (m *Market) readRegistry(r reader) (*registry.Registry, error) {
	key := m.RegistryAddress()
	packed := r.Get(m.handles.Registry, key[:])
	if nil == packed {
		m.log.Criticalf("registry: %s  missing", key)
		return nil, fault.RegistryCorrupt
	}
	g, err := registry.Unpack(packed)
	if nil != err {
		return nil, m.corrupt("registry", key, err)
	}
	return g, nil
}

// nil without error when there is no listing
func (m *Market) readListing(r reader, assetId address.Address, seller *account.Account) (*listing.Listing, error) {
	key := m.ListingAddress(assetId, seller)
	packed := r.Get(m.handles.Listings, key[:])
	if nil == packed {
		return nil, nil
	}
	l, err := listing.Unpack(packed)
	if nil != err {
		return nil, m.corrupt("listing", key, err)
	}
	return l, nil
}

// nil without error when there is no custody record
func (m *Market) readCustody(r reader, owner *account.Account, assetId address.Address) (*custody.Custody, error) {
	key := m.CustodyAddress(owner, assetId)
	packed := r.Get(m.handles.Custody, key[:])
	if nil == packed {
		return nil, nil
	}
	c, err := custody.Unpack(packed)
	if nil != err {
		return nil, m.corrupt("custody", key, err)
	}
	return c, nil
}

// nil without error when there is no asset
func (m *Market) readAsset(r reader, assetId address.Address) (*asset.Asset, error) {
	packed := r.Get(m.handles.Assets, assetId[:])
	if nil == packed {
		return nil, nil
	}
	a, err := asset.Unpack(packed)
	if nil != err {
		return nil, m.corrupt("asset", assetId, err)
	}
	return a, nil
}
