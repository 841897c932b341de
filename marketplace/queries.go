// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"errors"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/address"
	"github.com/bitmark-inc/marketd/asset"
	"github.com/bitmark-inc/marketd/custody"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/listing"
	"github.com/bitmark-inc/marketd/registry"
	"github.com/bitmark-inc/marketd/settings"
)

// ends a cursor scan early
var errStop = errors.New("stop")

// Settings - the current policy settings
func (m *Market) Settings() (*settings.Settings, error) {
	m.RLock()
	defer m.RUnlock()
	return m.readSettings(direct{})
}

// Registry - the current listing registry
func (m *Market) Registry() (*registry.Registry, error) {
	m.RLock()
	defer m.RUnlock()
	if _, err := m.readSettings(direct{}); nil != err {
		return nil, err
	}
	return m.readRegistry(direct{})
}

// Listing - the live listing of an asset by a seller
func (m *Market) Listing(assetId address.Address, seller *account.Account) (*listing.Listing, error) {
	if nil == seller {
		return nil, fault.MissingParameters
	}
	m.RLock()
	defer m.RUnlock()
	l, err := m.readListing(direct{}, assetId, seller)
	if nil != err {
		return nil, err
	}
	if nil == l {
		return nil, fault.NotListed
	}
	return l, nil
}

// Custody - the holding of an asset by an owner
func (m *Market) Custody(owner *account.Account, assetId address.Address) (*custody.Custody, error) {
	if nil == owner {
		return nil, fault.MissingParameters
	}
	m.RLock()
	defer m.RUnlock()
	c, err := m.readCustody(direct{}, owner, assetId)
	if nil != err {
		return nil, err
	}
	if nil == c {
		return nil, fault.CustodyNotFound
	}
	return c, nil
}

// Asset - an issued asset
func (m *Market) Asset(assetId address.Address) (*asset.Asset, error) {
	m.RLock()
	defer m.RUnlock()
	a, err := m.readAsset(direct{}, assetId)
	if nil != err {
		return nil, err
	}
	if nil == a {
		return nil, fault.AssetNotFound
	}
	return a, nil
}

// Listings - up to count live listings after skipping start of them
//
// listings are in storage key order, which is stable between calls
// that do not list or delist; returns the start of the next page
func (m *Market) Listings(start uint64, count int) ([]*listing.Listing, uint64, error) {
	if count <= 0 {
		return nil, start, fault.InvalidCount
	}

	m.RLock()
	defer m.RUnlock()

	results := make([]*listing.Listing, 0, count)
	n := uint64(0)
	cursor := m.handles.Listings.NewFetchCursor()
	err := cursor.Map(func(key []byte, value []byte) error {
		if n < start {
			n += 1
			return nil
		}
		if len(results) >= count {
			return errStop
		}
		l, err := listing.Unpack(value)
		if nil != err {
			m.log.Criticalf("listing: %x  decode error: %s", key, err)
			return err
		}
		results = append(results, l)
		n += 1
		return nil
	})
	if errStop == err {
		err = nil
	}
	if nil != err {
		return nil, start, err
	}

	// never page backwards when start is past the end
	if n < start {
		n = start
	}
	return results, n, nil
}
