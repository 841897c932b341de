// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listings

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/address"
	"github.com/bitmark-inc/marketd/asset"
	"github.com/bitmark-inc/marketd/custody"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/listing"
	"github.com/bitmark-inc/marketd/registry"
	"github.com/bitmark-inc/marketd/rpc/ratelimit"
	"github.com/bitmark-inc/marketd/settings"
)

const (
	maximumListings   = 100
	rateLimitListings = 200
	rateBurstListings = 100
)

// Queries - read only access to the marketplace
type Queries interface {
	Settings() (*settings.Settings, error)
	Registry() (*registry.Registry, error)
	Listing(asset address.Address, seller *account.Account) (*listing.Listing, error)
	Listings(start uint64, count int) ([]*listing.Listing, uint64, error)
	Custody(owner *account.Account, asset address.Address) (*custody.Custody, error)
	Asset(id address.Address) (*asset.Asset, error)
}

// Listings - type for the RPC
type Listings struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Queries Queries
}

func New(log *logger.L, queries Queries) *Listings {
	return &Listings{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitListings, rateBurstListings),
		Queries: queries,
	}
}

// ---

// SettingsArguments - empty arguments
type SettingsArguments struct{}

// Settings - the current policy settings
func (l *Listings) Settings(_ *SettingsArguments, reply *settings.Settings) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	s, err := l.Queries.Settings()
	if nil != err {
		return err
	}
	*reply = *s
	return nil
}

// ---

// RegistryArguments - empty arguments
type RegistryArguments struct{}

// RegistryReply - the registry with its derived capacity
type RegistryReply struct {
	Space    uint64           `json:"space"`
	Capacity int              `json:"capacity"`
	Entries  []registry.Entry `json:"entries"`
}

// Registry - the ordered live listings and the space reserved for them
func (l *Listings) Registry(_ *RegistryArguments, reply *RegistryReply) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	g, err := l.Queries.Registry()
	if nil != err {
		return err
	}
	reply.Space = g.Space
	reply.Capacity = g.Capacity()
	reply.Entries = g.Entries
	return nil
}

// ---

// GetArguments - identify one listing
type GetArguments struct {
	Asset  address.Address  `json:"asset"`
	Seller *account.Account `json:"seller"`
}

// Get - one live listing
func (l *Listings) Get(arguments *GetArguments, reply *listing.Listing) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Seller {
		return fault.MissingParameters
	}

	l.Log.Debugf("Listings.Get: asset: %s  seller: %s", arguments.Asset, arguments.Seller)

	record, err := l.Queries.Listing(arguments.Asset, arguments.Seller)
	if nil != err {
		return err
	}
	*reply = *record
	return nil
}

// ---

// AllArguments - page through the live listings
type AllArguments struct {
	Start uint64 `json:"start,string"`
	Count int    `json:"count"`
}

// AllReply - one page of listings
type AllReply struct {
	Listings  []*listing.Listing `json:"listings"`
	NextStart uint64             `json:"nextStart,string"`
}

// All - page through the live listings
func (l *Listings) All(arguments *AllArguments, reply *AllReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(l.Limiter, arguments.Count, maximumListings); nil != err {
		return err
	}

	records, nextStart, err := l.Queries.Listings(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Listings = records
	reply.NextStart = nextStart
	return nil
}

// ---

// CustodyArguments - identify a holding
type CustodyArguments struct {
	Owner *account.Account `json:"owner"`
	Asset address.Address  `json:"asset"`
}

// Custody - an owner's holding of an asset
func (l *Listings) Custody(arguments *CustodyArguments, reply *custody.Custody) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Owner {
		return fault.MissingParameters
	}
	c, err := l.Queries.Custody(arguments.Owner, arguments.Asset)
	if nil != err {
		return err
	}
	*reply = *c
	return nil
}

// ---

// AssetArguments - identify an asset
type AssetArguments struct {
	Asset address.Address `json:"asset"`
}

// Asset - an issued asset
func (l *Listings) Asset(arguments *AssetArguments, reply *asset.Asset) error {
	if err := ratelimit.Limit(l.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}
	a, err := l.Queries.Asset(arguments.Asset)
	if nil != err {
		return err
	}
	*reply = *a
	return nil
}
