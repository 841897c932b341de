// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/address"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/instruction"
	"github.com/bitmark-inc/marketd/listing"
	"github.com/bitmark-inc/marketd/registry"
	"github.com/bitmark-inc/marketd/rpc/ratelimit"
	"github.com/bitmark-inc/marketd/settings"
)

const (
	rateLimitMarket = 100
	rateBurstMarket = 50
)

// Operations - the mutating marketplace operations
type Operations interface {
	Initialise(caller *account.Account, s settings.Settings) error
	ModifySettings(caller *account.Account, delta *settings.Delta) (*settings.Settings, error)
	IncreaseCapacity(caller *account.Account) (*registry.Registry, error)
	Issue(creator *account.Account, name string, symbol string, nonce uint64) (address.Address, error)
	List(caller *account.Account, asset address.Address, price uint64) (*listing.Listing, error)
	Delist(caller *account.Account, seller *account.Account, asset address.Address) error

	SettingsAddress() address.Address
	RegistryAddress() address.Address
	ListingAddress(asset address.Address, seller *account.Account) address.Address
	CustodyAddress(owner *account.Account, asset address.Address) address.Address
}

// Market - type for the RPC
type Market struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	Operations Operations
	IsTesting  bool
}

func New(log *logger.L, operations Operations, isTesting bool) *Market {
	return &Market{
		Log:        log,
		Limiter:    rate.NewLimiter(rateLimitMarket, rateBurstMarket),
		Operations: operations,
		IsTesting:  isTesting,
	}
}

// the caller is the account that signed the instruction, on this
// node's network; any other accounts the instruction names must be
// on the same network, absent optional accounts are nil
func (market *Market) verify(caller *account.Account, i instruction.Instruction, accounts ...*account.Account) error {
	if nil == caller {
		return fault.MissingParameters
	}
	if caller.IsTesting() != market.IsTesting {
		return fault.NotTestingAccount
	}
	for _, a := range accounts {
		if nil != a && a.IsTesting() != market.IsTesting {
			return fault.NotTestingAccount
		}
	}
	_, err := i.Pack(caller)
	return err
}

// ---

// InitialiseArguments - signed initialise request
type InitialiseArguments struct {
	Caller *account.Account `json:"caller"`
	instruction.Initialise
}

// SettingsReply - the settings after the request
type SettingsReply struct {
	Address  address.Address   `json:"address"`
	Registry address.Address   `json:"registry"`
	Settings settings.Settings `json:"settings"`
}

// Initialise - create the policy settings and an empty registry
func (market *Market) Initialise(arguments *InitialiseArguments, reply *SettingsReply) error {
	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	market.Log.Infof("Market.Initialise: caller: %s", arguments.Caller)

	if err := market.verify(arguments.Caller, &arguments.Initialise, arguments.Administrator, arguments.Treasury); nil != err {
		return err
	}

	s := settings.Settings{
		Administrator:      arguments.Administrator,
		Treasury:           arguments.Treasury,
		AssetSaleFeeRate:   arguments.AssetSaleFeeRate,
		GeneralSaleFeeRate: arguments.GeneralSaleFeeRate,
	}
	if err := market.Operations.Initialise(arguments.Caller, s); nil != err {
		return err
	}

	reply.Address = market.Operations.SettingsAddress()
	reply.Registry = market.Operations.RegistryAddress()
	reply.Settings = s
	return nil
}

// ---

// ModifySettingsArguments - signed partial settings update
type ModifySettingsArguments struct {
	Caller *account.Account `json:"caller"`
	instruction.ModifySettings
}

// ModifySettings - change any of the policy settings
func (market *Market) ModifySettings(arguments *ModifySettingsArguments, reply *SettingsReply) error {
	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	market.Log.Infof("Market.ModifySettings: caller: %s", arguments.Caller)

	if err := market.verify(arguments.Caller, &arguments.ModifySettings, arguments.Administrator, arguments.Treasury); nil != err {
		return err
	}

	delta := &settings.Delta{
		Administrator:      arguments.Administrator,
		Treasury:           arguments.Treasury,
		AssetSaleFeeRate:   arguments.AssetSaleFeeRate,
		GeneralSaleFeeRate: arguments.GeneralSaleFeeRate,
	}
	s, err := market.Operations.ModifySettings(arguments.Caller, delta)
	if nil != err {
		return err
	}

	reply.Address = market.Operations.SettingsAddress()
	reply.Registry = market.Operations.RegistryAddress()
	reply.Settings = *s
	return nil
}

// ---

// IncreaseCapacityArguments - signed registry growth request
type IncreaseCapacityArguments struct {
	Caller *account.Account `json:"caller"`
	instruction.IncreaseCapacity
}

// CapacityReply - registry allocation after growth
type CapacityReply struct {
	Address  address.Address `json:"address"`
	Space    uint64          `json:"space"`
	Capacity int             `json:"capacity"`
	Count    int             `json:"count"`
}

// IncreaseCapacity - reserve space for more listings
func (market *Market) IncreaseCapacity(arguments *IncreaseCapacityArguments, reply *CapacityReply) error {
	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	market.Log.Infof("Market.IncreaseCapacity: caller: %s", arguments.Caller)

	if err := market.verify(arguments.Caller, &arguments.IncreaseCapacity); nil != err {
		return err
	}

	g, err := market.Operations.IncreaseCapacity(arguments.Caller)
	if nil != err {
		return err
	}

	reply.Address = market.Operations.RegistryAddress()
	reply.Space = g.Space
	reply.Capacity = g.Capacity()
	reply.Count = len(g.Entries)
	return nil
}

// ---

// IssueArguments - signed asset creation
type IssueArguments struct {
	Caller *account.Account `json:"caller"`
	instruction.Issue
}

// IssueReply - identity of the new asset and its custody record
type IssueReply struct {
	Asset   address.Address `json:"asset"`
	Custody address.Address `json:"custody"`
}

// Issue - create a unique asset held by the caller
func (market *Market) Issue(arguments *IssueArguments, reply *IssueReply) error {
	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	market.Log.Infof("Market.Issue: caller: %s  name: %q", arguments.Caller, arguments.Name)

	if err := market.verify(arguments.Caller, &arguments.Issue); nil != err {
		return err
	}

	id, err := market.Operations.Issue(arguments.Caller, arguments.Name, arguments.Symbol, arguments.Nonce)
	if nil != err {
		return err
	}

	reply.Asset = id
	reply.Custody = market.Operations.CustodyAddress(arguments.Caller, id)
	return nil
}

// ---

// ListArguments - signed offer
type ListArguments struct {
	Caller *account.Account `json:"caller"`
	instruction.List
}

// ListingReply - the affected listing record
type ListingReply struct {
	Address address.Address  `json:"address"`
	Custody address.Address  `json:"custody"`
	Listing *listing.Listing `json:"listing,omitempty"`
}

// List - offer an asset for sale
func (market *Market) List(arguments *ListArguments, reply *ListingReply) error {
	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	market.Log.Infof("Market.List: caller: %s  asset: %s  price: %d", arguments.Caller, arguments.Asset, arguments.Price)

	if err := market.verify(arguments.Caller, &arguments.List); nil != err {
		return err
	}

	l, err := market.Operations.List(arguments.Caller, arguments.Asset, arguments.Price)
	if nil != err {
		return err
	}

	reply.Address = market.Operations.ListingAddress(arguments.Asset, arguments.Caller)
	reply.Custody = market.Operations.CustodyAddress(arguments.Caller, arguments.Asset)
	reply.Listing = l
	return nil
}

// ---

// DelistArguments - signed withdrawal
type DelistArguments struct {
	Caller *account.Account `json:"caller"`
	instruction.Delist
}

// Delist - withdraw an offer
func (market *Market) Delist(arguments *DelistArguments, reply *ListingReply) error {
	if err := ratelimit.Limit(market.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	market.Log.Infof("Market.Delist: caller: %s  asset: %s  seller: %s", arguments.Caller, arguments.Asset, arguments.Seller)

	if err := market.verify(arguments.Caller, &arguments.Delist, arguments.Seller); nil != err {
		return err
	}

	err := market.Operations.Delist(arguments.Caller, arguments.Seller, arguments.Asset)
	if nil != err {
		return err
	}

	reply.Address = market.Operations.ListingAddress(arguments.Asset, arguments.Seller)
	reply.Custody = market.Operations.CustodyAddress(arguments.Seller, arguments.Asset)
	return nil
}
