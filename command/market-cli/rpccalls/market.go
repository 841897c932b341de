// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/address"
	"github.com/bitmark-inc/marketd/instruction"
	"github.com/bitmark-inc/marketd/rpc/market"
)

// Initialise - sign and submit the one-time initialisation
func (client *Client) Initialise(key *account.PrivateKey, i instruction.Initialise) (*market.SettingsReply, error) {
	if err := i.Sign(key); nil != err {
		return nil, err
	}
	arguments := market.InitialiseArguments{
		Caller:     key.Account(),
		Initialise: i,
	}
	var reply market.SettingsReply
	if err := client.call("Market.Initialise", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ModifySettings - sign and submit a partial settings update
func (client *Client) ModifySettings(key *account.PrivateKey, m instruction.ModifySettings) (*market.SettingsReply, error) {
	if err := m.Sign(key); nil != err {
		return nil, err
	}
	arguments := market.ModifySettingsArguments{
		Caller:         key.Account(),
		ModifySettings: m,
	}
	var reply market.SettingsReply
	if err := client.call("Market.ModifySettings", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// IncreaseCapacity - sign and submit a registry grow request
func (client *Client) IncreaseCapacity(key *account.PrivateKey, nonce uint64) (*market.CapacityReply, error) {
	g := instruction.IncreaseCapacity{
		Nonce: nonce,
	}
	if err := g.Sign(key); nil != err {
		return nil, err
	}
	arguments := market.IncreaseCapacityArguments{
		Caller:           key.Account(),
		IncreaseCapacity: g,
	}
	var reply market.CapacityReply
	if err := client.call("Market.IncreaseCapacity", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Issue - sign and submit a new asset
func (client *Client) Issue(key *account.PrivateKey, name string, symbol string, nonce uint64) (*market.IssueReply, error) {
	i := instruction.Issue{
		Name:   name,
		Symbol: symbol,
		Nonce:  nonce,
	}
	if err := i.Sign(key); nil != err {
		return nil, err
	}
	arguments := market.IssueArguments{
		Caller: key.Account(),
		Issue:  i,
	}
	var reply market.IssueReply
	if err := client.call("Market.Issue", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// List - sign and submit an offer
func (client *Client) List(key *account.PrivateKey, asset address.Address, price uint64, nonce uint64) (*market.ListingReply, error) {
	l := instruction.List{
		Asset: asset,
		Price: price,
		Nonce: nonce,
	}
	if err := l.Sign(key); nil != err {
		return nil, err
	}
	arguments := market.ListArguments{
		Caller: key.Account(),
		List:   l,
	}
	var reply market.ListingReply
	if err := client.call("Market.List", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Delist - sign and submit the withdrawal of an offer
func (client *Client) Delist(key *account.PrivateKey, seller *account.Account, asset address.Address, nonce uint64) (*market.ListingReply, error) {
	d := instruction.Delist{
		Seller: seller,
		Asset:  asset,
		Nonce:  nonce,
	}
	if err := d.Sign(key); nil != err {
		return nil, err
	}
	arguments := market.DelistArguments{
		Caller: key.Account(),
		Delist: d,
	}
	var reply market.ListingReply
	if err := client.call("Market.Delist", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
