// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/address"
	"github.com/bitmark-inc/marketd/asset"
	"github.com/bitmark-inc/marketd/custody"
	"github.com/bitmark-inc/marketd/listing"
	"github.com/bitmark-inc/marketd/rpc/listings"
	"github.com/bitmark-inc/marketd/settings"
)

// Settings - fetch the policy settings
func (client *Client) Settings() (*settings.Settings, error) {
	var reply settings.Settings
	if err := client.call("Listings.Settings", &listings.SettingsArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Registry - fetch the listing registry
func (client *Client) Registry() (*listings.RegistryReply, error) {
	var reply listings.RegistryReply
	if err := client.call("Listings.Registry", &listings.RegistryArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Listing - fetch a single live listing
func (client *Client) Listing(assetId address.Address, seller *account.Account) (*listing.Listing, error) {
	arguments := listings.GetArguments{
		Asset:  assetId,
		Seller: seller,
	}
	var reply listing.Listing
	if err := client.call("Listings.Get", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Listings - fetch a page of live listings
func (client *Client) Listings(start uint64, count int) (*listings.AllReply, error) {
	arguments := listings.AllArguments{
		Start: start,
		Count: count,
	}
	var reply listings.AllReply
	if err := client.call("Listings.All", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Custody - fetch the custody record of an owner's asset
func (client *Client) Custody(owner *account.Account, assetId address.Address) (*custody.Custody, error) {
	arguments := listings.CustodyArguments{
		Owner: owner,
		Asset: assetId,
	}
	var reply custody.Custody
	if err := client.call("Listings.Custody", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Asset - fetch an issued asset
func (client *Client) Asset(assetId address.Address) (*asset.Asset, error) {
	arguments := listings.AssetArguments{
		Asset: assetId,
	}
	var reply asset.Asset
	if err := client.call("Listings.Asset", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
