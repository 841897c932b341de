// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/marketd/command/market-cli/rpccalls"
)

// connect, run one query and print its result
func query(c *cli.Context, f func(m *metadata, client *rpccalls.Client) (interface{}, error)) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := f(m, client)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runSettings(c *cli.Context) error {
	return query(c, func(_ *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.Settings()
	})
}

func runRegistry(c *cli.Context) error {
	return query(c, func(_ *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.Registry()
	})
}

func runListing(c *cli.Context) error {
	return query(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		asset, err := getAsset(c.String("asset"))
		if nil != err {
			return nil, err
		}
		seller, err := getAccountOrSigner(c.String("seller"), m.key)
		if nil != err {
			return nil, err
		}
		return client.Listing(asset, seller)
	})
}

func runListings(c *cli.Context) error {
	return query(c, func(_ *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.Listings(c.Uint64("start"), c.Int("count"))
	})
}

func runCustody(c *cli.Context) error {
	return query(c, func(m *metadata, client *rpccalls.Client) (interface{}, error) {
		asset, err := getAsset(c.String("asset"))
		if nil != err {
			return nil, err
		}
		owner, err := getAccountOrSigner(c.String("owner"), m.key)
		if nil != err {
			return nil, err
		}
		return client.Custody(owner, asset)
	})
}

func runAsset(c *cli.Context) error {
	return query(c, func(_ *metadata, client *rpccalls.Client) (interface{}, error) {
		asset, err := getAsset(c.String("asset"))
		if nil != err {
			return nil, err
		}
		return client.Asset(asset)
	})
}

func runInfo(c *cli.Context) error {
	return query(c, func(_ *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.Info()
	})
}

func runCheck(c *cli.Context) error {
	return query(c, func(_ *metadata, client *rpccalls.Client) (interface{}, error) {
		return client.Check()
	})
}
