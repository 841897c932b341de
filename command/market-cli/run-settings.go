// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/marketd/instruction"
)

func runInitialise(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := m.signer()
	if nil != err {
		return err
	}
	administrator, err := getAccount(c.String("administrator"))
	if nil != err {
		return err
	}
	treasury, err := getAccount(c.String("treasury"))
	if nil != err {
		return err
	}

	i := instruction.Initialise{
		Administrator:      administrator,
		Treasury:           treasury,
		AssetSaleFeeRate:   c.Uint64("asset-fee"),
		GeneralSaleFeeRate: c.Uint64("general-fee"),
		Nonce:              getNonce(c),
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Initialise(key, i)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runModify(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := m.signer()
	if nil != err {
		return err
	}

	modify := instruction.ModifySettings{
		Nonce: getNonce(c),
	}
	if modify.Administrator, err = getOptionalAccount(c.String("administrator")); nil != err {
		return err
	}
	if modify.Treasury, err = getOptionalAccount(c.String("treasury")); nil != err {
		return err
	}
	if modify.AssetSaleFeeRate, err = getOptionalRate(c.String("asset-fee")); nil != err {
		return err
	}
	if modify.GeneralSaleFeeRate, err = getOptionalRate(c.String("general-fee")); nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.ModifySettings(key, modify)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runGrow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := m.signer()
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.IncreaseCapacity(key, getNonce(c))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
