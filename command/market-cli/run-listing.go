// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/marketd/rpc/market"
)

type issueReply struct {
	market.IssueReply
	Nonce uint64 `json:"nonce,string"`
}

func runIssue(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := m.signer()
	if nil != err {
		return err
	}

	name := strings.TrimSpace(c.String("name"))
	symbol := strings.TrimSpace(c.String("symbol"))
	if "" == name || "" == symbol {
		return ErrMissingNameOrSymbol
	}
	nonce := getNonce(c)

	// the nonce selects the asset identity
	if m.verbose {
		fmt.Fprintf(m.e, "issue: %q  nonce: %d\n", name, nonce)
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Issue(key, name, symbol, nonce)
	if nil != err {
		return err
	}
	return printJson(m.w, issueReply{
		IssueReply: *reply,
		Nonce:      nonce,
	})
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := m.signer()
	if nil != err {
		return err
	}
	asset, err := getAsset(c.String("asset"))
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.List(key, asset, c.Uint64("price"), getNonce(c))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runDelist(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := m.signer()
	if nil != err {
		return err
	}
	asset, err := getAsset(c.String("asset"))
	if nil != err {
		return err
	}
	seller, err := getAccountOrSigner(c.String("seller"), key)
	if nil != err {
		return err
	}

	client, err := m.client()
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Delist(key, seller, asset, getNonce(c))
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
