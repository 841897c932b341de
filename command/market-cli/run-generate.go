// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/marketd/account"
)

type generateReply struct {
	Account    string `json:"account"`
	PrivateKey string `json:"privateKey"`
	Testing    bool   `json:"testing"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	testing := !c.Bool("live")
	privateKey, err := account.NewPrivateKey(testing)
	if nil != err {
		return err
	}

	return printJson(m.w, generateReply{
		Account:    privateKey.Account().String(),
		PrivateKey: privateKey.String(),
		Testing:    testing,
	})
}
