// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/command/market-cli/rpccalls"
)

type metadata struct {
	connect string
	useTLS  bool
	key     *account.PrivateKey
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "market-cli"
	app.Usage = "marketplace client"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " marketd host/IP and port, `HOST:PORT`",
			EnvVar: "MARKET_CONNECT",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " private key to sign operations `BASE58`",
			EnvVar: "MARKET_KEY",
		},
		cli.BoolTFlag{
			Name:  "tls, t",
			Usage: " connect using TLS (--tls=false for plain TCP)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new key pair, nothing is stored",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "live, l",
					Usage: " key for the live chain (default is testing)",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "initialise",
			Usage:     "create the policy settings and the listing registry (deployer only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "administrator, a",
					Value: "",
					Usage: "*administrator `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "treasury, t",
					Value: "",
					Usage: "*treasury `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "asset-fee, f",
					Value: 0,
					Usage: " asset sale fee rate `RATE` 0..10",
				},
				cli.Uint64Flag{
					Name:  "general-fee, g",
					Value: 0,
					Usage: " general sale fee rate `RATE` 0..10",
				},
				nonceFlag,
			},
			Action: runInitialise,
		},
		{
			Name:      "modify",
			Usage:     "change some of the policy settings (administrator only)",
			ArgsUsage: "\n   (omitted options are unchanged)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "administrator, a",
					Value: "",
					Usage: " new administrator `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "treasury, t",
					Value: "",
					Usage: " new treasury `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "asset-fee, f",
					Value: "",
					Usage: " new asset sale fee rate `RATE` 0..10",
				},
				cli.StringFlag{
					Name:  "general-fee, g",
					Value: "",
					Usage: " new general sale fee rate `RATE` 0..10",
				},
				nonceFlag,
			},
			Action: runModify,
		},
		{
			Name:      "grow",
			Usage:     "increase the capacity of the listing registry (administrator only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				nonceFlag,
			},
			Action: runGrow,
		},
		{
			Name:      "issue",
			Usage:     "create a unique asset held by the signer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "",
					Usage: "*asset name `STRING`",
				},
				cli.StringFlag{
					Name:  "symbol, s",
					Value: "",
					Usage: "*asset symbol `STRING`",
				},
				nonceFlag,
			},
			Action: runIssue,
		},
		{
			Name:      "list",
			Usage:     "offer an asset for sale",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				assetFlag,
				cli.Uint64Flag{
					Name:  "price, p",
					Value: 0,
					Usage: " sale price `AMOUNT` in the smallest currency unit",
				},
				nonceFlag,
			},
			Action: runList,
		},
		{
			Name:      "delist",
			Usage:     "withdraw an offer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				assetFlag,
				cli.StringFlag{
					Name:  "seller, s",
					Value: "",
					Usage: " seller `ACCOUNT` (default: the signer)",
				},
				nonceFlag,
			},
			Action: runDelist,
		},
		{
			Name:      "settings",
			Usage:     "display the policy settings",
			ArgsUsage: " ",
			Action:    runSettings,
		},
		{
			Name:      "registry",
			Usage:     "display the listing registry",
			ArgsUsage: " ",
			Action:    runRegistry,
		},
		{
			Name:      "listing",
			Usage:     "display a live listing",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				assetFlag,
				cli.StringFlag{
					Name:  "seller, s",
					Value: "",
					Usage: " seller `ACCOUNT` (default: the signer)",
				},
			},
			Action: runListing,
		},
		{
			Name:      "listings",
			Usage:     "display a page of live listings",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " position of first listing `START`",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " number of listings `COUNT` 1..100",
				},
			},
			Action: runListings,
		},
		{
			Name:      "custody",
			Usage:     "display the custody record of an asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				assetFlag,
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `ACCOUNT` (default: the signer)",
				},
			},
			Action: runCustody,
		},
		{
			Name:      "asset",
			Usage:     "display an issued asset",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				assetFlag,
			},
			Action: runAsset,
		},
		{
			Name:      "info",
			Usage:     "display marketd status",
			ArgsUsage: " ",
			Action:    runInfo,
		},
		{
			Name:      "check",
			Usage:     "ask marketd to verify its records",
			ArgsUsage: " ",
			Action:    runCheck,
		},
		{
			Name:      "version",
			Usage:     "display market-cli version",
			ArgsUsage: " ",
			Action:    runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		m := &metadata{
			connect: c.GlobalString("connect"),
			useTLS:  c.GlobalBoolT("tls"),
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		if key := c.GlobalString("key"); "" != key {
			privateKey, err := account.PrivateKeyFromBase58(key)
			if nil != err {
				return fmt.Errorf("invalid key: %s", err)
			}
			m.key = privateKey
		}

		if m.verbose {
			fmt.Fprintf(m.e, "connect: %q  TLS: %t\n", m.connect, m.useTLS)
		}

		c.App.Metadata["config"] = m
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

// connect to the daemon
func (m *metadata) client() (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.useTLS, m.verbose, m.e)
}

// the signing key is needed by every operation
func (m *metadata) signer() (*account.PrivateKey, error) {
	if nil == m.key {
		return nil, ErrMissingKey
	}
	return m.key, nil
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
