// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/counter"
	"github.com/bitmark-inc/marketd/rpc/listings"
	"github.com/bitmark-inc/marketd/rpc/market"
	"github.com/bitmark-inc/marketd/rpc/node"
)

// Marketplace - everything the services need from the marketplace
type Marketplace interface {
	market.Operations
	listings.Queries
	node.Checker
}

// Create - an RPC server with all services registered
func Create(log *logger.L, version string, chainName string, isTesting bool, rpcCount *counter.Counter, m Marketplace) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(market.New(log, m, isTesting))
	_ = server.Register(listings.New(log, m))
	_ = server.Register(node.New(log, start, version, chainName, rpcCount, m))

	return server
}
