// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/counter"
	"github.com/bitmark-inc/marketd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100

	rateLimitCheck = 1
	rateBurstCheck = 2
)

// Checker - verifies the consistency of stored state
type Checker interface {
	Check() error
}

// Node - type for RPC calls
type Node struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	CheckLimiter *rate.Limiter
	Start        time.Time
	Version      string
	Chain        string
	Checker      Checker
	counter      *counter.Counter
}

func New(log *logger.L, start time.Time, version string, chain string, counter *counter.Counter, checker Checker) *Node {
	return &Node{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitNode, rateBurstNode),
		CheckLimiter: rate.NewLimiter(rateLimitCheck, rateBurstCheck),
		Start:        start,
		Version:      version,
		Chain:        chain,
		Checker:      checker,
		counter:      counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain   string `json:"chain"`
	RPCs    uint64 `json:"rpcs"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Chain = node.Chain
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}

// ---

// CheckArguments - empty arguments for check request
type CheckArguments struct{}

// CheckReply - result of the consistency check
type CheckReply struct {
	Consistent bool   `json:"consistent"`
	Error      string `json:"error,omitempty"`
}

// Check - verify the marketplace records are consistent
//
// an inconsistency is reported in the reply, not as an RPC error
func (node *Node) Check(_ *CheckArguments, reply *CheckReply) error {

	if err := ratelimit.Limit(node.CheckLimiter); nil != err {
		return err
	}

	err := node.Checker.Check()
	if nil != err {
		node.Log.Errorf("check failed: %s", err)
		reply.Consistent = false
		reply.Error = err.Error()
		return nil
	}
	reply.Consistent = true
	return nil
}
