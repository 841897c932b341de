// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/chain"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/rpc"
	"github.com/bitmark-inc/marketd/rpc/fixtures"
	"github.com/bitmark-inc/marketd/rpc/listeners"
	"github.com/bitmark-inc/marketd/rpc/mocks"
)

type marketplace struct {
	*mocks.MockOperations
	*mocks.MockQueries
	*mocks.MockChecker
}

func TestInitialise(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := marketplace{
		MockOperations: mocks.NewMockOperations(ctl),
		MockQueries:    mocks.NewMockQueries(ctl),
		MockChecker:    mocks.NewMockChecker(ctl),
	}

	port := 30000 + rand.Intn(30000)
	listen := fmt.Sprintf("127.0.0.1:%d", port)

	rpcConfig := listeners.RPCConfiguration{
		MaximumConnections: 100,
		Listen:             []string{listen},
		Certificate:        fixtures.Certificate(),
		PrivateKey:         fixtures.Key(),
	}
	options := rpc.Options{
		Version: "1.0",
		Chain:   chain.Local,
	}

	err := rpc.Initialise(&rpcConfig, options, m)
	assert.Nil(t, err, "wrong Initialise")

	err = rpc.Initialise(&rpcConfig, options, m)
	assert.Equal(t, fault.AlreadyInitialised, err, "wrong second Initialise")

	assert.Nil(t, rpc.Finalise(), "wrong Finalise")
	assert.Equal(t, fault.NotInitialised, rpc.Finalise(), "wrong second Finalise")
}

func TestInitialiseBadCertificate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := marketplace{
		MockOperations: mocks.NewMockOperations(ctl),
		MockQueries:    mocks.NewMockQueries(ctl),
		MockChecker:    mocks.NewMockChecker(ctl),
	}

	rpcConfig := listeners.RPCConfiguration{
		MaximumConnections: 100,
		Listen:             []string{"127.0.0.1:1"},
		Certificate:        "bad",
		PrivateKey:         "bad",
	}

	err := rpc.Initialise(&rpcConfig, rpc.Options{Chain: chain.Local}, m)
	assert.NotNil(t, err, "bad certificate accepted")
	assert.Equal(t, fault.NotInitialised, rpc.Finalise(), "initialised after failure")
}
