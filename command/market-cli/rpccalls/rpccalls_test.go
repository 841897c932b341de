// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"net"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/address"
	"github.com/bitmark-inc/marketd/chain"
	"github.com/bitmark-inc/marketd/command/market-cli/rpccalls"
	"github.com/bitmark-inc/marketd/counter"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/instruction"
	"github.com/bitmark-inc/marketd/listing"
	"github.com/bitmark-inc/marketd/registry"
	"github.com/bitmark-inc/marketd/rpc/fixtures"
	"github.com/bitmark-inc/marketd/rpc/mocks"
	"github.com/bitmark-inc/marketd/rpc/server"
	"github.com/bitmark-inc/marketd/settings"
)

type marketplace struct {
	*mocks.MockOperations
	*mocks.MockQueries
	*mocks.MockChecker
}

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// serve a mocked marketplace on a local port
func serve(t *testing.T) (marketplace, *rpccalls.Client, string, func()) {
	ctl := gomock.NewController(t)

	m := marketplace{
		MockOperations: mocks.NewMockOperations(ctl),
		MockQueries:    mocks.NewMockQueries(ctl),
		MockChecker:    mocks.NewMockChecker(ctl),
	}

	c := counter.Counter(0)
	r := server.Create(logger.New(fixtures.LogCategory), "1.0", chain.Local, true, &c, m)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.Nil(t, err, "listen")
	go r.Accept(l)

	client, err := rpccalls.NewClient(l.Addr().String(), false, false, nil)
	require.Nil(t, err, "client")

	return m, client, l.Addr().String(), func() {
		client.Close()
		l.Close()
		ctl.Finish()
	}
}

func TestInitialise(t *testing.T) {
	m, client, _, teardown := serve(t)
	defer teardown()

	deployer := fixtures.MakeKey(0x01)
	admin := fixtures.MakeKey(0x02).Account()
	treasury := fixtures.MakeKey(0x03).Account()

	expected := settings.Settings{
		Administrator:      admin,
		Treasury:           treasury,
		AssetSaleFeeRate:   5,
		GeneralSaleFeeRate: 5,
	}
	settingsAddress := address.Address{1}
	registryAddress := address.Address{2}

	m.MockOperations.EXPECT().Initialise(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.MockOperations.EXPECT().SettingsAddress().Return(settingsAddress).Times(1)
	m.MockOperations.EXPECT().RegistryAddress().Return(registryAddress).Times(1)

	reply, err := client.Initialise(deployer, instruction.Initialise{
		Administrator:      admin,
		Treasury:           treasury,
		AssetSaleFeeRate:   5,
		GeneralSaleFeeRate: 5,
		Nonce:              1,
	})
	require.Nil(t, err, "initialise")
	assert.Equal(t, settingsAddress, reply.Address, "settings address")
	assert.Equal(t, registryAddress, reply.Registry, "registry address")
	assert.True(t, expected.Administrator.Equal(reply.Settings.Administrator), "administrator")
	assert.Equal(t, expected.AssetSaleFeeRate, reply.Settings.AssetSaleFeeRate, "fee")
}

func TestListAndDelist(t *testing.T) {
	m, client, _, teardown := serve(t)
	defer teardown()

	sellerKey := fixtures.MakeKey(0x04)
	seller := sellerKey.Account()
	asset := address.Address{7}
	listingAddress := address.Address{8}
	custodyAddress := address.Address{9}

	l := &listing.Listing{
		Seller: seller,
		Asset:  asset,
		Price:  1000,
	}

	m.MockOperations.EXPECT().List(gomock.Any(), asset, uint64(1000)).Return(l, nil).Times(1)
	m.MockOperations.EXPECT().ListingAddress(asset, gomock.Any()).Return(listingAddress).Times(2)
	m.MockOperations.EXPECT().CustodyAddress(gomock.Any(), asset).Return(custodyAddress).Times(2)

	reply, err := client.List(sellerKey, asset, 1000, 2)
	require.Nil(t, err, "list")
	assert.Equal(t, listingAddress, reply.Address, "listing address")
	assert.Equal(t, custodyAddress, reply.Custody, "custody address")
	assert.Equal(t, uint64(1000), reply.Listing.Price, "price")

	m.MockOperations.EXPECT().Delist(gomock.Any(), gomock.Any(), asset).Return(nil).Times(1)
	reply, err = client.Delist(sellerKey, seller, asset, 3)
	require.Nil(t, err, "delist")
	assert.Equal(t, listingAddress, reply.Address, "delisted address")
	assert.Nil(t, reply.Listing, "listing after delist")

	m.MockOperations.EXPECT().Delist(gomock.Any(), gomock.Any(), asset).Return(fault.NotListed).Times(1)
	_, err = client.Delist(sellerKey, seller, asset, 4)
	require.NotNil(t, err, "second delist")
	assert.Equal(t, fault.NotListed.Error(), err.Error(), "second delist error")
}

func TestQueries(t *testing.T) {
	m, client, _, teardown := serve(t)
	defer teardown()

	r := registry.New()
	seller := fixtures.MakeKey(0x04).Account()
	err := r.Append(address.Address{7}, seller)
	require.Nil(t, err, "append")

	m.MockQueries.EXPECT().Registry().Return(r, nil).Times(1)
	reply, err := client.Registry()
	require.Nil(t, err, "registry")
	assert.Equal(t, registry.InitialSpace, int(reply.Space), "space")
	assert.Equal(t, r.Capacity(), reply.Capacity, "capacity")
	assert.Equal(t, 1, len(reply.Entries), "entries")

	m.MockQueries.EXPECT().Listings(uint64(0), 10).Return([]*listing.Listing{}, uint64(0), nil).Times(1)
	all, err := client.Listings(0, 10)
	require.Nil(t, err, "listings")
	assert.Equal(t, 0, len(all.Listings), "listing count")

	m.MockChecker.EXPECT().Check().Return(fault.EscrowMismatch).Times(1)
	check, err := client.Check()
	require.Nil(t, err, "check")
	assert.False(t, check.Consistent, "consistent")
	assert.Equal(t, fault.EscrowMismatch.Error(), check.Error, "check error")

	info, err := client.Info()
	require.Nil(t, err, "info")
	assert.Equal(t, chain.Local, info.Chain, "chain")
}

func TestVerbose(t *testing.T) {
	m, _, listen, teardown := serve(t)
	defer teardown()

	buffer := &bytes.Buffer{}
	client, err := rpccalls.NewClient(listen, false, true, buffer)
	require.Nil(t, err, "verbose client")
	defer client.Close()

	m.MockQueries.EXPECT().Asset(address.Address{5}).Return(nil, fault.AssetNotFound).Times(1)

	_, err = client.Asset(address.Address{5})
	require.NotNil(t, err, "missing asset")
	assert.Equal(t, fault.AssetNotFound.Error(), err.Error(), "asset error")
	assert.Contains(t, buffer.String(), "Listings.Asset request", "trace")
	assert.NotContains(t, buffer.String(), "Listings.Asset reply", "reply trace after error")
}

func TestNoServer(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.Nil(t, err, "listen")
	listen := l.Addr().String()
	l.Close()

	_, err = rpccalls.NewClient(listen, false, false, nil)
	assert.NotNil(t, err, "connected to closed port")
}
