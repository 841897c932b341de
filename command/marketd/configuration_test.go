// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/marketd/address"
	"github.com/bitmark-inc/marketd/chain"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/rpc/certificate"
	"github.com/bitmark-inc/marketd/rpc/fixtures"
)

const configTemplate = `
local M = {}
M.data_directory = "%s"
M.chain = "%s"
M.deployer = "%s"
M.disable_tls = %t
M.client_rpc = {
    maximum_connections = 5,
    listen = { "127.0.0.1:2130" },
}
M.publishing = {
    broadcast = { "127.0.0.1:2135" },
    private_key = "",
    public_key = "",
}
M.logging = {
    size = 4096,
    count = 2,
    levels = { DEFAULT = "info" },
}
return M
`

func writeConfiguration(t *testing.T, dir string, chainName string, deployer string, disableTLS bool) string {
	fileName := filepath.Join(dir, "marketd.conf")
	text := fmt.Sprintf(configTemplate, dir, chainName, deployer, disableTLS)
	err := ioutil.WriteFile(fileName, []byte(text), 0600)
	require.Nil(t, err, "write configuration")
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	dir, err := ioutil.TempDir("", "marketd")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	deployer := fixtures.MakeKey(0x01).Account()
	fileName := writeConfiguration(t, dir, "Local", deployer.String(), true)

	options, err := getConfiguration(fileName, nil)
	require.Nil(t, err, "get configuration")

	assert.Equal(t, chain.Local, options.Chain, "chain")
	assert.Equal(t, filepath.Join(dir, "data", defaultLocalDatabase), options.Database.Name, "database")
	assert.Equal(t, filepath.Join(dir, "log"), options.Logging.Directory, "log directory")
	assert.Equal(t, uint64(5), options.ClientRPC.MaximumConnections, "connections")
	assert.Equal(t, []string{"127.0.0.1:2130"}, options.ClientRPC.Listen, "listen")
	assert.True(t, options.Publishing.Enabled(), "publishing")
	assert.False(t, options.Publishing.Encrypted(), "publishing keys")
	assert.EqualValues(t, 2, options.Logging.Count, "log count")

	conf, err := options.market()
	require.Nil(t, err, "market configuration")
	assert.Equal(t, address.Program(defaultProgram), conf.Program, "program")
	assert.Equal(t, address.Program(defaultCustodyProgram), conf.CustodyProgram, "custody program")
	assert.True(t, conf.Testing, "testing")
	assert.True(t, deployer.Equal(conf.Deployer), "deployer")
}

func TestGetConfigurationCertificateFiles(t *testing.T) {
	dir, err := ioutil.TempDir("", "marketd")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := writeConfiguration(t, dir, chain.Testing, "", false)

	// certificate files not yet created
	_, err = getConfiguration(fileName, nil)
	assert.NotNil(t, err, "missing certificate accepted")

	err = certificate.MakeSelfSigned("test", filepath.Join(dir, defaultCertificateFile), filepath.Join(dir, defaultKeyFile), false, nil)
	require.Nil(t, err, "make certificate")

	options, err := getConfiguration(fileName, nil)
	require.Nil(t, err, "get configuration")
	assert.Contains(t, options.ClientRPC.Certificate, pemPrefix, "certificate text")
	assert.Contains(t, options.ClientRPC.PrivateKey, pemPrefix, "key text")

	_, err = options.market()
	assert.Equal(t, fault.MissingParameters, err, "blank deployer")
}

func TestGetConfigurationErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "marketd")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := writeConfiguration(t, dir, "bitcoin", "", true)
	_, err = getConfiguration(fileName, nil)
	assert.NotNil(t, err, "unknown chain accepted")

	fileName = writeConfiguration(t, dir, chain.Local, "", true)
	err = ioutil.WriteFile(fileName, []byte(`return { data_directory = "" }`), 0600)
	require.Nil(t, err, "rewrite configuration")
	_, err = getConfiguration(fileName, nil)
	assert.NotNil(t, err, "blank data directory accepted")
}

func TestMarketConfigurationNetwork(t *testing.T) {
	dir, err := ioutil.TempDir("", "marketd")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	// testing key on the live chain
	deployer := fixtures.MakeKey(0x02).Account()
	fileName := writeConfiguration(t, dir, chain.Live, deployer.String(), true)

	options, err := getConfiguration(fileName, nil)
	require.Nil(t, err, "get configuration")

	_, err = options.market()
	assert.Equal(t, fault.NotTestingAccount, err, "network mismatch")

	options.Deployer = "not-base58-0OIl"
	_, err = options.market()
	assert.NotNil(t, err, "invalid deployer accepted")
}
