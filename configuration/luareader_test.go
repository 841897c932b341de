// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/configuration"
	"github.com/bitmark-inc/marketd/fault"
)

type publishing struct {
	Broadcast []string `gluamapper:"broadcast"`
}

type sample struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Chain         string            `gluamapper:"chain"`
	Connections   uint64            `gluamapper:"maximum_connections"`
	Publishing    publishing        `gluamapper:"publishing"`
	Levels        map[string]string `gluamapper:"levels"`
}

const script = `
local M = {}
M.data_directory = arg[0]:match("(.*/)")
M.chain = chain_override or "local"
M.maximum_connections = 50
M.publishing = {
    broadcast = { "127.0.0.1:2135", "[::1]:2135" }
}
M.levels = {
    DEFAULT = "error",
    marketplace = "info",
}
return M
`

func write(t *testing.T, dir string, text string) string {
	fileName := filepath.Join(dir, "marketd.conf")
	err := ioutil.WriteFile(fileName, []byte(text), 0600)
	assert.Nil(t, err, "write configuration")
	return fileName
}

func TestParseConfigurationFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := write(t, dir, script)

	s := &sample{
		Connections: 10,
	}
	err = configuration.ParseConfigurationFile(fileName, s, nil)
	assert.Nil(t, err, "parse")

	assert.Equal(t, dir+"/", s.DataDirectory, "data directory")
	assert.Equal(t, "local", s.Chain, "chain")
	assert.Equal(t, uint64(50), s.Connections, "connections")
	assert.Equal(t, []string{"127.0.0.1:2135", "[::1]:2135"}, s.Publishing.Broadcast, "broadcast")
	assert.Equal(t, "info", s.Levels["marketplace"], "levels")

	variables := map[string]string{
		"chain_override": "testing",
	}
	err = configuration.ParseConfigurationFile(fileName, s, variables)
	assert.Nil(t, err, "parse with variables")
	assert.Equal(t, "testing", s.Chain, "chain from variable")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	dir, err := ioutil.TempDir("", "configuration")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	err = configuration.ParseConfigurationFile(filepath.Join(dir, "absent.conf"), &sample{}, nil)
	assert.NotNil(t, err, "missing file")

	fileName := write(t, dir, "return {")
	err = configuration.ParseConfigurationFile(fileName, &sample{}, nil)
	assert.NotNil(t, err, "syntax error")

	fileName = write(t, dir, `return "text"`)
	err = configuration.ParseConfigurationFile(fileName, &sample{}, nil)
	assert.Equal(t, fault.MissingParameters, err, "not a table")
}
