// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/account"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// one self-signed pair shared by all tests of a package
var pair struct {
	sync.Once
	certificate string
	key         string
}

func makePair() {
	pair.Do(func() {
		cert, key, err := certgen.NewTLSCertPair("marketd test", time.Now().Add(24*time.Hour), false, []string{"127.0.0.1"})
		if nil != err {
			panic(fmt.Sprintf("certificate generation error: %s", err))
		}
		pair.certificate = string(cert)
		pair.key = string(key)
	})
}

// Certificate - PEM text of a self-signed test certificate
func Certificate() string {
	makePair()
	return pair.certificate
}

// Key - PEM text of the private key for Certificate
func Key() string {
	makePair()
	return pair.key
}

// MakeKey - a deterministic testing private key
func MakeKey(fill byte) *account.PrivateKey {
	p, err := account.NewPrivateKeyFrom(bytes.NewReader(bytes.Repeat([]byte{fill}, 32)), true)
	if nil != err {
		panic(fmt.Sprintf("generate key error: %s", err))
	}
	return p
}
