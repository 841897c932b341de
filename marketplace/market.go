// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/address"
	"github.com/bitmark-inc/marketd/storage"
)

// Handles - the storage pools used by the marketplace
type Handles struct {
	Settings storage.Handle
	Registry storage.Handle
	Listings storage.Handle
	Custody  storage.Handle
	Assets   storage.Handle
}

// Configuration - fixed parameters of a deployment
type Configuration struct {
	Program        address.Address  // owner of settings, registry, listings and assets
	CustodyProgram address.Address  // owner of custody records
	Deployer       *account.Account // only account allowed to initialise
	Testing        bool             // network flag of the program authority
}

// Publisher - destination of events for committed operations
type Publisher interface {
	Send(command string, parameters ...[]byte) bool
}

// Market - the marketplace state machine
type Market struct {
	sync.RWMutex

	log       *logger.L
	conf      Configuration
	handles   Handles
	authority *account.Account
	events    Publisher
}

// New - create a marketplace over a set of storage pools
//
// events may be nil
func New(log *logger.L, conf Configuration, handles Handles, events Publisher) *Market {
	return &Market{
		log:       log,
		conf:      conf,
		handles:   handles,
		authority: address.ProgramAuthority(conf.Program, conf.Testing),
		events:    events,
	}
}

// HandlesFromPool - the marketplace pools of the global storage
func HandlesFromPool() Handles {
	return Handles{
		Settings: storage.Pool.Settings,
		Registry: storage.Pool.Registry,
		Listings: storage.Pool.Listings,
		Custody:  storage.Pool.Custody,
		Assets:   storage.Pool.Assets,
	}
}

// Authority - the account that holds delegation of listed assets
func (m *Market) Authority() *account.Account {
	return m.authority
}

// SettingsAddress - key of the policy settings
func (m *Market) SettingsAddress() address.Address {
	return address.Settings(m.conf.Program)
}

// RegistryAddress - key of the listing registry
func (m *Market) RegistryAddress() address.Address {
	return address.Registry(m.conf.Program)
}

// ListingAddress - key of the listing of an asset by a seller
func (m *Market) ListingAddress(asset address.Address, seller *account.Account) address.Address {
	return address.Listing(m.conf.Program, asset, seller)
}

// CustodyAddress - key of the custody record of an asset held by an owner
func (m *Market) CustodyAddress(owner *account.Account, asset address.Address) address.Address {
	return address.Custody(m.conf.CustodyProgram, owner, asset)
}

// AssetIdentity - identity of the asset a creator issues with a nonce
func (m *Market) AssetIdentity(creator *account.Account, nonce uint64) address.Address {
	return address.Asset(m.conf.Program, creator, nonce)
}

// run f inside a storage transaction holding the write lock
//
// commit if f succeeds, otherwise discard everything f staged; the
// lock is released on return so events are queued outside it
func (m *Market) apply(f func(trx storage.Transaction) error) error {
	m.Lock()
	defer m.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		m.log.Errorf("begin transaction error: %s", err)
		return err
	}

	err = f(trx)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		m.log.Criticalf("commit error: %s", err)
	}
	return err
}
