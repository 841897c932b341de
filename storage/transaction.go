// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - all-or-nothing group of pool writes
type Transaction interface {
	Begin() error
	Put(Handle, []byte, []byte)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	Has(Handle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

// TransactionData - transaction over a single database
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - start staging writes
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// Put - stage a write to a pool
func (t *TransactionData) Put(h Handle, key []byte, value []byte) {
	h.Put(key, value)
}

// Delete - stage removal of a key from a pool
func (t *TransactionData) Delete(h Handle, key []byte) {
	h.Remove(key)
}

// Get - read through the staged writes
func (t *TransactionData) Get(h Handle, key []byte) []byte {
	return h.Get(key)
}

// Has - check through the staged writes
func (t *TransactionData) Has(h Handle, key []byte) bool {
	return h.Has(key)
}

// Commit - write all staged data with a single database write and
// release the transaction
//
// on a write error nothing is persisted and the staged data is discarded
func (t *TransactionData) Commit() error {
	err := t.access.Commit()
	t.access.Abort()
	return err
}

// Abort - discard all staged data and release the transaction
func (t *TransactionData) Abort() {
	t.access.Abort()
}

// InUse - true while a transaction is open
func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}
