// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/util"
)

// start every message with the tag and the caller so that a signature
// cannot be reused for a different operation or a different caller
func start(tag TagType, caller *account.Account) []byte {
	message := util.ToVarint64(uint64(tag))
	return util.AppendBytes(message, caller.Bytes())
}

func appendAccount(buffer []byte, a *account.Account) []byte {
	return util.AppendBytes(buffer, a.Bytes())
}

// optional fields are preceded by a presence byte
func appendOptionalAccount(buffer []byte, a *account.Account) []byte {
	if nil == a {
		return append(buffer, 0x00)
	}
	return appendAccount(append(buffer, 0x01), a)
}

func appendOptionalUint64(buffer []byte, n *uint64) []byte {
	if nil == n {
		return append(buffer, 0x00)
	}
	return util.AppendUint64(append(buffer, 0x01), *n)
}

// check the signature over the message and append it
//
// NOTE: returns the "unsigned" message on signature failure, for
// debugging/testing
func finish(message []byte, caller *account.Account, signature account.Signature) (Packed, error) {
	if len(signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}
	err := caller.CheckSignature(message, signature)
	if nil != err {
		return message, err
	}
	// Signature Last
	return util.AppendBytes(message, signature), nil
}

func checkCaller(caller *account.Account) error {
	if nil == caller || nil == caller.AccountInterface {
		return fault.MissingParameters
	}
	return nil
}

// Pack - Varint64(tag) ++ caller ++ administrator ++ treasury ++ fees ++ nonce ++ signature
func (i *Initialise) Pack(caller *account.Account) (Packed, error) {
	message, err := i.message(caller)
	if nil != err {
		return nil, err
	}
	return finish(message, caller, i.Signature)
}

// Sign - fill in the signature using the caller's private key
func (i *Initialise) Sign(key *account.PrivateKey) error {
	message, err := i.message(key.Account())
	if nil != err {
		return err
	}
	i.Signature = key.Sign(message)
	return nil
}

func (i *Initialise) message(caller *account.Account) ([]byte, error) {
	if err := checkCaller(caller); nil != err {
		return nil, err
	}
	if nil == i.Administrator || nil == i.Treasury {
		return nil, fault.MissingParameters
	}
	message := start(InitialiseTag, caller)
	message = appendAccount(message, i.Administrator)
	message = appendAccount(message, i.Treasury)
	message = util.AppendUint64(message, i.AssetSaleFeeRate)
	message = util.AppendUint64(message, i.GeneralSaleFeeRate)
	return util.AppendUint64(message, i.Nonce), nil
}

// Pack - Varint64(tag) ++ caller ++ optional fields ++ nonce ++ signature
func (m *ModifySettings) Pack(caller *account.Account) (Packed, error) {
	message, err := m.message(caller)
	if nil != err {
		return nil, err
	}
	return finish(message, caller, m.Signature)
}

// Sign - fill in the signature using the caller's private key
func (m *ModifySettings) Sign(key *account.PrivateKey) error {
	message, err := m.message(key.Account())
	if nil != err {
		return err
	}
	m.Signature = key.Sign(message)
	return nil
}

func (m *ModifySettings) message(caller *account.Account) ([]byte, error) {
	if err := checkCaller(caller); nil != err {
		return nil, err
	}
	message := start(ModifySettingsTag, caller)
	message = appendOptionalAccount(message, m.Administrator)
	message = appendOptionalAccount(message, m.Treasury)
	message = appendOptionalUint64(message, m.AssetSaleFeeRate)
	message = appendOptionalUint64(message, m.GeneralSaleFeeRate)
	return util.AppendUint64(message, m.Nonce), nil
}

// Pack - Varint64(tag) ++ caller ++ nonce ++ signature
func (g *IncreaseCapacity) Pack(caller *account.Account) (Packed, error) {
	message, err := g.message(caller)
	if nil != err {
		return nil, err
	}
	return finish(message, caller, g.Signature)
}

// Sign - fill in the signature using the caller's private key
func (g *IncreaseCapacity) Sign(key *account.PrivateKey) error {
	message, err := g.message(key.Account())
	if nil != err {
		return err
	}
	g.Signature = key.Sign(message)
	return nil
}

func (g *IncreaseCapacity) message(caller *account.Account) ([]byte, error) {
	if err := checkCaller(caller); nil != err {
		return nil, err
	}
	message := start(IncreaseCapacityTag, caller)
	return util.AppendUint64(message, g.Nonce), nil
}

// Pack - Varint64(tag) ++ caller ++ name ++ symbol ++ nonce ++ signature
func (i *Issue) Pack(caller *account.Account) (Packed, error) {
	message, err := i.message(caller)
	if nil != err {
		return nil, err
	}
	return finish(message, caller, i.Signature)
}

// Sign - fill in the signature using the caller's private key
func (i *Issue) Sign(key *account.PrivateKey) error {
	message, err := i.message(key.Account())
	if nil != err {
		return err
	}
	i.Signature = key.Sign(message)
	return nil
}

func (i *Issue) message(caller *account.Account) ([]byte, error) {
	if err := checkCaller(caller); nil != err {
		return nil, err
	}
	message := start(IssueTag, caller)
	message = util.AppendString(message, i.Name)
	message = util.AppendString(message, i.Symbol)
	return util.AppendUint64(message, i.Nonce), nil
}

// Pack - Varint64(tag) ++ caller ++ asset ++ price ++ nonce ++ signature
func (l *List) Pack(caller *account.Account) (Packed, error) {
	message, err := l.message(caller)
	if nil != err {
		return nil, err
	}
	return finish(message, caller, l.Signature)
}

// Sign - fill in the signature using the caller's private key
func (l *List) Sign(key *account.PrivateKey) error {
	message, err := l.message(key.Account())
	if nil != err {
		return err
	}
	l.Signature = key.Sign(message)
	return nil
}

func (l *List) message(caller *account.Account) ([]byte, error) {
	if err := checkCaller(caller); nil != err {
		return nil, err
	}
	message := start(ListTag, caller)
	message = util.AppendBytes(message, l.Asset[:])
	message = util.AppendUint64(message, l.Price)
	return util.AppendUint64(message, l.Nonce), nil
}

// Pack - Varint64(tag) ++ caller ++ seller ++ asset ++ nonce ++ signature
func (d *Delist) Pack(caller *account.Account) (Packed, error) {
	message, err := d.message(caller)
	if nil != err {
		return nil, err
	}
	return finish(message, caller, d.Signature)
}

// Sign - fill in the signature using the caller's private key
func (d *Delist) Sign(key *account.PrivateKey) error {
	message, err := d.message(key.Account())
	if nil != err {
		return err
	}
	d.Signature = key.Sign(message)
	return nil
}

func (d *Delist) message(caller *account.Account) ([]byte, error) {
	if err := checkCaller(caller); nil != err {
		return nil, err
	}
	if nil == d.Seller {
		return nil, fault.MissingParameters
	}
	message := start(DelistTag, caller)
	message = appendAccount(message, d.Seller)
	message = util.AppendBytes(message, d.Asset[:])
	return util.AppendUint64(message, d.Nonce), nil
}
