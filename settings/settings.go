// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package settings - the marketplace policy: who administers it,
// where fees go and what the fee rates are
package settings

import (
	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/record"
)

// MaximumFee - highest allowed fee rate
const MaximumFee = 10

// Settings - the policy singleton
type Settings struct {
	Administrator      *account.Account `json:"administrator"`      // base58
	Treasury           *account.Account `json:"treasury"`           // base58
	AssetSaleFeeRate   uint64           `json:"assetSaleFeeRate"`   // 0..MaximumFee
	GeneralSaleFeeRate uint64           `json:"generalSaleFeeRate"` // 0..MaximumFee
}

// Delta - partial update, nil fields are left unchanged
type Delta struct {
	Administrator      *account.Account `json:"administrator,omitempty"`
	Treasury           *account.Account `json:"treasury,omitempty"`
	AssetSaleFeeRate   *uint64          `json:"assetSaleFeeRate,omitempty"`
	GeneralSaleFeeRate *uint64          `json:"generalSaleFeeRate,omitempty"`
}

// CheckFee - a fee rate must not exceed MaximumFee
func CheckFee(rate uint64) error {
	if rate > MaximumFee {
		return fault.FeeOutOfRange
	}
	return nil
}

// Validate - check a complete settings record
func (s *Settings) Validate() error {
	if nil == s.Administrator || nil == s.Treasury {
		return fault.MissingParameters
	}
	if err := CheckFee(s.AssetSaleFeeRate); nil != err {
		return err
	}
	return CheckFee(s.GeneralSaleFeeRate)
}

// Validate - check only the supplied fields
func (d *Delta) Validate() error {
	if nil != d.AssetSaleFeeRate {
		if err := CheckFee(*d.AssetSaleFeeRate); nil != err {
			return err
		}
	}
	if nil != d.GeneralSaleFeeRate {
		if err := CheckFee(*d.GeneralSaleFeeRate); nil != err {
			return err
		}
	}
	return nil
}

// IsEmpty - true if nothing would change
func (d *Delta) IsEmpty() bool {
	return nil == d.Administrator &&
		nil == d.Treasury &&
		nil == d.AssetSaleFeeRate &&
		nil == d.GeneralSaleFeeRate
}

// Apply - return a copy of the settings with the delta applied
func (s Settings) Apply(d *Delta) Settings {
	if nil != d.Administrator {
		s.Administrator = d.Administrator
	}
	if nil != d.Treasury {
		s.Treasury = d.Treasury
	}
	if nil != d.AssetSaleFeeRate {
		s.AssetSaleFeeRate = *d.AssetSaleFeeRate
	}
	if nil != d.GeneralSaleFeeRate {
		s.GeneralSaleFeeRate = *d.GeneralSaleFeeRate
	}
	return s
}

// Pack - Varint64(tag) ++ administrator ++ treasury ++ asset fee ++ general fee
func (s *Settings) Pack() ([]byte, error) {
	if err := s.Validate(); nil != err {
		return nil, err
	}
	packed := record.Start(record.SettingsTag)
	packed = record.AppendAccount(packed, s.Administrator)
	packed = record.AppendAccount(packed, s.Treasury)
	packed = append(packed, byte(s.AssetSaleFeeRate), byte(s.GeneralSaleFeeRate))
	return packed, nil
}

// Unpack - decode a packed settings record
func Unpack(packed []byte) (*Settings, error) {
	u, err := record.Open(packed, record.SettingsTag)
	if nil != err {
		return nil, err
	}

	administrator, err := record.ReadAccount(u)
	if nil != err {
		return nil, err
	}
	treasury, err := record.ReadAccount(u)
	if nil != err {
		return nil, err
	}

	s := &Settings{
		Administrator:      administrator,
		Treasury:           treasury,
		AssetSaleFeeRate:   uint64(u.Byte()),
		GeneralSaleFeeRate: uint64(u.Byte()),
	}
	if err := u.Done(); nil != err {
		return nil, err
	}
	return s, nil
}
