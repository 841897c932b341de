// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/fault"
	"github.com/bitmark-inc/marketd/record"
	"github.com/bitmark-inc/marketd/util"
)

func TestOpen(t *testing.T) {
	packed := record.Start(record.ListingTag)

	_, err := record.Open(packed, record.ListingTag)
	assert.Nil(t, err, "matching tag")

	_, err = record.Open(packed, record.CustodyTag)
	assert.Equal(t, fault.WrongRecordType, err, "other tag")

	_, err = record.Open(record.Start(record.InvalidTag), record.ListingTag)
	assert.Equal(t, fault.UnknownRecordTag, err, "invalid tag")

	_, err = record.Open(record.Start(record.NullTag), record.ListingTag)
	assert.Equal(t, fault.UnknownRecordTag, err, "null tag")

	_, err = record.Open([]byte{}, record.ListingTag)
	assert.Equal(t, fault.RecordTruncated, err, "empty record")
}

func TestReadAccountTruncated(t *testing.T) {
	u := util.NewUnpacker([]byte{0x21, 0x11})
	_, err := record.ReadAccount(u)
	assert.Equal(t, fault.RecordTruncated, err, "wrong error")
}
