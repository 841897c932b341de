// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/marketd/fault"
)

// test that the marketplace errors belong to the expected classes
func TestClasses(t *testing.T) {
	errorList := []struct {
		err        error
		exists     bool
		invalid    bool
		length     bool
		notFound   bool
		permission bool
		record     bool
	}{
		{fault.AlreadyInitialised, true, false, false, false, false, false},
		{fault.AlreadyListed, true, false, false, false, false, false},
		{fault.FeeOutOfRange, false, true, false, false, false, false},
		{fault.InvalidTokenAmount, false, true, false, false, false, false},
		{fault.RegistryFull, false, false, true, false, false, false},
		{fault.RegistrySpaceExhausted, false, false, true, false, false, false},
		{fault.NotInitialised, false, false, false, true, false, false},
		{fault.NotListed, false, false, false, true, false, false},
		{fault.Unauthorised, false, false, false, false, true, false},
		{fault.InvalidCallerData, false, false, false, false, true, false},
		{fault.RegistryCorrupt, false, false, false, false, false, true},
		{fault.EscrowMismatch, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrPermission(err) != e.permission {
			t.Errorf("%d: expected 'permission' == %v for err = %v", i, e.permission, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}

// errors must compare by identity, not by message
func TestIdentity(t *testing.T) {
	if fault.NotListed == error(fault.NotFoundError("asset is not listed")) {
		t.Error("distinct messages compared equal")
	}
	var err error = fault.NotListed
	if err != fault.NotListed {
		t.Error("instance does not compare equal to itself")
	}
}
