// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package marketplace

import (
	"encoding/json"

	"github.com/bitmark-inc/marketd/account"
	"github.com/bitmark-inc/marketd/address"
)

// event commands
const (
	eventInitialise = "initialise"
	eventModify     = "modify"
	eventGrow       = "grow"
	eventIssue      = "issue"
	eventList       = "list"
	eventDelist     = "delist"
)

type capacityEvent struct {
	Space    uint64 `json:"space"`
	Capacity int    `json:"capacity"`
	Count    int    `json:"count"`
}

type issueEvent struct {
	Asset   address.Address  `json:"asset"`
	Creator *account.Account `json:"creator"`
	Name    string           `json:"name"`
	Symbol  string           `json:"symbol"`
}

type delistEvent struct {
	Asset  address.Address  `json:"asset"`
	Seller *account.Account `json:"seller"`
}

// queue an event for a committed operation
//
// a full queue drops the event, the operation has already succeeded
func (m *Market) publish(command string, item interface{}) {
	if nil == m.events {
		return
	}
	data, err := json.Marshal(item)
	if nil != err {
		m.log.Errorf("event: %s  marshal error: %s", command, err)
		return
	}
	if !m.events.Send(command, data) {
		m.log.Warnf("event: %s  dropped", command)
	}
}
