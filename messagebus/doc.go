// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - a queuing system for events of committed
// marketplace operations
//
// sending never blocks: when a queue is full the message is dropped,
// so a slow consumer cannot stall the marketplace
package messagebus
