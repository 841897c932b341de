// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package publish - broadcast committed marketplace events
//
// each event is sent on a ZeroMQ PUB socket as a multipart message:
//
//	frame 0: command (initialise, modify, grow, issue, list, delist)
//	frame 1: JSON payload
//
// subscribers may filter on the command frame prefix
package publish
