// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/marketd/rpc/node"
)

// Info - request status from marketd
func (client *Client) Info() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := client.call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Check - ask marketd to verify its records
func (client *Client) Check() (*node.CheckReply, error) {
	var reply node.CheckReply
	if err := client.call("Node.Check", &node.CheckArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
