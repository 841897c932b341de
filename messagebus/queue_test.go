// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/marketd/messagebus"
)

// empty the test queue
func drain() {
	queue := messagebus.Bus.TestQueue.Chan()
	for {
		select {
		case <-queue:
		default:
			return
		}
	}
}

func TestQueue(t *testing.T) {
	drain()

	items := []messagebus.Message{
		{
			Command:    "c1",
			Parameters: [][]byte{[]byte("p1")},
		},
		{
			Command:    "c2",
			Parameters: [][]byte{[]byte("p2"), []byte("p3")},
		},
		{
			Command:    "c3",
			Parameters: nil,
		},
	}

	for _, item := range items {
		ok := messagebus.Bus.TestQueue.Send(item.Command, item.Parameters...)
		assert.True(t, ok, "message dropped: %s", item.Command)
	}

	queue := messagebus.Bus.TestQueue.Chan()
	for _, item := range items {
		received := <-queue
		assert.Equal(t, item.Command, received.Command, "wrong command")
		assert.Equal(t, len(item.Parameters), len(received.Parameters), "wrong parameter count")
	}
}

func TestFullQueueDrops(t *testing.T) {
	drain()

	before := messagebus.Bus.TestQueue.Dropped()

	sent := 0
	for i := 0; i < 100; i += 1 {
		if messagebus.Bus.TestQueue.Send("flood") {
			sent += 1
		}
	}

	assert.Equal(t, 50, sent, "queue size")
	assert.Equal(t, uint64(50), messagebus.Bus.TestQueue.Dropped()-before, "dropped count")

	drain()
	assert.True(t, messagebus.Bus.TestQueue.Send("after"), "send after drain")
	drain()
}
