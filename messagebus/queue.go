// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"reflect"
	"strconv"
	"sync/atomic"
)

// Message - packed message to transmit
type Message struct {
	Command    string   // type of packed data
	Parameters [][]byte // array of parameters
}

// QueueT - a bounded queue
type QueueT struct {
	c       chan Message
	dropped uint64
}

// exported message queues
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type busses struct {
	Events    *QueueT `size:"1000"` // committed operations to publish
	TestQueue *QueueT `size:"50"`   // for testing use
}

// Bus - all available message queues
var Bus busses

// create all queues
func init() {
	// this will be a struct type
	busType := reflect.TypeOf(Bus)

	// get write access by using pointer + Elem()
	busValue := reflect.ValueOf(&Bus).Elem()

	// scan each field
	for i := 0; i < busType.NumField(); i += 1 {

		fieldInfo := busType.Field(i)

		sizeTag := fieldInfo.Tag.Get("size")
		queueSize, err := strconv.Atoi(sizeTag)
		if nil != err || queueSize <= 0 {
			panic("messagebus: " + fieldInfo.Name + " invalid size: " + sizeTag)
		}

		q := &QueueT{
			c: make(chan Message, queueSize),
		}
		busValue.Field(i).Set(reflect.ValueOf(q))
	}
}

// Send - queue a message, dropping it if the queue is full
//
// returns false if the message was dropped
func (queue *QueueT) Send(command string, parameters ...[]byte) bool {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}
	select {
	case queue.c <- m:
		return true
	default:
		atomic.AddUint64(&queue.dropped, 1)
		return false
	}
}

// Chan - channel to read from
func (queue *QueueT) Chan() <-chan Message {
	return queue.c
}

// Dropped - number of messages discarded because the queue was full
func (queue *QueueT) Dropped() uint64 {
	return atomic.LoadUint64(&queue.dropped)
}
