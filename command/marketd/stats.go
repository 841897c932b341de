// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/marketd/messagebus"
	"github.com/bitmark-inc/marketd/rpc"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodically log memory use, client connections and lost events
func stats(stop <-chan struct{}) {

	log := logger.New("stats")

	ticker := time.NewTicker(statsDelay)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		log.Infof("allocated: %d M  cumulative: %d M  OS virtual: %d M", m.Alloc/mega, m.TotalAlloc/mega, m.Sys/mega)
		log.Infof("rpc connections: %d", rpc.ConnectionCount())

		if dropped := messagebus.Bus.Events.Dropped(); 0 != dropped {
			log.Warnf("events dropped: %d", dropped)
		}
	}
}
