// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// market-cli - sign and submit marketplace operations to marketd and
// query its records
//
// every operation is signed locally with the --key private key, the
// daemon only ever sees the public account and the signature
package main
