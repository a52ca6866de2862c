// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Chartdate Authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// command line access to the date conversion core
//
// parse, format, convert and validate chart dates from the shell; an
// optional Lua configuration file supplies the default calendar, the
// two digit year anchor and the logging setup.
package main
