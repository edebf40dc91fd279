// SPDX-License-Identifier: Apache-2.0

// Package client implements the interactive builder application runtime.
//
// It wires the terminal UI flows and the server adapter into a single
// process lifecycle: login, main loop, and the logout/re-login cycle.
package client
