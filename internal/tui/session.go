// SPDX-License-Identifier: Apache-2.0

package tui

import "sync/atomic"

var sessionUserID atomic.Value // string

func setSessionUserID(userID string) {
	sessionUserID.Store(userID)
}

func getSessionUserID() string {
	v, _ := sessionUserID.Load().(string)
	return v
}

func clearSessionUserID() {
	sessionUserID.Store("")
}
