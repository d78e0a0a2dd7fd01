// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package presence tracks which users are currently online. Entries expire
// after a configurable TTL, so a client that stops refreshing its presence
// drops back to offline without an explicit signal.
package presence

import "context"

// Tracker records and reports user online status.
type Tracker interface {
	// MarkOnline records userID as online, refreshing the expiry.
	MarkOnline(ctx context.Context, userID string) error
	// IsOnline reports whether userID has a live presence entry.
	IsOnline(ctx context.Context, userID string) (bool, error)
	// MarkOffline drops the presence entry immediately. Idempotent.
	MarkOffline(ctx context.Context, userID string) error
}
