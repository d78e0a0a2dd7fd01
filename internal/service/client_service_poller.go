// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-messenger/internal/logger"
)

// ThreadPoller drives the periodic synchronisation of an open conversation.
// Each tick runs a sync cycle in its own goroutine, so a slow cycle never
// delays the next one; cycles may overlap and the last snapshot to arrive
// wins. Trigger runs an extra cycle out of band, used right after a send.
type ThreadPoller struct {
	thread   ThreadService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	jobCtx context.Context
	cancel context.CancelFunc
}

// NewThreadPoller returns a poller running one cycle per interval.
func NewThreadPoller(thread ThreadService, interval time.Duration, logger *logger.Logger) *ThreadPoller {
	return &ThreadPoller{thread: thread, interval: interval, logger: logger}
}

// Start begins polling conversationID, delivering each snapshot to deliver.
// An immediate first cycle runs before the ticker starts, so the view is
// populated without waiting a full interval. Any previous polling session is
// stopped first; deliveries of a stopped session are dropped, even ones
// already in flight.
func (p *ThreadPoller) Start(ctx context.Context, conversationID string, deliver func(ThreadSnapshot)) {
	p.Stop()

	jobCtx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	p.jobCtx = jobCtx
	p.cancel = cancel
	p.mu.Unlock()

	go p.runCycle(jobCtx, conversationID, deliver)

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-ticker.C:
				go p.runCycle(jobCtx, conversationID, deliver)
			}
		}
	}()
}

// Trigger runs one extra cycle immediately. A no-op when the poller is not
// started.
func (p *ThreadPoller) Trigger(conversationID string, deliver func(ThreadSnapshot)) {
	p.mu.Lock()
	jobCtx := p.jobCtx
	p.mu.Unlock()
	if jobCtx == nil {
		return
	}

	go p.runCycle(jobCtx, conversationID, deliver)
}

// Stop ends the current polling session. In-flight requests are not
// cancelled; their results are discarded on arrival. Idempotent.
func (p *ThreadPoller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
		p.jobCtx = nil
	}
}

func (p *ThreadPoller) runCycle(ctx context.Context, conversationID string, deliver func(ThreadSnapshot)) {
	snapshot, err := p.thread.Sync(context.Background(), conversationID)
	if err != nil {
		// Transient failures are skipped; the next tick retries.
		p.logger.Err(err).Str("func", "runCycle").Msg("sync cycle failed")
		return
	}

	// Teardown guard: a snapshot arriving after Stop must not reach a view
	// that has already moved on.
	select {
	case <-ctx.Done():
	default:
		deliver(snapshot)
	}
}
