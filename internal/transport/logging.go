// SPDX-License-Identifier: MIT
package transport

import (
	"context"
	"time"

	"hyperion/internal/log"
)

// LoggingHandler decorates a Handler with one log entry per request.
// Failures are logged at warn, everything else at debug.
type LoggingHandler struct {
	next Handler
}

// NewLoggingHandler wraps next.
func NewLoggingHandler(next Handler) *LoggingHandler {
	return &LoggingHandler{next: next}
}

func (h *LoggingHandler) Handle(ctx context.Context, req Request) Response {
	start := time.Now()
	resp := h.next.Handle(ctx, req)

	level := log.LevelDebug
	if !resp.OK {
		level = log.LevelWarn
	}
	e := log.Event(level).Str("op", req.Op).Bool("ok", resp.OK)
	if req.ID != "" {
		e = e.Str("id", req.ID)
	}
	if resp.Status != "" {
		e = e.Str("status", resp.Status)
	}
	if resp.Error != "" {
		e = e.Str("error", resp.Error)
	}
	log.Since(e, start).Msg("transport: request")

	return resp
}

var _ Handler = (*LoggingHandler)(nil)
