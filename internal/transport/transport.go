// SPDX-License-Identifier: MIT

// Package transport serves literal parsing and safe comparison over a
// websocket. Each text frame carries one JSON Request and is answered with one
// JSON Response on the same connection.
package transport

import (
	"context"

	"hyperion/pkg/platform"
)

// Transport defines a generic interface for pushing data to connected peers.
// Implementations should be thread-safe.
type Transport interface {
	Send(data any) error
	Close() error
}

// Handler evaluates a single request. Implementations must be safe for
// concurrent use; the server calls Handle from one goroutine per connection.
type Handler interface {
	Handle(ctx context.Context, req Request) Response
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, req Request) Response

func (f HandlerFunc) Handle(ctx context.Context, req Request) Response {
	return f(ctx, req)
}

// Operations understood by the evaluator.
const (
	OpParse   = "parse"
	OpCompare = "compare"
	OpInfo    = "info"
)

// Request is a client message.
type Request struct {
	ID string `json:"id,omitempty"`
	Op string `json:"op"`

	// parse
	Kind    string `json:"kind,omitempty"`
	Literal string `json:"literal,omitempty"`

	// compare
	Pred    string       `json:"pred,omitempty"`
	LHS     string       `json:"lhs,omitempty"`
	LHSKind string       `json:"lhs_kind,omitempty"`
	RHS     string       `json:"rhs,omitempty"`
	RHSKind string       `json:"rhs_kind,omitempty"`
	Epsilon *EpsilonSpec `json:"epsilon,omitempty"`
}

// EpsilonSpec is the wire form of compare.Epsilon.
type EpsilonSpec struct {
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// Response answers a Request. Status carries the literal status name for
// parse failures; Error carries the full diagnostic.
type Response struct {
	ID     string          `json:"id,omitempty"`
	OK     bool            `json:"ok"`
	Status string          `json:"status,omitempty"`
	Value  any             `json:"value,omitempty"`
	Error  string          `json:"error,omitempty"`
	Facts  *platform.Facts `json:"facts,omitempty"`
}

// EventReload is broadcast after the server's handler has been replaced.
const EventReload = "reload"

// Event is pushed to every connected client, outside any request.
type Event struct {
	Event string `json:"event"`
	// Epsilons lists the default tolerances now in effect, empty for the
	// machine epsilon fallback.
	Epsilons []string `json:"epsilons,omitempty"`
}
