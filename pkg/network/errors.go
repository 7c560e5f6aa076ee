package network

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	ErrInvalidTopology = errors.New("invalid topology")
	ErrNodeNotFound    = errors.New("node not found")
	ErrDuplicateEdge   = errors.New("duplicate edge")
	ErrInvalidRequest  = errors.New("invalid flow request")
)

// TopologyError provides structured error information for network construction
// failures. It always unwraps to ErrInvalidTopology so callers can test the
// error kind with errors.Is while still seeing which element was rejected.
type TopologyError struct {
	Element string // Element that failed (e.g., "edge", "compute node")
	From    string // Edge tail (if applicable)
	To      string // Edge head (if applicable)
	Node    string // Node id (if applicable)
	Reason  string
}

// Error implements the error interface.
func (e *TopologyError) Error() string {
	if e.From != "" || e.To != "" {
		return fmt.Sprintf("%s %s->%s: %s", e.Element, e.From, e.To, e.Reason)
	}
	if e.Node != "" {
		return fmt.Sprintf("%s %s: %s", e.Element, e.Node, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Element, e.Reason)
}

// Unwrap returns ErrInvalidTopology for error chain support.
func (e *TopologyError) Unwrap() error {
	return ErrInvalidTopology
}
