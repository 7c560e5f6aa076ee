package network

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate = validator.New()

// ValidateRequest checks a FlowRequest against a constructed Network: struct
// constraints first (flow size, gamma, omega ranges), then the semantic
// rules the strategies rely on. Source and destination must be network nodes
// and must not themselves be compute nodes, because every strategy assumes
// the computation executes at an intermediate node.
func ValidateRequest(n *Network, req FlowRequest) error {
	if n == nil {
		return fmt.Errorf("%w: nil network", ErrInvalidRequest)
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if !n.HasNode(req.Source) {
		return fmt.Errorf("%w: source %q: %w", ErrInvalidRequest, req.Source, ErrNodeNotFound)
	}
	if !n.HasNode(req.Destination) {
		return fmt.Errorf("%w: destination %q: %w", ErrInvalidRequest, req.Destination, ErrNodeNotFound)
	}
	if n.IsComputeNode(req.Source) {
		return fmt.Errorf("%w: source %q is a compute node", ErrInvalidRequest, req.Source)
	}
	if n.IsComputeNode(req.Destination) {
		return fmt.Errorf("%w: destination %q is a compute node", ErrInvalidRequest, req.Destination)
	}
	return nil
}
