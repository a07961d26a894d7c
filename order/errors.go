package order

import (
	"fmt"

	"github.com/printhive/sdk"
)

// DuplicateIdentifierError reports that two records in one resolution share
// an identifier. It unwraps to sdk.ErrDuplicateIdentifier.
type DuplicateIdentifierError struct {
	// Identifier is the key shared by more than one record.
	Identifier string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("order: duplicate plugin identifier %q", e.Identifier)
}

func (e *DuplicateIdentifierError) Unwrap() error {
	return sdk.ErrDuplicateIdentifier
}

// InvalidRankError reports that a sort key provider returned a value that is
// neither an integer nor nil. It unwraps to sdk.ErrInvalidRank.
type InvalidRankError struct {
	// Identifier is the plugin whose provider misbehaved.
	Identifier string

	// CallContext is the context the provider was asked about.
	CallContext string

	// Value is the offending return value.
	Value any
}

func (e *InvalidRankError) Error() string {
	return fmt.Sprintf("order: plugin %q returned invalid sort key %v (%T) for context %q",
		e.Identifier, e.Value, e.Value, e.CallContext)
}

func (e *InvalidRankError) Unwrap() error {
	return sdk.ErrInvalidRank
}
