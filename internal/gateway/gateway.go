package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Status is the gateway's view of a transaction.
type Status string

const (
	// StatusSuccess means the gateway confirmed the charge.
	StatusSuccess Status = "success"
	// StatusFailed means the gateway reports a terminal non-success state
	// (failed, cancelled).
	StatusFailed Status = "failed"
	// StatusUnknown means the gateway has not reached a terminal state yet.
	StatusUnknown Status = "unknown"
)

// InitializeRequest contains the parameters for registering a transaction
// with the gateway.
type InitializeRequest struct {
	Amount         decimal.Decimal
	Currency       string
	Email          string
	FirstName      string
	LastName       string
	TransactionRef string
	CallbackURL    string
	ReturnURL      string
	Title          string
	Description    string
}

// InitializeResponse contains the result of registering a transaction.
type InitializeResponse struct {
	CheckoutURL string
}

// Client is the capability interface for the external payment provider.
// Both operations are pure request/response; the client holds no state
// about individual transactions.
type Client interface {
	// InitializeTransaction registers a transaction remotely and returns
	// the checkout URL the payer is redirected to.
	InitializeTransaction(ctx context.Context, req InitializeRequest) (*InitializeResponse, error)

	// QueryStatus asks the gateway for the current status of a transaction.
	QueryStatus(ctx context.Context, txRef string) (Status, error)
}

// Error is returned when a gateway call fails, is rejected, or returns a
// body that cannot be trusted. Detail carries the gateway's raw response
// for diagnosis; it never contains our credentials.
type Error struct {
	Operation  string          // "initialize" or "verify"
	StatusCode int             // HTTP status from the gateway, 0 on transport failure
	Detail     json.RawMessage // raw gateway response body, if any
	Err        error           // underlying transport or decoding error, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gateway %s: %v", e.Operation, e.Err)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("gateway %s rejected with status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("gateway %s failed", e.Operation)
}

func (e *Error) Unwrap() error { return e.Err }
