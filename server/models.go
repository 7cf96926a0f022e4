package server

import (
	"encoding/json"

	"github.com/etnz/fundsplit"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ComputeResponse is returned by compute and validate.
type ComputeResponse struct {
	Outputs    *fundsplit.Outputs          `json:"outputs,omitempty"`
	Validation []fundsplit.ValidationError `json:"validationErrors"`
	Valid      bool                        `json:"valid"`
}

// AdvanceRequest asks for the state of the window after State.
// Without Next the window of the same period or length follows.
type AdvanceRequest struct {
	State json.RawMessage   `json:"state" binding:"required"`
	Next  *fundsplit.Window `json:"next"`
}

// AdvanceResponse carries the snapshot of the closed window and the next state.
type AdvanceResponse struct {
	Snapshot fundsplit.Snapshot `json:"snapshot"`
	Next     fundsplit.State    `json:"next"`
}

// ImpactRequest asks what adding Leg to State would change.
type ImpactRequest struct {
	State json.RawMessage `json:"state" binding:"required"`
	Leg   fundsplit.Leg   `json:"leg"`
}
