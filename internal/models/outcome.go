// internal/models/outcome.go
package models

// FetchStatus tags the result of a model-backed fetch. Clients only ever see
// the distinction between "there is a result" and "there is not"; the failed
// status and its failure kind exist so the service can log what actually
// happened instead of collapsing every miss to an undiagnosable null.
type FetchStatus string

const (
	FetchStatusOK     FetchStatus = "ok"
	FetchStatusEmpty  FetchStatus = "empty"
	FetchStatusFailed FetchStatus = "failed"
)

type FailureKind string

const (
	FailureKindNone    FailureKind = ""
	FailureKindNetwork FailureKind = "network"
	FailureKindStatus  FailureKind = "status"
	FailureKindParse   FailureKind = "parse"
	FailureKindSchema  FailureKind = "schema"
)

type FetchOutcome struct {
	Status  FetchStatus `json:"status"`
	Failure FailureKind `json:"-"`
	Reason  string      `json:"-"`
}

func OutcomeOK() FetchOutcome {
	return FetchOutcome{Status: FetchStatusOK}
}

func OutcomeEmpty() FetchOutcome {
	return FetchOutcome{Status: FetchStatusEmpty}
}

func OutcomeFailed(kind FailureKind, reason string) FetchOutcome {
	return FetchOutcome{Status: FetchStatusFailed, Failure: kind, Reason: reason}
}

// HasResult reports whether the fetch produced a renderable record. Both
// empty and failed answers render the same neutral idle state.
func (o FetchOutcome) HasResult() bool {
	return o.Status == FetchStatusOK
}
