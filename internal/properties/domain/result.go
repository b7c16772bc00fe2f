package domain

// Outcome tags the result of a lifecycle operation.
type Outcome string

const (
	OutcomeSuccess      Outcome = "Success"
	OutcomeUnauthorized Outcome = "Unauthorized"
	OutcomeFailure      Outcome = "Failure"
)

// Result is the uniform shape every lifecycle operation returns. The
// service never raises a fault across its boundary; failures are encoded
// here and the HTTP layer only translates Outcome to a status code.
// Use the constructors: a Success result never carries a diagnostic.
type Result struct {
	Outcome    Outcome `json:"status"`
	Message    string  `json:"message"`
	CreationID string  `json:"creationId,omitempty"`
	Diagnostic string  `json:"exception,omitempty"`
}

func Success(message string) Result {
	return Result{Outcome: OutcomeSuccess, Message: message}
}

func Created(message, creationID string) Result {
	return Result{Outcome: OutcomeSuccess, Message: message, CreationID: creationID}
}

func Unauthorized(message string) Result {
	return Result{Outcome: OutcomeUnauthorized, Message: message}
}

func Failure(message string, err error) Result {
	r := Result{Outcome: OutcomeFailure, Message: message}
	if err != nil {
		r.Diagnostic = err.Error()
	}
	return r
}
