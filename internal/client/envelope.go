package client

// Envelope is the uniform wrapper every REST response conforms to. A 2xx
// response decodes into it as-is, so a backend answering 200 with
// success:false surfaces here rather than as a returned error. Callers that
// prefer a single failure channel can go through Result instead of checking
// Success themselves.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Err returns nil when the envelope reports success, otherwise an *APIError
// built from the body-level message. Status is zero for application-level
// failures; transport failures never reach an envelope.
func (e *Envelope[T]) Err() error {
	if e.Success {
		return nil
	}
	msg := e.Message
	if msg == "" {
		msg = e.Error
	}
	if msg == "" {
		msg = "request failed"
	}
	return &APIError{Message: msg}
}

// Result collapses the dual error channel (HTTP status vs body flag) into a
// single pattern-match point.
func (e *Envelope[T]) Result() (*T, error) {
	if err := e.Err(); err != nil {
		return nil, err
	}
	return e.Data, nil
}

// APIError carries the HTTP status and the best-effort backend message for a
// failed call. Error returns the bare message so user-facing code can show
// it directly.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}
