package dto

// System endpoints live outside /api/v1 and reply with bare JSON rather than
// the success envelope; these shapes cover the fields the backend sends.

type HealthStatus struct {
	Status    string `json:"status"`
	Database  string `json:"database,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

type APIInfo struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Status    string            `json:"status"`
	Docs      string            `json:"docs,omitempty"`
	Endpoints map[string]string `json:"endpoints,omitempty"`
}
