// Package client is the typed API layer for the Healthcare Assistant
// backend. It groups one method per backend operation into resource
// services, normalizes transport errors, and passes application-level
// failures through untouched inside the response envelope.
package client

import (
	"healthcare-assistant-client/config"

	"github.com/sirupsen/logrus"
)

// Client aggregates the resource services. All services share one transport,
// so base URLs, the HTTP client, and logging are configured once.
type Client struct {
	Patient     *PatientService
	Doctor      *DoctorService
	Appointment *AppointmentService
	Chat        *ChatService
	System      *SystemService
	Admin       *AdminService
}

// New builds a client for the given API endpoints. A nil logger falls back
// to the logrus standard logger.
func New(cfg config.APIConfig, log *logrus.Logger) *Client {
	t := newTransport(cfg, log)
	return &Client{
		Patient:     &PatientService{t: t},
		Doctor:      &DoctorService{t: t},
		Appointment: &AppointmentService{t: t},
		Chat:        &ChatService{t: t},
		System:      &SystemService{t: t},
		Admin:       &AdminService{t: t},
	}
}
