package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"healthcare-assistant-client/internal/dto"
)

// AppointmentService covers booking and the status lifecycle. Mutations are
// never applied optimistically; callers re-fetch after a successful mutation
// to pick up whatever state the backend settled on.
type AppointmentService struct {
	t *transport
}

func (s *AppointmentService) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*Envelope[dto.BookingResult], error) {
	if err := s.t.validate.Validate(req); err != nil {
		return nil, err
	}
	return postJSON[dto.BookingResult](ctx, s.t, s.t.endpoint("/appointments", nil), req)
}

// GetByPatient lists a patient's appointments. future_only is always sent,
// matching the existing consumers of this endpoint.
func (s *AppointmentService) GetByPatient(ctx context.Context, userID int, futureOnly bool) (*Envelope[dto.AppointmentList], error) {
	q := url.Values{}
	q.Set("future_only", strconv.FormatBool(futureOnly))
	return get[dto.AppointmentList](ctx, s.t, s.t.endpoint(fmt.Sprintf("/appointments/%d", userID), q))
}

func (s *AppointmentService) Cancel(ctx context.Context, appointmentID int) (*Envelope[json.RawMessage], error) {
	return putEmpty[json.RawMessage](ctx, s.t, s.t.endpoint(fmt.Sprintf("/appointments/%d/cancel", appointmentID), nil))
}

// Approve confirms a pending appointment (doctor only).
func (s *AppointmentService) Approve(ctx context.Context, appointmentID int) (*Envelope[json.RawMessage], error) {
	return putEmpty[json.RawMessage](ctx, s.t, s.t.endpoint(fmt.Sprintf("/appointments/%d/approve", appointmentID), nil))
}

// Reject declines a pending appointment (doctor only).
func (s *AppointmentService) Reject(ctx context.Context, appointmentID int) (*Envelope[json.RawMessage], error) {
	return putEmpty[json.RawMessage](ctx, s.t, s.t.endpoint(fmt.Sprintf("/appointments/%d/reject", appointmentID), nil))
}

func (s *AppointmentService) AddNotes(ctx context.Context, appointmentID int, notes string) (*Envelope[json.RawMessage], error) {
	req := &dto.NotesRequest{Notes: notes}
	if err := s.t.validate.Validate(req); err != nil {
		return nil, err
	}
	return postJSON[json.RawMessage](ctx, s.t, s.t.endpoint(fmt.Sprintf("/appointments/%d/notes", appointmentID), nil), req)
}

func (s *AppointmentService) UpdateNotes(ctx context.Context, appointmentID int, notes string) (*Envelope[json.RawMessage], error) {
	req := &dto.NotesRequest{Notes: notes}
	if err := s.t.validate.Validate(req); err != nil {
		return nil, err
	}
	return putJSON[json.RawMessage](ctx, s.t, s.t.endpoint(fmt.Sprintf("/appointments/%d/notes", appointmentID), nil), req)
}

func (s *AppointmentService) UpdateStatus(ctx context.Context, appointmentID int, status dto.AppointmentStatus) (*Envelope[json.RawMessage], error) {
	req := &dto.UpdateStatusRequest{Status: status}
	if err := s.t.validate.Validate(req); err != nil {
		return nil, err
	}
	return putJSON[json.RawMessage](ctx, s.t, s.t.endpoint(fmt.Sprintf("/appointments/%d/status", appointmentID), nil), req)
}

// GetPatientHistory is the doctor-side view of one patient's full history.
func (s *AppointmentService) GetPatientHistory(ctx context.Context, patientID int) (*Envelope[dto.AppointmentList], error) {
	return get[dto.AppointmentList](ctx, s.t, s.t.endpoint(fmt.Sprintf("/patients/%d/appointments", patientID), nil))
}
