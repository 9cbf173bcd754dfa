package client

import (
	"context"
	"fmt"

	"healthcare-assistant-client/internal/dto"
)

// PatientService covers registration, login, profile, and preference
// operations for patients.
type PatientService struct {
	t *transport
}

func (s *PatientService) Register(ctx context.Context, req *dto.RegisterPatientRequest) (*Envelope[dto.RegisteredPatient], error) {
	if err := s.t.validate.Validate(req); err != nil {
		return nil, err
	}
	return postJSON[dto.RegisteredPatient](ctx, s.t, s.t.endpoint("/patients/register", nil), req)
}

func (s *PatientService) Login(ctx context.Context, req *dto.PatientLoginRequest) (*Envelope[dto.PatientLoginResponse], error) {
	if err := s.t.validate.Validate(req); err != nil {
		return nil, err
	}
	return postJSON[dto.PatientLoginResponse](ctx, s.t, s.t.endpoint("/patients/login", nil), req)
}

func (s *PatientService) GetProfile(ctx context.Context, userID int) (*Envelope[dto.Patient], error) {
	return get[dto.Patient](ctx, s.t, s.t.endpoint(fmt.Sprintf("/patients/%d", userID), nil))
}

func (s *PatientService) UpdateProfile(ctx context.Context, userID int, req *dto.UpdatePatientRequest) (*Envelope[dto.Patient], error) {
	if err := s.t.validate.Validate(req); err != nil {
		return nil, err
	}
	return putJSON[dto.Patient](ctx, s.t, s.t.endpoint(fmt.Sprintf("/patients/%d", userID), nil), req)
}

// GetGreeting returns the personalized dashboard greeting together with the
// next upcoming appointment when the patient has one.
func (s *PatientService) GetGreeting(ctx context.Context, userID int) (*Envelope[dto.Greeting], error) {
	return get[dto.Greeting](ctx, s.t, s.t.endpoint(fmt.Sprintf("/patients/%d/greeting", userID), nil))
}

func (s *PatientService) GetPreferences(ctx context.Context, userID int) (*Envelope[dto.Preferences], error) {
	return get[dto.Preferences](ctx, s.t, s.t.endpoint(fmt.Sprintf("/patients/%d/preferences", userID), nil))
}

func (s *PatientService) UpdatePreferences(ctx context.Context, userID int, req *dto.UpdatePreferencesRequest) (*Envelope[dto.Preferences], error) {
	return putJSON[dto.Preferences](ctx, s.t, s.t.endpoint(fmt.Sprintf("/patients/%d/preferences", userID), nil), req)
}
