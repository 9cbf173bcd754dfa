package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"healthcare-assistant-client/internal/dto"
)

// DoctorService covers the doctor portal: directory, availability, dashboard
// stats, appointment listings, patient roster, and analytics.
type DoctorService struct {
	t *transport
}

func (s *DoctorService) GetAll(ctx context.Context) (*Envelope[dto.DoctorList], error) {
	return get[dto.DoctorList](ctx, s.t, s.t.endpoint("/doctors", nil))
}

// GetAvailability returns the offerable slots for one doctor on one date
// (YYYY-MM-DD). Slots are transient; callers must not cache them.
func (s *DoctorService) GetAvailability(ctx context.Context, doctorID int, date string) (*Envelope[dto.Availability], error) {
	q := url.Values{}
	q.Set("date", date)
	return get[dto.Availability](ctx, s.t, s.t.endpoint(fmt.Sprintf("/doctors/%d/availability", doctorID), q))
}

func (s *DoctorService) Register(ctx context.Context, req *dto.RegisterDoctorRequest) (*Envelope[dto.RegisteredDoctor], error) {
	if err := s.t.validate.Validate(req); err != nil {
		return nil, err
	}
	return postJSON[dto.RegisteredDoctor](ctx, s.t, s.t.endpoint("/doctors/register", nil), req)
}

func (s *DoctorService) Login(ctx context.Context, req *dto.DoctorLoginRequest) (*Envelope[dto.DoctorLoginResponse], error) {
	if err := s.t.validate.Validate(req); err != nil {
		return nil, err
	}
	return postJSON[dto.DoctorLoginResponse](ctx, s.t, s.t.endpoint("/doctors/login", nil), req)
}

func (s *DoctorService) GetStats(ctx context.Context, doctorID int) (*Envelope[dto.DoctorStats], error) {
	return get[dto.DoctorStats](ctx, s.t, s.t.endpoint(fmt.Sprintf("/doctors/%d/stats", doctorID), nil))
}

// GetAppointments lists a doctor's appointments. Zero-valued options are
// omitted from the query string.
func (s *DoctorService) GetAppointments(ctx context.Context, doctorID int, opts dto.GetAppointmentsOptions) (*Envelope[dto.AppointmentList], error) {
	q := url.Values{}
	if opts.Date != "" {
		q.Set("date", opts.Date)
	}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	return get[dto.AppointmentList](ctx, s.t, s.t.endpoint(fmt.Sprintf("/doctors/%d/appointments", doctorID), q))
}

func (s *DoctorService) GetPatients(ctx context.Context, doctorID int) (*Envelope[dto.DoctorPatientList], error) {
	return get[dto.DoctorPatientList](ctx, s.t, s.t.endpoint(fmt.Sprintf("/doctors/%d/patients", doctorID), nil))
}

func (s *DoctorService) GetAnalytics(ctx context.Context, doctorID int, opts dto.AnalyticsOptions) (*Envelope[dto.Analytics], error) {
	q := url.Values{}
	if opts.StartDate != "" {
		q.Set("start_date", opts.StartDate)
	}
	if opts.EndDate != "" {
		q.Set("end_date", opts.EndDate)
	}
	return get[dto.Analytics](ctx, s.t, s.t.endpoint(fmt.Sprintf("/doctors/%d/analytics", doctorID), q))
}
