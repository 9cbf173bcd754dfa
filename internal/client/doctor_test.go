package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"healthcare-assistant-client/internal/backendtest"
	"healthcare-assistant-client/internal/dto"
)

func TestGetAppointmentsQueryFilters(t *testing.T) {
	cases := []struct {
		name     string
		opts     dto.GetAppointmentsOptions
		expected url.Values
	}{
		{
			name:     "no filters means empty query",
			opts:     dto.GetAppointmentsOptions{},
			expected: url.Values{},
		},
		{
			name:     "date only",
			opts:     dto.GetAppointmentsOptions{Date: "2025-11-01"},
			expected: url.Values{"date": {"2025-11-01"}},
		},
		{
			name: "all filters present exactly once",
			opts: dto.GetAppointmentsOptions{Date: "2025-11-01", Status: "pending_approval", Limit: 10},
			expected: url.Values{
				"date":   {"2025-11-01"},
				"status": {"pending_approval"},
				"limit":  {"10"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotQuery url.Values
			var gotRaw string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.Query()
				gotRaw = r.URL.RawQuery
				w.Write([]byte(`{"success":true,"data":{"appointments":[]}}`))
			}))
			defer srv.Close()

			c := newTestClient(srv.URL+"/api/v1", "ws://unused")
			if _, err := c.Doctor.GetAppointments(context.Background(), 7, tc.opts); err != nil {
				t.Fatalf("GetAppointments: %v", err)
			}

			if len(gotQuery) != len(tc.expected) {
				t.Fatalf("expected %d query keys, got %d (%q)", len(tc.expected), len(gotQuery), gotRaw)
			}
			for key, want := range tc.expected {
				got := gotQuery[key]
				if len(got) != 1 || got[0] != want[0] {
					t.Errorf("query key %q: expected %v, got %v", key, want, got)
				}
				if strings.Count(gotRaw, key+"=") != 1 {
					t.Errorf("query key %q should appear exactly once in %q", key, gotRaw)
				}
			}
		})
	}
}

func TestGetAnalyticsOmitsEmptyPeriod(t *testing.T) {
	var gotRaw string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRaw = r.URL.RawQuery
		w.Write([]byte(`{"success":true,"data":{"total_appointments":0}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL+"/api/v1", "ws://unused")

	t.Run("empty options", func(t *testing.T) {
		if _, err := c.Doctor.GetAnalytics(context.Background(), 7, dto.AnalyticsOptions{}); err != nil {
			t.Fatalf("GetAnalytics: %v", err)
		}
		if gotRaw != "" {
			t.Errorf("expected empty query, got %q", gotRaw)
		}
	})

	t.Run("start date only", func(t *testing.T) {
		if _, err := c.Doctor.GetAnalytics(context.Background(), 7, dto.AnalyticsOptions{StartDate: "2025-10-01"}); err != nil {
			t.Fatalf("GetAnalytics: %v", err)
		}
		if gotRaw != "start_date=2025-10-01" {
			t.Errorf("expected only start_date, got %q", gotRaw)
		}
	})
}

func TestGetAvailabilitySendsDate(t *testing.T) {
	var gotPath, gotRaw string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRaw = r.URL.RawQuery
		w.Write([]byte(`{"success":true,"data":{"available_slots":[]}}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL+"/api/v1", "ws://unused")
	if _, err := c.Doctor.GetAvailability(context.Background(), 3, "2025-11-01"); err != nil {
		t.Fatalf("GetAvailability: %v", err)
	}
	if gotPath != "/api/v1/doctors/3/availability" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotRaw != "date=2025-11-01" {
		t.Errorf("expected date param, got %q", gotRaw)
	}
}

func TestDoctorRegisterValidation(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL+"/api/v1", "ws://unused")
	_, err := c.Doctor.Register(context.Background(), &dto.RegisterDoctorRequest{
		Name:  "Dr. Chen",
		Email: "not-an-email",
		Phone: "555-0100",
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if requests != 0 {
		t.Errorf("invalid request should not reach the network, saw %d requests", requests)
	}
}

func TestDoctorDashboardRoundTrip(t *testing.T) {
	srv := backendtest.New()
	defer srv.Close()
	srv.SeedDoctor(dto.Doctor{DoctorID: 2, Name: "Dr. Chen", Specialty: "Cardiology"})
	srv.SeedPatient(dto.Patient{UserID: 1, Name: "Ana", Email: "ana@example.com", Phone: "555-0101"})
	srv.SeedPatient(dto.Patient{UserID: 5, Name: "Bo", Email: "bo@example.com", Phone: "555-0102"})

	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	lastMonth := time.Now().AddDate(0, 0, -30).Format("2006-01-02")

	srv.SeedAppointment(dto.Appointment{UserID: 1, DoctorID: 2, AppointmentDate: today, Status: dto.StatusCompleted})
	srv.SeedAppointment(dto.Appointment{UserID: 5, DoctorID: 2, AppointmentDate: yesterday, Status: dto.StatusPendingApproval})
	srv.SeedAppointment(dto.Appointment{UserID: 1, DoctorID: 2, AppointmentDate: lastMonth, Status: dto.StatusCompleted})
	srv.SeedAppointment(dto.Appointment{UserID: 5, DoctorID: 2, AppointmentDate: lastMonth, Status: dto.StatusScheduled})
	// A different doctor's appointment must never leak into doctor 2's views.
	srv.SeedAppointment(dto.Appointment{UserID: 1, DoctorID: 9, AppointmentDate: today, Status: dto.StatusCompleted})

	c := newTestClient(srv.BaseURL(), srv.WSBaseURL())
	ctx := context.Background()

	t.Run("stats", func(t *testing.T) {
		env, err := c.Doctor.GetStats(ctx, 2)
		if err != nil {
			t.Fatalf("GetStats: %v", err)
		}
		stats, err := env.Result()
		if err != nil {
			t.Fatalf("stats rejected: %v", err)
		}
		if stats.TodayCount != 1 {
			t.Errorf("expected 1 appointment today, got %d", stats.TodayCount)
		}
		if stats.WeekCount != 2 {
			t.Errorf("expected 2 appointments this week, got %d", stats.WeekCount)
		}
		if stats.TotalPatients != 2 {
			t.Errorf("expected 2 distinct patients, got %d", stats.TotalPatients)
		}
		if stats.CompletionRate != 50 {
			t.Errorf("expected 50%% completion, got %v", stats.CompletionRate)
		}
	})

	t.Run("patients", func(t *testing.T) {
		env, err := c.Doctor.GetPatients(ctx, 2)
		if err != nil {
			t.Fatalf("GetPatients: %v", err)
		}
		list, err := env.Result()
		if err != nil {
			t.Fatalf("listing rejected: %v", err)
		}
		if list.TotalCount != 2 || len(list.Patients) != 2 {
			t.Fatalf("expected 2 patients, got %+v", list)
		}
		byID := make(map[int]dto.DoctorPatient, len(list.Patients))
		for _, p := range list.Patients {
			byID[p.UserID] = p
		}
		if p := byID[1]; p.Name != "Ana" || p.TotalVisits != 2 {
			t.Errorf("unexpected patient record %+v", p)
		}
	})

	t.Run("analytics", func(t *testing.T) {
		env, err := c.Doctor.GetAnalytics(ctx, 2, dto.AnalyticsOptions{StartDate: lastMonth, EndDate: today})
		if err != nil {
			t.Fatalf("GetAnalytics: %v", err)
		}
		analytics, err := env.Result()
		if err != nil {
			t.Fatalf("analytics rejected: %v", err)
		}
		if analytics.TotalAppointments != 4 {
			t.Errorf("expected 4 appointments, got %d", analytics.TotalAppointments)
		}
		if analytics.TotalPatients != 2 {
			t.Errorf("expected 2 patients, got %d", analytics.TotalPatients)
		}
		if analytics.StatusBreakdown[string(dto.StatusCompleted)] != 2 {
			t.Errorf("unexpected status breakdown %v", analytics.StatusBreakdown)
		}
		if analytics.Period.StartDate != lastMonth || analytics.Period.EndDate != today {
			t.Errorf("period not echoed back: %+v", analytics.Period)
		}
	})

	t.Run("patient history", func(t *testing.T) {
		env, err := c.Appointment.GetPatientHistory(ctx, 1)
		if err != nil {
			t.Fatalf("GetPatientHistory: %v", err)
		}
		list, err := env.Result()
		if err != nil {
			t.Fatalf("history rejected: %v", err)
		}
		if len(list.Appointments) != 3 {
			t.Fatalf("expected 3 appointments for patient 1, got %d", len(list.Appointments))
		}
		for _, a := range list.Appointments {
			if a.UserID != 1 {
				t.Errorf("foreign appointment in history: %+v", a)
			}
		}
	})
}
