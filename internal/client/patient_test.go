package client_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthcare-assistant-client/internal/backendtest"
	"healthcare-assistant-client/internal/dto"
	"healthcare-assistant-client/pkg/validator"
)

func TestPatientRegisterValidation(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL+"/api/v1", "ws://unused")

	cases := []struct {
		name string
		req  dto.RegisterPatientRequest
	}{
		{"missing email", dto.RegisterPatientRequest{Name: "Ana", Phone: "555-0101"}},
		{"bad email", dto.RegisterPatientRequest{Name: "Ana", Email: "nope", Phone: "555-0101"}},
		{"bad date of birth", dto.RegisterPatientRequest{Name: "Ana", Email: "ana@example.com", Phone: "555-0101", DateOfBirth: "01/02/1990"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := c.Patient.Register(context.Background(), &tc.req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var vErr *validator.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected *validator.ValidationError, got %T", err)
			}
		})
	}
	if requests != 0 {
		t.Errorf("invalid requests must not reach the network, saw %d", requests)
	}
}

func TestPatientLoginFlow(t *testing.T) {
	srv := backendtest.New()
	defer srv.Close()
	srv.SeedPatient(dto.Patient{UserID: 1, Name: "Ana", Email: "ana@example.com", Phone: "555-0101"})

	c := newTestClient(srv.BaseURL(), srv.WSBaseURL())
	ctx := context.Background()

	env, err := c.Patient.Login(ctx, &dto.PatientLoginRequest{Email: "ana@example.com", Phone: "555-0101"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	login, err := env.Result()
	if err != nil {
		t.Fatalf("login rejected: %v", err)
	}
	if login.UserID != 1 || login.Name != "Ana" {
		t.Errorf("unexpected login payload: %+v", login)
	}
	if login.Token == "" {
		t.Error("expected a token")
	}

	t.Run("unknown patient rejects with 404", func(t *testing.T) {
		_, err := c.Patient.Login(ctx, &dto.PatientLoginRequest{Email: "ghost@example.com", Phone: "555-0000"})
		if err == nil {
			t.Fatal("expected transport error")
		}
	})
}

func TestPatientProfileAndPreferences(t *testing.T) {
	srv := backendtest.New()
	defer srv.Close()
	srv.SeedPatient(dto.Patient{UserID: 1, Name: "Ana", Email: "ana@example.com", Phone: "555-0101"})

	c := newTestClient(srv.BaseURL(), srv.WSBaseURL())
	ctx := context.Background()

	t.Run("update then reload", func(t *testing.T) {
		if _, err := c.Patient.UpdateProfile(ctx, 1, &dto.UpdatePatientRequest{Phone: "555-0199"}); err != nil {
			t.Fatalf("UpdateProfile: %v", err)
		}
		env, err := c.Patient.GetProfile(ctx, 1)
		if err != nil {
			t.Fatalf("GetProfile: %v", err)
		}
		p, err := env.Result()
		if err != nil {
			t.Fatalf("profile rejected: %v", err)
		}
		if p.Phone != "555-0199" {
			t.Errorf("expected updated phone, got %q", p.Phone)
		}
		if p.Name != "Ana" {
			t.Errorf("untouched fields must survive, got %q", p.Name)
		}
	})

	t.Run("preferences default then flip", func(t *testing.T) {
		env, err := c.Patient.GetPreferences(ctx, 1)
		if err != nil {
			t.Fatalf("GetPreferences: %v", err)
		}
		prefs, err := env.Result()
		if err != nil {
			t.Fatalf("preferences rejected: %v", err)
		}
		if !prefs.EmailNotifications {
			t.Error("expected email notifications on by default")
		}

		off := false
		if _, err := c.Patient.UpdatePreferences(ctx, 1, &dto.UpdatePreferencesRequest{EmailNotifications: &off}); err != nil {
			t.Fatalf("UpdatePreferences: %v", err)
		}
		env, err = c.Patient.GetPreferences(ctx, 1)
		if err != nil {
			t.Fatalf("GetPreferences: %v", err)
		}
		prefs, err = env.Result()
		if err != nil {
			t.Fatalf("preferences rejected: %v", err)
		}
		if prefs.EmailNotifications {
			t.Error("expected email notifications off after update")
		}
		if !prefs.SMSReminders {
			t.Error("unset preference must keep its previous value")
		}
	})

	t.Run("greeting", func(t *testing.T) {
		env, err := c.Patient.GetGreeting(ctx, 1)
		if err != nil {
			t.Fatalf("GetGreeting: %v", err)
		}
		greeting, err := env.Result()
		if err != nil {
			t.Fatalf("greeting rejected: %v", err)
		}
		if greeting.Greeting == "" {
			t.Error("expected a greeting")
		}
	})
}
