package dto

// Request DTOs

type RegisterPatientRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	DateOfBirth string `json:"dob,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender      string `json:"gender,omitempty"`
}

type PatientLoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// UpdatePatientRequest carries only the fields being changed; empty fields
// are omitted from the payload.
type UpdatePatientRequest struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender      string `json:"gender,omitempty"`
}

// UpdatePreferencesRequest uses pointers so "leave unchanged" and
// "set to false" stay distinguishable on the wire.
type UpdatePreferencesRequest struct {
	EmailNotifications *bool `json:"email_notifications,omitempty"`
	SMSReminders       *bool `json:"sms_reminders,omitempty"`
	AutoSyncCalendar   *bool `json:"auto_sync_calendar,omitempty"`
}

// Response DTOs

type Patient struct {
	UserID      int    `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Gender      string `json:"gender,omitempty"`
}

type RegisteredPatient struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
}

type PatientLoginResponse struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Token  string `json:"token"`
}

// Greeting is the personalized banner for the patient dashboard, including
// the next upcoming appointment when one exists.
type Greeting struct {
	Greeting            string               `json:"greeting"`
	UpcomingAppointment *UpcomingAppointment `json:"upcoming_appointment,omitempty"`
}

type UpcomingAppointment struct {
	AppointmentID int    `json:"appointment_id"`
	When          string `json:"when"`
	Time          string `json:"time"`
	DoctorName    string `json:"doctor_name"`
	Specialty     string `json:"specialty"`
	Message       string `json:"message"`
}

type Preferences struct {
	EmailNotifications bool `json:"email_notifications"`
	SMSReminders       bool `json:"sms_reminders"`
	AutoSyncCalendar   bool `json:"auto_sync_calendar"`
}
