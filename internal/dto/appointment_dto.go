package dto

type AppointmentStatus string

const (
	StatusScheduled       AppointmentStatus = "scheduled"
	StatusConfirmed       AppointmentStatus = "confirmed"
	StatusPendingApproval AppointmentStatus = "pending_approval"
	StatusCompleted       AppointmentStatus = "completed"
	StatusCancelled       AppointmentStatus = "cancelled"
	StatusNoShow          AppointmentStatus = "no-show"
)

// Request DTOs

type BookAppointmentRequest struct {
	UserID       int    `json:"user_id" validate:"required,min=1"`
	DoctorID     int    `json:"doctor_id" validate:"required,min=1"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Time         string `json:"time" validate:"required"`
	Reason       string `json:"reason,omitempty"`
	SyncCalendar bool   `json:"sync_calendar,omitempty"`
}

type NotesRequest struct {
	Notes string `json:"notes" validate:"required"`
}

type UpdateStatusRequest struct {
	Status AppointmentStatus `json:"status" validate:"required,oneof=scheduled completed cancelled no-show"`
}

// Response DTOs

type Appointment struct {
	AppointmentID   int               `json:"appointment_id"`
	UserID          int               `json:"user_id"`
	DoctorID        int               `json:"doctor_id"`
	AppointmentDate string            `json:"appointment_date"`
	StartTime       string            `json:"start_time"`
	EndTime         string            `json:"end_time"`
	Reason          string            `json:"reason,omitempty"`
	Status          AppointmentStatus `json:"status"`
	Notes           string            `json:"notes,omitempty"`
	CreatedAt       string            `json:"created_at,omitempty"`

	// Joined fields, present depending on which side requested the listing.
	DoctorName      string `json:"doctor_name,omitempty"`
	DoctorSpecialty string `json:"doctor_specialty,omitempty"`
	PatientName     string `json:"patient_name,omitempty"`
	PatientEmail    string `json:"patient_email,omitempty"`
	PatientPhone    string `json:"patient_phone,omitempty"`
}

type AppointmentList struct {
	Appointments []Appointment `json:"appointments"`
}

type BookingResult struct {
	AppointmentID int         `json:"appointment_id"`
	Appointment   Appointment `json:"appointment"`
}
