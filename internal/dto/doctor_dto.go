package dto

// Request DTOs

type RegisterDoctorRequest struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Phone                string `json:"phone" validate:"required"`
	Specialty            string `json:"specialty" validate:"required"`
	ConsultationDuration int    `json:"consultation_duration,omitempty" validate:"omitempty,min=1"`
}

type DoctorLoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// GetAppointmentsOptions filters a doctor's appointment listing. Zero-valued
// fields are left out of the query string entirely.
type GetAppointmentsOptions struct {
	Date   string
	Status string
	Limit  int
}

// AnalyticsOptions bounds the analytics period; the backend defaults to the
// last 30 days when both are empty.
type AnalyticsOptions struct {
	StartDate string
	EndDate   string
}

// Response DTOs

type Doctor struct {
	DoctorID             int     `json:"doctor_id"`
	Name                 string  `json:"name"`
	Specialty            string  `json:"specialty"`
	Email                string  `json:"email,omitempty"`
	Phone                string  `json:"phone,omitempty"`
	Rating               float64 `json:"rating,omitempty"`
	CalendarID           string  `json:"calendar_id,omitempty"`
	ConsultationDuration int     `json:"consultation_duration,omitempty"`
}

type DoctorList struct {
	Doctors []Doctor `json:"doctors"`
}

type RegisteredDoctor struct {
	DoctorID  int    `json:"doctor_id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

type DoctorLoginResponse struct {
	DoctorID  int    `json:"doctor_id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Token     string `json:"token"`
}

type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Duration  int    `json:"duration"`
}

type Availability struct {
	AvailableSlots []TimeSlot `json:"available_slots"`
	BookedSlots    []string   `json:"booked_slots,omitempty"`
}

// DoctorStats backs the dashboard counter cards.
type DoctorStats struct {
	TodayCount     int     `json:"today_count"`
	TotalPatients  int     `json:"total_patients"`
	WeekCount      int     `json:"week_count"`
	CompletionRate float64 `json:"completion_rate"`
}

type DoctorPatient struct {
	UserID      int    `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	TotalVisits int    `json:"total_visits"`
	LastVisit   string `json:"last_visit"`
}

type DoctorPatientList struct {
	Patients    []DoctorPatient `json:"patients"`
	TotalCount  int             `json:"total_count"`
	Pages       int             `json:"pages"`
	CurrentPage int             `json:"current_page"`
}

type AnalyticsPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type WeeklyGrowth struct {
	Week  string `json:"week"`
	Count int    `json:"count"`
}

// Analytics is the aggregated report for the doctor dashboard, recomputed
// server-side per request.
type Analytics struct {
	Period               AnalyticsPeriod `json:"period"`
	TotalAppointments    int             `json:"total_appointments"`
	TotalPatients        int             `json:"total_patients"`
	AvgDailyAppointments float64         `json:"avg_daily_appointments"`
	CompletionRate       float64         `json:"completion_rate"`
	StatusBreakdown      map[string]int  `json:"status_breakdown"`
	DailyBreakdown       []DailyCount    `json:"daily_breakdown"`
	WeeklyBreakdown      map[string]int  `json:"weekly_breakdown"`
	PatientGrowth        []WeeklyGrowth  `json:"patient_growth"`
}
