// Package backendtest is an in-memory stand-in for the Healthcare Assistant
// backend. It speaks the documented contract (envelopes, status transitions,
// the chat WebSocket) against fixture state, so the client's tests exercise
// real HTTP without a real service.
package backendtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"healthcare-assistant-client/internal/dto"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

type envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeSuccess(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	writeJSON(w, statusCode, envelope{Success: true, Message: message, Data: data})
}

func writeFailure(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, envelope{Success: false, Message: message})
}

// Server is one stub backend instance backed by httptest.
type Server struct {
	httpServer *httptest.Server
	upgrader   websocket.Upgrader

	mu           sync.Mutex
	patients     map[int]dto.Patient
	doctors      map[int]dto.Doctor
	appointments map[int]*dto.Appointment
	preferences  map[int]dto.Preferences
	documents    map[string]dto.Document
	transcripts  map[int][]dto.ChatMessage
	nextUserID   int
	nextDoctorID int
	nextApptID   int
}

func New() *Server {
	s := &Server{
		patients:     make(map[int]dto.Patient),
		doctors:      make(map[int]dto.Doctor),
		appointments: make(map[int]*dto.Appointment),
		preferences:  make(map[int]dto.Preferences),
		documents:    make(map[string]dto.Document),
		transcripts:  make(map[int][]dto.ChatMessage),
		nextUserID:   1,
		nextDoctorID: 1,
		nextApptID:   1,
	}
	s.httpServer = httptest.NewServer(s.router())
	return s
}

func (s *Server) Close() {
	s.httpServer.Close()
}

// BaseURL is what the client's API_BASE_URL should point at.
func (s *Server) BaseURL() string {
	return s.httpServer.URL + "/api/v1"
}

// WSBaseURL is the ws:// equivalent of the server root.
func (s *Server) WSBaseURL() string {
	return "ws" + strings.TrimPrefix(s.httpServer.URL, "http")
}

// Seed helpers

func (s *Server) SeedPatient(p dto.Patient) dto.Patient {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.UserID == 0 {
		p.UserID = s.nextUserID
	}
	if p.UserID >= s.nextUserID {
		s.nextUserID = p.UserID + 1
	}
	s.patients[p.UserID] = p
	return p
}

func (s *Server) SeedDoctor(d dto.Doctor) dto.Doctor {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.DoctorID == 0 {
		d.DoctorID = s.nextDoctorID
	}
	if d.DoctorID >= s.nextDoctorID {
		s.nextDoctorID = d.DoctorID + 1
	}
	s.doctors[d.DoctorID] = d
	return d
}

func (s *Server) SeedAppointment(a dto.Appointment) dto.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.AppointmentID == 0 {
		a.AppointmentID = s.nextApptID
	}
	if a.AppointmentID >= s.nextApptID {
		s.nextApptID = a.AppointmentID + 1
	}
	copied := a
	s.appointments[a.AppointmentID] = &copied
	return a
}

// Appointment returns a copy of the stored appointment, if any.
func (s *Server) Appointment(id int) (dto.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	if !ok {
		return dto.Appointment{}, false
	}
	return *a, true
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)
	r.HandleFunc("/", s.info).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/patients/register", s.registerPatient).Methods(http.MethodPost)
	api.HandleFunc("/patients/login", s.patientLogin).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id:[0-9]+}", s.getPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id:[0-9]+}", s.updatePatient).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id:[0-9]+}/greeting", s.greeting).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id:[0-9]+}/preferences", s.getPreferences).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id:[0-9]+}/preferences", s.updatePreferences).Methods(http.MethodPut)
	api.HandleFunc("/patients/{id:[0-9]+}/appointments", s.patientHistory).Methods(http.MethodGet)

	api.HandleFunc("/doctors", s.listDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/register", s.registerDoctor).Methods(http.MethodPost)
	api.HandleFunc("/doctors/login", s.doctorLogin).Methods(http.MethodPost)
	api.HandleFunc("/doctors/{id:[0-9]+}/availability", s.availability).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id:[0-9]+}/stats", s.doctorStats).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id:[0-9]+}/appointments", s.doctorAppointments).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id:[0-9]+}/patients", s.doctorPatients).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id:[0-9]+}/analytics", s.doctorAnalytics).Methods(http.MethodGet)

	api.HandleFunc("/appointments", s.bookAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id:[0-9]+}", s.appointmentsByPatient).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id:[0-9]+}/cancel", s.transition(dto.StatusCancelled)).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id:[0-9]+}/approve", s.transition(dto.StatusConfirmed)).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id:[0-9]+}/reject", s.transition(dto.StatusCancelled)).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id:[0-9]+}/notes", s.setNotes).Methods(http.MethodPost, http.MethodPut)
	api.HandleFunc("/appointments/{id:[0-9]+}/status", s.updateStatus).Methods(http.MethodPut)

	api.HandleFunc("/chat", s.chat).Methods(http.MethodPost)
	api.HandleFunc("/ws/chat/{id:[0-9]+}", s.chatSocket)

	api.HandleFunc("/admin/documents", s.listDocuments).Methods(http.MethodGet)
	api.HandleFunc("/admin/documents/upload", s.uploadDocuments).Methods(http.MethodPost)
	api.HandleFunc("/admin/documents/{id}", s.deleteDocument).Methods(http.MethodDelete)
	api.HandleFunc("/admin/stats", s.adminStats).Methods(http.MethodGet)

	return r
}

func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

// System

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	// The real /health is not enveloped.
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Healthcare Assistant API (stub)",
		"version": "1.0.0",
		"status":  "running",
	})
}

// Patients

func (s *Server) registerPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	p := s.SeedPatient(dto.Patient{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		Gender:      req.Gender,
	})
	writeSuccess(w, http.StatusOK, "Patient registered successfully", dto.RegisteredPatient{
		UserID: p.UserID,
		Name:   p.Name,
	})
}

func (s *Server) patientLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.PatientLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.patients {
		if p.Email == req.Email && p.Phone == req.Phone {
			writeSuccess(w, http.StatusOK, "Login successful", dto.PatientLoginResponse{
				UserID: p.UserID,
				Name:   p.Name,
				Email:  p.Email,
				Phone:  p.Phone,
				Token:  mintToken("patient", p.UserID),
			})
			return
		}
	}
	writeFailure(w, http.StatusNotFound, "Patient not found")
}

func (s *Server) getPatient(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	p, ok := s.patients[pathID(r)]
	s.mu.Unlock()
	if !ok {
		writeFailure(w, http.StatusNotFound, "Patient not found")
		return
	}
	writeSuccess(w, http.StatusOK, "", p)
}

func (s *Server) updatePatient(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.patients[pathID(r)]
	if !ok {
		writeFailure(w, http.StatusNotFound, "Patient not found")
		return
	}
	if req.Name != "" {
		p.Name = req.Name
	}
	if req.Email != "" {
		p.Email = req.Email
	}
	if req.Phone != "" {
		p.Phone = req.Phone
	}
	if req.DateOfBirth != "" {
		p.DateOfBirth = req.DateOfBirth
	}
	if req.Gender != "" {
		p.Gender = req.Gender
	}
	s.patients[p.UserID] = p
	writeSuccess(w, http.StatusOK, "Profile updated successfully", p)
}

func (s *Server) greeting(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	p, ok := s.patients[pathID(r)]
	s.mu.Unlock()
	if !ok {
		writeFailure(w, http.StatusNotFound, "Patient not found")
		return
	}
	writeSuccess(w, http.StatusOK, "", dto.Greeting{
		Greeting: fmt.Sprintf("Good morning, %s!", p.Name),
	})
}

func (s *Server) getPreferences(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	prefs, ok := s.preferences[pathID(r)]
	s.mu.Unlock()
	if !ok {
		// Defaults when never set, matching the backend.
		prefs = dto.Preferences{EmailNotifications: true, SMSReminders: true}
	}
	writeSuccess(w, http.StatusOK, "", prefs)
}

func (s *Server) updatePreferences(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdatePreferencesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := pathID(r)
	prefs, ok := s.preferences[id]
	if !ok {
		prefs = dto.Preferences{EmailNotifications: true, SMSReminders: true}
	}
	if req.EmailNotifications != nil {
		prefs.EmailNotifications = *req.EmailNotifications
	}
	if req.SMSReminders != nil {
		prefs.SMSReminders = *req.SMSReminders
	}
	if req.AutoSyncCalendar != nil {
		prefs.AutoSyncCalendar = *req.AutoSyncCalendar
	}
	s.preferences[id] = prefs
	writeSuccess(w, http.StatusOK, "Preferences updated successfully", prefs)
}

func (s *Server) patientHistory(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	appointments := make([]dto.Appointment, 0)
	for _, a := range s.appointments {
		if a.UserID == id {
			appointments = append(appointments, *a)
		}
	}
	writeSuccess(w, http.StatusOK, "", dto.AppointmentList{Appointments: appointments})
}

// Doctors

func (s *Server) listDoctors(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doctors := make([]dto.Doctor, 0, len(s.doctors))
	for _, d := range s.doctors {
		doctors = append(doctors, d)
	}
	writeSuccess(w, http.StatusOK, "", dto.DoctorList{Doctors: doctors})
}

func (s *Server) registerDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	d := s.SeedDoctor(dto.Doctor{
		Name:                 req.Name,
		Email:                req.Email,
		Phone:                req.Phone,
		Specialty:            req.Specialty,
		ConsultationDuration: req.ConsultationDuration,
	})
	writeSuccess(w, http.StatusOK, "Doctor registered successfully", dto.RegisteredDoctor{
		DoctorID:  d.DoctorID,
		Name:      d.Name,
		Specialty: d.Specialty,
	})
}

func (s *Server) doctorLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.DoctorLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.doctors {
		if d.Email == req.Email && d.Phone == req.Phone {
			writeSuccess(w, http.StatusOK, "Login successful", dto.DoctorLoginResponse{
				DoctorID:  d.DoctorID,
				Name:      d.Name,
				Specialty: d.Specialty,
				Token:     mintToken("doctor", d.DoctorID),
			})
			return
		}
	}
	writeFailure(w, http.StatusNotFound, "Doctor not found")
}

func (s *Server) availability(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("date") == "" {
		writeFailure(w, http.StatusBadRequest, "date is required")
		return
	}
	writeSuccess(w, http.StatusOK, "", dto.Availability{
		AvailableSlots: []dto.TimeSlot{
			{StartTime: "09:00", EndTime: "09:30", Duration: 30},
			{StartTime: "09:30", EndTime: "10:00", Duration: 30},
			{StartTime: "10:00", EndTime: "10:30", Duration: 30},
		},
	})
}

func (s *Server) doctorStats(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := dto.DoctorStats{}
	patientsSeen := make(map[int]bool)
	completed := 0
	total := 0
	today := time.Now().Format("2006-01-02")
	weekStart := time.Now().AddDate(0, 0, -6).Format("2006-01-02")
	for _, a := range s.appointments {
		if a.DoctorID != id {
			continue
		}
		total++
		patientsSeen[a.UserID] = true
		if a.Status == dto.StatusCompleted {
			completed++
		}
		if a.AppointmentDate == today {
			stats.TodayCount++
		}
		// ISO dates compare lexicographically.
		if a.AppointmentDate >= weekStart && a.AppointmentDate <= today {
			stats.WeekCount++
		}
	}
	stats.TotalPatients = len(patientsSeen)
	if total > 0 {
		stats.CompletionRate = float64(completed) / float64(total) * 100
	}
	writeSuccess(w, http.StatusOK, "", stats)
}

func (s *Server) doctorAppointments(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	date := r.URL.Query().Get("date")
	status := r.URL.Query().Get("status")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	s.mu.Lock()
	defer s.mu.Unlock()
	appointments := make([]dto.Appointment, 0)
	for _, a := range s.appointments {
		if a.DoctorID != id {
			continue
		}
		if date != "" && a.AppointmentDate != date {
			continue
		}
		if status != "" && string(a.Status) != status {
			continue
		}
		appointments = append(appointments, *a)
	}
	if limit > 0 && len(appointments) > limit {
		appointments = appointments[:limit]
	}
	writeSuccess(w, http.StatusOK, "", dto.AppointmentList{Appointments: appointments})
}

func (s *Server) doctorPatients(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	visits := make(map[int]int)
	for _, a := range s.appointments {
		if a.DoctorID == id {
			visits[a.UserID]++
		}
	}
	patients := make([]dto.DoctorPatient, 0, len(visits))
	for userID, count := range visits {
		p := s.patients[userID]
		patients = append(patients, dto.DoctorPatient{
			UserID:      userID,
			Name:        p.Name,
			Email:       p.Email,
			Phone:       p.Phone,
			TotalVisits: count,
		})
	}
	writeSuccess(w, http.StatusOK, "", dto.DoctorPatientList{
		Patients:    patients,
		TotalCount:  len(patients),
		Pages:       1,
		CurrentPage: 1,
	})
}

func (s *Server) doctorAnalytics(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	analytics := dto.Analytics{
		Period: dto.AnalyticsPeriod{
			StartDate: r.URL.Query().Get("start_date"),
			EndDate:   r.URL.Query().Get("end_date"),
		},
		StatusBreakdown: make(map[string]int),
		WeeklyBreakdown: make(map[string]int),
	}
	patientsSeen := make(map[int]bool)
	for _, a := range s.appointments {
		if a.DoctorID != id {
			continue
		}
		analytics.TotalAppointments++
		analytics.StatusBreakdown[string(a.Status)]++
		patientsSeen[a.UserID] = true
	}
	analytics.TotalPatients = len(patientsSeen)
	writeSuccess(w, http.StatusOK, "", analytics)
}

// Appointments

func (s *Server) bookAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	a := &dto.Appointment{
		AppointmentID:   s.nextApptID,
		UserID:          req.UserID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.Date,
		StartTime:       req.Time,
		Reason:          req.Reason,
		Status:          dto.StatusPendingApproval,
		CreatedAt:       time.Now().Format(time.RFC3339),
	}
	s.nextApptID++
	s.appointments[a.AppointmentID] = a
	copied := *a
	s.mu.Unlock()

	writeSuccess(w, http.StatusOK, "Appointment requested", dto.BookingResult{
		AppointmentID: copied.AppointmentID,
		Appointment:   copied,
	})
}

func (s *Server) appointmentsByPatient(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	appointments := make([]dto.Appointment, 0)
	for _, a := range s.appointments {
		if a.UserID == id {
			appointments = append(appointments, *a)
		}
	}
	writeSuccess(w, http.StatusOK, "", dto.AppointmentList{Appointments: appointments})
}

func (s *Server) transition(to dto.AppointmentStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		a, ok := s.appointments[pathID(r)]
		if !ok {
			writeFailure(w, http.StatusNotFound, "Appointment not found")
			return
		}
		a.Status = to
		writeSuccess(w, http.StatusOK, fmt.Sprintf("Appointment %s", to), nil)
	}
}

func (s *Server) setNotes(w http.ResponseWriter, r *http.Request) {
	var req dto.NotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[pathID(r)]
	if !ok {
		writeFailure(w, http.StatusNotFound, "Appointment not found")
		return
	}
	a.Notes = req.Notes
	writeSuccess(w, http.StatusOK, "Notes saved", nil)
}

func (s *Server) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[pathID(r)]
	if !ok {
		writeFailure(w, http.StatusNotFound, "Appointment not found")
		return
	}
	a.Status = req.Status
	writeSuccess(w, http.StatusOK, "Status updated", nil)
}

// Chat

func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	answer := "echo: " + req.Message

	// Both turns land in conversation memory, like the real assistant.
	now := time.Now().Format(time.RFC3339)
	s.mu.Lock()
	s.transcripts[req.UserID] = append(s.transcripts[req.UserID],
		dto.ChatMessage{Role: dto.RoleUser, Content: req.Message, Timestamp: now},
		dto.ChatMessage{Role: dto.RoleAssistant, Content: answer, Timestamp: now},
	)
	s.mu.Unlock()

	writeSuccess(w, http.StatusOK, "", dto.ChatAnswer{
		Answer: answer,
	})
}

// Transcript returns a copy of the recorded conversation turns for one user.
func (s *Server) Transcript(userID int) []dto.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	turns := s.transcripts[userID]
	out := make([]dto.ChatMessage, len(turns))
	copy(out, turns)
	return out
}

// chatSocket echoes every {"message":...} frame back as an assistant reply.
// A frame of "!badframe" makes it emit a non-JSON frame, which lets tests
// cover the client's parse-drop behavior.
func (s *Server) chatSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var frame dto.ChatFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			continue
		}
		if frame.Message == "!badframe" {
			if err := conn.WriteMessage(websocket.TextMessage, []byte("not json")); err != nil {
				return
			}
			continue
		}
		reply := map[string]string{
			"content":   "echo: " + frame.Message,
			"timestamp": time.Now().Format(time.RFC3339),
		}
		if err := conn.WriteJSON(reply); err != nil {
			return
		}
	}
}

// Admin

func (s *Server) listDocuments(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := make([]dto.Document, 0, len(s.documents))
	for _, d := range s.documents {
		docs = append(docs, d)
	}
	writeSuccess(w, http.StatusOK, "", dto.DocumentList{Documents: docs})
}

func (s *Server) uploadDocuments(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid multipart body")
		return
	}
	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		writeFailure(w, http.StatusBadRequest, "No files provided")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	uploaded := make([]dto.Document, 0, len(files))
	for _, fh := range files {
		doc := dto.Document{
			ID:         uuid.NewString(),
			Filename:   fh.Filename,
			Size:       fh.Size,
			DocType:    "text",
			UploadedAt: time.Now().Format(time.RFC3339),
			Status:     dto.DocumentPending,
		}
		s.documents[doc.ID] = doc
		uploaded = append(uploaded, doc)
	}
	writeSuccess(w, http.StatusOK, fmt.Sprintf("Uploaded %d file(s)", len(uploaded)), dto.DocumentList{Documents: uploaded})
}

func (s *Server) deleteDocument(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[id]; !ok {
		writeFailure(w, http.StatusNotFound, "Document not found")
		return
	}
	delete(s.documents, id)
	writeSuccess(w, http.StatusOK, "Document deleted successfully", nil)
}

func (s *Server) adminStats(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeSuccess(w, http.StatusOK, "", dto.KnowledgeBaseStats{
		TotalDocuments: len(s.documents),
		TotalChunks:    len(s.documents) * 4,
		CollectionName: "medical_docs",
	})
}
