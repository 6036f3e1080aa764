package handler

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"hospitaldesk/internal/delivery/dto"
	"hospitaldesk/internal/usecase"
)

// Meta-refresh intervals mirror the dashboard poll cadence so the plain
// HTML pages stay current even without the dashboard session attached.
const (
	overviewRefreshSeconds = 5
	recordRefreshSeconds   = 7
)

// PageHandler serves the server-rendered admin pages. Form posts follow the
// post/redirect/get pattern with a flash cookie carrying the outcome.
type PageHandler struct {
	log                *logrus.Logger
	patientUsecase     usecase.PatientUsecase
	appointmentUsecase usecase.AppointmentUsecase
	billingUsecase     usecase.BillingUsecase
	overviewUsecase    usecase.OverviewUsecase
}

func NewPageHandler(
	log *logrus.Logger,
	patientUsecase usecase.PatientUsecase,
	appointmentUsecase usecase.AppointmentUsecase,
	billingUsecase usecase.BillingUsecase,
	overviewUsecase usecase.OverviewUsecase,
) *PageHandler {
	return &PageHandler{
		log:                log,
		patientUsecase:     patientUsecase,
		appointmentUsecase: appointmentUsecase,
		billingUsecase:     billingUsecase,
		overviewUsecase:    overviewUsecase,
	}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	data := &pageData{
		Title:          "Overview",
		Page:           "index",
		RefreshSeconds: overviewRefreshSeconds,
		Flash:          popFlash(w, r),
	}

	summary, err := h.overviewUsecase.GetSummary(r.Context())
	if err != nil {
		h.log.Warnf("Failed to load overview summary for page: %+v", err)
	} else {
		data.Totals = *summary
	}

	h.render(w, "index", data)
}

func (h *PageHandler) Patients(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		h.createPatient(w, r)
		return
	}

	data := &pageData{
		Title:          "Patients",
		Page:           "patients",
		RefreshSeconds: recordRefreshSeconds,
		Flash:          popFlash(w, r),
	}

	patients, err := h.patientUsecase.GetAll(r.Context())
	if err != nil {
		h.log.Warnf("Failed to load patients for page: %+v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	data.Patients = patients

	h.render(w, "patients", data)
}

func (h *PageHandler) createPatient(w http.ResponseWriter, r *http.Request) {
	req := &dto.CreatePatientRequest{
		Name:    r.FormValue("name"),
		Age:     r.FormValue("age"),
		Gender:  r.FormValue("gender"),
		Contact: r.FormValue("contact"),
	}

	patient, err := h.patientUsecase.Create(r.Context(), req)
	switch err {
	case nil:
		setFlash(w, "success", "Patient created: "+patient.ID)
	case usecase.ErrNameAgeRequired, usecase.ErrAgeNotNumber:
		setFlash(w, "error", err.Error())
	default:
		h.log.Warnf("Failed to create patient from form: %+v", err)
		setFlash(w, "error", "Internal server error")
	}

	http.Redirect(w, r, "/patients", http.StatusSeeOther)
}

func (h *PageHandler) Appointments(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		h.createAppointment(w, r)
		return
	}

	data := &pageData{
		Title:          "Appointments",
		Page:           "appointments",
		RefreshSeconds: recordRefreshSeconds,
		Flash:          popFlash(w, r),
		Slots:          usecase.AppointmentSlots(),
	}

	appointments, err := h.appointmentUsecase.GetAll(r.Context())
	if err != nil {
		h.log.Warnf("Failed to load appointments for page: %+v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	data.Appointments = appointments

	patients, err := h.patientUsecase.GetAll(r.Context())
	if err != nil {
		h.log.Warnf("Failed to load patients for appointment form: %+v", err)
	} else {
		data.Patients = patients
	}

	h.render(w, "appointments", data)
}

func (h *PageHandler) createAppointment(w http.ResponseWriter, r *http.Request) {
	req := &dto.CreateAppointmentRequest{
		PatientID:     r.FormValue("patient_id"),
		PreferredDate: r.FormValue("preferred_date"),
		Reason:        r.FormValue("reason"),
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), req)
	switch err {
	case nil:
		setFlash(w, "success", fmt.Sprintf("Appointment booked for %s at %s.", appointment.Date, appointment.Time))
	case usecase.ErrPatientDateRequired, usecase.ErrPatientNotFound, usecase.ErrPreferredDateFormat:
		setFlash(w, "error", err.Error())
	default:
		h.log.Warnf("Failed to create appointment from form: %+v", err)
		setFlash(w, "error", "Internal server error")
	}

	http.Redirect(w, r, "/appointments", http.StatusSeeOther)
}

func (h *PageHandler) Billing(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		h.createBill(w, r)
		return
	}

	data := &pageData{
		Title:          "Billing",
		Page:           "billing",
		RefreshSeconds: recordRefreshSeconds,
		Flash:          popFlash(w, r),
	}

	bills, err := h.billingUsecase.GetAll(r.Context())
	if err != nil {
		h.log.Warnf("Failed to load bills for page: %+v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	data.Bills = bills

	patients, err := h.patientUsecase.GetAll(r.Context())
	if err != nil {
		h.log.Warnf("Failed to load patients for billing form: %+v", err)
	} else {
		data.Patients = patients
	}

	h.render(w, "billing", data)
}

func (h *PageHandler) createBill(w http.ResponseWriter, r *http.Request) {
	req := &dto.CreateBillRequest{
		PatientID:   r.FormValue("patient_id"),
		Description: r.FormValue("description"),
		Amount:      r.FormValue("amount"),
	}

	bill, err := h.billingUsecase.Create(r.Context(), req)
	switch err {
	case nil:
		setFlash(w, "success", "Bill generated: "+bill.ID)
	case usecase.ErrPatientAmountRequired, usecase.ErrPatientNotFound, usecase.ErrAmountNotNumber:
		setFlash(w, "error", err.Error())
	default:
		h.log.Warnf("Failed to create bill from form: %+v", err)
		setFlash(w, "error", "Internal server error")
	}

	http.Redirect(w, r, "/billing", http.StatusSeeOther)
}

func (h *PageHandler) render(w http.ResponseWriter, page string, data *pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates[page].Execute(w, data); err != nil {
		h.log.Errorf("Failed to render %s page: %+v", page, err)
	}
}
