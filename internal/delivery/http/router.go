package http

import (
	"net/http"

	"hospitaldesk/internal/delivery/http/handler"
	"hospitaldesk/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	overviewHandler    *handler.OverviewHandler
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	billHandler        *handler.BillHandler
	pageHandler        *handler.PageHandler
	loggingMiddleware  *middleware.LoggingMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	overviewHandler *handler.OverviewHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	billHandler *handler.BillHandler,
	pageHandler *handler.PageHandler,
	loggingMiddleware *middleware.LoggingMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		overviewHandler:    overviewHandler,
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		billHandler:        billHandler,
		pageHandler:        pageHandler,
		loggingMiddleware:  loggingMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// JSON API consumed by the dashboard sessions
	api := r.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	api.HandleFunc("/overview", r.overviewHandler.GetSummary).Methods(http.MethodGet)

	api.HandleFunc("/patients", r.patientHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)

	api.HandleFunc("/appointments", r.appointmentHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)

	api.HandleFunc("/bills", r.billHandler.GetAll).Methods(http.MethodGet)
	api.HandleFunc("/bills", r.billHandler.Create).Methods(http.MethodPost)

	// Server-rendered admin pages
	r.router.HandleFunc("/", r.pageHandler.Index).Methods(http.MethodGet)
	r.router.HandleFunc("/patients", r.pageHandler.Patients).Methods(http.MethodGet, http.MethodPost)
	r.router.HandleFunc("/appointments", r.pageHandler.Appointments).Methods(http.MethodGet, http.MethodPost)
	r.router.HandleFunc("/billing", r.pageHandler.Billing).Methods(http.MethodGet, http.MethodPost)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
