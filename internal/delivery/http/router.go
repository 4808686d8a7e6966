package http

import (
	"net/http"

	"hospital-management-api/internal/delivery/http/handler"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/infrastructure/metrics"
	"hospital-management-api/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

const (
	apiTitle   = "Multi Hospital Management System API"
	apiVersion = "1.0.0"
)

// Handlers groups everything the router mounts. Network is nil when the
// hospital network feature is disabled.
type Handlers struct {
	Hospitals    handler.Resource
	Patients     handler.Resource
	Doctors      handler.Resource
	Departments  handler.Resource
	Appointments handler.Resource
	Analytics    *handler.AnalyticsHandler
	Network      *handler.NetworkHandler
}

type Router struct {
	router         *mux.Router
	log            *logrus.Logger
	handlers       Handlers
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(log *logrus.Logger, handlers Handlers, corsMiddleware *middleware.CORSMiddleware) *Router {
	return &Router{
		router:         mux.NewRouter(),
		log:            log,
		handlers:       handlers,
		corsMiddleware: corsMiddleware,
	}
}

// Setup registers every route and returns the router wrapped in the request
// id, logging and CORS middleware.
func (r *Router) Setup() http.Handler {
	r.router.HandleFunc("/", r.root).Methods(http.MethodGet)
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	api := r.router.PathPrefix("/api").Subrouter()

	r.mountResource(api, "/hospitals", r.handlers.Hospitals)
	r.mountResource(api, "/patients", r.handlers.Patients)
	r.mountResource(api, "/doctors", r.handlers.Doctors)
	r.mountResource(api, "/departments", r.handlers.Departments)
	r.mountResource(api, "/appointments", r.handlers.Appointments)

	// Analytics routes
	analytics := r.handlers.Analytics
	api.HandleFunc("/analytics", analytics.Overview).Methods(http.MethodGet)
	api.HandleFunc("/analytics/", analytics.Overview).Methods(http.MethodGet)
	api.HandleFunc("/analytics/weekly-patients", analytics.WeeklyPatients).Methods(http.MethodGet)
	api.HandleFunc("/analytics/department-distribution", analytics.DepartmentDistribution).Methods(http.MethodGet)
	api.HandleFunc("/analytics/monthly-revenue", analytics.MonthlyRevenue).Methods(http.MethodGet)
	api.HandleFunc("/analytics/patient-trends", analytics.PatientTrends).Methods(http.MethodGet)
	api.HandleFunc("/analytics/department-performance", analytics.DepartmentPerformance).Methods(http.MethodGet)

	// Hospital network routes
	if network := r.handlers.Network; network != nil {
		api.HandleFunc("/network/transfers", network.ListTransfers).Methods(http.MethodGet)
		api.HandleFunc("/network/transfers", network.CreateTransfer).Methods(http.MethodPost)
		api.HandleFunc("/network/transfers/{id}", network.UpdateTransferStatus).Methods(http.MethodPatch)
		api.HandleFunc("/network/messages", network.ListMessages).Methods(http.MethodGet)
		api.HandleFunc("/network/messages", network.SendMessage).Methods(http.MethodPost)
	}

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Not Found")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.router.Use(metrics.Middleware)

	var h http.Handler = r.router
	h = r.corsMiddleware.Handle(h)
	h = middleware.Logging(r.log)(h)
	h = middleware.RequestID(h)
	return h
}

// mountResource accepts the collection path with and without a trailing slash.
func (r *Router) mountResource(api *mux.Router, path string, h handler.Resource) {
	for _, collection := range []string{path, path + "/"} {
		api.HandleFunc(collection, h.List).Methods(http.MethodGet)
		api.HandleFunc(collection, h.Create).Methods(http.MethodPost)
	}
	api.HandleFunc(path+"/{id}", h.Get).Methods(http.MethodGet)
	api.HandleFunc(path+"/{id}", h.Update).Methods(http.MethodPut)
	api.HandleFunc(path+"/{id}", h.Delete).Methods(http.MethodDelete)
}

func (r *Router) root(w http.ResponseWriter, req *http.Request) {
	response.Success(w, map[string]string{
		"message": apiTitle,
		"version": apiVersion,
		"docs":    "/docs",
	})
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, map[string]string{"status": "healthy"})
}
