package handler

import (
	"net/http"

	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"

	"github.com/sirupsen/logrus"
)

type AnalyticsHandler struct {
	log              *logrus.Logger
	analyticsUsecase usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(log *logrus.Logger, analyticsUsecase usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{
		log:              log,
		analyticsUsecase: analyticsUsecase,
	}
}

func (h *AnalyticsHandler) WeeklyPatients(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.analyticsUsecase.WeeklyPatients(r.Context(), hospitalFilter(r)))
}

func (h *AnalyticsHandler) DepartmentDistribution(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.analyticsUsecase.DepartmentDistribution(r.Context(), hospitalFilter(r)))
}

func (h *AnalyticsHandler) MonthlyRevenue(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.analyticsUsecase.MonthlyRevenue(r.Context(), hospitalFilter(r)))
}

func (h *AnalyticsHandler) PatientTrends(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.analyticsUsecase.PatientTrends(r.Context(), hospitalFilter(r)))
}

func (h *AnalyticsHandler) DepartmentPerformance(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.analyticsUsecase.DepartmentPerformance(r.Context(), hospitalFilter(r)))
}

func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.analyticsUsecase.Overview(r.Context(), hospitalFilter(r))
	if err != nil {
		h.log.WithError(err).Error("Failed to assemble analytics")
		response.InternalServerError(w, "")
		return
	}

	response.Success(w, overview)
}

func hospitalFilter(r *http.Request) string {
	return r.URL.Query().Get("hospital_id")
}
