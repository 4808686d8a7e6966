package handler

import (
	"net/http"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Resource is the set of CRUD endpoints the router mounts for each entity.
type Resource interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ResourceHandler[T any, C any, U dto.Patch] struct {
	log       *logrus.Logger
	usecase   usecase.ResourceUsecase[T, C, U]
	validator *validator.CustomValidator
	filters   []string
}

type (
	HospitalHandler    = ResourceHandler[entity.Hospital, dto.CreateHospitalRequest, dto.UpdateHospitalRequest]
	PatientHandler     = ResourceHandler[entity.Patient, dto.CreatePatientRequest, dto.UpdatePatientRequest]
	DoctorHandler      = ResourceHandler[entity.Doctor, dto.CreateDoctorRequest, dto.UpdateDoctorRequest]
	DepartmentHandler  = ResourceHandler[entity.Department, dto.CreateDepartmentRequest, dto.UpdateDepartmentRequest]
	AppointmentHandler = ResourceHandler[entity.Appointment, dto.CreateAppointmentRequest, dto.UpdateAppointmentRequest]
)

func NewHospitalHandler(log *logrus.Logger, uc usecase.HospitalUsecase, v *validator.CustomValidator) *HospitalHandler {
	return &HospitalHandler{log: log, usecase: uc, validator: v}
}

func NewPatientHandler(log *logrus.Logger, uc usecase.PatientUsecase, v *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{log: log, usecase: uc, validator: v,
		filters: []string{"hospital_id", "status", "department"}}
}

func NewDoctorHandler(log *logrus.Logger, uc usecase.DoctorUsecase, v *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{log: log, usecase: uc, validator: v,
		filters: []string{"hospital_id", "availability", "department", "specialty"}}
}

func NewDepartmentHandler(log *logrus.Logger, uc usecase.DepartmentUsecase, v *validator.CustomValidator) *DepartmentHandler {
	return &DepartmentHandler{log: log, usecase: uc, validator: v,
		filters: []string{"hospital_id"}}
}

func NewAppointmentHandler(log *logrus.Logger, uc usecase.AppointmentUsecase, v *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{log: log, usecase: uc, validator: v,
		filters: []string{"hospital_id", "status", "date", "department", "patient_id"}}
}

func (h *ResourceHandler[T, C, U]) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.usecase.List(r.Context(), h.listFilter(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.Success(w, rows)
}

func (h *ResourceHandler[T, C, U]) Get(w http.ResponseWriter, r *http.Request) {
	row, err := h.usecase.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.Success(w, row)
}

func (h *ResourceHandler[T, C, U]) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := bindRequest[C](w, r, h.validator)
	if !ok {
		return
	}

	row, err := h.usecase.Create(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.Success(w, row)
}

func (h *ResourceHandler[T, C, U]) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := bindRequest[U](w, r, h.validator)
	if !ok {
		return
	}

	row, err := h.usecase.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	response.Success(w, row)
}

func (h *ResourceHandler[T, C, U]) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.usecase.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.fail(w, r, err)
		return
	}

	response.Message(w, h.usecase.Name()+" deleted successfully")
}

// listFilter keeps only the supported, non-empty query parameters.
func (h *ResourceHandler[T, C, U]) listFilter(r *http.Request) entity.ListFilter {
	query := r.URL.Query()
	filter := entity.ListFilter{}
	for _, key := range h.filters {
		if value := query.Get(key); value != "" {
			filter[key] = value
		}
	}
	return filter
}

func (h *ResourceHandler[T, C, U]) fail(w http.ResponseWriter, r *http.Request, err error) {
	if !response.FromError(w, err) {
		h.log.WithError(err).Errorf("%s %s failed", r.Method, r.URL.Path)
	}
}
