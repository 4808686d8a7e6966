package handler

import (
	"net/http"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/apperror"
	"hospital-management-api/pkg/response"
	"hospital-management-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type NetworkHandler struct {
	log            *logrus.Logger
	networkUsecase usecase.NetworkUsecase
	validator      *validator.CustomValidator
}

func NewNetworkHandler(log *logrus.Logger, networkUsecase usecase.NetworkUsecase, validator *validator.CustomValidator) *NetworkHandler {
	return &NetworkHandler{
		log:            log,
		networkUsecase: networkUsecase,
		validator:      validator,
	}
}

func (h *NetworkHandler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	transfers, err := h.networkUsecase.ListTransfers(r.Context(), r.URL.Query().Get("hospitalId"))
	if err != nil {
		h.fail(w, err, "Failed to fetch transfers")
		return
	}

	response.Success(w, transfers)
}

func (h *NetworkHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	req, ok := bindRequest[dto.CreateTransferRequest](w, r, h.validator)
	if !ok {
		return
	}

	transfer, err := h.networkUsecase.CreateTransfer(r.Context(), req)
	if err != nil {
		h.fail(w, err, "Failed to create transfer")
		return
	}

	response.Created(w, transfer)
}

func (h *NetworkHandler) UpdateTransferStatus(w http.ResponseWriter, r *http.Request) {
	req, ok := bindRequest[dto.UpdateTransferStatusRequest](w, r, h.validator)
	if !ok {
		return
	}

	transfer, err := h.networkUsecase.UpdateTransferStatus(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		h.fail(w, err, "Failed to update transfer")
		return
	}

	response.Success(w, transfer)
}

func (h *NetworkHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.networkUsecase.ListMessages(r.Context(), r.URL.Query().Get("hospitalId"))
	if err != nil {
		h.fail(w, err, "Failed to fetch messages")
		return
	}

	response.Success(w, messages)
}

func (h *NetworkHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	req, ok := bindRequest[dto.SendMessageRequest](w, r, h.validator)
	if !ok {
		return
	}

	message, err := h.networkUsecase.SendMessage(r.Context(), req)
	if err != nil {
		h.fail(w, err, "Failed to send message")
		return
	}

	response.Created(w, message)
}

// fail maps taxonomy errors and reports KV failures as a 500 with a
// feature-specific message.
func (h *NetworkHandler) fail(w http.ResponseWriter, err error, detail string) {
	if _, ok := apperror.As(err); ok {
		response.FromError(w, err)
		return
	}
	h.log.WithError(err).Error(detail)
	response.InternalServerError(w, detail)
}
