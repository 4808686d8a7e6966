package usecase

import (
	"context"
	"fmt"
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/pkg/apperror"

	"github.com/sirupsen/logrus"
)

// NetworkUsecase handles transfers and messages exchanged between hospitals.
type NetworkUsecase interface {
	ListTransfers(ctx context.Context, hospitalID string) ([]entity.Transfer, error)
	CreateTransfer(ctx context.Context, req *dto.CreateTransferRequest) (*entity.Transfer, error)
	UpdateTransferStatus(ctx context.Context, id string, req *dto.UpdateTransferStatusRequest) (*entity.Transfer, error)
	ListMessages(ctx context.Context, hospitalID string) ([]entity.Message, error)
	SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*entity.Message, error)
}

type networkUsecase struct {
	log  *logrus.Logger
	repo repository.NetworkRepository
	now  func() time.Time
}

func NewNetworkUsecase(log *logrus.Logger, repo repository.NetworkRepository) NetworkUsecase {
	return &networkUsecase{log: log, repo: repo, now: time.Now}
}

func (u *networkUsecase) ListTransfers(ctx context.Context, hospitalID string) ([]entity.Transfer, error) {
	if hospitalID == "" {
		return nil, errHospitalIDRequired()
	}

	transfers, err := u.repo.FindTransfers(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch transfers: %+v", err)
		return nil, fmt.Errorf("fetch transfers: %w", err)
	}

	out := []entity.Transfer{}
	for _, t := range transfers {
		if t.Involves(hospitalID) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (u *networkUsecase) CreateTransfer(ctx context.Context, req *dto.CreateTransferRequest) (*entity.Transfer, error) {
	now := u.now().UTC()
	transfer := &entity.Transfer{
		ID:           fmt.Sprintf("TRF-%d", now.UnixMilli()),
		FromHospital: req.FromHospital,
		ToHospital:   req.ToHospital,
		PatientName:  req.PatientName,
		PatientID:    req.PatientID,
		Reason:       req.Reason,
		Status:       entity.TransferStatusPending,
		Timestamp:    now,
	}

	if err := u.repo.SaveTransfer(ctx, transfer); err != nil {
		u.log.Warnf("Failed to create transfer: %+v", err)
		return nil, fmt.Errorf("create transfer: %w", err)
	}
	return transfer, nil
}

func (u *networkUsecase) UpdateTransferStatus(ctx context.Context, id string, req *dto.UpdateTransferStatusRequest) (*entity.Transfer, error) {
	if req.Status != entity.TransferStatusApproved && req.Status != entity.TransferStatusRejected {
		return nil, apperror.BadRequest("Invalid status", nil)
	}

	transfer, err := u.repo.FindTransfer(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find transfer %s: %+v", id, err)
		return nil, fmt.Errorf("find transfer: %w", err)
	}
	if transfer == nil {
		return nil, apperror.NotFound("Transfer not found")
	}

	updatedAt := u.now().UTC()
	transfer.Status = req.Status
	transfer.UpdatedAt = &updatedAt

	if err := u.repo.SaveTransfer(ctx, transfer); err != nil {
		u.log.Warnf("Failed to update transfer %s: %+v", id, err)
		return nil, fmt.Errorf("update transfer: %w", err)
	}
	return transfer, nil
}

func (u *networkUsecase) ListMessages(ctx context.Context, hospitalID string) ([]entity.Message, error) {
	if hospitalID == "" {
		return nil, errHospitalIDRequired()
	}

	messages, err := u.repo.FindMessages(ctx)
	if err != nil {
		u.log.Warnf("Failed to fetch messages: %+v", err)
		return nil, fmt.Errorf("fetch messages: %w", err)
	}

	out := []entity.Message{}
	for _, m := range messages {
		if m.Involves(hospitalID) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (u *networkUsecase) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*entity.Message, error) {
	now := u.now().UTC()
	message := &entity.Message{
		ID:           fmt.Sprintf("MSG-%d", now.UnixMilli()),
		FromHospital: req.FromHospital,
		ToHospital:   req.ToHospital,
		Subject:      req.Subject,
		Message:      req.Message,
		Timestamp:    now,
		Read:         false,
	}

	if err := u.repo.SaveMessage(ctx, message); err != nil {
		u.log.Warnf("Failed to send message: %+v", err)
		return nil, fmt.Errorf("send message: %w", err)
	}
	return message, nil
}

func errHospitalIDRequired() error {
	return apperror.BadRequest("Hospital ID required", nil)
}
