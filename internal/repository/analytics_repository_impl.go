package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/infrastructure/store"
)

type analyticsRepository struct {
	stores *store.Provider
}

func NewAnalyticsRepository(stores *store.Provider) domainRepo.AnalyticsRepository {
	return &analyticsRepository{stores: stores}
}

func (r *analyticsRepository) FindWeeklyPatients(ctx context.Context, hospitalID string) ([]entity.WeeklyPatients, error) {
	var rows []entity.WeeklyPatients
	return rows, r.selectRows(ctx, entity.TableWeeklyPatients, hospitalID, &rows)
}

func (r *analyticsRepository) FindDepartmentDistribution(ctx context.Context, hospitalID string) ([]entity.DepartmentShare, error) {
	var rows []entity.DepartmentShare
	return rows, r.selectRows(ctx, entity.TableDepartmentDistribution, hospitalID, &rows)
}

func (r *analyticsRepository) FindMonthlyRevenue(ctx context.Context, hospitalID string) ([]entity.MonthlyRevenue, error) {
	var rows []entity.MonthlyRevenue
	return rows, r.selectRows(ctx, entity.TableMonthlyRevenue, hospitalID, &rows)
}

func (r *analyticsRepository) FindPatientTrends(ctx context.Context, hospitalID string) ([]entity.PatientTrend, error) {
	var rows []entity.PatientTrend
	return rows, r.selectRows(ctx, entity.TablePatientTrends, hospitalID, &rows)
}

func (r *analyticsRepository) FindDepartmentPerformance(ctx context.Context, hospitalID string) ([]entity.DepartmentPerformance, error) {
	var rows []entity.DepartmentPerformance
	return rows, r.selectRows(ctx, entity.TableDepartmentPerformance, hospitalID, &rows)
}

func (r *analyticsRepository) selectRows(ctx context.Context, table, hospitalID string, dest interface{}) error {
	var q store.Query
	if hospitalID != "" {
		q = store.Where("hospital_id", hospitalID)
	}
	return r.stores.Standard().Select(ctx, table, q, dest)
}
