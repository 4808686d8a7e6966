package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"
)

// AnalyticsRepository reads the dashboard tables. An empty hospitalID reads
// rows for every hospital.
type AnalyticsRepository interface {
	FindWeeklyPatients(ctx context.Context, hospitalID string) ([]entity.WeeklyPatients, error)
	FindDepartmentDistribution(ctx context.Context, hospitalID string) ([]entity.DepartmentShare, error)
	FindMonthlyRevenue(ctx context.Context, hospitalID string) ([]entity.MonthlyRevenue, error)
	FindPatientTrends(ctx context.Context, hospitalID string) ([]entity.PatientTrend, error)
	FindDepartmentPerformance(ctx context.Context, hospitalID string) ([]entity.DepartmentPerformance, error)
}
