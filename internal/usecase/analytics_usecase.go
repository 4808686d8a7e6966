package usecase

import (
	"context"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// AnalyticsUsecase serves the dashboard charts. Chart reads never fail: an
// empty table or a store error yields the chart's fixed dataset.
type AnalyticsUsecase interface {
	WeeklyPatients(ctx context.Context, hospitalID string) []entity.WeeklyPatients
	DepartmentDistribution(ctx context.Context, hospitalID string) []entity.DepartmentShare
	MonthlyRevenue(ctx context.Context, hospitalID string) []entity.MonthlyRevenue
	PatientTrends(ctx context.Context, hospitalID string) []entity.PatientTrend
	DepartmentPerformance(ctx context.Context, hospitalID string) []entity.DepartmentPerformance
	Overview(ctx context.Context, hospitalID string) (*entity.Analytics, error)
}

type analyticsUsecase struct {
	log  *logrus.Logger
	repo repository.AnalyticsRepository
}

func NewAnalyticsUsecase(log *logrus.Logger, repo repository.AnalyticsRepository) AnalyticsUsecase {
	return &analyticsUsecase{log: log, repo: repo}
}

func (u *analyticsUsecase) WeeklyPatients(ctx context.Context, hospitalID string) []entity.WeeklyPatients {
	rows, err := u.repo.FindWeeklyPatients(ctx, hospitalID)
	return orFallback(u.log, entity.TableWeeklyPatients, rows, err, fallbackWeeklyPatients)
}

func (u *analyticsUsecase) DepartmentDistribution(ctx context.Context, hospitalID string) []entity.DepartmentShare {
	rows, err := u.repo.FindDepartmentDistribution(ctx, hospitalID)
	return orFallback(u.log, entity.TableDepartmentDistribution, rows, err, fallbackDepartmentDistribution)
}

func (u *analyticsUsecase) MonthlyRevenue(ctx context.Context, hospitalID string) []entity.MonthlyRevenue {
	rows, err := u.repo.FindMonthlyRevenue(ctx, hospitalID)
	return orFallback(u.log, entity.TableMonthlyRevenue, rows, err, fallbackMonthlyRevenue)
}

func (u *analyticsUsecase) PatientTrends(ctx context.Context, hospitalID string) []entity.PatientTrend {
	rows, err := u.repo.FindPatientTrends(ctx, hospitalID)
	return orFallback(u.log, entity.TablePatientTrends, rows, err, fallbackPatientTrends)
}

func (u *analyticsUsecase) DepartmentPerformance(ctx context.Context, hospitalID string) []entity.DepartmentPerformance {
	rows, err := u.repo.FindDepartmentPerformance(ctx, hospitalID)
	return orFallback(u.log, entity.TableDepartmentPerformance, rows, err, fallbackDepartmentPerformance)
}

// Overview reads the five charts concurrently.
func (u *analyticsUsecase) Overview(ctx context.Context, hospitalID string) (*entity.Analytics, error) {
	var out entity.Analytics
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out.WeeklyPatients = u.WeeklyPatients(ctx, hospitalID)
		return nil
	})
	g.Go(func() error {
		out.DepartmentDistribution = u.DepartmentDistribution(ctx, hospitalID)
		return nil
	})
	g.Go(func() error {
		out.MonthlyRevenue = u.MonthlyRevenue(ctx, hospitalID)
		return nil
	})
	g.Go(func() error {
		out.PatientTrends = u.PatientTrends(ctx, hospitalID)
		return nil
	})
	g.Go(func() error {
		out.DepartmentPerformance = u.DepartmentPerformance(ctx, hospitalID)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

func orFallback[R any](log *logrus.Logger, chart string, rows []R, err error, fallback []R) []R {
	if err != nil {
		log.Warnf("Failed to read %s, serving fallback: %+v", chart, err)
	}
	if err != nil || len(rows) == 0 {
		metrics.RecordAnalyticsFallback(chart)
		return append([]R(nil), fallback...)
	}
	return rows
}
