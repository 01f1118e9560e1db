package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// DashboardMetrics agregado de métricas de ventas de una empresa en un rango.
type DashboardMetrics struct {
	Start           time.Time
	End             time.Time
	Revenue         decimal.Decimal
	InvoiceCount    int
	TopProducts     []repository.TopProductResult
	StatusBreakdown []repository.StatusCountResult
}

// SalesReportGenerator serializa las métricas del dashboard a un PDF.
type SalesReportGenerator interface {
	GenerateSalesReport(ctx context.Context, company *entity.Company, metrics *DashboardMetrics) ([]byte, error)
}

// DashboardUseCase calcula las métricas del panel de control.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	companyRepo   repository.CompanyRepository
	reportGen     SalesReportGenerator
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	analyticsRepo repository.AnalyticsRepository,
	companyRepo repository.CompanyRepository,
	reportGen SalesReportGenerator,
) *DashboardUseCase {
	return &DashboardUseCase{
		analyticsRepo: analyticsRepo,
		companyRepo:   companyRepo,
		reportGen:     reportGen,
	}
}

// GetMetrics ejecuta las tres consultas del panel en paralelo y agrega el
// resultado. Si cualquiera falla, falla la operación completa.
func (uc *DashboardUseCase) GetMetrics(ctx context.Context, companyID string, start, end time.Time) (*DashboardMetrics, error) {
	if end.IsZero() {
		end = time.Now()
	}
	if start.IsZero() {
		start = end.AddDate(0, -1, 0)
	}

	type salesResult struct {
		revenue decimal.Decimal
		count   int
		err     error
	}
	type topResult struct {
		products []repository.TopProductResult
		err      error
	}
	type statusResult struct {
		breakdown []repository.StatusCountResult
		err       error
	}

	salesCh := make(chan salesResult, 1)
	topCh := make(chan topResult, 1)
	statusCh := make(chan statusResult, 1)

	go func() {
		revenue, count, err := uc.analyticsRepo.GetSalesMetrics(ctx, companyID, start, end)
		salesCh <- salesResult{revenue: revenue, count: count, err: err}
	}()
	go func() {
		products, err := uc.analyticsRepo.GetTopProducts(ctx, companyID, start, end, 5)
		topCh <- topResult{products: products, err: err}
	}()
	go func() {
		breakdown, err := uc.analyticsRepo.GetInvoiceStatusBreakdown(ctx, companyID)
		statusCh <- statusResult{breakdown: breakdown, err: err}
	}()

	sales := <-salesCh
	top := <-topCh
	status := <-statusCh

	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de ventas: %w", sales.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top de productos: %w", top.err)
	}
	if status.err != nil {
		return nil, fmt.Errorf("dashboard: desglose por estado: %w", status.err)
	}

	return &DashboardMetrics{
		Start:           start,
		End:             end,
		Revenue:         sales.revenue,
		InvoiceCount:    sales.count,
		TopProducts:     top.products,
		StatusBreakdown: status.breakdown,
	}, nil
}

// GenerateReport calcula las métricas y las serializa al informe PDF.
func (uc *DashboardUseCase) GenerateReport(ctx context.Context, companyID string, start, end time.Time) ([]byte, error) {
	metrics, err := uc.GetMetrics(ctx, companyID, start, end)
	if err != nil {
		return nil, err
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: obtener empresa: %w", err)
	}
	return uc.reportGen.GenerateSalesReport(ctx, company, metrics)
}
