package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
)

// DashboardHandler maneja las métricas del panel (protegido, solo admin).
type DashboardHandler struct {
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetMetrics godoc
// @Summary      Métricas de ventas del panel
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "Inicio del rango (RFC 3339)"
// @Param        end    query  string  false  "Fin del rango (RFC 3339)"
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	start, end := parseRange(c)
	metrics, err := h.uc.GetMetrics(c.UserContext(), GetCompanyID(c), start, end)
	if err != nil {
		return domainError(c, err)
	}

	resp := dto.DashboardResponse{
		Start:        metrics.Start,
		End:          metrics.End,
		Revenue:      metrics.Revenue,
		InvoiceCount: metrics.InvoiceCount,
	}
	for _, p := range metrics.TopProducts {
		resp.TopProducts = append(resp.TopProducts, dto.TopProductResponse{
			ProductID: p.ProductID,
			Reference: p.Reference,
			Name:      p.Name,
			Units:     p.Units,
			Revenue:   p.Revenue,
		})
	}
	for _, s := range metrics.StatusBreakdown {
		resp.StatusBreakdown = append(resp.StatusBreakdown, dto.StatusCountResponse{
			Status: s.Status,
			Count:  s.Count,
			Total:  s.Total,
		})
	}
	return c.JSON(resp)
}

// GetReport godoc
// @Summary      Informe de ventas en PDF
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Param        start  query  string  false  "Inicio del rango (RFC 3339)"
// @Param        end    query  string  false  "Fin del rango (RFC 3339)"
// @Success      200  {file}  binary
// @Router       /api/dashboard/report [get]
func (h *DashboardHandler) GetReport(c *fiber.Ctx) error {
	start, end := parseRange(c)
	report, err := h.uc.GenerateReport(c.UserContext(), GetCompanyID(c), start, end)
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="informe-ventas.pdf"`)
	return c.Send(report)
}

// parseRange lee start/end de la query. Valores ausentes o ilegibles quedan en
// cero y el caso de uso aplica su rango por defecto.
func parseRange(c *fiber.Ctx) (start, end time.Time) {
	if s := c.Query("start"); s != "" {
		start, _ = time.Parse(time.RFC3339, s)
	}
	if s := c.Query("end"); s != "" {
		end, _ = time.Parse(time.RFC3339, s)
	}
	return start, end
}
