package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lojinha/estoque-api/internal/application/dto"
	"github.com/lojinha/estoque-api/internal/application/reports"
)

// ReportHandler gerencia as requisições HTTP de relatório (protegido).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumo financeiro (gasto, vendas, estoque, margem aproximada)
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportSummaryResponse
// @Router       /api/relatorios/resumo [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Resumo()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SoldByProduct godoc
// @Summary      Série "quantidade vendida por produto"
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ChartSeriesResponse
// @Router       /api/relatorios/vendidos-por-produto [get]
func (h *ReportHandler) SoldByProduct(c *fiber.Ctx) error {
	out, err := h.uc.VendidosPorProduto()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// StockByProduct godoc
// @Summary      Série "estoque atual por produto"
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ChartSeriesResponse
// @Router       /api/relatorios/estoque-por-produto [get]
func (h *ReportHandler) StockByProduct(c *fiber.Ctx) error {
	out, err := h.uc.EstoquePorProduto()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Relatório financeiro completo em PDF
// @Tags         relatorios
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  file
// @Router       /api/relatorios/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.PDF(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-financeiro.pdf"`)
	return c.Send(pdfBytes)
}
