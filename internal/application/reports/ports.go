package reports

import (
	"context"

	"github.com/lojinha/estoque-api/internal/application/dto"
)

// SummaryPDFGenerator gera o PDF do relatório da loja (números agregados +
// tabelas que alimentam os dois gráficos de barras).
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(
		ctx context.Context,
		resumo dto.ReportSummaryResponse,
		vendidosPorProduto []dto.ChartPointResponse,
		estoquePorProduto []dto.ChartPointResponse,
	) ([]byte, error)
}
