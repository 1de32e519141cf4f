// Package reports calcula os relatórios da loja. Valores derivados, recalculados
// a cada chamada, sem cache.
package reports

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lojinha/estoque-api/internal/application/dto"
	"github.com/lojinha/estoque-api/internal/domain/repository"
)

// ReportUseCase casos de uso de relatório.
type ReportUseCase struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	pdfGen      SummaryPDFGenerator
}

// NewReportUseCase constrói o caso de uso. pdfGen pode ser nil se o export em
// PDF não for exposto.
func NewReportUseCase(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	pdfGen SummaryPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{productRepo: productRepo, saleRepo: saleRepo, pdfGen: pdfGen}
}

// Resumo calcula os quatro agregados:
//
//	total_gasto_compras = Σ(preço de compra × quantidade) sobre o estoque ATUAL
//	total_vendas        = Σ(preço capturado × quantidade) sobre o log de vendas
//	valor_estoque       = Σ(preço de venda × quantidade) sobre o estoque ATUAL
//	margem_bruta        = total_vendas − total_gasto_compras
//
// margem_bruta mistura um total de log com uma fotografia do estoque: é a
// "margem bruta aproximada" de sempre, não lucro contábil.
func (uc *ReportUseCase) Resumo() (*dto.ReportSummaryResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	salesList, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}

	totalGasto := decimal.Zero
	valorEstoque := decimal.Zero
	for _, p := range products {
		qtd := decimal.NewFromInt(int64(p.Quantidade))
		totalGasto = totalGasto.Add(p.PrecoCompra.Mul(qtd))
		valorEstoque = valorEstoque.Add(p.PrecoVenda.Mul(qtd))
	}
	totalVendas := decimal.Zero
	for _, s := range salesList {
		totalVendas = totalVendas.Add(s.Total())
	}

	return &dto.ReportSummaryResponse{
		TotalGastoCompras: totalGasto,
		TotalVendas:       totalVendas,
		ValorEstoque:      valorEstoque,
		MargemBruta:       totalVendas.Sub(totalGasto),
	}, nil
}

// VendidosPorProduto devolve a série do gráfico "quantidade vendida por produto",
// agregada sobre o log de vendas e ordenada por nome.
func (uc *ReportUseCase) VendidosPorProduto() (*dto.ChartSeriesResponse, error) {
	salesList, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	porProduto := map[string]int{}
	for _, s := range salesList {
		porProduto[s.Produto] += s.Quantidade
	}
	return toSeries(porProduto), nil
}

// EstoquePorProduto devolve a série do gráfico "estoque atual por produto".
func (uc *ReportUseCase) EstoquePorProduto() (*dto.ChartSeriesResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	porProduto := map[string]int{}
	for _, p := range products {
		porProduto[p.Nome] = p.Quantidade
	}
	return toSeries(porProduto), nil
}

// PDF gera o relatório completo em PDF.
func (uc *ReportUseCase) PDF(ctx context.Context) ([]byte, error) {
	if uc.pdfGen == nil {
		return nil, fmt.Errorf("relatórios: gerador de PDF não configurado")
	}
	resumo, err := uc.Resumo()
	if err != nil {
		return nil, err
	}
	vendidos, err := uc.VendidosPorProduto()
	if err != nil {
		return nil, err
	}
	estoque, err := uc.EstoquePorProduto()
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateSummaryPDF(ctx, *resumo, vendidos.Items, estoque.Items)
}

func toSeries(porProduto map[string]int) *dto.ChartSeriesResponse {
	out := &dto.ChartSeriesResponse{Items: make([]dto.ChartPointResponse, 0, len(porProduto))}
	for nome, qtd := range porProduto {
		out.Items = append(out.Items, dto.ChartPointResponse{Produto: nome, Quantidade: qtd})
	}
	sort.Slice(out.Items, func(i, j int) bool { return out.Items[i].Produto < out.Items[j].Produto })
	return out
}
