// Package pdf implementa a geração do relatório financeiro da loja em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título do relatório + data de emissão              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: Gasto em compras / Vendas / Estoque / Margem       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Quantidade vendida por produto                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Estoque atual por produto                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lojinha/estoque-api/internal/application/dto"
	"github.com/lojinha/estoque-api/internal/application/reports"
)

var _ reports.SummaryPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa reports.SummaryPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	printer *message.Printer
}

// NewMarotoPDFGenerator constrói o gerador com formatação pt-BR.
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{printer: message.NewPrinter(language.BrazilianPortuguese)}
}

// GenerateSummaryPDF gera o PDF do relatório e devolve seus bytes.
func (g *MarotoPDFGenerator) GenerateSummaryPDF(
	_ context.Context,
	resumo dto.ReportSummaryResponse,
	vendidosPorProduto []dto.ChartPointResponse,
	estoquePorProduto []dto.ChartPointResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório Financeiro da Loja", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(g.summaryRows(resumo)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.seriesRows("QUANTIDADE VENDIDA POR PRODUTO", vendidosPorProduto)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.seriesRows("ESTOQUE ATUAL POR PRODUTO", estoquePorProduto)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título (esq) e data de emissão (dir).
func (g *MarotoPDFGenerator) headerRow() core.Row {
	emissao := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("RELATÓRIO FINANCEIRO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Resumo de compras, vendas e estoque", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Emitido em", props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
			text.New(emissao, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 6,
			}),
		),
	)
}

// summaryRows: os quatro agregados, margem destacada.
func (g *MarotoPDFGenerator) summaryRows(resumo dto.ReportSummaryResponse) []core.Row {
	metric := func(label string, valor decimal.Decimal) core.Row {
		return row.New(7).Add(
			col.New(6).Add(text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 1, Left: 1,
			})),
			col.New(6).Add(text.New(g.moeda(valor), props.Text{
				Size: 9, Align: align.Right, Top: 1, Right: 1,
			})),
		)
	}
	return []core.Row{
		metric("Total gasto em compras:", resumo.TotalGastoCompras),
		metric("Total de vendas:", resumo.TotalVendas),
		metric("Valor do estoque (a preço de compra):", resumo.ValorEstoque),
		row.New(9).Add(
			col.New(6).Add(text.New("Margem bruta aproximada:", props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2, Left: 1,
			})),
			col.New(6).Add(text.New(g.moeda(resumo.MargemBruta), props.Text{
				Style: fontstyle.Bold, Size: 10, Color: colorPrimary,
				Align: align.Right, Top: 2, Right: 1,
			})),
		),
	}
}

// seriesRows: tabela de duas colunas (produto, quantidade).
func (g *MarotoPDFGenerator) seriesRows(titulo string, pontos []dto.ChartPointResponse) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(titulo, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)),
		row.New(6).Add(
			col.New(8).Add(text.New("Produto", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1,
			})),
			col.New(4).Add(text.New("Quantidade", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		),
	}
	if len(pontos) == 0 {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("— sem registros —", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 1,
			}),
		)))
		return rows
	}
	for _, p := range pontos {
		rows = append(rows, row.New(5).Add(
			col.New(8).Add(text.New(p.Produto, props.Text{
				Size: 8, Top: 1, Left: 1,
			})),
			col.New(4).Add(text.New(g.printer.Sprintf("%d", p.Quantidade), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

// moeda formata um decimal como moeda pt-BR. Ex: 1234.5 → "R$ 1.234,50".
func (g *MarotoPDFGenerator) moeda(v decimal.Decimal) string {
	f, _ := v.Float64()
	return g.printer.Sprintf("R$ %.2f", f)
}
