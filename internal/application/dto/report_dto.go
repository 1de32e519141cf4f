package dto

import "github.com/shopspring/decimal"

// ReportSummaryResponse números agregados dos relatórios, recalculados sob demanda.
//
// MargemBruta é a "margem bruta aproximada" da loja: total do log de vendas menos
// o custo do estoque ATUAL. Mistura um total histórico com uma fotografia do
// momento, então não é lucro contábil (não há custo por unidade vendida).
type ReportSummaryResponse struct {
	TotalGastoCompras decimal.Decimal `json:"total_gasto_compras"`
	TotalVendas       decimal.Decimal `json:"total_vendas"`
	ValorEstoque      decimal.Decimal `json:"valor_estoque"`
	MargemBruta       decimal.Decimal `json:"margem_bruta"`
}

// ChartPointResponse um ponto das séries dos gráficos de barras
// (quantidade vendida por produto, estoque atual por produto).
type ChartPointResponse struct {
	Produto    string `json:"produto"`
	Quantidade int    `json:"quantidade"`
}

// ChartSeriesResponse série completa de um gráfico.
type ChartSeriesResponse struct {
	Items []ChartPointResponse `json:"items"`
}
