package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar uma venda.
// Parcelas só é considerada quando FormaPagamento == PARCELADO; nos demais casos
// é registrada como 1.
type CreateSaleRequest struct {
	Produto        string `json:"produto" validate:"required"`
	Quantidade     int    `json:"quantidade" validate:"min=1"`
	Cliente        string `json:"cliente"`
	FormaPagamento string `json:"forma_pagamento" validate:"required"`
	Parcelas       int    `json:"parcelas"`
	Conta          string `json:"conta" validate:"required"`
}

// SaleResponse saída de uma venda registrada.
type SaleResponse struct {
	ID             string          `json:"id"`
	Produto        string          `json:"produto"`
	ProdutoID      string          `json:"produto_id"`
	Quantidade     int             `json:"quantidade"`
	PrecoVenda     decimal.Decimal `json:"preco_venda"`
	Total          decimal.Decimal `json:"total"`
	Cliente        string          `json:"cliente"`
	FormaPagamento string          `json:"forma_pagamento"`
	Parcelas       int             `json:"parcelas"`
	Conta          string          `json:"conta"`
	CriadoEm       time.Time       `json:"criado_em"`
}

// SaleListResponse histórico de vendas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
}
