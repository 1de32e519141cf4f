package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInstallmentRequest entrada para registrar uma venda a prazo.
// Append puro: não há validação contra produtos, contas ou vendas existentes.
type CreateInstallmentRequest struct {
	Cliente  string          `json:"cliente" validate:"required"`
	Produto  string          `json:"produto" validate:"required"`
	Valor    decimal.Decimal `json:"valor"`
	Parcelas int             `json:"parcelas" validate:"min=1"`
	Pago     bool            `json:"pago"`
}

// InstallmentResponse saída de um acordo de venda a prazo.
type InstallmentResponse struct {
	ID       string          `json:"id"`
	Cliente  string          `json:"cliente"`
	Produto  string          `json:"produto"`
	Valor    decimal.Decimal `json:"valor"`
	Parcelas int             `json:"parcelas"`
	Pago     bool            `json:"pago"`
	CriadoEm time.Time       `json:"criado_em"`
	PagoEm   *time.Time      `json:"pago_em,omitempty"`
}

// InstallmentListResponse lista de acordos do crediário.
type InstallmentListResponse struct {
	Items []InstallmentResponse `json:"items"`
}
