package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateAccountRequest entrada para cadastrar uma conta com saldo inicial.
type CreateAccountRequest struct {
	Nome         string          `json:"nome" validate:"required,min=1,max=100"`
	SaldoInicial decimal.Decimal `json:"saldo_inicial"`
}

// AccountResponse saída de uma conta com saldo atual.
type AccountResponse struct {
	Nome         string          `json:"nome"`
	Saldo        decimal.Decimal `json:"saldo"`
	CriadoEm     time.Time       `json:"criado_em"`
	AtualizadoEm time.Time       `json:"atualizado_em"`
}

// AccountListResponse lista de contas com saldo atual.
type AccountListResponse struct {
	Items []AccountResponse `json:"items"`
}
