package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Installment é um acordo de venda a prazo. Registro independente: não há
// integridade referencial com Sale nem com Product, e o valor não transita
// pelas contas (o crediário da loja sempre foi um caderno à parte).
type Installment struct {
	ID       string
	Cliente  string
	Produto  string
	Valor    decimal.Decimal
	Parcelas int // prazo como número de parcelas
	Pago     bool
	CriadoEm time.Time
	PagoEm   *time.Time
}
