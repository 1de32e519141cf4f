package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account é uma conta nomeada com saldo corrente: financia compras de estoque e
// recebe o valor das vendas. O nome é a chave única; contas nunca são removidas.
type Account struct {
	Nome         string
	Saldo        decimal.Decimal
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
