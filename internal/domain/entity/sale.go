package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Formas de pagamento aceitas no balcão.
const (
	PagamentoCartao    = "CARTAO"
	PagamentoPix       = "PIX"
	PagamentoDinheiro  = "DINHEIRO"
	PagamentoParcelado = "PARCELADO"
)

// FormaPagamentoValida informa se a forma de pagamento é uma das suportadas.
func FormaPagamentoValida(f string) bool {
	switch f {
	case PagamentoCartao, PagamentoPix, PagamentoDinheiro, PagamentoParcelado:
		return true
	}
	return false
}

// Sale é o registro imutável de uma venda concluída (log append-only).
// PrecoVenda é copiado do produto no momento da venda e não acompanha edições
// posteriores de preço. Parcelas só tem significado financeiro quando
// FormaPagamento == PARCELADO.
type Sale struct {
	ID             string
	Produto        string // nome do produto no momento da venda
	ProdutoID      string
	Quantidade     int
	PrecoVenda     decimal.Decimal // preço unitário capturado na venda
	Cliente        string
	FormaPagamento string
	Parcelas       int
	Conta          string // conta de recebimento
	CriadoEm       time.Time
}

// Total devolve o valor da venda (preço capturado × quantidade).
func (s Sale) Total() decimal.Decimal {
	return s.PrecoVenda.Mul(decimal.NewFromInt(int64(s.Quantidade)))
}
