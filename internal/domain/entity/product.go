package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorias de produto da loja.
const (
	CategoriaRoupas     = "ROUPAS"
	CategoriaAcessorios = "ACESSORIOS_CELULAR"
)

// CategoriaValida informa se a categoria é uma das suportadas.
func CategoriaValida(c string) bool {
	return c == CategoriaRoupas || c == CategoriaAcessorios
}

// Product é um item estocado com custo de aquisição, preço de venda e quantidade
// em mãos. O ID é gerado; Nome é campo de exibição/busca e único no cadastro
// (cadastros com nome repetido são rejeitados). Invariante: Quantidade >= 0.
type Product struct {
	ID           string
	Nome         string
	Categoria    string
	PrecoCompra  decimal.Decimal // custo unitário pago na aquisição
	PrecoVenda   decimal.Decimal
	Quantidade   int
	Conta        string // conta que financiou a compra (existia no cadastro)
	Foto         string // caminho no Photo Store; vazio = sem foto
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
