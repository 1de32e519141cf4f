package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para cadastrar um produto.
// Conta é a conta que financia a compra; o custo total (preço de compra ×
// quantidade) é debitado dela no cadastro.
type CreateProductRequest struct {
	Nome        string          `json:"nome" validate:"required,min=1,max=200"`
	Categoria   string          `json:"categoria" validate:"required"`
	PrecoCompra decimal.Decimal `json:"preco_compra"`
	PrecoVenda  decimal.Decimal `json:"preco_venda"`
	Quantidade  int             `json:"quantidade"`
	Conta       string          `json:"conta" validate:"required"`
}

// UpdateProductRequest entrada para editar um produto (sem Quantidade: ajustes
// de estoque passam pela operação própria).
type UpdateProductRequest struct {
	Nome        *string          `json:"nome" validate:"omitempty,min=1,max=200"`
	Categoria   *string          `json:"categoria"`
	PrecoCompra *decimal.Decimal `json:"preco_compra"`
	PrecoVenda  *decimal.Decimal `json:"preco_venda"`
}

// AdjustQuantityRequest entrada para ajustar a quantidade em estoque (delta com sinal).
type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Nome         string          `json:"nome"`
	Categoria    string          `json:"categoria"`
	PrecoCompra  decimal.Decimal `json:"preco_compra"`
	PrecoVenda   decimal.Decimal `json:"preco_venda"`
	Quantidade   int             `json:"quantidade"`
	Conta        string          `json:"conta"`
	Foto         string          `json:"foto,omitempty"`
	CriadoEm     time.Time       `json:"criado_em"`
	AtualizadoEm time.Time       `json:"atualizado_em"`
}

// ProductListResponse lista de produtos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}

// CatalogItemResponse item da vitrine: só o que o cliente vê.
type CatalogItemResponse struct {
	Nome       string          `json:"nome"`
	PrecoVenda decimal.Decimal `json:"preco_venda"`
	Quantidade int             `json:"quantidade"`
	Foto       string          `json:"foto,omitempty"`
}

// CatalogResponse vitrine de produtos.
type CatalogResponse struct {
	Items []CatalogItemResponse `json:"items"`
}
