package postgres

import (
	"context"
	"fmt"

	"github.com/lojinha/estoque-api/internal/domain"
	"github.com/lojinha/estoque-api/internal/domain/entity"
	"github.com/lojinha/estoque-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementação da porta SaleRepository sobre PostgreSQL.
// O log é append-only: só INSERT e SELECT.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create apende uma venda no log.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO vendas (id, produto, produto_id, quantidade, preco_venda, cliente, forma_pagamento, parcelas, conta, criado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.Produto, sale.ProdutoID, sale.Quantidade, sale.PrecoVenda,
		sale.Cliente, sale.FormaPagamento, sale.Parcelas, sale.Conta, sale.CriadoEm,
	)
	if err != nil {
		return domain.Persistencia(fmt.Errorf("insert venda: %w", err))
	}
	return nil
}

// List devolve o histórico de vendas em ordem de registro.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	query := `
		SELECT id, produto, produto_id, quantidade, preco_venda, cliente, forma_pagamento, parcelas, conta, criado_em
		FROM vendas ORDER BY criado_em`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.Produto, &s.ProdutoID, &s.Quantidade, &s.PrecoVenda,
			&s.Cliente, &s.FormaPagamento, &s.Parcelas, &s.Conta, &s.CriadoEm); err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
