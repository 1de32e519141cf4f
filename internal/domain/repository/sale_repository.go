package repository

import "github.com/lojinha/estoque-api/internal/domain/entity"

// SaleRepository define a porta de persistência para o log de vendas.
// O log é append-only: vendas nunca são alteradas nem removidas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	List() ([]*entity.Sale, error)
}
