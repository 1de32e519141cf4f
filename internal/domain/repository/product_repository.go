package repository

import "github.com/lojinha/estoque-api/internal/domain/entity"

// ProductRepository define a porta de persistência para Product (DIP).
// Get* devolve (nil, nil) quando o produto não existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByNome(nome string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List() ([]*entity.Product, error)
}
