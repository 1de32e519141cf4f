package repository

import "github.com/lojinha/estoque-api/internal/domain/entity"

// AccountRepository define a porta de persistência para Account (DIP).
// Get* devolve (nil, nil) quando a conta não existe.
type AccountRepository interface {
	Create(account *entity.Account) error
	GetByNome(nome string) (*entity.Account, error)
	Update(account *entity.Account) error
	List() ([]*entity.Account, error)
}
