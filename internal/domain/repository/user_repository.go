package repository

import "github.com/lojinha/estoque-api/internal/domain/entity"

// UserRepository define a porta de persistência para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
