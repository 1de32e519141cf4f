package repository

import "github.com/lojinha/estoque-api/internal/domain/entity"

// InstallmentRepository define a porta de persistência para o crediário.
type InstallmentRepository interface {
	Create(installment *entity.Installment) error
	GetByID(id string) (*entity.Installment, error)
	Update(installment *entity.Installment) error
	List() ([]*entity.Installment, error)
}
