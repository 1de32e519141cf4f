package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lojinha/estoque-api/internal/domain"
	"github.com/lojinha/estoque-api/internal/domain/entity"
	"github.com/lojinha/estoque-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementação da porta AccountRepository sobre PostgreSQL
// (usável com pool ou tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste uma conta nova.
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO contas (nome, saldo, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		account.Nome, account.Saldo, account.CriadoEm, account.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrContaDuplicada
		}
		return domain.Persistencia(fmt.Errorf("insert conta: %w", err))
	}
	return nil
}

// GetByNome obtém uma conta pelo nome. (nil, nil) quando não existe.
func (r *AccountRepo) GetByNome(nome string) (*entity.Account, error) {
	query := `
		SELECT nome, saldo, criado_em, atualizado_em
		FROM contas WHERE nome = $1`
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, nome).Scan(
		&a.Nome, &a.Saldo, &a.CriadoEm, &a.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get conta: %w", err)
	}
	return &a, nil
}

// Update atualiza o saldo de uma conta existente.
func (r *AccountRepo) Update(account *entity.Account) error {
	query := `
		UPDATE contas SET saldo = $2, atualizado_em = $3
		WHERE nome = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		account.Nome, account.Saldo, account.AtualizadoEm,
	)
	if err != nil {
		return domain.Persistencia(fmt.Errorf("update conta: %w", err))
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// List devolve todas as contas.
func (r *AccountRepo) List() ([]*entity.Account, error) {
	query := `
		SELECT nome, saldo, criado_em, atualizado_em
		FROM contas ORDER BY nome`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list contas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.Nome, &a.Saldo, &a.CriadoEm, &a.AtualizadoEm); err != nil {
			return nil, fmt.Errorf("scan conta: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
