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

var _ repository.InstallmentRepository = (*InstallmentRepo)(nil)

// InstallmentRepo implementação da porta InstallmentRepository sobre PostgreSQL.
type InstallmentRepo struct {
	q Querier
}

// NewInstallmentRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewInstallmentRepository(q Querier) *InstallmentRepo {
	return &InstallmentRepo{q: q}
}

// Create persiste um acordo novo do crediário.
func (r *InstallmentRepo) Create(installment *entity.Installment) error {
	query := `
		INSERT INTO crediario (id, cliente, produto, valor, parcelas, pago, criado_em, pago_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		installment.ID, installment.Cliente, installment.Produto, installment.Valor,
		installment.Parcelas, installment.Pago, installment.CriadoEm, installment.PagoEm,
	)
	if err != nil {
		return domain.Persistencia(fmt.Errorf("insert crediário: %w", err))
	}
	return nil
}

// GetByID obtém um acordo por ID. (nil, nil) quando não existe.
func (r *InstallmentRepo) GetByID(id string) (*entity.Installment, error) {
	query := `
		SELECT id, cliente, produto, valor, parcelas, pago, criado_em, pago_em
		FROM crediario WHERE id = $1`
	var i entity.Installment
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.Cliente, &i.Produto, &i.Valor, &i.Parcelas, &i.Pago, &i.CriadoEm, &i.PagoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get crediário: %w", err)
	}
	return &i, nil
}

// Update atualiza um acordo existente (transição para pago).
func (r *InstallmentRepo) Update(installment *entity.Installment) error {
	query := `
		UPDATE crediario SET cliente = $2, produto = $3, valor = $4, parcelas = $5, pago = $6, pago_em = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		installment.ID, installment.Cliente, installment.Produto, installment.Valor,
		installment.Parcelas, installment.Pago, installment.PagoEm,
	)
	if err != nil {
		return domain.Persistencia(fmt.Errorf("update crediário: %w", err))
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// List devolve todos os acordos em ordem de registro.
func (r *InstallmentRepo) List() ([]*entity.Installment, error) {
	query := `
		SELECT id, cliente, produto, valor, parcelas, pago, criado_em, pago_em
		FROM crediario ORDER BY criado_em`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list crediário: %w", err)
	}
	defer rows.Close()
	var list []*entity.Installment
	for rows.Next() {
		var i entity.Installment
		if err := rows.Scan(&i.ID, &i.Cliente, &i.Produto, &i.Valor, &i.Parcelas,
			&i.Pago, &i.CriadoEm, &i.PagoEm); err != nil {
			return nil, fmt.Errorf("scan crediário: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
