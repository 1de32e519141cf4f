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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementação da porta ProductRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, nome, categoria, preco_compra, preco_venda, quantidade, conta, foto, criado_em, atualizado_em`

// Create persiste um produto novo. Nome repetido vira ErrProdutoDuplicado.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO produtos (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Nome, product.Categoria,
		product.PrecoCompra, product.PrecoVenda, product.Quantidade,
		product.Conta, product.Foto, product.CriadoEm, product.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProdutoDuplicado
		}
		return domain.Persistencia(fmt.Errorf("insert produto: %w", err))
	}
	return nil
}

// GetByID obtém um produto por ID. (nil, nil) quando não existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM produtos WHERE id = $1`, id)
}

// GetByNome obtém um produto pelo nome de exibição. (nil, nil) quando não existe.
func (r *ProductRepo) GetByNome(nome string) (*entity.Product, error) {
	return r.getOne(`SELECT `+productColumns+` FROM produtos WHERE nome = $1`, nome)
}

func (r *ProductRepo) getOne(query string, arg any) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Nome, &p.Categoria, &p.PrecoCompra, &p.PrecoVenda,
		&p.Quantidade, &p.Conta, &p.Foto, &p.CriadoEm, &p.AtualizadoEm,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// Update atualiza um produto existente (inclui quantidade: os ajustes passam
// pelo caso de uso, que valida o piso em zero).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE produtos
		SET nome = $2, categoria = $3, preco_compra = $4, preco_venda = $5,
		    quantidade = $6, conta = $7, foto = $8, atualizado_em = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Nome, product.Categoria,
		product.PrecoCompra, product.PrecoVenda, product.Quantidade,
		product.Conta, product.Foto, product.AtualizadoEm,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProdutoDuplicado
		}
		return domain.Persistencia(fmt.Errorf("update produto: %w", err))
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// Delete remove um produto por ID.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return domain.Persistencia(fmt.Errorf("delete produto: %w", err))
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNaoEncontrado
	}
	return nil
}

// List devolve o inventário completo.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos ORDER BY criado_em`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Nome, &p.Categoria, &p.PrecoCompra, &p.PrecoVenda,
			&p.Quantidade, &p.Conta, &p.Foto, &p.CriadoEm, &p.AtualizadoEm); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
