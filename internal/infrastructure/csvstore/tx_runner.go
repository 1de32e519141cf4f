package csvstore

import (
	"context"

	"github.com/lojinha/estoque-api/internal/application/inventory"
	"github.com/lojinha/estoque-api/internal/application/sales"
	"github.com/lojinha/estoque-api/internal/domain"
	"github.com/lojinha/estoque-api/internal/domain/entity"
	"github.com/lojinha/estoque-api/internal/domain/repository"
)

var (
	_ inventory.TxRunner = (*TxRunner)(nil)
	_ sales.TxRunner     = (*TxRunner)(nil)
)

// TxRunner aplica mutações tudo-ou-nada sobre o Store: a função roda contra um
// clone das tabelas e, só se retornar nil, o clone vira o estado corrente e os
// três arquivos participantes são reescritos. Rejeição de regra de negócio
// dentro da função descarta o clone sem nenhum efeito; falha na reescrita sai
// embrulhada em domain.ErrPersistencia (memória e disco podem ter divergido).
type TxRunner struct {
	s *Store
}

// NewTxRunner constrói o runner sobre o Store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run executa fn com repositórios atados ao clone preparado.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	accountRepo repository.AccountRepository,
	saleRepo repository.SaleRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	staged := r.s.t.clone()
	if err := fn(&txProductRepo{t: &staged}, &txAccountRepo{t: &staged}, &txSaleRepo{t: &staged}); err != nil {
		return err
	}

	r.s.t = staged
	if err := r.s.persistProdutos(); err != nil {
		return domain.Persistencia(err)
	}
	if err := r.s.persistContas(); err != nil {
		return domain.Persistencia(err)
	}
	if err := r.s.persistVendas(); err != nil {
		return domain.Persistencia(err)
	}
	return nil
}

// Repositórios transacionais: operam direto sobre o clone, sem lock (o mutex do
// Store já está em posse) e sem persistir (o commit reescreve os arquivos).

type txAccountRepo struct{ t *tables }

func (r *txAccountRepo) Create(account *entity.Account) error {
	if r.t.findConta(account.Nome) != nil {
		return domain.ErrContaDuplicada
	}
	cp := *account
	r.t.putConta(&cp)
	return nil
}

func (r *txAccountRepo) GetByNome(nome string) (*entity.Account, error) {
	account := r.t.findConta(nome)
	if account == nil {
		return nil, nil
	}
	cp := *account
	return &cp, nil
}

func (r *txAccountRepo) Update(account *entity.Account) error {
	if r.t.findConta(account.Nome) == nil {
		return domain.ErrNaoEncontrado
	}
	cp := *account
	r.t.putConta(&cp)
	return nil
}

func (r *txAccountRepo) List() ([]*entity.Account, error) {
	out := make([]*entity.Account, 0, len(r.t.contas))
	for _, a := range r.t.contas {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

type txProductRepo struct{ t *tables }

func (r *txProductRepo) Create(product *entity.Product) error {
	if r.t.findProdutoPorID(product.ID) != nil {
		return domain.ErrProdutoDuplicado
	}
	cp := *product
	r.t.putProduto(&cp)
	return nil
}

func (r *txProductRepo) GetByID(id string) (*entity.Product, error) {
	product := r.t.findProdutoPorID(id)
	if product == nil {
		return nil, nil
	}
	cp := *product
	return &cp, nil
}

func (r *txProductRepo) GetByNome(nome string) (*entity.Product, error) {
	product := r.t.findProdutoPorNome(nome)
	if product == nil {
		return nil, nil
	}
	cp := *product
	return &cp, nil
}

func (r *txProductRepo) Update(product *entity.Product) error {
	if r.t.findProdutoPorID(product.ID) == nil {
		return domain.ErrNaoEncontrado
	}
	cp := *product
	r.t.putProduto(&cp)
	return nil
}

func (r *txProductRepo) Delete(id string) error {
	if !r.t.deleteProduto(id) {
		return domain.ErrNaoEncontrado
	}
	return nil
}

func (r *txProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.t.produtos))
	for _, p := range r.t.produtos {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type txSaleRepo struct{ t *tables }

func (r *txSaleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	r.t.vendas = append(r.t.vendas, &cp)
	return nil
}

func (r *txSaleRepo) List() ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.t.vendas))
	for _, s := range r.t.vendas {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}
