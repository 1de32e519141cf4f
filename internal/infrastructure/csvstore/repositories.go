package csvstore

import (
	"github.com/lojinha/estoque-api/internal/domain"
	"github.com/lojinha/estoque-api/internal/domain/entity"
	"github.com/lojinha/estoque-api/internal/domain/repository"
)

// Repositórios diretos sobre o Store: cada mutação trava o mutex, altera a
// tabela em memória e reescreve o arquivo inteiro. Falha na reescrita vem
// embrulhada em domain.ErrPersistencia. Leituras e escritas copiam as linhas
// por valor para que o chamador nunca alie estado interno do Store.

var (
	_ repository.AccountRepository     = (*AccountRepo)(nil)
	_ repository.ProductRepository     = (*ProductRepo)(nil)
	_ repository.SaleRepository        = (*SaleRepo)(nil)
	_ repository.InstallmentRepository = (*InstallmentRepo)(nil)
	_ repository.UserRepository        = (*UserRepo)(nil)
)

// ── contas ────────────────────────────────────────────────────────────────────

// AccountRepo adaptador de persistência de contas sobre arquivo delimitado.
type AccountRepo struct{ s *Store }

// NewAccountRepository constrói o adaptador.
func NewAccountRepository(s *Store) *AccountRepo { return &AccountRepo{s: s} }

func (r *AccountRepo) Create(account *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.t.findConta(account.Nome) != nil {
		return domain.ErrContaDuplicada
	}
	cp := *account
	r.s.t.putConta(&cp)
	return domain.Persistencia(r.s.persistContas())
}

func (r *AccountRepo) GetByNome(nome string) (*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	account := r.s.t.findConta(nome)
	if account == nil {
		return nil, nil
	}
	cp := *account
	return &cp, nil
}

func (r *AccountRepo) Update(account *entity.Account) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.t.findConta(account.Nome) == nil {
		return domain.ErrNaoEncontrado
	}
	cp := *account
	r.s.t.putConta(&cp)
	return domain.Persistencia(r.s.persistContas())
}

func (r *AccountRepo) List() ([]*entity.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Account, 0, len(r.s.t.contas))
	for _, a := range r.s.t.contas {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

// ── produtos ──────────────────────────────────────────────────────────────────

// ProductRepo adaptador de persistência de produtos sobre arquivo delimitado.
type ProductRepo struct{ s *Store }

// NewProductRepository constrói o adaptador.
func NewProductRepository(s *Store) *ProductRepo { return &ProductRepo{s: s} }

func (r *ProductRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.t.findProdutoPorID(product.ID) != nil {
		return domain.ErrProdutoDuplicado
	}
	cp := *product
	r.s.t.putProduto(&cp)
	return domain.Persistencia(r.s.persistProdutos())
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	product := r.s.t.findProdutoPorID(id)
	if product == nil {
		return nil, nil
	}
	cp := *product
	return &cp, nil
}

func (r *ProductRepo) GetByNome(nome string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	product := r.s.t.findProdutoPorNome(nome)
	if product == nil {
		return nil, nil
	}
	cp := *product
	return &cp, nil
}

func (r *ProductRepo) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.t.findProdutoPorID(product.ID) == nil {
		return domain.ErrNaoEncontrado
	}
	cp := *product
	r.s.t.putProduto(&cp)
	return domain.Persistencia(r.s.persistProdutos())
}

func (r *ProductRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !r.s.t.deleteProduto(id) {
		return domain.ErrNaoEncontrado
	}
	return domain.Persistencia(r.s.persistProdutos())
}

func (r *ProductRepo) List() ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.s.t.produtos))
	for _, p := range r.s.t.produtos {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// ── vendas ────────────────────────────────────────────────────────────────────

// SaleRepo adaptador de persistência do log de vendas (append-only).
type SaleRepo struct{ s *Store }

// NewSaleRepository constrói o adaptador.
func NewSaleRepository(s *Store) *SaleRepo { return &SaleRepo{s: s} }

func (r *SaleRepo) Create(sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *sale
	r.s.t.vendas = append(r.s.t.vendas, &cp)
	return domain.Persistencia(r.s.persistVendas())
}

func (r *SaleRepo) List() ([]*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Sale, 0, len(r.s.t.vendas))
	for _, s := range r.s.t.vendas {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

// ── crediário ─────────────────────────────────────────────────────────────────

// InstallmentRepo adaptador de persistência do crediário.
type InstallmentRepo struct{ s *Store }

// NewInstallmentRepository constrói o adaptador.
func NewInstallmentRepository(s *Store) *InstallmentRepo { return &InstallmentRepo{s: s} }

func (r *InstallmentRepo) Create(installment *entity.Installment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *installment
	r.s.t.putInstallment(&cp)
	return domain.Persistencia(r.s.persistCrediario())
}

func (r *InstallmentRepo) GetByID(id string) (*entity.Installment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	installment := r.s.t.findInstallment(id)
	if installment == nil {
		return nil, nil
	}
	cp := *installment
	return &cp, nil
}

func (r *InstallmentRepo) Update(installment *entity.Installment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.t.findInstallment(installment.ID) == nil {
		return domain.ErrNaoEncontrado
	}
	cp := *installment
	r.s.t.putInstallment(&cp)
	return domain.Persistencia(r.s.persistCrediario())
}

func (r *InstallmentRepo) List() ([]*entity.Installment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*entity.Installment, 0, len(r.s.t.crediario))
	for _, i := range r.s.t.crediario {
		cp := *i
		out = append(out, &cp)
	}
	return out, nil
}

// ── usuários ──────────────────────────────────────────────────────────────────

// UserRepo adaptador de persistência de usuários.
type UserRepo struct{ s *Store }

// NewUserRepository constrói o adaptador.
func NewUserRepository(s *Store) *UserRepo { return &UserRepo{s: s} }

func (r *UserRepo) Create(user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.t.findUsuarioPorEmail(user.Email) != nil {
		return domain.ErrEmailJaCadastrado
	}
	cp := *user
	r.s.t.usuarios = append(r.s.t.usuarios, &cp)
	return domain.Persistencia(r.s.persistUsuarios())
}

func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user := r.s.t.findUsuarioPorID(id)
	if user == nil {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user := r.s.t.findUsuarioPorEmail(email)
	if user == nil {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}
