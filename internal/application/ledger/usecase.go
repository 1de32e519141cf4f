// Package ledger implementa o livro de contas da loja: saldos nomeados que
// financiam compras de estoque e recebem o valor das vendas.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lojinha/estoque-api/internal/application/dto"
	"github.com/lojinha/estoque-api/internal/domain"
	"github.com/lojinha/estoque-api/internal/domain/entity"
	"github.com/lojinha/estoque-api/internal/domain/repository"
)

// AccountUseCase casos de uso do livro de contas.
type AccountUseCase struct {
	accountRepo repository.AccountRepository
}

// NewAccountUseCase constrói o caso de uso.
func NewAccountUseCase(accountRepo repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo}
}

// CriarConta cadastra uma conta com saldo inicial.
// Devolve ErrContaDuplicada se o nome já existe.
func (uc *AccountUseCase) CriarConta(in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if in.Nome == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.SaldoInicial.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	existing, err := uc.accountRepo.GetByNome(in.Nome)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrContaDuplicada
	}
	now := time.Now()
	account := &entity.Account{
		Nome:         in.Nome,
		Saldo:        in.SaldoInicial,
		CriadoEm:     now,
		AtualizadoEm: now,
	}
	if err := uc.accountRepo.Create(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

// Saldo devolve o saldo atual da conta. ErrNaoEncontrado se a conta não existe.
func (uc *AccountUseCase) Saldo(nome string) (decimal.Decimal, error) {
	account, err := uc.accountRepo.GetByNome(nome)
	if err != nil {
		return decimal.Zero, err
	}
	if account == nil {
		return decimal.Zero, domain.ErrNaoEncontrado
	}
	return account.Saldo, nil
}

// SaldoSuficiente informa se a conta existe e tem saldo >= valor.
// Check consultivo, para a interface; o débito em si passa por DebitarSeSuficiente.
func (uc *AccountUseCase) SaldoSuficiente(nome string, valor decimal.Decimal) bool {
	account, err := uc.accountRepo.GetByNome(nome)
	if err != nil || account == nil {
		return false
	}
	return account.Saldo.GreaterThanOrEqual(valor)
}

// AplicarDelta soma um delta com sinal ao saldo da conta. Se a conta não existe,
// é criada com saldo = delta. Não há piso: um débito direto por aqui pode deixar
// o saldo negativo — débitos condicionados ao saldo usam DebitarSeSuficiente.
func (uc *AccountUseCase) AplicarDelta(nome string, delta decimal.Decimal) error {
	return AplicarDeltaRepo(uc.accountRepo, nome, delta)
}

// DebitarSeSuficiente verifica e debita numa única operação: falha com
// ErrSaldoInsuficiente se a conta não existe ou o saldo é menor que o valor.
func (uc *AccountUseCase) DebitarSeSuficiente(nome string, valor decimal.Decimal) error {
	return DebitarSeSuficienteRepo(uc.accountRepo, nome, valor)
}

// Listar devolve todas as contas com saldo atual.
func (uc *AccountUseCase) Listar() (*dto.AccountListResponse, error) {
	accounts, err := uc.accountRepo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.AccountListResponse{Items: make([]dto.AccountResponse, 0, len(accounts))}
	for _, a := range accounts {
		out.Items = append(out.Items, *toAccountResponse(a))
	}
	return out, nil
}

// AplicarDeltaRepo aplica o delta usando o repositório dado. Existe como função
// livre para que transações (TxRunner) apliquem a mesma regra com o repositório
// atado à transação.
func AplicarDeltaRepo(accountRepo repository.AccountRepository, nome string, delta decimal.Decimal) error {
	account, err := accountRepo.GetByNome(nome)
	if err != nil {
		return err
	}
	now := time.Now()
	if account == nil {
		account = &entity.Account{Nome: nome, Saldo: delta, CriadoEm: now, AtualizadoEm: now}
		return accountRepo.Create(account)
	}
	account.Saldo = account.Saldo.Add(delta)
	account.AtualizadoEm = now
	return accountRepo.Update(account)
}

// DebitarSeSuficienteRepo versão transacional de DebitarSeSuficiente.
func DebitarSeSuficienteRepo(accountRepo repository.AccountRepository, nome string, valor decimal.Decimal) error {
	account, err := accountRepo.GetByNome(nome)
	if err != nil {
		return err
	}
	if account == nil || account.Saldo.LessThan(valor) {
		return domain.ErrSaldoInsuficiente
	}
	account.Saldo = account.Saldo.Sub(valor)
	account.AtualizadoEm = time.Now()
	return accountRepo.Update(account)
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		Nome:         a.Nome,
		Saldo:        a.Saldo,
		CriadoEm:     a.CriadoEm,
		AtualizadoEm: a.AtualizadoEm,
	}
}
