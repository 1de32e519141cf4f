package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas). Todos são rejeições de regra de
// negócio: a operação foi recusada antes de qualquer mutação.
var (
	ErrNaoEncontrado        = errors.New("recurso não encontrado")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrEmailJaCadastrado    = errors.New("o e-mail já está cadastrado")
	ErrEntradaInvalida      = errors.New("entrada inválida")
	ErrContaDuplicada       = errors.New("conta já existente")
	ErrProdutoDuplicado     = errors.New("já existe produto com esse nome")
	ErrSaldoInsuficiente    = errors.New("saldo insuficiente na conta escolhida")
	ErrEstoqueInsuficiente  = errors.New("quantidade insuficiente em estoque")
	ErrQuantidadeNegativa   = errors.New("a quantidade resultante seria negativa")
	ErrNaoAutorizado        = errors.New("não autorizado")
)

// ErrPersistencia marca falha ao gravar no Record Store, em oposição às rejeições
// de regra de negócio acima. Quando aparece, o estado em memória e o estado em
// disco podem ter divergido; o chamador deve tratá-lo como erro de infraestrutura.
var ErrPersistencia = errors.New("falha ao persistir no record store")

// Persistencia embrulha err como falha de persistência, preservando a causa.
func Persistencia(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrPersistencia, err)
}
