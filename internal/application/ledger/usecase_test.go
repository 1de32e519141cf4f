package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojinha/estoque-api/internal/application/dto"
	"github.com/lojinha/estoque-api/internal/application/ledger"
	"github.com/lojinha/estoque-api/internal/domain"
	"github.com/lojinha/estoque-api/internal/infrastructure/csvstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

// novoUC monta o caso de uso sobre um Record Store CSV em diretório temporário.
func novoUC(t *testing.T) *ledger.AccountUseCase {
	t.Helper()
	store, err := csvstore.Open(t.TempDir())
	require.NoError(t, err)
	return ledger.NewAccountUseCase(csvstore.NewAccountRepository(store))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ──────────────────────────────────────────────────────────────────────────────
// CriarConta
// ──────────────────────────────────────────────────────────────────────────────

func TestCriarConta_ComSaldoInicial(t *testing.T) {
	uc := novoUC(t)

	out, err := uc.CriarConta(dto.CreateAccountRequest{Nome: "Caixa", SaldoInicial: dec("1000")})
	require.NoError(t, err)
	assert.Equal(t, "Caixa", out.Nome)
	assert.True(t, out.Saldo.Equal(dec("1000")), "saldo inicial deve ser 1000")

	saldo, err := uc.Saldo("Caixa")
	require.NoError(t, err)
	assert.True(t, saldo.Equal(dec("1000")))
}

func TestCriarConta_NomeDuplicado_Rejeitado(t *testing.T) {
	uc := novoUC(t)

	_, err := uc.CriarConta(dto.CreateAccountRequest{Nome: "Caixa", SaldoInicial: dec("100")})
	require.NoError(t, err)

	_, err = uc.CriarConta(dto.CreateAccountRequest{Nome: "Caixa", SaldoInicial: dec("50")})
	assert.ErrorIs(t, err, domain.ErrContaDuplicada)

	// O saldo da conta original não pode ter mudado.
	saldo, err := uc.Saldo("Caixa")
	require.NoError(t, err)
	assert.True(t, saldo.Equal(dec("100")))
}

func TestCriarConta_SaldoInicialNegativo_Rejeitado(t *testing.T) {
	uc := novoUC(t)

	_, err := uc.CriarConta(dto.CreateAccountRequest{Nome: "Caixa", SaldoInicial: dec("-1")})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestCriarConta_SemNome_Rejeitado(t *testing.T) {
	uc := novoUC(t)

	_, err := uc.CriarConta(dto.CreateAccountRequest{Nome: "", SaldoInicial: dec("10")})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

// ──────────────────────────────────────────────────────────────────────────────
// Saldo e AplicarDelta
// ──────────────────────────────────────────────────────────────────────────────

func TestSaldo_ContaInexistente_NaoEncontrado(t *testing.T) {
	uc := novoUC(t)

	_, err := uc.Saldo("Fantasma")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestAplicarDelta_CreditoEDebito(t *testing.T) {
	uc := novoUC(t)

	_, err := uc.CriarConta(dto.CreateAccountRequest{Nome: "Caixa", SaldoInicial: dec("100")})
	require.NoError(t, err)

	require.NoError(t, uc.AplicarDelta("Caixa", dec("50")))
	saldo, err := uc.Saldo("Caixa")
	require.NoError(t, err)
	assert.True(t, saldo.Equal(dec("150")))

	require.NoError(t, uc.AplicarDelta("Caixa", dec("-70")))
	saldo, err = uc.Saldo("Caixa")
	require.NoError(t, err)
	assert.True(t, saldo.Equal(dec("80")))
}

func TestAplicarDelta_ContaInexistente_CriaComSaldoDelta(t *testing.T) {
	uc := novoUC(t)

	// Semântica histórica: creditar numa conta que não existe a cria.
	require.NoError(t, uc.AplicarDelta("Nova", dec("250")))

	saldo, err := uc.Saldo("Nova")
	require.NoError(t, err)
	assert.True(t, saldo.Equal(dec("250")))
}

func TestAplicarDelta_SemPiso_PodeFicarNegativo(t *testing.T) {
	uc := novoUC(t)

	_, err := uc.CriarConta(dto.CreateAccountRequest{Nome: "Caixa", SaldoInicial: dec("10")})
	require.NoError(t, err)

	// Débito direto não tem piso; débitos condicionados usam DebitarSeSuficiente.
	require.NoError(t, uc.AplicarDelta("Caixa", dec("-30")))
	saldo, err := uc.Saldo("Caixa")
	require.NoError(t, err)
	assert.True(t, saldo.Equal(dec("-20")))
}

// ──────────────────────────────────────────────────────────────────────────────
// DebitarSeSuficiente
// ──────────────────────────────────────────────────────────────────────────────

func TestDebitarSeSuficiente_SaldoExato_Debita(t *testing.T) {
	uc := novoUC(t)

	_, err := uc.CriarConta(dto.CreateAccountRequest{Nome: "Caixa", SaldoInicial: dec("100")})
	require.NoError(t, err)

	require.NoError(t, uc.DebitarSeSuficiente("Caixa", dec("100")))
	saldo, err := uc.Saldo("Caixa")
	require.NoError(t, err)
	assert.True(t, saldo.IsZero(), "saldo igual ao valor deve debitar até zero")
}

func TestDebitarSeSuficiente_SaldoInsuficiente_NadaMuda(t *testing.T) {
	uc := novoUC(t)

	_, err := uc.CriarConta(dto.CreateAccountRequest{Nome: "Caixa", SaldoInicial: dec("99")})
	require.NoError(t, err)

	err = uc.DebitarSeSuficiente("Caixa", dec("100"))
	assert.ErrorIs(t, err, domain.ErrSaldoInsuficiente)

	saldo, err := uc.Saldo("Caixa")
	require.NoError(t, err)
	assert.True(t, saldo.Equal(dec("99")), "débito rejeitado não pode alterar o saldo")
}

func TestDebitarSeSuficiente_ContaInexistente_SaldoInsuficiente(t *testing.T) {
	uc := novoUC(t)

	err := uc.DebitarSeSuficiente("Fantasma", dec("1"))
	assert.ErrorIs(t, err, domain.ErrSaldoInsuficiente)
}

// ──────────────────────────────────────────────────────────────────────────────
// SaldoSuficiente e Listar
// ──────────────────────────────────────────────────────────────────────────────

func TestSaldoSuficiente_Consultivo(t *testing.T) {
	uc := novoUC(t)

	_, err := uc.CriarConta(dto.CreateAccountRequest{Nome: "Caixa", SaldoInicial: dec("50")})
	require.NoError(t, err)

	assert.True(t, uc.SaldoSuficiente("Caixa", dec("50")))
	assert.False(t, uc.SaldoSuficiente("Caixa", dec("50.01")))
	assert.False(t, uc.SaldoSuficiente("Fantasma", dec("0")))
}

func TestListar_TodasAsContas(t *testing.T) {
	uc := novoUC(t)

	_, err := uc.CriarConta(dto.CreateAccountRequest{Nome: "Caixa", SaldoInicial: dec("10")})
	require.NoError(t, err)
	_, err = uc.CriarConta(dto.CreateAccountRequest{Nome: "PicPay", SaldoInicial: dec("20")})
	require.NoError(t, err)

	out, err := uc.Listar()
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
}
