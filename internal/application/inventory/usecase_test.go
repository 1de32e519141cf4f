package inventory_test

import (
	"context"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojinha/estoque-api/internal/application/dto"
	"github.com/lojinha/estoque-api/internal/application/inventory"
	"github.com/lojinha/estoque-api/internal/application/ledger"
	"github.com/lojinha/estoque-api/internal/domain"
	"github.com/lojinha/estoque-api/internal/infrastructure/csvstore"
	"github.com/lojinha/estoque-api/internal/infrastructure/photos"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	productUC *inventory.ProductUseCase
	accountUC *ledger.AccountUseCase
}

// novaFixture monta os casos de uso sobre um Record Store CSV temporário, com
// limite de estoque baixo 5 (o corte histórico).
func novaFixture(t *testing.T) fixture {
	t.Helper()
	store, err := csvstore.Open(t.TempDir())
	require.NoError(t, err)
	accountRepo := csvstore.NewAccountRepository(store)
	return fixture{
		productUC: inventory.NewProductUseCase(
			csvstore.NewTxRunner(store),
			csvstore.NewProductRepository(store),
			accountRepo,
			photos.NewStore(t.TempDir()),
			5,
		),
		accountUC: ledger.NewAccountUseCase(accountRepo),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func criaConta(t *testing.T, fx fixture, nome, saldo string) {
	t.Helper()
	_, err := fx.accountUC.CriarConta(dto.CreateAccountRequest{Nome: nome, SaldoInicial: dec(saldo)})
	require.NoError(t, err)
}

func reqCamisa(qtd int) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Nome:        "Camisa Polo",
		Categoria:   "ROUPAS",
		PrecoCompra: dec("20"),
		PrecoVenda:  dec("50"),
		Quantidade:  qtd,
		Conta:       "Caixa",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CadastrarProduto — débito da conta financiadora
// ──────────────────────────────────────────────────────────────────────────────

func TestCadastrarProduto_DebitaCustoTotal(t *testing.T) {
	fx := novaFixture(t)
	criaConta(t, fx, "Caixa", "1000")

	out, err := fx.productUC.CadastrarProduto(context.Background(), reqCamisa(10))
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID, "o produto deve receber um ID gerado")
	assert.Equal(t, 10, out.Quantidade)

	// custo total = 20 × 10 = 200 → saldo 1000 - 200 = 800
	saldo, err := fx.accountUC.Saldo("Caixa")
	require.NoError(t, err)
	assert.True(t, saldo.Equal(dec("800")), "o custo total deve sair da conta financiadora")
}

func TestCadastrarProduto_SaldoInsuficiente_TudoOuNada(t *testing.T) {
	fx := novaFixture(t)
	criaConta(t, fx, "Caixa", "199")

	// custo total 200 > saldo 199 → rejeitado sem nenhuma mutação
	_, err := fx.productUC.CadastrarProduto(context.Background(), reqCamisa(10))
	assert.ErrorIs(t, err, domain.ErrSaldoInsuficiente)

	saldo, err := fx.accountUC.Saldo("Caixa")
	require.NoError(t, err)
	assert.True(t, saldo.Equal(dec("199")), "rejeição não pode tocar o saldo")

	listado, err := fx.productUC.Listar()
	require.NoError(t, err)
	assert.Empty(t, listado.Items, "rejeição não pode criar o produto")
}

func TestCadastrarProduto_ContaInexistente_NaoEncontrado(t *testing.T) {
	fx := novaFixture(t)

	_, err := fx.productUC.CadastrarProduto(context.Background(), reqCamisa(1))
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

func TestCadastrarProduto_NomeDuplicado_Rejeitado(t *testing.T) {
	fx := novaFixture(t)
	criaConta(t, fx, "Caixa", "1000")

	_, err := fx.productUC.CadastrarProduto(context.Background(), reqCamisa(2))
	require.NoError(t, err)

	_, err = fx.productUC.CadastrarProduto(context.Background(), reqCamisa(3))
	assert.ErrorIs(t, err, domain.ErrProdutoDuplicado)

	// A rejeição por duplicata também não pode debitar a conta.
	saldo, err := fx.accountUC.Saldo("Caixa")
	require.NoError(t, err)
	assert.True(t, saldo.Equal(dec("960")), "só o primeiro cadastro (20×2) debita")
}

func TestCadastrarProduto_Validacao(t *testing.T) {
	fx := novaFixture(t)
	criaConta(t, fx, "Caixa", "1000")

	casos := []struct {
		nome string
		mod  func(*dto.CreateProductRequest)
	}{
		{"sem nome", func(r *dto.CreateProductRequest) { r.Nome = "" }},
		{"sem conta", func(r *dto.CreateProductRequest) { r.Conta = "" }},
		{"categoria inválida", func(r *dto.CreateProductRequest) { r.Categoria = "ELETRONICOS" }},
		{"preço de compra negativo", func(r *dto.CreateProductRequest) { r.PrecoCompra = dec("-1") }},
		{"preço de venda negativo", func(r *dto.CreateProductRequest) { r.PrecoVenda = dec("-1") }},
		{"quantidade zero", func(r *dto.CreateProductRequest) { r.Quantidade = 0 }},
	}
	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			req := reqCamisa(1)
			c.mod(&req)
			_, err := fx.productUC.CadastrarProduto(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// AjustarQuantidade
// ──────────────────────────────────────────────────────────────────────────────

func TestAjustarQuantidade_DeltaComSinal(t *testing.T) {
	fx := novaFixture(t)
	criaConta(t, fx, "Caixa", "1000")
	p, err := fx.productUC.CadastrarProduto(context.Background(), reqCamisa(10))
	require.NoError(t, err)

	out, err := fx.productUC.AjustarQuantidade(p.ID, -4)
	require.NoError(t, err)
	assert.Equal(t, 6, out.Quantidade)

	out, err = fx.productUC.AjustarQuantidade(p.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, out.Quantidade)
}

func TestAjustarQuantidade_ResultadoNegativo_Rejeitado(t *testing.T) {
	fx := novaFixture(t)
	criaConta(t, fx, "Caixa", "1000")
	p, err := fx.productUC.CadastrarProduto(context.Background(), reqCamisa(3))
	require.NoError(t, err)

	_, err = fx.productUC.AjustarQuantidade(p.ID, -4)
	assert.ErrorIs(t, err, domain.ErrQuantidadeNegativa)

	atual, err := fx.productUC.BuscarPorID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, atual.Quantidade, "ajuste rejeitado não pode alterar a quantidade")
}

func TestAjustarQuantidade_AteZero_Permitido(t *testing.T) {
	fx := novaFixture(t)
	criaConta(t, fx, "Caixa", "1000")
	p, err := fx.productUC.CadastrarProduto(context.Background(), reqCamisa(3))
	require.NoError(t, err)

	out, err := fx.productUC.AjustarQuantidade(p.ID, -3)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Quantidade)
}

// ──────────────────────────────────────────────────────────────────────────────
// EstoqueBaixo e Catalogo
// ──────────────────────────────────────────────────────────────────────────────

func TestEstoqueBaixo_AbaixoDoLimite(t *testing.T) {
	fx := novaFixture(t)
	criaConta(t, fx, "Caixa", "10000")

	baixo := reqCamisa(4) // 4 < 5 entra no alerta
	_, err := fx.productUC.CadastrarProduto(context.Background(), baixo)
	require.NoError(t, err)

	ok := reqCamisa(5) // 5 não entra (corte estrito)
	ok.Nome = "Capinha iPhone"
	ok.Categoria = "ACESSORIOS_CELULAR"
	_, err = fx.productUC.CadastrarProduto(context.Background(), ok)
	require.NoError(t, err)

	out, err := fx.productUC.EstoqueBaixo()
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Camisa Polo", out.Items[0].Nome)
}

func TestCatalogo_SoOsCamposDaVitrine(t *testing.T) {
	fx := novaFixture(t)
	criaConta(t, fx, "Caixa", "1000")
	_, err := fx.productUC.CadastrarProduto(context.Background(), reqCamisa(10))
	require.NoError(t, err)

	out, err := fx.productUC.Catalogo()
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Camisa Polo", out.Items[0].Nome)
	assert.True(t, out.Items[0].PrecoVenda.Equal(dec("50")))
	assert.Equal(t, 10, out.Items[0].Quantidade)
}

// ──────────────────────────────────────────────────────────────────────────────
// Atualizar e Remover
// ──────────────────────────────────────────────────────────────────────────────

func TestAtualizar_RenomearParaNomeOcupado_Rejeitado(t *testing.T) {
	fx := novaFixture(t)
	criaConta(t, fx, "Caixa", "10000")

	_, err := fx.productUC.CadastrarProduto(context.Background(), reqCamisa(1))
	require.NoError(t, err)
	outro := reqCamisa(1)
	outro.Nome = "Bermuda"
	p2, err := fx.productUC.CadastrarProduto(context.Background(), outro)
	require.NoError(t, err)

	nome := "Camisa Polo"
	_, err = fx.productUC.Atualizar(p2.ID, dto.UpdateProductRequest{Nome: &nome})
	assert.ErrorIs(t, err, domain.ErrProdutoDuplicado)
}

func TestAtualizar_PrecosSemTocarQuantidade(t *testing.T) {
	fx := novaFixture(t)
	criaConta(t, fx, "Caixa", "1000")
	p, err := fx.productUC.CadastrarProduto(context.Background(), reqCamisa(10))
	require.NoError(t, err)

	novoPreco := dec("65")
	out, err := fx.productUC.Atualizar(p.ID, dto.UpdateProductRequest{PrecoVenda: &novoPreco})
	require.NoError(t, err)
	assert.True(t, out.PrecoVenda.Equal(dec("65")))
	assert.Equal(t, 10, out.Quantidade, "editar preço não mexe no estoque")

	// Editar preço também não mexe na conta financiadora.
	saldo, err := fx.accountUC.Saldo("Caixa")
	require.NoError(t, err)
	assert.True(t, saldo.Equal(dec("800")))
}

func TestRemover_ProdutoSomeDoInventario(t *testing.T) {
	fx := novaFixture(t)
	criaConta(t, fx, "Caixa", "1000")
	p, err := fx.productUC.CadastrarProduto(context.Background(), reqCamisa(10))
	require.NoError(t, err)

	require.NoError(t, fx.productUC.Remover(p.ID))

	out, err := fx.productUC.BuscarPorID(p.ID)
	require.NoError(t, err)
	assert.Nil(t, out)

	// Remover não estorna a conta.
	saldo, err := fx.accountUC.Saldo("Caixa")
	require.NoError(t, err)
	assert.True(t, saldo.Equal(dec("800")))
}

func TestRemover_Inexistente_NaoEncontrado(t *testing.T) {
	fx := novaFixture(t)
	err := fx.productUC.Remover("nao-existe")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}

// ──────────────────────────────────────────────────────────────────────────────
// AnexarFoto
// ──────────────────────────────────────────────────────────────────────────────

func TestAnexarFoto_GravaERegistraCaminho(t *testing.T) {
	fx := novaFixture(t)
	criaConta(t, fx, "Caixa", "1000")
	p, err := fx.productUC.CadastrarProduto(context.Background(), reqCamisa(10))
	require.NoError(t, err)

	out, err := fx.productUC.AnexarFoto(p.ID, "camisa.jpg", []byte{0xFF, 0xD8, 0xFF})
	require.NoError(t, err)
	require.NotEmpty(t, out.Foto)

	data, err := os.ReadFile(out.Foto)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, data)
}

func TestAnexarFoto_ArquivoVazio_Rejeitado(t *testing.T) {
	fx := novaFixture(t)
	criaConta(t, fx, "Caixa", "1000")
	p, err := fx.productUC.CadastrarProduto(context.Background(), reqCamisa(10))
	require.NoError(t, err)

	_, err = fx.productUC.AnexarFoto(p.ID, "camisa.jpg", nil)
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
