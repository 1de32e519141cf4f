// Package inventory implementa o livro de estoque: cadastro de produto com
// débito da conta financiadora, ajustes de quantidade e alerta de estoque baixo.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lojinha/estoque-api/internal/application/dto"
	"github.com/lojinha/estoque-api/internal/application/ledger"
	"github.com/lojinha/estoque-api/internal/domain"
	"github.com/lojinha/estoque-api/internal/domain/entity"
	"github.com/lojinha/estoque-api/internal/domain/repository"
)

// ProductUseCase casos de uso do estoque.
type ProductUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	accountRepo repository.AccountRepository
	photoStore  PhotoStore
	limiteBaixo int
}

// NewProductUseCase constrói o caso de uso. limiteBaixo é o corte do alerta de
// estoque baixo (historicamente 5).
func NewProductUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	accountRepo repository.AccountRepository,
	photoStore PhotoStore,
	limiteBaixo int,
) *ProductUseCase {
	if limiteBaixo <= 0 {
		limiteBaixo = 5
	}
	return &ProductUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		accountRepo: accountRepo,
		photoStore:  photoStore,
		limiteBaixo: limiteBaixo,
	}
}

// CadastrarProduto cadastra um produto debitando da conta financiadora o custo
// total (preço de compra × quantidade). Tudo-ou-nada: com saldo insuficiente
// nem o produto é criado nem o saldo muda. Nome repetido é rejeitado com
// ErrProdutoDuplicado (o produto recebe um ID gerado; o nome é só exibição/busca).
func (uc *ProductUseCase) CadastrarProduto(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Nome == "" || in.Conta == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if !entity.CategoriaValida(in.Categoria) {
		return nil, domain.ErrEntradaInvalida
	}
	if in.PrecoCompra.IsNegative() || in.PrecoVenda.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Quantidade < 1 {
		return nil, domain.ErrEntradaInvalida
	}

	// A conta financiadora precisa existir no cadastro; o débito condicionado ao
	// saldo acontece dentro da transação.
	account, err := uc.accountRepo.GetByNome(in.Conta)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNaoEncontrado
	}

	custoTotal := in.PrecoCompra.Mul(decimal.NewFromInt(int64(in.Quantidade)))
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Nome:         in.Nome,
		Categoria:    in.Categoria,
		PrecoCompra:  in.PrecoCompra,
		PrecoVenda:   in.PrecoVenda,
		Quantidade:   in.Quantidade,
		Conta:        in.Conta,
		CriadoEm:     now,
		AtualizadoEm: now,
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		accountRepo repository.AccountRepository,
		_ repository.SaleRepository,
	) error {
		dup, err := productRepo.GetByNome(in.Nome)
		if err != nil {
			return err
		}
		if dup != nil {
			return domain.ErrProdutoDuplicado
		}
		if err := ledger.DebitarSeSuficienteRepo(accountRepo, in.Conta, custoTotal); err != nil {
			return err
		}
		return productRepo.Create(product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// AjustarQuantidade soma um delta com sinal à quantidade em estoque.
// Falha com ErrQuantidadeNegativa, sem alterar nada, se o resultado fosse
// menor que zero.
func (uc *ProductUseCase) AjustarQuantidade(id string, delta int) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNaoEncontrado
	}
	nova := product.Quantidade + delta
	if nova < 0 {
		return nil, domain.ErrQuantidadeNegativa
	}
	product.Quantidade = nova
	product.AtualizadoEm = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// BuscarPorID devolve o produto ou (nil, nil) se não existe.
func (uc *ProductUseCase) BuscarPorID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// BuscarPorNome devolve o produto pelo nome de exibição ou (nil, nil) se não existe.
func (uc *ProductUseCase) BuscarPorNome(nome string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByNome(nome)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Listar devolve o inventário completo.
func (uc *ProductUseCase) Listar() (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{Items: make([]dto.ProductResponse, 0, len(products))}
	for _, p := range products {
		out.Items = append(out.Items, *toProductResponse(p))
	}
	return out, nil
}

// Catalogo devolve a vitrine: nome, preço de venda, quantidade e foto.
func (uc *ProductUseCase) Catalogo() (*dto.CatalogResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.CatalogResponse{Items: make([]dto.CatalogItemResponse, 0, len(products))}
	for _, p := range products {
		out.Items = append(out.Items, dto.CatalogItemResponse{
			Nome:       p.Nome,
			PrecoVenda: p.PrecoVenda,
			Quantidade: p.Quantidade,
			Foto:       p.Foto,
		})
	}
	return out, nil
}

// EstoqueBaixo devolve os produtos com quantidade abaixo do limite configurado.
func (uc *ProductUseCase) EstoqueBaixo() (*dto.ProductListResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{Items: []dto.ProductResponse{}}
	for _, p := range products {
		if p.Quantidade < uc.limiteBaixo {
			out.Items = append(out.Items, *toProductResponse(p))
		}
	}
	return out, nil
}

// Atualizar edita nome, categoria e preços de um produto existente. Edições de
// preço não alcançam vendas já registradas (o log guarda o preço da época).
// Renomear para um nome já usado por outro produto é rejeitado.
func (uc *ProductUseCase) Atualizar(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != nil && *in.Nome != product.Nome {
		if *in.Nome == "" {
			return nil, domain.ErrEntradaInvalida
		}
		dup, err := uc.productRepo.GetByNome(*in.Nome)
		if err != nil {
			return nil, err
		}
		if dup != nil && dup.ID != product.ID {
			return nil, domain.ErrProdutoDuplicado
		}
		product.Nome = *in.Nome
	}
	if in.Categoria != nil {
		if !entity.CategoriaValida(*in.Categoria) {
			return nil, domain.ErrEntradaInvalida
		}
		product.Categoria = *in.Categoria
	}
	if in.PrecoCompra != nil {
		if in.PrecoCompra.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		product.PrecoCompra = *in.PrecoCompra
	}
	if in.PrecoVenda != nil {
		if in.PrecoVenda.IsNegative() {
			return nil, domain.ErrEntradaInvalida
		}
		product.PrecoVenda = *in.PrecoVenda
	}
	product.AtualizadoEm = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Remover exclui o produto do inventário. Não estorna a conta financiadora nem
// toca o log de vendas.
func (uc *ProductUseCase) Remover(id string) error {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.productRepo.Delete(id)
}

// AnexarFoto grava a foto no Photo Store e registra o caminho no produto.
func (uc *ProductUseCase) AnexarFoto(id, filename string, data []byte) (*dto.ProductResponse, error) {
	if filename == "" || len(data) == 0 {
		return nil, domain.ErrEntradaInvalida
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNaoEncontrado
	}
	path, err := uc.photoStore.Save(product.ID, filename, data)
	if err != nil {
		return nil, err
	}
	product.Foto = path
	product.AtualizadoEm = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Nome:         p.Nome,
		Categoria:    p.Categoria,
		PrecoCompra:  p.PrecoCompra,
		PrecoVenda:   p.PrecoVenda,
		Quantidade:   p.Quantidade,
		Conta:        p.Conta,
		Foto:         p.Foto,
		CriadoEm:     p.CriadoEm,
		AtualizadoEm: p.AtualizadoEm,
	}
}
