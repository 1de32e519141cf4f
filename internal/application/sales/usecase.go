// Package sales implementa a transação de venda: baixa de estoque, crédito na
// conta de recebimento e append no log de vendas, aplicados tudo-ou-nada.
package sales

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

// SaleUseCase casos de uso de venda.
type SaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
}

// NewSaleUseCase constrói o caso de uso.
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// RegistrarVenda registra uma venda. Dentro de uma única transação:
//
//  1. localiza o produto pelo nome; estoque < quantidade falha com
//     ErrEstoqueInsuficiente sem nenhuma mutação;
//  2. decrementa a quantidade do produto;
//  3. credita na conta de recebimento preço de venda × quantidade (a conta é
//     criada se não existe, semântica de AplicarDelta);
//  4. apende a venda com o preço unitário capturado neste momento — edições
//     posteriores de preço não alteram o histórico.
//
// Parcelas é registrada mas só tem significado financeiro com forma de
// pagamento PARCELADO; nas demais é normalizada para 1.
func (uc *SaleUseCase) RegistrarVenda(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.Produto == "" || in.Conta == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Quantidade < 1 {
		return nil, domain.ErrEntradaInvalida
	}
	if !entity.FormaPagamentoValida(in.FormaPagamento) {
		return nil, domain.ErrEntradaInvalida
	}
	parcelas := in.Parcelas
	if in.FormaPagamento != entity.PagamentoParcelado || parcelas < 1 {
		parcelas = 1
	}

	var sale *entity.Sale
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		accountRepo repository.AccountRepository,
		saleRepo repository.SaleRepository,
	) error {
		product, err := productRepo.GetByNome(in.Produto)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNaoEncontrado
		}
		if product.Quantidade < in.Quantidade {
			return domain.ErrEstoqueInsuficiente
		}

		now := time.Now()
		product.Quantidade -= in.Quantidade
		product.AtualizadoEm = now
		if err := productRepo.Update(product); err != nil {
			return err
		}

		total := product.PrecoVenda.Mul(decimal.NewFromInt(int64(in.Quantidade)))
		if err := ledger.AplicarDeltaRepo(accountRepo, in.Conta, total); err != nil {
			return err
		}

		sale = &entity.Sale{
			ID:             uuid.New().String(),
			Produto:        product.Nome,
			ProdutoID:      product.ID,
			Quantidade:     in.Quantidade,
			PrecoVenda:     product.PrecoVenda,
			Cliente:        in.Cliente,
			FormaPagamento: in.FormaPagamento,
			Parcelas:       parcelas,
			Conta:          in.Conta,
			CriadoEm:       now,
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// Listar devolve o histórico de vendas.
func (uc *SaleUseCase) Listar() (*dto.SaleListResponse, error) {
	salesList, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.SaleListResponse{Items: make([]dto.SaleResponse, 0, len(salesList))}
	for _, s := range salesList {
		out.Items = append(out.Items, *toSaleResponse(s))
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:             s.ID,
		Produto:        s.Produto,
		ProdutoID:      s.ProdutoID,
		Quantidade:     s.Quantidade,
		PrecoVenda:     s.PrecoVenda,
		Total:          s.Total(),
		Cliente:        s.Cliente,
		FormaPagamento: s.FormaPagamento,
		Parcelas:       s.Parcelas,
		Conta:          s.Conta,
		CriadoEm:       s.CriadoEm,
	}
}
