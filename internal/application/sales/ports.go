package sales

import (
	"context"

	"github.com/lojinha/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função com aplicação tudo-ou-nada sobre os três
// participantes da venda: estoque, contas e log de vendas. Mesma assinatura do
// TxRunner do estoque; o mesmo runner concreto serve os dois pacotes.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		accountRepo repository.AccountRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
