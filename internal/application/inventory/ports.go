package inventory

import (
	"context"

	"github.com/lojinha/estoque-api/internal/domain/repository"
)

// TxRunner executa uma função com aplicação tudo-ou-nada, passando repositórios
// atados à transação. No driver postgres é uma transação SQL; no driver csv as
// mutações são preparadas em cópia das tabelas e só viram estado (e arquivo)
// se a função retornar nil.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		accountRepo repository.AccountRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// PhotoStore guarda a foto do produto e devolve o caminho a registrar na linha.
// Escrita única; não há remoção nem deduplicação.
type PhotoStore interface {
	Save(productID, filename string, data []byte) (path string, err error)
}
