// Package installments implementa o crediário (vendas a prazo). O caderno é
// independente: nenhum vínculo transacional com estoque, contas ou vendas.
package installments

import (
	"time"

	"github.com/google/uuid"

	"github.com/lojinha/estoque-api/internal/application/dto"
	"github.com/lojinha/estoque-api/internal/domain"
	"github.com/lojinha/estoque-api/internal/domain/entity"
	"github.com/lojinha/estoque-api/internal/domain/repository"
)

// InstallmentUseCase casos de uso do crediário.
type InstallmentUseCase struct {
	installmentRepo repository.InstallmentRepository
}

// NewInstallmentUseCase constrói o caso de uso.
func NewInstallmentUseCase(installmentRepo repository.InstallmentRepository) *InstallmentUseCase {
	return &InstallmentUseCase{installmentRepo: installmentRepo}
}

// Registrar apende um acordo de venda a prazo. Append puro: não valida cliente,
// produto nem conta contra as demais tabelas.
func (uc *InstallmentUseCase) Registrar(in dto.CreateInstallmentRequest) (*dto.InstallmentResponse, error) {
	if in.Cliente == "" || in.Produto == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Valor.IsNegative() {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Parcelas < 1 {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	installment := &entity.Installment{
		ID:       uuid.New().String(),
		Cliente:  in.Cliente,
		Produto:  in.Produto,
		Valor:    in.Valor,
		Parcelas: in.Parcelas,
		Pago:     in.Pago,
		CriadoEm: now,
	}
	if in.Pago {
		pagoEm := now
		installment.PagoEm = &pagoEm
	}
	if err := uc.installmentRepo.Create(installment); err != nil {
		return nil, err
	}
	return toInstallmentResponse(installment), nil
}

// EmAberto devolve os acordos ainda não pagos.
func (uc *InstallmentUseCase) EmAberto() (*dto.InstallmentListResponse, error) {
	all, err := uc.installmentRepo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.InstallmentListResponse{Items: []dto.InstallmentResponse{}}
	for _, i := range all {
		if !i.Pago {
			out.Items = append(out.Items, *toInstallmentResponse(i))
		}
	}
	return out, nil
}

// Listar devolve todos os acordos, pagos ou não.
func (uc *InstallmentUseCase) Listar() (*dto.InstallmentListResponse, error) {
	all, err := uc.installmentRepo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.InstallmentListResponse{Items: make([]dto.InstallmentResponse, 0, len(all))}
	for _, i := range all {
		out.Items = append(out.Items, *toInstallmentResponse(i))
	}
	return out, nil
}

// MarcarPago fecha o ciclo do acordo: Pago = true com carimbo de data.
// Idempotente: marcar um acordo já pago devolve o acordo sem mudança.
func (uc *InstallmentUseCase) MarcarPago(id string) (*dto.InstallmentResponse, error) {
	installment, err := uc.installmentRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if installment == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if installment.Pago {
		return toInstallmentResponse(installment), nil
	}
	now := time.Now()
	installment.Pago = true
	installment.PagoEm = &now
	if err := uc.installmentRepo.Update(installment); err != nil {
		return nil, err
	}
	return toInstallmentResponse(installment), nil
}

func toInstallmentResponse(i *entity.Installment) *dto.InstallmentResponse {
	if i == nil {
		return nil
	}
	return &dto.InstallmentResponse{
		ID:       i.ID,
		Cliente:  i.Cliente,
		Produto:  i.Produto,
		Valor:    i.Valor,
		Parcelas: i.Parcelas,
		Pago:     i.Pago,
		CriadoEm: i.CriadoEm,
		PagoEm:   i.PagoEm,
	}
}
