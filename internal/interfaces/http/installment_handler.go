package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lojinha/estoque-api/internal/application/dto"
	"github.com/lojinha/estoque-api/internal/application/installments"
	"github.com/lojinha/estoque-api/internal/domain"
)

// InstallmentHandler gerencia as requisições HTTP do crediário (protegido).
type InstallmentHandler struct {
	uc *installments.InstallmentUseCase
}

// NewInstallmentHandler constrói o handler.
func NewInstallmentHandler(uc *installments.InstallmentUseCase) *InstallmentHandler {
	return &InstallmentHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venda a prazo no caderno do crediário
// @Tags         crediario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInstallmentRequest  true  "cliente, produto, valor, parcelas"
// @Success      201   {object}  dto.InstallmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/crediario [post]
func (h *InstallmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInstallmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Registrar(in)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cliente, produto, valor não negativo e parcelas >= 1"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar acordos do crediário
// @Tags         crediario
// @Security     Bearer
// @Produce      json
// @Param        aberto  query  bool  false  "Somente acordos em aberto"
// @Success      200  {object}  dto.InstallmentListResponse
// @Router       /api/crediario [get]
func (h *InstallmentHandler) List(c *fiber.Ctx) error {
	var (
		out *dto.InstallmentListResponse
		err error
	)
	if c.QueryBool("aberto", false) {
		out, err = h.uc.EmAberto()
	} else {
		out, err = h.uc.Listar()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// MarkPaid godoc
// @Summary      Marcar acordo como pago (idempotente)
// @Tags         crediario
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do acordo"
// @Success      200  {object}  dto.InstallmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/crediario/{id}/pagar [post]
func (h *InstallmentHandler) MarkPaid(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id é obrigatório"})
	}
	out, err := h.uc.MarcarPago(id)
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "acordo não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
