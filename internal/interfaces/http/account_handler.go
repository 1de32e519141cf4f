package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/lojinha/estoque-api/internal/application/dto"
	"github.com/lojinha/estoque-api/internal/application/ledger"
	"github.com/lojinha/estoque-api/internal/domain"
)

// AccountHandler gerencia as requisições HTTP do livro de contas (protegido).
type AccountHandler struct {
	uc *ledger.AccountUseCase
}

// NewAccountHandler constrói o handler.
func NewAccountHandler(uc *ledger.AccountUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Create godoc
// @Summary      Cadastrar conta com saldo inicial
// @Tags         contas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAccountRequest  true  "nome, saldo_inicial"
// @Success      201   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/contas [post]
func (h *AccountHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAccountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.CriarConta(in)
	if err != nil {
		if errors.Is(err, domain.ErrContaDuplicada) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "já existe uma conta com esse nome"})
		}
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome obrigatório e saldo inicial não negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar contas com saldo atual
// @Tags         contas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AccountListResponse
// @Router       /api/contas [get]
func (h *AccountHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Listar()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetSaldo godoc
// @Summary      Consultar saldo de uma conta
// @Tags         contas
// @Security     Bearer
// @Produce      json
// @Param        nome  path  string  true  "Nome da conta"
// @Success      200   {object}  dto.AccountResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contas/{nome} [get]
func (h *AccountHandler) GetSaldo(c *fiber.Ctx) error {
	nome := c.Params("nome")
	if nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_NOME", Message: "nome é obrigatório"})
	}
	saldo, err := h.uc.Saldo(nome)
	if err != nil {
		if errors.Is(err, domain.ErrNaoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "conta não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"nome": nome, "saldo": saldo})
}

// ApplyDelta godoc
// @Summary      Aplicar delta com sinal ao saldo (cria a conta se não existe)
// @Tags         contas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        nome  path  string  true  "Nome da conta"
// @Param        body  body  object{delta=number}  true  "delta"
// @Success      200   {object}  dto.AccountResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contas/{nome}/delta [post]
func (h *AccountHandler) ApplyDelta(c *fiber.Ctx) error {
	nome := c.Params("nome")
	if nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_NOME", Message: "nome é obrigatório"})
	}
	var in struct {
		Delta decimal.Decimal `json:"delta"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if err := h.uc.AplicarDelta(nome, in.Delta); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	saldo, err := h.uc.Saldo(nome)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"nome": nome, "saldo": saldo})
}
