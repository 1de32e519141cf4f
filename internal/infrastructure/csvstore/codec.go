package csvstore

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lojinha/estoque-api/internal/domain/entity"
)

// Cabeçalhos das tabelas. A ordem das colunas é o contrato de ida e volta:
// persistir e recarregar devolve exatamente os mesmos registros.
var (
	headerAccount     = []string{"conta", "saldo", "criado_em", "atualizado_em"}
	headerProduct     = []string{"id", "produto", "categoria", "preco_compra", "preco_venda", "quantidade", "conta", "foto", "criado_em", "atualizado_em"}
	headerSale        = []string{"id", "produto", "produto_id", "quantidade", "preco_venda", "cliente", "forma_pagamento", "parcelas", "conta", "criado_em"}
	headerInstallment = []string{"id", "cliente", "produto", "valor", "parcelas", "pago", "criado_em", "pago_em"}
	headerUser        = []string{"id", "nome", "email", "password_hash", "criado_em", "atualizado_em"}
)

const timeLayout = time.RFC3339Nano

func encodeAccount(a *entity.Account) []string {
	return []string{a.Nome, a.Saldo.String(), a.CriadoEm.Format(timeLayout), a.AtualizadoEm.Format(timeLayout)}
}

func decodeAccount(record []string) (*entity.Account, error) {
	if len(record) != len(headerAccount) {
		return nil, fmt.Errorf("conta: esperadas %d colunas, vieram %d", len(headerAccount), len(record))
	}
	saldo, err := decimal.NewFromString(record[1])
	if err != nil {
		return nil, fmt.Errorf("conta %q: saldo: %w", record[0], err)
	}
	criado, err := parseTime(record[2])
	if err != nil {
		return nil, err
	}
	atualizado, err := parseTime(record[3])
	if err != nil {
		return nil, err
	}
	return &entity.Account{Nome: record[0], Saldo: saldo, CriadoEm: criado, AtualizadoEm: atualizado}, nil
}

func encodeProduct(p *entity.Product) []string {
	return []string{
		p.ID, p.Nome, p.Categoria,
		p.PrecoCompra.String(), p.PrecoVenda.String(), strconv.Itoa(p.Quantidade),
		p.Conta, p.Foto,
		p.CriadoEm.Format(timeLayout), p.AtualizadoEm.Format(timeLayout),
	}
}

func decodeProduct(record []string) (*entity.Product, error) {
	if len(record) != len(headerProduct) {
		return nil, fmt.Errorf("produto: esperadas %d colunas, vieram %d", len(headerProduct), len(record))
	}
	precoCompra, err := decimal.NewFromString(record[3])
	if err != nil {
		return nil, fmt.Errorf("produto %q: preco_compra: %w", record[1], err)
	}
	precoVenda, err := decimal.NewFromString(record[4])
	if err != nil {
		return nil, fmt.Errorf("produto %q: preco_venda: %w", record[1], err)
	}
	quantidade, err := strconv.Atoi(record[5])
	if err != nil {
		return nil, fmt.Errorf("produto %q: quantidade: %w", record[1], err)
	}
	criado, err := parseTime(record[8])
	if err != nil {
		return nil, err
	}
	atualizado, err := parseTime(record[9])
	if err != nil {
		return nil, err
	}
	return &entity.Product{
		ID:           record[0],
		Nome:         record[1],
		Categoria:    record[2],
		PrecoCompra:  precoCompra,
		PrecoVenda:   precoVenda,
		Quantidade:   quantidade,
		Conta:        record[6],
		Foto:         record[7],
		CriadoEm:     criado,
		AtualizadoEm: atualizado,
	}, nil
}

func encodeSale(s *entity.Sale) []string {
	return []string{
		s.ID, s.Produto, s.ProdutoID, strconv.Itoa(s.Quantidade), s.PrecoVenda.String(),
		s.Cliente, s.FormaPagamento, strconv.Itoa(s.Parcelas), s.Conta,
		s.CriadoEm.Format(timeLayout),
	}
}

func decodeSale(record []string) (*entity.Sale, error) {
	if len(record) != len(headerSale) {
		return nil, fmt.Errorf("venda: esperadas %d colunas, vieram %d", len(headerSale), len(record))
	}
	quantidade, err := strconv.Atoi(record[3])
	if err != nil {
		return nil, fmt.Errorf("venda %q: quantidade: %w", record[0], err)
	}
	precoVenda, err := decimal.NewFromString(record[4])
	if err != nil {
		return nil, fmt.Errorf("venda %q: preco_venda: %w", record[0], err)
	}
	parcelas, err := strconv.Atoi(record[7])
	if err != nil {
		return nil, fmt.Errorf("venda %q: parcelas: %w", record[0], err)
	}
	criado, err := parseTime(record[9])
	if err != nil {
		return nil, err
	}
	return &entity.Sale{
		ID:             record[0],
		Produto:        record[1],
		ProdutoID:      record[2],
		Quantidade:     quantidade,
		PrecoVenda:     precoVenda,
		Cliente:        record[5],
		FormaPagamento: record[6],
		Parcelas:       parcelas,
		Conta:          record[8],
		CriadoEm:       criado,
	}, nil
}

func encodeInstallment(i *entity.Installment) []string {
	pagoEm := ""
	if i.PagoEm != nil {
		pagoEm = i.PagoEm.Format(timeLayout)
	}
	return []string{
		i.ID, i.Cliente, i.Produto, i.Valor.String(), strconv.Itoa(i.Parcelas),
		strconv.FormatBool(i.Pago), i.CriadoEm.Format(timeLayout), pagoEm,
	}
}

func decodeInstallment(record []string) (*entity.Installment, error) {
	if len(record) != len(headerInstallment) {
		return nil, fmt.Errorf("crediário: esperadas %d colunas, vieram %d", len(headerInstallment), len(record))
	}
	valor, err := decimal.NewFromString(record[3])
	if err != nil {
		return nil, fmt.Errorf("crediário %q: valor: %w", record[0], err)
	}
	parcelas, err := strconv.Atoi(record[4])
	if err != nil {
		return nil, fmt.Errorf("crediário %q: parcelas: %w", record[0], err)
	}
	pago, err := strconv.ParseBool(record[5])
	if err != nil {
		return nil, fmt.Errorf("crediário %q: pago: %w", record[0], err)
	}
	criado, err := parseTime(record[6])
	if err != nil {
		return nil, err
	}
	installment := &entity.Installment{
		ID:       record[0],
		Cliente:  record[1],
		Produto:  record[2],
		Valor:    valor,
		Parcelas: parcelas,
		Pago:     pago,
		CriadoEm: criado,
	}
	if record[7] != "" {
		pagoEm, err := parseTime(record[7])
		if err != nil {
			return nil, err
		}
		installment.PagoEm = &pagoEm
	}
	return installment, nil
}

func encodeUser(u *entity.User) []string {
	return []string{u.ID, u.Nome, u.Email, u.PasswordHash, u.CriadoEm.Format(timeLayout), u.AtualizadoEm.Format(timeLayout)}
}

func decodeUser(record []string) (*entity.User, error) {
	if len(record) != len(headerUser) {
		return nil, fmt.Errorf("usuário: esperadas %d colunas, vieram %d", len(headerUser), len(record))
	}
	criado, err := parseTime(record[4])
	if err != nil {
		return nil, err
	}
	atualizado, err := parseTime(record[5])
	if err != nil {
		return nil, err
	}
	return &entity.User{
		ID:           record[0],
		Nome:         record[1],
		Email:        record[2],
		PasswordHash: record[3],
		CriadoEm:     criado,
		AtualizadoEm: atualizado,
	}, nil
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: %w", s, err)
	}
	return t, nil
}
