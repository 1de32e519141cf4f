package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema DDL das cinco tabelas da loja. Idempotente: aplicado a cada subida.
const schema = `
CREATE TABLE IF NOT EXISTS contas (
	nome          TEXT PRIMARY KEY,
	saldo         NUMERIC(14,2) NOT NULL,
	criado_em     TIMESTAMPTZ NOT NULL,
	atualizado_em TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS produtos (
	id            UUID PRIMARY KEY,
	nome          TEXT NOT NULL UNIQUE,
	categoria     TEXT NOT NULL,
	preco_compra  NUMERIC(14,2) NOT NULL,
	preco_venda   NUMERIC(14,2) NOT NULL,
	quantidade    INTEGER NOT NULL CHECK (quantidade >= 0),
	conta         TEXT NOT NULL,
	foto          TEXT NOT NULL DEFAULT '',
	criado_em     TIMESTAMPTZ NOT NULL,
	atualizado_em TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS vendas (
	id              UUID PRIMARY KEY,
	produto         TEXT NOT NULL,
	produto_id      TEXT NOT NULL,
	quantidade      INTEGER NOT NULL,
	preco_venda     NUMERIC(14,2) NOT NULL,
	cliente         TEXT NOT NULL DEFAULT '',
	forma_pagamento TEXT NOT NULL,
	parcelas        INTEGER NOT NULL DEFAULT 1,
	conta           TEXT NOT NULL,
	criado_em       TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS crediario (
	id        UUID PRIMARY KEY,
	cliente   TEXT NOT NULL,
	produto   TEXT NOT NULL,
	valor     NUMERIC(14,2) NOT NULL,
	parcelas  INTEGER NOT NULL,
	pago      BOOLEAN NOT NULL DEFAULT FALSE,
	criado_em TIMESTAMPTZ NOT NULL,
	pago_em   TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS usuarios (
	id            UUID PRIMARY KEY,
	nome          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	criado_em     TIMESTAMPTZ NOT NULL,
	atualizado_em TIMESTAMPTZ NOT NULL
);
`

// ApplySchema cria as tabelas que ainda não existem.
func ApplySchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("aplicar schema: %w", err)
	}
	return nil
}
