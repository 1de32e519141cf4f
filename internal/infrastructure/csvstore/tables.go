package csvstore

import "github.com/lojinha/estoque-api/internal/domain/entity"

// tables é o conjunto de tabelas em memória. As operações aqui não travam nem
// persistem: os repositórios diretos embrulham com lock + reescrita do arquivo,
// e o TxRunner opera sobre um clone e só efetiva no commit.
type tables struct {
	contas    []*entity.Account
	produtos  []*entity.Product
	vendas    []*entity.Sale
	crediario []*entity.Installment
	usuarios  []*entity.User
}

// clone copia as tabelas mutáveis em profundidade (linhas copiadas por valor),
// para que uma transação preparada possa ser descartada sem efeito.
func (t *tables) clone() tables {
	c := tables{
		contas:    make([]*entity.Account, len(t.contas)),
		produtos:  make([]*entity.Product, len(t.produtos)),
		vendas:    make([]*entity.Sale, len(t.vendas)),
		crediario: make([]*entity.Installment, len(t.crediario)),
		usuarios:  make([]*entity.User, len(t.usuarios)),
	}
	for i, a := range t.contas {
		cp := *a
		c.contas[i] = &cp
	}
	for i, p := range t.produtos {
		cp := *p
		c.produtos[i] = &cp
	}
	for i, s := range t.vendas {
		cp := *s
		c.vendas[i] = &cp
	}
	for i, inst := range t.crediario {
		cp := *inst
		if inst.PagoEm != nil {
			pagoEm := *inst.PagoEm
			cp.PagoEm = &pagoEm
		}
		c.crediario[i] = &cp
	}
	for i, u := range t.usuarios {
		cp := *u
		c.usuarios[i] = &cp
	}
	return c
}

// ── contas ────────────────────────────────────────────────────────────────────

func (t *tables) findConta(nome string) *entity.Account {
	for _, a := range t.contas {
		if a.Nome == nome {
			return a
		}
	}
	return nil
}

func (t *tables) putConta(account *entity.Account) {
	for i, a := range t.contas {
		if a.Nome == account.Nome {
			t.contas[i] = account
			return
		}
	}
	t.contas = append(t.contas, account)
}

// ── produtos ──────────────────────────────────────────────────────────────────

func (t *tables) findProdutoPorID(id string) *entity.Product {
	for _, p := range t.produtos {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (t *tables) findProdutoPorNome(nome string) *entity.Product {
	for _, p := range t.produtos {
		if p.Nome == nome {
			return p
		}
	}
	return nil
}

func (t *tables) putProduto(product *entity.Product) {
	for i, p := range t.produtos {
		if p.ID == product.ID {
			t.produtos[i] = product
			return
		}
	}
	t.produtos = append(t.produtos, product)
}

func (t *tables) deleteProduto(id string) bool {
	for i, p := range t.produtos {
		if p.ID == id {
			t.produtos = append(t.produtos[:i], t.produtos[i+1:]...)
			return true
		}
	}
	return false
}

// ── crediário ─────────────────────────────────────────────────────────────────

func (t *tables) findInstallment(id string) *entity.Installment {
	for _, i := range t.crediario {
		if i.ID == id {
			return i
		}
	}
	return nil
}

func (t *tables) putInstallment(installment *entity.Installment) {
	for i, inst := range t.crediario {
		if inst.ID == installment.ID {
			t.crediario[i] = installment
			return
		}
	}
	t.crediario = append(t.crediario, installment)
}

// ── usuários ──────────────────────────────────────────────────────────────────

func (t *tables) findUsuarioPorID(id string) *entity.User {
	for _, u := range t.usuarios {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (t *tables) findUsuarioPorEmail(email string) *entity.User {
	for _, u := range t.usuarios {
		if u.Email == email {
			return u
		}
	}
	return nil
}
