// Package csvstore implementa o Record Store original da loja: uma tabela por
// arquivo de texto delimitado, carregada inteira na abertura e reescrita
// inteira a cada mutação. Arquivo ausente vira tabela vazia.
//
// Escritor único: um mutex de processo serializa todas as mutações (a loja é
// uma sessão só). Dois processos apontados para o mesmo diretório continuam
// sendo last-writer-wins, como sempre foi.
package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Nomes dos arquivos de tabela dentro do diretório de dados.
const (
	fileProdutos  = "produtos.csv"
	fileVendas    = "vendas.csv"
	fileContas    = "contas.csv"
	fileCrediario = "crediario.csv"
	fileUsuarios  = "usuarios.csv"
)

// Store guarda as tabelas em memória e as espelha em arquivos delimitados.
type Store struct {
	mu  sync.Mutex
	dir string
	t   tables
}

// Open carrega (ou inicializa vazias) as tabelas do diretório dado.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("csvstore: criar diretório de dados: %w", err)
	}
	s := &Store{dir: dir}

	var err error
	if s.t.contas, err = loadRows(filepath.Join(dir, fileContas), decodeAccount); err != nil {
		return nil, err
	}
	if s.t.produtos, err = loadRows(filepath.Join(dir, fileProdutos), decodeProduct); err != nil {
		return nil, err
	}
	if s.t.vendas, err = loadRows(filepath.Join(dir, fileVendas), decodeSale); err != nil {
		return nil, err
	}
	if s.t.crediario, err = loadRows(filepath.Join(dir, fileCrediario), decodeInstallment); err != nil {
		return nil, err
	}
	if s.t.usuarios, err = loadRows(filepath.Join(dir, fileUsuarios), decodeUser); err != nil {
		return nil, err
	}
	return s, nil
}

// loadRows lê um arquivo delimitado com cabeçalho. Arquivo ausente ⇒ tabela vazia.
func loadRows[T any](path string, decode func(record []string) (*T, error)) ([]*T, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("csvstore: abrir %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvstore: ler %s: %w", filepath.Base(path), err)
	}
	if len(records) <= 1 {
		return nil, nil // só cabeçalho (ou vazio)
	}
	rows := make([]*T, 0, len(records)-1)
	for _, record := range records[1:] {
		row, err := decode(record)
		if err != nil {
			return nil, fmt.Errorf("csvstore: decodificar linha de %s: %w", filepath.Base(path), err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// saveRows reescreve o arquivo inteiro: cabeçalho + uma linha por registro.
func saveRows[T any](path string, header []string, rows []*T, encode func(row *T) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvstore: gravar %s: %w", filepath.Base(path), err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("csvstore: gravar %s: %w", filepath.Base(path), err)
	}
	for _, row := range rows {
		if err := w.Write(encode(row)); err != nil {
			f.Close()
			return fmt.Errorf("csvstore: gravar %s: %w", filepath.Base(path), err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("csvstore: gravar %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("csvstore: gravar %s: %w", filepath.Base(path), err)
	}
	return nil
}

// persistContas, persistProdutos, etc. reescrevem a tabela correspondente.
// Chamar com s.mu já em posse.
func (s *Store) persistContas() error {
	return saveRows(filepath.Join(s.dir, fileContas), headerAccount, s.t.contas, encodeAccount)
}

func (s *Store) persistProdutos() error {
	return saveRows(filepath.Join(s.dir, fileProdutos), headerProduct, s.t.produtos, encodeProduct)
}

func (s *Store) persistVendas() error {
	return saveRows(filepath.Join(s.dir, fileVendas), headerSale, s.t.vendas, encodeSale)
}

func (s *Store) persistCrediario() error {
	return saveRows(filepath.Join(s.dir, fileCrediario), headerInstallment, s.t.crediario, encodeInstallment)
}

func (s *Store) persistUsuarios() error {
	return saveRows(filepath.Join(s.dir, fileUsuarios), headerUser, s.t.usuarios, encodeUser)
}
