// Package photos implementa o Photo Store: blobs opacos gravados uma única vez
// em disco, referenciados pelo caminho a partir da linha do produto. Não há
// remoção nem deduplicação.
package photos

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lojinha/estoque-api/internal/application/inventory"
)

var _ inventory.PhotoStore = (*Store)(nil)

// Store grava fotos de produto em um diretório local.
type Store struct {
	dir string
}

// NewStore constrói o Photo Store sobre o diretório dado.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save grava a foto como <dir>/<productID>_<filename> e devolve o caminho.
// O nome do arquivo enviado é achatado para impedir escape do diretório.
func (s *Store) Save(productID, filename string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("photos: criar diretório: %w", err)
	}
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	path := filepath.Join(s.dir, productID+"_"+base)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("photos: gravar %s: %w", base, err)
	}
	return path, nil
}
