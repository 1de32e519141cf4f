package entity

import "time"

// User é um operador da loja. Substitui a senha única em texto plano das
// primeiras versões: senha com hash bcrypt e sessão via JWT.
type User struct {
	ID           string
	Nome         string
	Email        string
	PasswordHash string
	CriadoEm     time.Time
	AtualizadoEm time.Time
}
