package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojinha/estoque-api/internal/application/auth"
	"github.com/lojinha/estoque-api/internal/application/dto"
	"github.com/lojinha/estoque-api/internal/domain"
	"github.com/lojinha/estoque-api/internal/infrastructure/csvstore"
	pkgjwt "github.com/lojinha/estoque-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func novoUC(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	store, err := csvstore.Open(t.TempDir())
	require.NoError(t, err)
	return auth.NewAuthUseCase(csvstore.NewUserRepository(store), auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "estoque-loja-test",
	})
}

func TestRegisterUser_HasheiaENaoExpoeSenha(t *testing.T) {
	uc := novoUC(t)

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Nome: "Dona Maria", Email: "maria@lojinha.com", Password: "segredo1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Dona Maria", out.Nome)
}

func TestRegisterUser_EmailRepetido_Rejeitado(t *testing.T) {
	uc := novoUC(t)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "maria@lojinha.com", Password: "segredo1"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "maria@lojinha.com", Password: "outra123"})
	assert.ErrorIs(t, err, domain.ErrEmailJaCadastrado)
}

func TestRegisterUser_SenhaCurta_Rejeitada(t *testing.T) {
	uc := novoUC(t)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "maria@lojinha.com", Password: "12345"})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestLogin_CredenciaisCorretas_DevolveTokenValido(t *testing.T) {
	uc := novoUC(t)

	reg, err := uc.RegisterUser(dto.RegisterRequest{
		Nome: "Dona Maria", Email: "maria@lojinha.com", Password: "segredo1",
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "maria@lojinha.com", Password: "segredo1"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, reg.ID, out.User.ID)

	userID, nome, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.ID, userID)
	assert.Equal(t, "Dona Maria", nome)
}

func TestLogin_SenhaErrada_NaoAutorizado(t *testing.T) {
	uc := novoUC(t)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "maria@lojinha.com", Password: "segredo1"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "maria@lojinha.com", Password: "errada99"})
	assert.ErrorIs(t, err, domain.ErrNaoAutorizado)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := novoUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "ninguem@lojinha.com", Password: "qualquer1"})
	assert.ErrorIs(t, err, domain.ErrUsuarioNaoEncontrado)
}
