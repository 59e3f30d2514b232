package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"salescrm/internal/auth"
	"salescrm/internal/domain"
)

func newUserUC(repo *fakeUserRepo) (domain.UserUseCase, *auth.TokenService) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	return NewUserUseCase(repo, tokens, testLogger()), tokens
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc, _ := newUserUC(repo)

	user, err := uc.Register(context.Background(), "Ana", "Lopez", "Ana@Example.com", "hunter22")
	require.NoError(t, err)

	require.Equal(t, "ana@example.com", user.Email)
	require.NotEqual(t, "hunter22", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))
}

func TestRegisterDuplicateEmailPerformsNoWrite(t *testing.T) {
	repo := newFakeUserRepo()
	uc, _ := newUserUC(repo)

	_, err := uc.Register(context.Background(), "Ana", "Lopez", "ana@example.com", "hunter22")
	require.NoError(t, err)
	require.Len(t, repo.users, 1)

	_, err = uc.Register(context.Background(), "Other", "Person", "ana@example.com", "different")
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	require.Len(t, repo.users, 1)
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	repo := newFakeUserRepo()
	uc, _ := newUserUC(repo)

	_, err := uc.Register(context.Background(), "", "Lopez", "ana@example.com", "hunter22")
	require.Error(t, err)

	_, err = uc.Register(context.Background(), "Ana", "Lopez", "not-an-email", "hunter22")
	require.Error(t, err)

	_, err = uc.Register(context.Background(), "Ana", "Lopez", "ana@example.com", "")
	require.Error(t, err)

	require.Empty(t, repo.users)
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc, _ := newUserUC(repo)

	_, err := uc.Authenticate(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc, _ := newUserUC(repo)

	_, err := uc.Register(context.Background(), "Ana", "Lopez", "ana@example.com", "hunter22")
	require.NoError(t, err)

	_, err = uc.Authenticate(context.Background(), "ana@example.com", "wrong")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthenticateIssuesVerifiableToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc, tokens := newUserUC(repo)

	user, err := uc.Register(context.Background(), "Ana", "Lopez", "ana@example.com", "hunter22")
	require.NoError(t, err)

	token, err := uc.Authenticate(context.Background(), "ana@example.com", "hunter22")
	require.NoError(t, err)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	require.Equal(t, user.ID.Hex(), claims.UserID)
	require.Equal(t, "ana@example.com", claims.Email)
	require.Equal(t, "Ana", claims.Name)
	require.Equal(t, "Lopez", claims.Surname)
}
