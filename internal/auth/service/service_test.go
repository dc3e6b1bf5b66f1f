package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tallertech/tallertech/internal/auth/domain"
	"github.com/tallertech/tallertech/internal/auth/repository"
	"github.com/tallertech/tallertech/internal/config"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) domain.Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:authsvc?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Usuario{}))
	db.Exec("DELETE FROM usuarios")

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	return New(Params{
		Config: config.Config{
			AuthJWTSecret: "test-secret",
			AuthTokenTTL:  time.Hour,
		},
		DB:    db,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
}

func TestRegisterLoginVerify_RoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	usuario, err := svc.Register(ctx, domain.RegisterRequest{
		Username: "Mecanico",
		Password: "taller-secreto",
	})
	require.NoError(t, err)
	assert.Equal(t, "mecanico", usuario.Username)

	token, err := svc.Login(ctx, domain.LoginRequest{
		Username: "mecanico",
		Password: "taller-secreto",
	})
	require.NoError(t, err)
	assert.Equal(t, "bearer", token.TokenType)
	assert.Equal(t, int64(3600), token.ExpiresIn)

	subject, err := svc.VerifyToken(ctx, token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, usuario.ID.String(), subject)
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Username: " ", Password: "long-enough"})
	assert.ErrorIs(t, err, domain.ErrInvalidUsername)

	_, err = svc.Register(ctx, domain.RegisterRequest{Username: "user", Password: "short"})
	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Username: "dup", Password: "taller-secreto"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, domain.RegisterRequest{Username: "DUP", Password: "taller-secreto"})
	assert.ErrorIs(t, err, domain.ErrDuplicateUser)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.RegisterRequest{Username: "user", Password: "taller-secreto"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "user", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = svc.Login(ctx, domain.LoginRequest{Username: "nadie", Password: "taller-secreto"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestVerifyToken_Garbage(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.VerifyToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
