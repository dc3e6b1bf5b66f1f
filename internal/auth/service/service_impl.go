package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/golang-jwt/jwt/v5"
	"github.com/tallertech/tallertech/internal/auth/domain"
	"github.com/tallertech/tallertech/internal/auth/password"
	"github.com/tallertech/tallertech/internal/config"
	"github.com/tallertech/tallertech/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Config config.Config
	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Repo   domain.Repository
}

type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	repo     domain.Repository
	secret   []byte
	tokenTTL time.Duration
}

func New(p Params) domain.Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("auth.service"),
		genID:    p.GenID,
		repo:     p.Repo,
		secret:   []byte(p.Config.AuthJWTSecret),
		tokenTTL: p.Config.AuthTokenTTL,
	}
}

func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (domain.Usuario, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" {
		return domain.Usuario{}, domain.ErrInvalidUsername
	}
	if len(req.Password) < 8 {
		return domain.Usuario{}, domain.ErrInvalidPassword
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return domain.Usuario{}, err
	}

	usuario := domain.Usuario{
		ID:           s.genID.Generate(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, s.db, &usuario); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.Usuario{}, domain.ErrDuplicateUser
		}
		return domain.Usuario{}, err
	}

	s.log.Info("user registered", zap.String("username", username))
	return usuario, nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (domain.TokenResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" || req.Password == "" {
		return domain.TokenResponse{}, domain.ErrInvalidCredentials
	}

	usuario, err := s.repo.FindByUsername(ctx, s.db, username)
	if err != nil {
		return domain.TokenResponse{}, err
	}
	if usuario == nil || !password.Verify(req.Password, usuario.PasswordHash) {
		return domain.TokenResponse{}, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   usuario.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return domain.TokenResponse{}, err
	}

	return domain.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}

func (s *Service) VerifyToken(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
