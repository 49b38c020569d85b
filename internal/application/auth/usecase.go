package auth

import (
	"context"

	"github.com/escritoriopro/backoffice-api/internal/domain"
	"github.com/escritoriopro/backoffice-api/internal/domain/entity"
	"github.com/escritoriopro/backoffice-api/internal/domain/repository"
	"github.com/escritoriopro/backoffice-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase autenticação: login com email/senha.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewUseCase constrói o caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// LoginResult token emitido e usuário autenticado.
type LoginResult struct {
	Token string
	User  *entity.User
}

// Login verifica email/senha com bcrypt, exige usuário ativo e emite um JWT.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	// Melhor esforço: o login não falha se o carimbo não gravar.
	_ = uc.userRepo.TouchLastAccess(ctx, user.ID)

	return &LoginResult{Token: token, User: user}, nil
}
