package auth

import (
	"context"
	"crypto/subtle"

	"recipe-box/domain"
	"recipe-box/internal/utils"
	"recipe-box/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type (
	AuthService interface {
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
	}

	// Credentials is the single account allowed to sign in.
	Credentials struct {
		Enabled      bool
		Username     string
		PasswordHash string
	}

	authService struct {
		credentials Credentials
		jwtService  jwt.JWTService
		validator   *validator.Validate
	}
)

func NewAuthService(credentials Credentials, jwtService jwt.JWTService, validator *validator.Validate) AuthService {
	return &authService{
		credentials: credentials,
		jwtService:  jwtService,
		validator:   validator,
	}
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *authService) Login(_ context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	if !s.credentials.Enabled {
		return domain.LoginResponse{}, domain.ErrAuthDisabled
	}
	if err := utils.ValidateStruct(s.validator, req); err != nil {
		return domain.LoginResponse{}, err
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.credentials.Username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.credentials.PasswordHash), []byte(req.Password))
	if !userOK || passErr != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(req.Username)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	return domain.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.jwtService.TTL().Seconds()),
	}, nil
}
