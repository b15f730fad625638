package jwt

import (
	"errors"
	"fmt"
	"time"

	"recipe-box/domain"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateToken(username string) (string, error)
		ValidateToken(token string) (*jwt.Token, error)
		GetUserByToken(token string) (string, error)
		TTL() time.Duration
	}

	jwtUserClaim struct {
		Username string `json:"username"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		ttl       time.Duration
	}
)

func NewJWTService(secretKey string, ttl time.Duration) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    "recipe-box",
		ttl:       ttl,
	}
}

func (j *jwtService) TTL() time.Duration { return j.ttl }

func (j *jwtService) GenerateToken(username string) (string, error) {
	now := time.Now()
	claims := jwtUserClaim{
		username,
		jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetUserByToken(token string) (string, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtUserClaim)
	if claims.Issuer != j.issuer {
		return "", domain.ErrTokenInvalid
	}
	return claims.Username, nil
}
