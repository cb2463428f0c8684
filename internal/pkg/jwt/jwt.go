package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Scope is the request-scoped identity extracted from a verified access
// token. It is resolved once per request and passed into services as plain
// values; nothing below the handler layer reads claims from context.
type Scope struct {
	UserID    string
	CompanyID string
	Role      string
}

type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	ScopeFromContext(ctx context.Context) (Scope, error)
}

// JWTService verifies access tokens issued by the external auth service.
// This service never issues tokens of its own.
type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) ScopeFromContext(ctx context.Context) (Scope, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Scope{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Scope{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	companyID, _ := claims["company_id"].(string)
	role, _ := claims["role"].(string)

	return Scope{
		UserID:    userID,
		CompanyID: companyID,
		Role:      role,
	}, nil
}
