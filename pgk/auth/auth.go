package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingToken = errors.New("missing bearer token")

type contextKey struct{}

type Claims[T any] struct {
	jwt.RegisteredClaims
	TokenInfo T `json:"info"`
}

// GenerateBearerToken signs input with HS256 and returns it as an
// Authorization header value.
func GenerateBearerToken[T any](input T, subject string, exp time.Duration, secret string) (string, error) {
	now := time.Now()
	tokenData := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims[T]{
		TokenInfo: input,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(exp)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	token, err := tokenData.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Bearer %s", token), nil
}

func VerifyJWTBearerToken[T any](header, secret string) (*T, error) {
	if header == "" {
		return nil, ErrMissingToken
	}

	scheme, tokenString, found := strings.Cut(header, " ")
	if !found || tokenString == "" || strings.Contains(tokenString, " ") {
		return nil, jwt.ErrSignatureInvalid
	}
	if !strings.EqualFold(scheme, "Bearer") {
		return nil, jwt.ErrInvalidType
	}

	claims := &Claims[T]{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &claims.TokenInfo, nil
}

// AuthBearerMiddlewareInit rejects requests without a valid token through
// unauthorized and stores the token info in the request context otherwise.
func AuthBearerMiddlewareInit[T any](secret string, unauthorized func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler {
	if unauthorized == nil {
		unauthorized = func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenInfo, err := VerifyJWTBearerToken[T](r.Header.Get("Authorization"), secret)
			if err != nil {
				unauthorized(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithTokenInfo(r.Context(), tokenInfo)))
		})
	}
}

func WithTokenInfo[T any](ctx context.Context, info *T) context.Context {
	return context.WithValue(ctx, contextKey{}, info)
}

func GetTokenInfo[T any](ctx context.Context) *T {
	tokenInfo, ok := ctx.Value(contextKey{}).(*T)
	if !ok {
		return nil
	}

	return tokenInfo
}
