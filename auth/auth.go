package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"quickbite/config"

	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleRestaurant Role = "restaurant"
	RoleAgent      Role = "agent"
)

type Claims struct {
	UserID int    `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

type contextKey string

const claimsKey contextKey = "authClaims"

// GenerateToken issues a signed HS256 token valid for 24 hours.
func GenerateToken(userID int, email string, role Role) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret())
}

func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return config.JWTSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}

// Required validates the bearer token and stores claims on the request context.
func Required(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeAuthError(w, http.StatusUnauthorized, "Authorization header required (Bearer <token>)")
			return
		}
		claims, err := ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeAuthError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	}
}

// RequireRole gates a handler to callers holding one of the given roles.
func RequireRole(next http.HandlerFunc, roles ...Role) http.HandlerFunc {
	return Required(func(w http.ResponseWriter, r *http.Request) {
		claims := FromContext(r.Context())
		for _, role := range roles {
			if claims.Role == role {
				next(w, r)
				return
			}
		}
		writeAuthError(w, http.StatusForbidden, "Access denied for role "+string(claims.Role))
	})
}

// FromContext returns the claims stored by Required, or nil outside it.
func FromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey).(*Claims)
	return claims
}

func writeAuthError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": msg})
}
