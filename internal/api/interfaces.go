package api

import (
	"github.com/fadebook/fadebook/pkg/entity"
	"github.com/golang-jwt/jwt/v5"
)

type JWTServiceI interface {
	GenerateToken(user *entity.AdminUser) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	AdminID string `json:"admin_id"`
	Name    string `json:"name"`
}
