package model

import "github.com/golang-jwt/jwt"

const RoleAdmin = "admin"

// AdminClaims are carried by tokens that unlock the admin routes
type AdminClaims struct {
	Role string `json:"role"`
	jwt.StandardClaims
}
