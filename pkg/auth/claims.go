package auth

import "github.com/golang-jwt/jwt/v5"

// RoleAdmin is the only privileged role the storefront knows about.
const RoleAdmin = "admin"

// AccessTokenPayload carries the values minted into a token.
type AccessTokenPayload struct {
	Username string
	Role     string
	JTI      string
}

// AccessTokenClaims is the JWT claim set used for admin sessions.
type AccessTokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
