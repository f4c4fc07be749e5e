package tokens

import "github.com/golang-jwt/jwt/v5"

// AccessClaims is the payload of a bearer token.
// Subject carries the user id.
type AccessClaims struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}
