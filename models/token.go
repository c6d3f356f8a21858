package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the claim set embedded in every issued session token.
//
// On top of the standard registered claims (iss, sub, exp, iat) it carries the
// username so that protected handlers can identify the caller without a
// database lookup. The subject claim duplicates UserID as a base-10 string,
// which keeps the token readable by generic JWT tooling.
type SessionClaims struct {
	jwt.RegisteredClaims

	// UserID is the owner identifier of the session.
	UserID int64 `json:"user_id"`

	// Username is the login name of the session owner.
	Username string `json:"username"`
}

// Token wraps a parsed or freshly issued session token.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be transmitted in the Authorization header. UserID and Username are
// extracted copies of the corresponding claims so callers do not need to dig
// through the claim set.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the claims.
	UserID int64 `json:"-"`

	// Username is the login name extracted from the claims.
	Username string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
