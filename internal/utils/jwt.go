package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const tokenTTL = 2 * time.Hour

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type JWTUtil struct {
	secret string
	now    func() time.Time
}

func NewJWTUtil(secret string) *JWTUtil {
	return &JWTUtil{secret: secret, now: time.Now}
}

// NewJWTUtilAt pins the issuing clock; tests use it to mint tokens
// whose expiry is already in the past.
func NewJWTUtilAt(secret string, now func() time.Time) *JWTUtil {
	return &JWTUtil{secret: secret, now: now}
}

// IssueToken signs the supplied identity claims with a 2-hour expiry.
// Whatever fields the caller sends are carried verbatim; exp and iat
// are stamped on top.
func (j *JWTUtil) IssueToken(identity map[string]interface{}) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	issued := j.now()
	claims["iat"] = issued.Unix()
	claims["exp"] = issued.Add(tokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secret))
}

// VerifyToken validates signature and expiry and returns the claims.
// Expiry is the only invalidation path; there is no revocation.
func (j *JWTUtil) VerifyToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(j.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
