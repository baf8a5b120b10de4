package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// TokenClaims is the subset of bearer-token claims the client cares about.
type TokenClaims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// InspectToken decodes a bearer token without verifying its signature.
// The client never holds the signing secret; it only needs the subject and
// expiry to know who is signed in and when the session goes stale.
func InspectToken(tokenString string) (*TokenClaims, error) {
	parser := jwt.Parser{}
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("token has no readable claims")
	}

	out := &TokenClaims{}
	if sub, ok := claims["sub"].(string); ok {
		out.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return out, nil
}

// TokenExpired reports whether the token's exp claim has passed.
// Tokens without an exp claim are treated as non-expiring.
func TokenExpired(tokenString string, now time.Time) bool {
	claims, err := InspectToken(tokenString)
	if err != nil {
		return true
	}
	if claims.ExpiresAt.IsZero() {
		return false
	}
	return now.After(claims.ExpiresAt)
}

// GenerateToken creates a signed JWT with the given subject and email.
// Used by the sandbox server; the production backend mints its own tokens.
func GenerateToken(subject, email string, secret []byte, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   subject,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses and validates a token string against the given secret.
func ValidateToken(tokenString string, secret []byte) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
}

// ExtractIDFromToken extracts the subject from a validated token string.
func ExtractIDFromToken(tokenString string, secret []byte) (string, error) {
	token, err := ValidateToken(tokenString, secret)
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return sub, nil
}
