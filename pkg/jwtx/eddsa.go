package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a session token and returns the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// KeyPair holds the Ed25519 signing material for session tokens. Keys are
// ephemeral per process: a restart invalidates outstanding sessions, which is
// acceptable for an onboarding surface where sessions are short-lived.
type KeyPair struct {
	Private ed25519.PrivateKey
	Public  ed25519.PublicKey
	Issuer  string
}

// NewKeyPair generates a fresh Ed25519 key pair for the given issuer.
func NewKeyPair(issuer string) (*KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: failed to generate ed25519 key: %w", err)
	}
	return &KeyPair{Private: priv, Public: pub, Issuer: issuer}, nil
}

// Sign produces a compact EdDSA JWT for the given claims.
func (k *KeyPair) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	signed, err := token.SignedString(k.Private)
	if err != nil {
		return "", fmt.Errorf("jwtx: failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify implements Verifier. It enforces the EdDSA algorithm, the signature,
// the issuer, and the exp/nbf window.
func (k *KeyPair) Verify(raw string) (Claims, error) {
	var claims Claims

	token, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("jwtx: unexpected signing method %q", t.Method.Alg())
		}
		return k.Public, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, ErrNotYetValid
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		default:
			return Claims{}, fmt.Errorf("jwtx: token parse failed: %w", err)
		}
	}
	if !token.Valid {
		return Claims{}, ErrInvalidSig
	}

	if err := claims.ValidateIssuer(k.Issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
