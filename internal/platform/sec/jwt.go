// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec verifies identities issued by the external identity provider.
//
// # Architecture
//
// Inkwell never stores credentials or signs tokens. The identity provider
// signs RS256 access tokens; this package checks signature, issuer, audience
// and expiry, and exposes the result as [AuthClaims]. The HTTP layer consumes
// it through the middleware.TokenVerifier capability interface.
package sec

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the verified identity carried by an access token.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Profile hints published by the identity provider.
	Nickname string `json:"nickname,omitempty"`
	Picture  string `json:"picture,omitempty"`
	Role     string `json:"role,omitempty"`

	// UserID mirrors the 'sub' claim once verified.
	UserID string `json:"-"`
}

// ErrMissingSubject is returned for tokens without a 'sub' claim.
var ErrMissingSubject = errors.New("auth: token has no subject")

// TokenVerifier validates RS256 JWTs against the identity provider's public key.
type TokenVerifier struct {
	publicKey *rsa.PublicKey
	issuer    string
	audience  string
}

// NewTokenVerifier reads the identity provider's PEM public key from disk.
func NewTokenVerifier(publicKeyPath, issuer, audience string) (*TokenVerifier, error) {
	publicKeyData, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("auth: failed to read public key from %s: %w", publicKeyPath, err)
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyData)
	if err != nil {
		return nil, fmt.Errorf("auth: failed to parse public key: %w", err)
	}

	return NewTokenVerifierFromKey(publicKey, issuer, audience), nil
}

// NewTokenVerifierFromKey builds a verifier around an already parsed key.
func NewTokenVerifierFromKey(publicKey *rsa.PublicKey, issuer, audience string) *TokenVerifier {
	return &TokenVerifier{
		publicKey: publicKey,
		issuer:    issuer,
		audience:  audience,
	}
}

// VerifyToken checks the signature and validity of a JWT string.
func (verifier *TokenVerifier) VerifyToken(tokenString string) (*AuthClaims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(verifier.issuer),
		jwt.WithExpirationRequired(),
	}
	if verifier.audience != "" {
		options = append(options, jwt.WithAudience(verifier.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		return verifier.publicKey, nil
	}, options...)
	if err != nil {
		return nil, fmt.Errorf("auth: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("auth: invalid token claims")
	}

	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	claims.UserID = claims.Subject

	return claims, nil
}
