// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides the cryptographic primitives used by the web layer.
//
// # Architecture
//
// Security-sensitive code (token signing and verification) lives here, away
// from handlers. Forms are protected by CSRF tokens: short-lived HS256 JWTs
// bound to the visitor's session id.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCSRFToken is returned for missing, expired, forged or foreign tokens.
var ErrInvalidCSRFToken = errors.New("sec: invalid csrf token")

// CSRFService issues and verifies form tokens.
type CSRFService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewCSRFService creates a CSRFService signing with secret.
func NewCSRFService(secret, issuer string, ttl time.Duration) (*CSRFService, error) {
	if len(secret) < 16 {
		return nil, fmt.Errorf("sec: csrf secret must be at least 16 bytes")
	}

	return &CSRFService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue creates a token valid for sessionID until the configured TTL elapses.
func (service *CSRFService) Issue(sessionID string) (string, error) {
	currentTime := service.now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		Issuer:    service.issuer,
		IssuedAt:  jwt.NewNumericDate(currentTime),
		ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign csrf token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature, expiry, issuer and session binding of a token.
func (service *CSRFService) Verify(tokenString, sessionID string) error {
	if tokenString == "" || sessionID == "" {
		return ErrInvalidCSRFToken
	}

	_, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return service.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(service.issuer),
		jwt.WithSubject(sessionID),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(service.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCSRFToken, err)
	}

	return nil
}
