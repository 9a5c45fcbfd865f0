package websocket

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TicketClaims authorize one admin to open a live-update connection
type TicketClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Ticket struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IssueTicket signs a short-lived HS256 ticket for uid
func IssueTicket(secret []byte, uid, role string, ttl time.Duration, now time.Time) (Ticket, error) {
	expiresAt := now.Add(ttl)
	claims := TicketClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return Ticket{}, err
	}
	return Ticket{Token: token, ExpiresAt: expiresAt}, nil
}

func ParseTicket(secret []byte, tokenString string) (*TicketClaims, error) {
	claims := &TicketClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid ticket")
	}
	if claims.Subject == "" {
		return nil, errors.New("ticket has no subject")
	}
	return claims, nil
}
