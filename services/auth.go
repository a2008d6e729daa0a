package services

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/linguify/linguify_api/shared"
)

// AuthService validates Clerk session tokens. Clerk signs session JWTs with
// the instance's RSA key; we verify against the PEM public key from the
// dashboard so requests never round-trip to Clerk.
type AuthService struct {
	context.DefaultService

	publicKey *rsa.PublicKey
	leeway    time.Duration
}

type sessionClaims struct {
	jwt.RegisteredClaims
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	pem := os.Getenv("CLERK_JWT_PUBLIC_KEY")
	if pem == "" {
		return errors.New("CLERK_JWT_PUBLIC_KEY is required")
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(strings.ReplaceAll(pem, `\n`, "\n")))
	if err != nil {
		return fmt.Errorf("invalid CLERK_JWT_PUBLIC_KEY: %w", err)
	}

	svc.publicKey = key
	svc.leeway = 10 * time.Second
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	return nil
}

// VerifyToken checks the signature and lifetime of a session token and
// returns the Clerk user ID it was issued for.
func (svc *AuthService) VerifyToken(token string) (string, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, svc.signingKey,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithLeeway(svc.leeway),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", errors.New("session token has no subject")
	}

	return claims.Subject, nil
}

func (svc *AuthService) signingKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return svc.publicKey, nil
}

func (svc *AuthService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is missing")
	}
	if len(authHeader) < 7 || !strings.EqualFold(authHeader[:7], "Bearer ") {
		return "", errors.New("invalid authorization header format")
	}
	return authHeader[7:], nil
}

// RequiredAuth resolves the caller's user ID into locals for downstream
// handlers. Unauthenticated requests are rejected before routing continues.
func (svc *AuthService) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := svc.ExtractTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return shared.NewUnauthorizedError(err, "Unauthorized")
		}

		userID, err := svc.VerifyToken(token)
		if err != nil {
			return shared.NewUnauthorizedError(err, "Unauthorized")
		}

		c.Locals(shared.UserID, userID)
		return c.Next()
	}
}
