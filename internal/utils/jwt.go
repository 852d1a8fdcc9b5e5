package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-catalog-admin/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired is returned by ValidateAndParseJWTToken when the current
// time has reached the token's expiry.
var ErrTokenExpired = errors.New("token is expired")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for user.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus tokenDuration
//   - email, role:     the user's email and role at issuance
//
// All parameters except user are required. Returns an error if any of them
// are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("catalog", user, time.Now(), 8*time.Hour, "secret")
func GenerateJWTToken(issuer string, user models.User, issuedAt time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" || issuedAt.IsZero() {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := models.Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(user.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString, UserID: user.UserID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string at the
// moment now and extracts its claims.
//
// Validation includes:
//   - HS256 signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim presence and now < exp; a token is already
//     invalid at exactly its expiry instant
//   - Subject (sub) claim presence and conversion to int64 UserID
//
// Expiry failures are reported as [ErrTokenExpired].
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now time.Time) (models.Token, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	// the library accepts a token at exactly exp
	if !now.Before(claims.ExpiresAt.Time) {
		return models.Token{}, ErrTokenExpired
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	parsed := models.Token{Token: token, Claims: *claims, SignedString: tokenString}
	if parsed.UserID, err = parsed.GetUserID(); err != nil {
		return models.Token{}, err
	}

	return parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
