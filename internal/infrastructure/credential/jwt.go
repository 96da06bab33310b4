package credential

import (
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed, expired and wrongly signed tokens.
var ErrInvalidToken = crerr.New("invalid token")

type TokenIssuer interface {
	Issue(email string) (string, error)
	Verify(token string) (string, error)
}

type Claims struct {
	jwt.RegisteredClaims
}

type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration, issuer string) *JWTIssuer {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &JWTIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}
}

// Issue signs an HS256 token whose subject is the user's email.
func (i *JWTIssuer) Issue(email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", crerr.New("token subject is required")
	}

	now := i.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", crerr.Wrap(err, "sign token")
	}
	return signed, nil
}

// Verify returns the email carried in a valid token.
func (i *JWTIssuer) Verify(token string) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", crerr.Wrapf(ErrInvalidToken, "parse token: %v", err)
	}
	if !parsed.Valid {
		return "", ErrInvalidToken
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", crerr.Wrap(ErrInvalidToken, "token has no subject")
	}
	return claims.Subject, nil
}
