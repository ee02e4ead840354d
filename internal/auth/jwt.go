package auth

import (
	"crypto"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/umalmyha/imaging-leads/internal/model"
)

// StaffClaims represents claims of staff access token
type StaffClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Jwt represents signed jwt and unix expires at
type Jwt struct {
	Signed    string
	ExpiresAt int64
}

// JwtIssuer issues staff access tokens
type JwtIssuer struct {
	issuer     string
	method     jwt.SigningMethod
	timeToLive time.Duration
	privateKey crypto.PrivateKey
}

// NewJwtIssuer builds JwtIssuer
func NewJwtIssuer(issuer string, method jwt.SigningMethod, ttl time.Duration, key crypto.PrivateKey) *JwtIssuer {
	return &JwtIssuer{
		issuer:     issuer,
		method:     method,
		timeToLive: ttl,
		privateKey: key,
	}
}

// Sign issues new access token for staff member
func (j *JwtIssuer) Sign(staff *model.Staff, issuedAt time.Time) (*Jwt, error) {
	expiresAt := issuedAt.Add(j.timeToLive)

	claims := StaffClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    j.issuer,
			Subject:   staff.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
		Email: staff.Email,
	}

	signed, err := jwt.NewWithClaims(j.method, claims).SignedString(j.privateKey)
	if err != nil {
		return nil, err
	}

	return &Jwt{Signed: signed, ExpiresAt: expiresAt.Unix()}, nil
}

// JwtValidator verifies staff access tokens
type JwtValidator struct {
	issuer    string
	method    jwt.SigningMethod
	publicKey crypto.PublicKey
}

// NewJwtValidator builds new JwtValidator
func NewJwtValidator(issuer string, method jwt.SigningMethod, key crypto.PublicKey) *JwtValidator {
	return &JwtValidator{issuer: issuer, publicKey: key, method: method}
}

// Verify checks token signature, expiration and issuer
func (j *JwtValidator) Verify(rawToken string) (*StaffClaims, error) {
	var claims StaffClaims
	if _, err := jwt.ParseWithClaims(rawToken, &claims, j.keyFunc); err != nil {
		return nil, err
	}

	if !claims.VerifyIssuer(j.issuer, true) {
		return nil, errors.New("token is issued by unknown issuer")
	}
	return &claims, nil
}

func (j *JwtValidator) keyFunc(token *jwt.Token) (any, error) {
	if token.Method.Alg() != j.method.Alg() {
		return nil, errors.New("failed to verify signing algorithm")
	}
	return j.publicKey, nil
}
