package jwt

import (
	"errors"
	"fmt"
	"time"

	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/internal/utils"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Tokens are valid for a fixed 7 days; there is no refresh mechanism.
const TokenLifetime = 7 * 24 * time.Hour

type (
	JWTService interface {
		GenerateToken(user *entities.User) (string, time.Time, error)
		ValidateToken(token string) bool
		GetUserIDByToken(token string) (uuid.UUID, error)
	}

	userClaims struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		audience  string
	}
)

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: utils.GetConfig("JWT_SECRET"),
		issuer:    utils.GetConfig("JWT_ISSUER"),
		audience:  utils.GetConfig("JWT_AUDIENCE"),
	}
}

func (j *jwtService) GenerateToken(user *entities.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(TokenLifetime)
	claims := userClaims{
		user.Email,
		user.FullName(),
		jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			Issuer:    j.issuer,
			Audience:  jwt.ClaimStrings{j.audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (j *jwtService) keyFunc(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) parse(token string) (*userClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &userClaims{}, j.keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	claims, ok := parsed.Claims.(*userClaims)
	if !ok || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	if !claims.VerifyIssuer(j.issuer, true) {
		return nil, domain.ErrTokenInvalid
	}
	if !claims.VerifyAudience(j.audience, true) {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}

// ValidateToken reports whether signature, issuer, audience and expiry
// all check out. Validity is a pure function of the token's claims.
func (j *jwtService) ValidateToken(token string) bool {
	_, err := j.parse(token)
	return err == nil
}

func (j *jwtService) GetUserIDByToken(token string) (uuid.UUID, error) {
	claims, err := j.parse(token)
	if err != nil {
		return uuid.Nil, err
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, domain.ErrTokenInvalid
	}
	return userID, nil
}
