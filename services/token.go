package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single outcome Verify reports for any bad
// token: malformed, wrong algorithm, bad signature or expired. Callers
// never need to distinguish the sub-causes.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the identity payload embedded in a session token.
type Claims struct {
	UserID   string
	Username string
}

// TokenService issues and verifies stateless HS256 session tokens.
// A token is self-contained: verification is a pure function of the
// token, the signing secret and the clock. There is no server-side
// session table, so revocation before expiry is not possible.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token embedding the user's identity with an absolute
// expiry of now+ttl.
func (s *TokenService) Issue(userID, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return signedToken, nil
}

// Verify checks the signature and expiry of tokenString and returns the
// embedded claims. Any failure collapses to ErrInvalidToken; the
// sub-cause is logged for diagnostics only.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		log.Printf("token verification failed: %v", err)
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidToken
	}
	username, _ := claims["username"].(string)

	return &Claims{UserID: userID, Username: username}, nil
}
