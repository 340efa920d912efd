package jwtmanager

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unidash-service/internal/app/config"
	"unidash-service/internal/pkg/constvars"
	"unidash-service/internal/pkg/exceptions"
	"unidash-service/internal/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// renewBefore is how long before expiry a cached token is replaced.
const renewBefore = 30 * time.Second

// JWTManager signs the HS256 service token used for academic backend calls and reuses it
// until it is close to expiry.
type JWTManager struct {
	log     *zap.Logger
	secret  []byte
	issuer  string
	subject string
	ttl     time.Duration
	now     func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewJWTManager constructs a JWTManager from InternalConfig.Backend.
func NewJWTManager(cfg *config.InternalConfig, log *zap.Logger) (*JWTManager, error) {
	secret := strings.TrimSpace(cfg.Backend.ServiceJWTSecret)
	if secret == "" {
		return nil, fmt.Errorf("BACKEND_SERVICE_JWT_SECRET is empty")
	}

	ttl := time.Duration(cfg.Backend.ServiceJWTTTLInMinutes) * time.Minute
	if ttl <= renewBefore {
		ttl = 5 * time.Minute
	}

	return &JWTManager{
		log:     log,
		secret:  []byte(secret),
		issuer:  cfg.Backend.ServiceJWTIssuer,
		subject: constvars.ServiceName,
		ttl:     ttl,
		now:     time.Now,
	}, nil
}

// Token returns a valid signed token, signing a new one when the cached token is missing or
// about to expire.
func (j *JWTManager) Token(ctx context.Context) (string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	if j.token != "" && now.Add(renewBefore).Before(j.expiresAt) {
		return j.token, nil
	}

	expiresAt := now.Add(j.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    j.issuer,
		Subject:   j.subject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", exceptions.ErrSignServiceToken(err)
	}

	j.log.Debug("JWTManager.Token signed new service token",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.Time("expires_at", expiresAt),
	)
	j.token = signed
	j.expiresAt = expiresAt
	return signed, nil
}
