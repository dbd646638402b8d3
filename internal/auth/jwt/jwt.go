package jwt

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"time"

	"github.com/JMURv/hr-auth/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Port interface {
	IssueAccess(ctx context.Context, uid uuid.UUID, role string) (string, error)
	IssueRefresh(ctx context.Context, uid uuid.UUID, version int64, sid uuid.UUID, absExp time.Time) (string, error)
	DecodeRefresh(ctx context.Context, tokenStr string) (RefreshClaims, error)
	VerifyAccess(ctx context.Context, tokenStr string) (AccessClaims, error)
}

type AccessClaims struct {
	UID  uuid.UUID `json:"uid"`
	Role string    `json:"role"`
	jwt.RegisteredClaims
}

// RefreshClaims carries the rotation state: SessionID is stable across
// every rotation of one login, AbsExp is fixed at login and passed
// through unchanged afterwards.
type RefreshClaims struct {
	UID       uuid.UUID `json:"uid"`
	Version   int64     `json:"ver"`
	SessionID uuid.UUID `json:"sid"`
	AbsExp    int64     `json:"aexp"`
	jwt.RegisteredClaims
}

type Core struct {
	method      jwt.SigningMethod
	signKey     any
	verifyKey   any
	issuer      string
	audience    string
	accessTTL   time.Duration
	refreshTTL  time.Duration
	absoluteTTL time.Duration
	now         func() time.Time
}

// New builds the token codec for the configured signing scheme. The
// HS* family signs and verifies with the shared secret, RS256 signs
// with the PEM private key and verifies with the public one. Missing
// or unreadable key material is fatal at startup.
func New(conf config.Config) *Core {
	c := &Core{
		issuer:      conf.Auth.JWT.Issuer,
		audience:    conf.Auth.JWT.Audience,
		accessTTL:   conf.Auth.AccessTTL,
		refreshTTL:  conf.Auth.RefreshTTL,
		absoluteTTL: conf.Auth.AbsoluteTTL,
		now:         time.Now,
	}

	switch conf.Auth.JWT.Alg {
	case "", "HS256", "HS384", "HS512":
		if conf.Auth.JWT.Secret == "" {
			zap.L().Fatal(
				"AUTH_JWT_SECRET is required for HMAC signing",
				zap.String("alg", conf.Auth.JWT.Alg),
			)
		}

		switch conf.Auth.JWT.Alg {
		case "HS384":
			c.method = jwt.SigningMethodHS384
		case "HS512":
			c.method = jwt.SigningMethodHS512
		default:
			c.method = jwt.SigningMethodHS256
		}

		secret := []byte(conf.Auth.JWT.Secret)
		c.signKey, c.verifyKey = secret, secret
	case "RS256":
		priv, err := os.ReadFile(conf.Auth.JWT.PrivateKeyPath)
		if err != nil {
			zap.L().Fatal("failed to read signing key", zap.Error(err))
		}

		pub, err := os.ReadFile(conf.Auth.JWT.PublicKeyPath)
		if err != nil {
			zap.L().Fatal("failed to read verification key", zap.Error(err))
		}

		signKey, err := jwt.ParseRSAPrivateKeyFromPEM(priv)
		if err != nil {
			zap.L().Fatal("failed to parse signing key", zap.Error(err))
		}

		verifyKey, err := jwt.ParseRSAPublicKeyFromPEM(pub)
		if err != nil {
			zap.L().Fatal("failed to parse verification key", zap.Error(err))
		}

		c.method = jwt.SigningMethodRS256
		c.signKey, c.verifyKey = signKey, verifyKey
	default:
		zap.L().Fatal(
			"unsupported signing algorithm",
			zap.String("alg", conf.Auth.JWT.Alg),
		)
	}

	return c
}

// WithClock substitutes the wall-clock source, for tests.
func (c *Core) WithClock(now func() time.Time) *Core {
	c.now = now
	return c
}

func (c *Core) IssueAccess(ctx context.Context, uid uuid.UUID, role string) (string, error) {
	const op = "auth.IssueAccess.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	now := c.now()
	signed, err := jwt.NewWithClaims(
		c.method, &AccessClaims{
			UID:  uid,
			Role: role,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(c.accessTTL)),
				IssuedAt:  jwt.NewNumericDate(now),
				Issuer:    c.issuer,
				Audience:  jwt.ClaimStrings{c.audience},
			},
		},
	).SignedString(c.signKey)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.String("op", op),
			zap.Error(err),
		)

		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

// IssueRefresh signs a refresh credential. A zero sid means a fresh
// login: a new session id is generated and the absolute ceiling is
// computed from now. A non-zero sid is a rotation: both values pass
// through untouched.
func (c *Core) IssueRefresh(
	ctx context.Context,
	uid uuid.UUID,
	version int64,
	sid uuid.UUID,
	absExp time.Time,
) (string, error) {
	const op = "auth.IssueRefresh.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	now := c.now()
	if sid == uuid.Nil {
		sid = uuid.New()
	}

	if absExp.IsZero() {
		absExp = now.Add(c.absoluteTTL)
	}

	signed, err := jwt.NewWithClaims(
		c.method, &RefreshClaims{
			UID:       uid,
			Version:   version,
			SessionID: sid,
			AbsExp:    absExp.Unix(),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(c.refreshTTL)),
				IssuedAt:  jwt.NewNumericDate(now),
				Issuer:    c.issuer,
				Audience:  jwt.ClaimStrings{c.audience},
			},
		},
	).SignedString(c.signKey)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.String("op", op),
			zap.Error(err),
		)

		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

func (c *Core) DecodeRefresh(ctx context.Context, tokenStr string) (RefreshClaims, error) {
	const op = "auth.DecodeRefresh.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims := RefreshClaims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, &claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != c.method.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return c.verifyKey, nil
		},
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		zap.L().Debug(
			"Failed to parse refresh claims",
			zap.String("op", op),
			zap.Error(err),
		)

		return claims, ErrInvalidToken
	}

	if !token.Valid || !c.checkRegistered(claims.RegisteredClaims) {
		return claims, ErrInvalidToken
	}

	if claims.UID == uuid.Nil || claims.SessionID == uuid.Nil || claims.AbsExp == 0 {
		return claims, ErrInvalidToken
	}

	return claims, nil
}

func (c *Core) VerifyAccess(ctx context.Context, tokenStr string) (AccessClaims, error) {
	const op = "auth.VerifyAccess.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims := AccessClaims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, &claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != c.method.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return c.verifyKey, nil
		},
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		zap.L().Debug(
			"Failed to parse access claims",
			zap.String("op", op),
			zap.Error(err),
		)

		return claims, ErrInvalidToken
	}

	if !token.Valid || !c.checkRegistered(claims.RegisteredClaims) {
		return claims, ErrInvalidToken
	}

	if claims.UID == uuid.Nil || claims.Role == "" {
		return claims, ErrInvalidToken
	}

	return claims, nil
}

func (c *Core) checkRegistered(rc jwt.RegisteredClaims) bool {
	if rc.Issuer != c.issuer {
		return false
	}

	for _, aud := range rc.Audience {
		if aud == c.audience {
			return true
		}
	}

	return false
}

// HashToken is the one-way digest under which refresh credentials are
// persisted; raw tokens never reach the store.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
