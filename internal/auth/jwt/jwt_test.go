package jwt

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JMURv/hr-auth/internal/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	conf := config.Config{}
	conf.Auth.JWT.Secret = "test-secret"
	conf.Auth.JWT.Issuer = "hr-auth"
	conf.Auth.JWT.Audience = "hr-platform"
	conf.Auth.AccessTTL = 15 * time.Minute
	conf.Auth.RefreshTTL = 30 * 24 * time.Hour
	conf.Auth.AbsoluteTTL = 90 * 24 * time.Hour
	return conf
}

func TestCore_AccessRoundTrip(t *testing.T) {
	ctx := context.Background()
	core := New(testConfig())
	uid := uuid.New()

	token, err := core.IssueAccess(ctx, uid, "recruiter")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := core.VerifyAccess(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, uid, claims.UID)
	assert.Equal(t, "recruiter", claims.Role)
}

func TestCore_AccessExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	core := New(testConfig()).WithClock(func() time.Time { return now })
	uid := uuid.New()

	token, err := core.IssueAccess(ctx, uid, "recruiter")
	assert.NoError(t, err)

	core.now = func() time.Time { return now.Add(16 * time.Minute) }
	_, err = core.VerifyAccess(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCore_VerifyRejectsForeignIssuer(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	foreign := testConfig()
	foreign.Auth.JWT.Issuer = "someone-else"
	token, err := New(foreign).IssueAccess(ctx, uid, "recruiter")
	assert.NoError(t, err)

	_, err = New(testConfig()).VerifyAccess(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCore_VerifyRejectsWrongSecret(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	other := testConfig()
	other.Auth.JWT.Secret = "other-secret"
	token, err := New(other).IssueAccess(ctx, uid, "recruiter")
	assert.NoError(t, err)

	_, err = New(testConfig()).VerifyAccess(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCore_VerifyRejectsRefreshAsAccess(t *testing.T) {
	ctx := context.Background()
	core := New(testConfig())
	uid := uuid.New()

	refresh, err := core.IssueRefresh(ctx, uid, 1, uuid.Nil, time.Time{})
	assert.NoError(t, err)

	// A refresh token has no role claim, so it must not pass as an
	// access credential.
	_, err = core.VerifyAccess(ctx, refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCore_RefreshGeneratesSessionOnLogin(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	core := New(testConfig()).WithClock(func() time.Time { return now })
	uid := uuid.New()

	token, err := core.IssueRefresh(ctx, uid, 3, uuid.Nil, time.Time{})
	assert.NoError(t, err)

	claims, err := core.DecodeRefresh(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, uid, claims.UID)
	assert.Equal(t, int64(3), claims.Version)
	assert.NotEqual(t, uuid.Nil, claims.SessionID)
	assert.Equal(t, now.Add(90*24*time.Hour).Unix(), claims.AbsExp)
}

func TestCore_RefreshPreservesCeilingOnRotation(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	core := New(testConfig()).WithClock(func() time.Time { return now })
	uid := uuid.New()
	sid := uuid.New()
	absExp := now.Add(42 * 24 * time.Hour)

	token, err := core.IssueRefresh(ctx, uid, 1, sid, absExp)
	assert.NoError(t, err)

	claims, err := core.DecodeRefresh(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, sid, claims.SessionID)
	assert.Equal(t, absExp.Unix(), claims.AbsExp)

	// Rotating with the decoded values must not move the ceiling.
	rotated, err := core.IssueRefresh(ctx, uid, 1, claims.SessionID, time.Unix(claims.AbsExp, 0))
	assert.NoError(t, err)

	rotatedClaims, err := core.DecodeRefresh(ctx, rotated)
	assert.NoError(t, err)
	assert.Equal(t, sid, rotatedClaims.SessionID)
	assert.Equal(t, absExp.Unix(), rotatedClaims.AbsExp)
}

func TestCore_DecodeRefreshRejectsGarbage(t *testing.T) {
	ctx := context.Background()
	core := New(testConfig())

	_, err := core.DecodeRefresh(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCore_HS512RoundTrip(t *testing.T) {
	ctx := context.Background()
	conf := testConfig()
	conf.Auth.JWT.Alg = "HS512"
	core := New(conf)
	uid := uuid.New()

	token, err := core.IssueAccess(ctx, uid, "recruiter")
	assert.NoError(t, err)

	claims, err := core.VerifyAccess(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, uid, claims.UID)

	// A codec pinned to another algorithm must refuse it even though
	// the secret matches.
	_, err = New(testConfig()).VerifyAccess(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCore_RS256RoundTrip(t *testing.T) {
	ctx := context.Background()
	conf := testConfig()
	conf.Auth.JWT.Alg = "RS256"
	conf.Auth.JWT.Secret = ""
	conf.Auth.JWT.PrivateKeyPath, conf.Auth.JWT.PublicKeyPath = writeTestKeyPair(t)
	core := New(conf)
	uid := uuid.New()

	token, err := core.IssueAccess(ctx, uid, "recruiter")
	assert.NoError(t, err)

	claims, err := core.VerifyAccess(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, uid, claims.UID)
	assert.Equal(t, "recruiter", claims.Role)

	refresh, err := core.IssueRefresh(ctx, uid, 1, uuid.Nil, time.Time{})
	assert.NoError(t, err)

	refreshClaims, err := core.DecodeRefresh(ctx, refresh)
	assert.NoError(t, err)
	assert.Equal(t, uid, refreshClaims.UID)
	assert.NotEqual(t, uuid.Nil, refreshClaims.SessionID)

	// An HMAC codec must not accept RSA-signed tokens.
	_, err = New(testConfig()).VerifyAccess(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func writeTestKeyPair(t *testing.T) (string, string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	dir := t.TempDir()
	privPath := filepath.Join(dir, "jwt.key")
	pubPath := filepath.Join(dir, "jwt.pub")

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	require.NoError(t, os.WriteFile(privPath, privPEM, 0o600))

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	pubPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubDER,
	})
	require.NoError(t, os.WriteFile(pubPath, pubPEM, 0o600))

	return privPath, pubPath
}

func TestHashToken(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
