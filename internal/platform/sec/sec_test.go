// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/uibutton/internal/platform/sec"
)

const issuer = "uibutton.app"

func signToken(t *testing.T, key *rsa.PrivateKey, method jwt.SigningMethod, claims sec.AuthClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func editorClaims(iss string, expiresAt time.Time) sec.AuthClaims {
	return sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    iss,
			Subject:   "u-1",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:   "u-1",
		Username: "editor",
		Role:     string(sec.RoleEditor),
	}
}

/*
TestTokenVerifier_VerifyToken checks signature, issuer, and expiry.
*/
func TestTokenVerifier_VerifyToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	verifier := sec.NewTokenVerifierFromKey(&key.PublicKey, issuer)
	future := time.Now().Add(time.Hour)

	claims, err := verifier.VerifyToken(signToken(t, key, jwt.SigningMethodRS256, editorClaims(issuer, future)))
	require.NoError(t, err)
	assert.Equal(t, "editor", claims.Username)
	assert.Equal(t, string(sec.RoleEditor), claims.Role)

	tests := []struct {
		name  string
		token string
	}{
		{"wrong_issuer", signToken(t, key, jwt.SigningMethodRS256, editorClaims("elsewhere", future))},
		{"expired", signToken(t, key, jwt.SigningMethodRS256, editorClaims(issuer, time.Now().Add(-time.Hour)))},
		{"wrong_key", signToken(t, otherKey, jwt.SigningMethodRS256, editorClaims(issuer, future))},
		{"garbage", "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.VerifyToken(tt.token)
			assert.Error(t, err)
		})
	}
}

/*
TestTokenVerifier_RejectsHMAC refuses tokens not signed with RSA.
*/
func TestTokenVerifier_RejectsHMAC(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, editorClaims(issuer, time.Now().Add(time.Hour))).
		SignedString([]byte("shared-secret"))
	require.NoError(t, err)

	_, err = sec.NewTokenVerifierFromKey(&key.PublicKey, issuer).VerifyToken(token)
	assert.Error(t, err)
}

/*
TestNewTokenVerifier loads a PEM public key from disk.
*/
func TestNewTokenVerifier(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "jwt.pub")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), 0o600))

	verifier, err := sec.NewTokenVerifier(path, issuer)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(signToken(t, key, jwt.SigningMethodRS256, editorClaims(issuer, time.Now().Add(time.Hour))))
	assert.NoError(t, err)

	_, err = sec.NewTokenVerifier(filepath.Join(dir, "missing.pub"), issuer)
	assert.Error(t, err)

	garbage := filepath.Join(dir, "garbage.pub")
	require.NoError(t, os.WriteFile(garbage, []byte("not a key"), 0o600))
	_, err = sec.NewTokenVerifier(garbage, issuer)
	assert.Error(t, err)
}

/*
TestUserRole_AtLeast follows admin > editor > viewer.
*/
func TestUserRole_AtLeast(t *testing.T) {
	tests := []struct {
		role   sec.UserRole
		target sec.UserRole
		want   bool
	}{
		{sec.RoleAdmin, sec.RoleEditor, true},
		{sec.RoleEditor, sec.RoleEditor, true},
		{sec.RoleViewer, sec.RoleEditor, false},
		{"guest", sec.RoleViewer, false},
		{sec.RoleViewer, sec.RoleViewer, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"_"+string(tt.target), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.target))
		})
	}
}
