package secrets

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"hash/crc32"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"google.golang.org/api/option"
)

const accessPath = "/v1/projects/proj/secrets/course-db-password/versions/latest:access"

func secretServer(t *testing.T, status int, body any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || !strings.HasSuffix(r.URL.Path, accessPath) {
			http.Error(w, `{"error":{"code":404,"message":"not found"}}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestSecretManager(srv *httptest.Server) *SecretManager {
	return NewSecretManager(option.WithEndpoint(srv.URL+"/"), option.WithoutAuthentication())
}

func TestSecretManager_AccessSecret(t *testing.T) {
	secret := []byte("s3cr3t-pass")
	srv := secretServer(t, http.StatusOK, map[string]any{
		"name": "projects/proj/secrets/course-db-password/versions/3",
		"payload": map[string]any{
			"data":       base64.StdEncoding.EncodeToString(secret),
			"dataCrc32c": strconv.FormatInt(int64(crc32.Checksum(secret, castagnoli)), 10),
		},
	})

	got, err := newTestSecretManager(srv).AccessSecret(context.Background(), VersionName("proj", "course-db-password"))
	if err != nil {
		t.Fatalf("AccessSecret returned error: %v", err)
	}
	if string(got) != "s3cr3t-pass" {
		t.Fatalf("expected decoded payload, got %q", got)
	}
}

func TestSecretManager_ChecksumMismatch(t *testing.T) {
	srv := secretServer(t, http.StatusOK, map[string]any{
		"payload": map[string]any{
			"data":       base64.StdEncoding.EncodeToString([]byte("tampered")),
			"dataCrc32c": "12345",
		},
	})

	if _, err := newTestSecretManager(srv).AccessSecret(context.Background(), VersionName("proj", "course-db-password")); err == nil {
		t.Fatal("expected checksum mismatch error")
	}
}

func TestSecretManager_RemoteError(t *testing.T) {
	srv := secretServer(t, http.StatusForbidden, map[string]any{
		"error": map[string]any{"code": 403, "message": "Permission denied"},
	})

	_, err := newTestSecretManager(srv).AccessSecret(context.Background(), VersionName("proj", "course-db-password"))
	if err == nil {
		t.Fatal("expected error for forbidden secret")
	}
	if !strings.Contains(err.Error(), "access secret version") {
		t.Fatalf("unexpected error: %v", err)
	}
}
