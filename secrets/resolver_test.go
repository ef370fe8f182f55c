package secrets

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ali-320/EduTrack-CC-Assignment-2/apperrors"
	config "github.com/ali-320/EduTrack-CC-Assignment-2/configs"
)

type fakeSource struct {
	payload []byte
	err     error
	calls   int
	names   []string
}

func (f *fakeSource) AccessSecret(_ context.Context, name string) ([]byte, error) {
	f.calls++
	f.names = append(f.names, name)
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db-password")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write password file: %v", err)
	}
	return path
}

func TestResolvePassword_PrefersFile(t *testing.T) {
	remote := &fakeSource{payload: []byte("from-remote")}
	r := NewResolver(config.Secret{
		PasswordFile: writeFile(t, "  from-file\n"),
		ProjectID:    "proj",
		SecretID:     "sec",
	}, remote)

	got, err := r.ResolvePassword(context.Background())
	if err != nil {
		t.Fatalf("ResolvePassword returned error: %v", err)
	}
	if got != "from-file" {
		t.Fatalf("expected trimmed file content, got %q", got)
	}
	if remote.calls != 0 {
		t.Fatalf("remote source must not be called when the file exists, got %d calls", remote.calls)
	}
}

func TestResolvePassword_FallsBackToRemote(t *testing.T) {
	remote := &fakeSource{payload: []byte("from-remote\n")}
	r := NewResolver(config.Secret{
		PasswordFile: filepath.Join(t.TempDir(), "missing"),
		ProjectID:    "edutrack-cc-ass-2",
		SecretID:     "course-db-password",
	}, remote)

	got, err := r.ResolvePassword(context.Background())
	if err != nil {
		t.Fatalf("ResolvePassword returned error: %v", err)
	}
	if got != "from-remote\n" {
		t.Fatalf("expected remote payload unchanged, got %q", got)
	}
	if len(remote.names) != 1 || remote.names[0] != "projects/edutrack-cc-ass-2/secrets/course-db-password/versions/latest" {
		t.Fatalf("unexpected secret names %v", remote.names)
	}
}

func TestResolvePassword_NoFileConfigured(t *testing.T) {
	remote := &fakeSource{payload: []byte("pw")}
	r := NewResolver(config.Secret{ProjectID: "p", SecretID: "s"}, remote)

	if _, err := r.ResolvePassword(context.Background()); err != nil {
		t.Fatalf("ResolvePassword returned error: %v", err)
	}
	if remote.calls != 1 {
		t.Fatalf("expected one remote call, got %d", remote.calls)
	}
}

func TestResolvePassword_UnreadableFile(t *testing.T) {
	remote := &fakeSource{payload: []byte("from-remote")}
	// a directory exists but cannot be read as a file
	r := NewResolver(config.Secret{PasswordFile: t.TempDir(), ProjectID: "p", SecretID: "s"}, remote)

	_, err := r.ResolvePassword(context.Background())
	if !errors.Is(err, apperrors.ErrSecretUnavailable) {
		t.Fatalf("expected ErrSecretUnavailable, got %v", err)
	}
	if remote.calls != 0 {
		t.Fatal("an existing but unreadable file must not fall back to the remote secret")
	}
}

func TestResolvePassword_RemoteFailure(t *testing.T) {
	remote := &fakeSource{err: errors.New("permission denied on secret")}
	r := NewResolver(config.Secret{ProjectID: "p", SecretID: "s"}, remote)

	_, err := r.ResolvePassword(context.Background())
	if !errors.Is(err, apperrors.ErrSecretUnavailable) {
		t.Fatalf("expected ErrSecretUnavailable, got %v", err)
	}
}

func TestResolvePassword_MissingRemoteSettings(t *testing.T) {
	remote := &fakeSource{payload: []byte("pw")}
	r := NewResolver(config.Secret{ProjectID: "p"}, remote)

	_, err := r.ResolvePassword(context.Background())
	if !errors.Is(err, apperrors.ErrSecretUnavailable) {
		t.Fatalf("expected ErrSecretUnavailable, got %v", err)
	}
	if remote.calls != 0 {
		t.Fatal("remote must not be called without a secret id")
	}

	if _, err := NewResolver(config.Secret{ProjectID: "p", SecretID: "s"}, nil).ResolvePassword(context.Background()); !errors.Is(err, apperrors.ErrSecretUnavailable) {
		t.Fatalf("expected ErrSecretUnavailable without a source, got %v", err)
	}
}

func TestResolvePassword_NoCaching(t *testing.T) {
	path := writeFile(t, "first")
	r := NewResolver(config.Secret{PasswordFile: path}, nil)

	if got, _ := r.ResolvePassword(context.Background()); got != "first" {
		t.Fatalf("expected first, got %q", got)
	}
	if err := os.WriteFile(path, []byte("second"), 0o600); err != nil {
		t.Fatalf("rewrite password file: %v", err)
	}
	if got, _ := r.ResolvePassword(context.Background()); got != "second" {
		t.Fatalf("expected rotated password, got %q", got)
	}
}
