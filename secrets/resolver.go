package secrets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ali-320/EduTrack-CC-Assignment-2/apperrors"
	config "github.com/ali-320/EduTrack-CC-Assignment-2/configs"
)

// Source fetches a secret version by its full resource name.
type Source interface {
	AccessSecret(ctx context.Context, name string) ([]byte, error)
}

// Resolver returns the database password. It never caches: every call re-reads the file or re-fetches the secret.
type Resolver struct {
	passwordFile string
	projectID    string
	secretID     string
	remote       Source
}

func NewResolver(cfg config.Secret, remote Source) *Resolver {
	return &Resolver{
		passwordFile: cfg.PasswordFile,
		projectID:    cfg.ProjectID,
		secretID:     cfg.SecretID,
		remote:       remote,
	}
}

// VersionName is the Secret Manager resource name of the latest version of secretID.
func VersionName(projectID, secretID string) string {
	return fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, secretID)
}

// ResolvePassword prefers the mounted file whenever it exists; the remote secret is only consulted when it does not.
func (r *Resolver) ResolvePassword(ctx context.Context) (string, error) {
	logger := zerolog.Ctx(ctx)

	if r.passwordFile != "" {
		password, found, err := readPasswordFile(r.passwordFile)
		if err != nil {
			logger.Error().Err(err).Str("path", r.passwordFile).Msg("Failed to read database password file")
			return "", apperrors.SecretUnavailable(err)
		}
		if found {
			logger.Debug().Str("path", r.passwordFile).Msg("Database password read from file")
			return password, nil
		}
	}

	if r.remote == nil {
		return "", apperrors.SecretUnavailable(errors.New("no password file and no remote secret source configured"))
	}
	if r.projectID == "" || r.secretID == "" {
		return "", apperrors.SecretUnavailable(errors.New("project and secret id must both be set"))
	}

	name := VersionName(r.projectID, r.secretID)
	payload, err := r.remote.AccessSecret(ctx, name)
	if err != nil {
		logger.Error().Err(err).Str("secret", name).Msg("Failed to access database password secret")
		return "", apperrors.SecretUnavailable(err)
	}

	logger.Debug().Str("secret", name).Msg("Database password fetched from secret manager")
	return string(payload), nil
}

// readPasswordFile reports found=false only when the path does not exist.
func readPasswordFile(path string) (string, bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", true, err
	}
	return strings.TrimSpace(string(raw)), true, nil
}
