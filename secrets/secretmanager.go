package secrets

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"hash/crc32"

	"google.golang.org/api/option"
	secretmanager "google.golang.org/api/secretmanager/v1"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// SecretManager reads secret versions from Google Secret Manager.
// A client is built per call, mirroring the per-request credential lookup.
type SecretManager struct {
	opts []option.ClientOption
}

func NewSecretManager(opts ...option.ClientOption) *SecretManager {
	return &SecretManager{opts: opts}
}

func (s *SecretManager) AccessSecret(ctx context.Context, name string) ([]byte, error) {
	svc, err := secretmanager.NewService(ctx, s.opts...)
	if err != nil {
		return nil, fmt.Errorf("create secret manager client: %w", err)
	}

	resp, err := svc.Projects.Secrets.Versions.Access(name).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("access secret version %s: %w", name, err)
	}
	if resp.Payload == nil {
		return nil, errors.New("secret version has no payload")
	}

	data, err := base64.StdEncoding.DecodeString(resp.Payload.Data)
	if err != nil {
		return nil, fmt.Errorf("decode secret payload: %w", err)
	}

	if want := resp.Payload.DataCrc32c; want != 0 {
		if got := int64(crc32.Checksum(data, castagnoli)); got != want {
			return nil, fmt.Errorf("secret payload checksum mismatch for %s", name)
		}
	}
	return data, nil
}
