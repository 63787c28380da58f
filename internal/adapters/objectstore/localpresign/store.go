package localpresign

import (
	"context"
	"fmt"

	"pet-adoption-market/internal/ports/objectstore"
)

// Store is the dev-mode presigner: it hands out fake upload URLs so the vet
// workflow runs end to end without S3.
type Store struct {
	baseURL string
}

func New(baseURL string) *Store {
	if baseURL == "" {
		baseURL = "https://uploads.local"
	}
	return &Store{baseURL: baseURL}
}

func (s *Store) PresignPut(ctx context.Context, key, contentType string) (objectstore.PresignedUpload, error) {
	return objectstore.PresignedUpload{
		URL:       fmt.Sprintf("%s/%s?signature=dev", s.baseURL, key),
		ObjectKey: key,
		ExpiresIn: 300,
	}, nil
}

func (s *Store) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, key)
}
