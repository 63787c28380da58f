package objectstore

import "context"

// PresignedUpload is a one-shot upload grant for an object key.
type PresignedUpload struct {
	URL       string
	ObjectKey string
	ExpiresIn int // seconds
}

// Presigner hands out upload URLs for proof documents. The production
// implementation presigns S3 PUTs; dev mode uses a local stub.
type Presigner interface {
	PresignPut(ctx context.Context, key, contentType string) (PresignedUpload, error)

	// PublicURL is the stable read URL recorded next to the document row.
	PublicURL(key string) string
}
