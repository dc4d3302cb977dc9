package service

import "context"

// MediaKind selects the validation rules applied to an uploaded asset.
type MediaKind string

const (
	MediaKindImage    MediaKind = "image"
	MediaKindDocument MediaKind = "document"
)

// MediaService is the binary-asset upload collaborator. It turns a base64
// data URI into a hosted URL; the delivery core only ever sees the URL.
type MediaService interface {
	// Store validates and persists a data-URI encoded asset and returns its
	// public URL. Malformed or oversized payloads are rejected-request errors.
	Store(ctx context.Context, dataURI string, kind MediaKind) (string, error)

	// Remove deletes a previously stored asset by its public URL. Unknown
	// URLs are a no-op.
	Remove(ctx context.Context, publicURL string) error
}
