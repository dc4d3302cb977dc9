// Package media implements the binary-asset upload collaborator on top of a
// gocloud.dev blob bucket. Clients submit base64 data URIs; the rest of the
// system only ever sees the hosted URL.
package media

import (
	"context"
	"encoding/base64"
	"log/slog"
	"strings"

	"whisper/config"
	domainerrors "whisper/internal/domain/errors"
	"whisper/internal/domain/service"
	"whisper/internal/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // register the file:// bucket driver
	"gocloud.dev/gcerrors"
)

// Accepted content types per media kind, matching what clients may embed in
// a message. Sniffed from the decoded bytes, not trusted from the data URI.
var allowedTypes = map[service.MediaKind][]string{
	service.MediaKindImage: {
		"image/jpeg",
		"image/png",
	},
	service.MediaKindDocument: {
		"application/pdf",
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	},
}

// blobService is a concrete implementation of the MediaService interface.
type blobService struct {
	bucket  *blob.Bucket
	baseURL string
	maxSize int64
	logger  *slog.Logger
}

// Params defines the required parameters.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured blob bucket and returns it as a service.MediaService.
func New(params Params) (service.MediaService, error) {
	if params.Config.Media == nil || params.Config.Media.BucketURL == "" {
		return nil, errors.New("media bucket url must be configured")
	}

	bucket, err := blob.OpenBucket(context.Background(), params.Config.Media.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return &blobService{
		bucket:  bucket,
		baseURL: strings.TrimRight(params.Config.Media.PublicBaseURL, "/"),
		maxSize: params.Config.Media.MaxBytes,
		logger:  params.Logger,
	}, nil
}

// Store validates and persists a data-URI encoded asset and returns its
// public URL. Anything malformed is a rejected request, never a server fault.
func (s *blobService) Store(ctx context.Context, dataURI string, kind service.MediaKind) (string, error) {
	payload, err := decodeDataURI(dataURI)
	if err != nil {
		return "", err
	}
	if s.maxSize > 0 && int64(len(payload)) > s.maxSize {
		return "", errors.WithStack(domainerrors.ErrMediaTooLarge)
	}

	// Content type is sniffed from the bytes; the data URI's own label is
	// only a claim.
	detected := mimetype.Detect(payload)
	contentType, ok := matchAllowed(detected, kind)
	if !ok {
		return "", errors.WithStack(domainerrors.ErrInvalidMedia.WithDetails(
			"unsupported content type " + detected.String() + " for " + string(kind)))
	}

	key := uuid.New().String() + detected.Extension()
	if err := s.bucket.WriteAll(ctx, key, payload, &blob.WriterOptions{
		ContentType: contentType,
	}); err != nil {
		s.logger.Error("media write failed", slog.String("key", key), slog.Any("error", err))

		return "", errors.WithStack(domainerrors.ErrMediaStoreFailed)
	}

	return s.baseURL + "/" + key, nil
}

// Remove deletes a previously stored asset by its public URL. URLs outside
// this store and already-deleted objects are a no-op.
func (s *blobService) Remove(ctx context.Context, publicURL string) error {
	key, ok := strings.CutPrefix(publicURL, s.baseURL+"/")
	if !ok || key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete media object")
	}

	return nil
}

// decodeDataURI splits and decodes a "data:<mime>;base64,<payload>" string.
func decodeDataURI(dataURI string) ([]byte, error) {
	rest, ok := strings.CutPrefix(dataURI, "data:")
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidMedia.WithDetails("missing data: prefix"))
	}

	meta, encoded, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, errors.WithStack(domainerrors.ErrInvalidMedia.WithDetails("expected base64 data URI"))
	}

	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidMedia.WithDetails("invalid base64 payload"))
	}
	if len(payload) == 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidMedia.WithDetails("empty payload"))
	}

	return payload, nil
}

func matchAllowed(detected *mimetype.MIME, kind service.MediaKind) (string, bool) {
	for _, allowed := range allowedTypes[kind] {
		if detected.Is(allowed) {
			return allowed, true
		}
	}

	return "", false
}
