// Package media uploads images and files to the Lark open platform and
// classifies local media paths. It is a boundary adapter: one validate,
// transfer, normalize pass per call, no retries, no shared mutable state.
package media

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"larkmedia/internal/logging"
)

// MaxUploadBytes is the largest source the endpoint accepts. Sources above it
// are rejected before any network I/O.
const MaxUploadBytes = 30 * 1024 * 1024

// Uploader submits byte sources to a Client. It holds no mutable state and is
// safe for concurrent use. It implements no timeout of its own; callers cancel
// via the context.
type Uploader struct {
	client Client
	logger logging.Logger
}

// NewUploader constructs an Uploader over the given client.
func NewUploader(client Client) *Uploader {
	return &Uploader{client: client, logger: logging.Nop()}
}

// SetLogger replaces the default no-op logger.
func (u *Uploader) SetLogger(logger logging.Logger) {
	u.logger = logging.OrNop(logger)
}

// UploadImage submits an image source and returns the opaque image key. An
// empty kind defaults to ImageKindMessage.
func (u *Uploader) UploadImage(ctx context.Context, src Source, kind ImageKind) (string, error) {
	if kind == "" {
		kind = ImageKindMessage
	}
	body, err := u.gate(src)
	if err != nil {
		return "", err
	}
	defer body.Close()

	resp, err := u.client.CreateImage(ctx, ImageRequest{ImageType: string(kind), Image: body})
	if err != nil {
		return "", fmt.Errorf("create image: %w", err)
	}
	if err := resp.remoteErr(); err != nil {
		u.logger.Warn("image upload rejected: %v", err)
		return "", err
	}
	key := resp.imageKey()
	if key == "" {
		return "", ErrNoImageKey
	}
	u.logger.Debug("image uploaded: key=%s kind=%s", key, kind)
	return key, nil
}

// UploadFile submits a file source and returns the opaque file key. fileName
// is passed through verbatim. An empty fileType is coerced to FileTypeStream.
// durationMS is forwarded only when non-nil.
func (u *Uploader) UploadFile(ctx context.Context, src Source, fileName string, fileType FileType, durationMS *int) (string, error) {
	if fileType == "" {
		fileType = FileTypeStream
	}
	body, err := u.gate(src)
	if err != nil {
		return "", err
	}
	defer body.Close()

	resp, err := u.client.CreateFile(ctx, FileRequest{
		FileType:   string(fileType),
		FileName:   fileName,
		File:       body,
		DurationMS: durationMS,
	})
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if err := resp.remoteErr(); err != nil {
		u.logger.Warn("file upload rejected: %v", err)
		return "", err
	}
	key := resp.fileKey()
	if key == "" {
		return "", ErrNoFileKey
	}
	u.logger.Debug("file uploaded: key=%s name=%s type=%s", key, fileName, fileType)
	return key, nil
}

// UploadAuto resolves rawPath, picks the image endpoint for image extensions
// and the file endpoint otherwise, classifying the file category by extension.
func (u *Uploader) UploadAuto(ctx context.Context, rawPath string) (string, error) {
	path := ResolveMediaPath(rawPath)
	if IsImagePath(path) {
		return u.UploadImage(ctx, FromPath(path), ImageKindMessage)
	}
	return u.UploadFile(ctx, FromPath(path), filepath.Base(path), ClassifyFileType(path), nil)
}

// gate enforces the size limit and opens the byte stream. The returned stream
// must be closed by the caller on every path.
func (u *Uploader) gate(src Source) (io.ReadCloser, error) {
	size, err := src.size()
	if err != nil {
		return nil, fmt.Errorf("probe source: %w", err)
	}
	if size > MaxUploadBytes {
		return nil, &SizeError{Bytes: size}
	}
	stream, err := src.open()
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	return stream, nil
}
