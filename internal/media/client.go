package media

import (
	"context"
	"io"
)

// ImageKind selects the image-upload target the endpoint distinguishes.
type ImageKind string

const (
	// ImageKindMessage is a chat-embedded image. This is the default.
	ImageKindMessage ImageKind = "message"
	// ImageKindAvatar is a profile picture.
	ImageKindAvatar ImageKind = "avatar"
)

// ImageRequest carries the payload for the image-create call.
type ImageRequest struct {
	ImageType string
	Image     io.Reader
}

// FileRequest carries the payload for the file-create call. DurationMS is
// included only when non-nil; the endpoint conventionally requires it for
// audio and video categories.
type FileRequest struct {
	FileType   string
	FileName   string
	File       io.Reader
	DurationMS *int
}

// ResponseData is the nested payload newer endpoint versions return.
type ResponseData struct {
	ImageKey *string `json:"image_key,omitempty"`
	FileKey  *string `json:"file_key,omitempty"`
}

// Response is the normalized endpoint response. Code distinguishes
// present-and-zero from absent; the opaque key may live at the top level or
// under Data depending on endpoint version.
type Response struct {
	Code     *int          `json:"code,omitempty"`
	Msg      string        `json:"msg,omitempty"`
	ImageKey *string       `json:"image_key,omitempty"`
	FileKey  *string       `json:"file_key,omitempty"`
	Data     *ResponseData `json:"data,omitempty"`
}

// Client declares exactly the two endpoint operations this package consumes.
// The concrete transport, auth, and retries are the implementation's concern.
type Client interface {
	CreateImage(ctx context.Context, req ImageRequest) (*Response, error)
	CreateFile(ctx context.Context, req FileRequest) (*Response, error)
}

// remoteErr converts a present, nonzero status code into a RemoteError.
// An absent code is treated the same as code 0.
func (r *Response) remoteErr() error {
	if r.Code == nil || *r.Code == 0 {
		return nil
	}
	return &RemoteError{Code: *r.Code, Msg: r.Msg}
}

// imageKey performs the two-step key lookup: the top-level field wins over the
// nested data field, first non-absent value taken.
func (r *Response) imageKey() string {
	if r.ImageKey != nil {
		return *r.ImageKey
	}
	if r.Data != nil && r.Data.ImageKey != nil {
		return *r.Data.ImageKey
	}
	return ""
}

func (r *Response) fileKey() string {
	if r.FileKey != nil {
		return *r.FileKey
	}
	if r.Data != nil && r.Data.FileKey != nil {
		return *r.Data.FileKey
	}
	return ""
}
