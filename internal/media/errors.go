package media

import (
	"errors"
	"fmt"
)

// ErrNoImageKey is returned when the endpoint reports success but omits the
// image key from both known response shapes. The message text is part of the
// contract; callers branch on it.
var ErrNoImageKey = errors.New("No image_key returned")

// ErrNoFileKey is the file-upload counterpart of ErrNoImageKey.
var ErrNoFileKey = errors.New("No file_key returned")

// SizeError reports a source that exceeds MaxUploadBytes. It is detected
// before any network I/O.
type SizeError struct {
	Bytes int64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("media exceeds the 30 MiB upload limit: %.1f MiB", float64(e.Bytes)/(1<<20))
}

// RemoteError reports a nonzero status code returned by the endpoint. The
// endpoint's message text wins when present, otherwise the raw code is shown.
type RemoteError struct {
	Code int
	Msg  string
}

func (e *RemoteError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("code %d", e.Code)
}
