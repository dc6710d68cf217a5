package media

import (
	"bytes"
	"io"
	"os"
)

// Source is a byte source for an upload: either a local file path or an
// in-memory buffer. The set of implementations is closed; upload operations
// dispatch on it exactly once, at the top of the call.
type Source interface {
	size() (int64, error)
	open() (io.ReadCloser, error)
}

// FromPath returns a Source backed by a file on local disk. The file is
// stat'ed for the size gate and opened only after the gate passes.
func FromPath(path string) Source {
	return pathSource(path)
}

// FromBytes returns a Source backed by an in-memory buffer.
func FromBytes(data []byte) Source {
	return bytesSource(data)
}

type pathSource string

func (s pathSource) size() (int64, error) {
	info, err := os.Stat(string(s))
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

func (s pathSource) open() (io.ReadCloser, error) {
	return os.Open(string(s))
}

type bytesSource []byte

func (s bytesSource) size() (int64, error) {
	return int64(len(s)), nil
}

func (s bytesSource) open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s)), nil
}
