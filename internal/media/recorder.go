package media

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// RecorderCall records a single call made through a Recorder.
type RecorderCall struct {
	Method     string // "CreateImage" or "CreateFile"
	ImageType  string
	FileType   string
	FileName   string
	DurationMS *int
	Payload    []byte
}

// Recorder implements Client by recording all calls for later assertion in
// tests. It drains each request stream fully, returns configurable responses
// and errors, and is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []RecorderCall

	// NextImageKey is returned (under data) by CreateImage. Defaults to
	// "img_recorded".
	NextImageKey string

	// NextFileKey is returned (under data) by CreateFile. Defaults to
	// "file_recorded".
	NextFileKey string

	// NextResponse, when set, is returned verbatim by the next call and then
	// cleared. It takes precedence over the key fields.
	NextResponse *Response

	// NextError, when set, is returned by the next call and then cleared.
	NextError error
}

var _ Client = (*Recorder)(nil)

// NewRecorder creates a Recorder with sensible defaults.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(call RecorderCall) {
	r.calls = append(r.calls, call)
}

func (r *Recorder) popError() error {
	if r.NextError != nil {
		err := r.NextError
		r.NextError = nil
		return err
	}
	return nil
}

func (r *Recorder) popResponse() *Response {
	if r.NextResponse != nil {
		resp := r.NextResponse
		r.NextResponse = nil
		return resp
	}
	return nil
}

func okResponse(key string, image bool) *Response {
	code := 0
	data := &ResponseData{}
	if image {
		data.ImageKey = &key
	} else {
		data.FileKey = &key
	}
	return &Response{Code: &code, Data: data}
}

func (r *Recorder) CreateImage(_ context.Context, req ImageRequest) (*Response, error) {
	payload, err := io.ReadAll(req.Image)
	if err != nil {
		return nil, fmt.Errorf("read image stream: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record(RecorderCall{Method: "CreateImage", ImageType: req.ImageType, Payload: payload})
	if err := r.popError(); err != nil {
		return nil, err
	}
	if resp := r.popResponse(); resp != nil {
		return resp, nil
	}
	key := r.NextImageKey
	if key == "" {
		key = "img_recorded"
	}
	r.NextImageKey = ""
	return okResponse(key, true), nil
}

func (r *Recorder) CreateFile(_ context.Context, req FileRequest) (*Response, error) {
	payload, err := io.ReadAll(req.File)
	if err != nil {
		return nil, fmt.Errorf("read file stream: %w", err)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record(RecorderCall{
		Method:     "CreateFile",
		FileType:   req.FileType,
		FileName:   req.FileName,
		DurationMS: req.DurationMS,
		Payload:    payload,
	})
	if err := r.popError(); err != nil {
		return nil, err
	}
	if resp := r.popResponse(); resp != nil {
		return resp, nil
	}
	key := r.NextFileKey
	if key == "" {
		key = "file_recorded"
	}
	r.NextFileKey = ""
	return okResponse(key, false), nil
}

// Calls returns a snapshot of all recorded calls.
func (r *Recorder) Calls() []RecorderCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RecorderCall, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallsByMethod returns calls filtered by method name.
func (r *Recorder) CallsByMethod(method string) []RecorderCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []RecorderCall
	for _, c := range r.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Reset clears all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}
