package larksdk

import (
	"testing"

	larkcore "github.com/larksuite/oapi-sdk-go/v3/core"
	larkim "github.com/larksuite/oapi-sdk-go/v3/service/im/v1"
)

func strPtr(s string) *string { return &s }

func TestMapImageRespCarriesCodeMsgAndKey(t *testing.T) {
	resp := &larkim.CreateImageResp{
		CodeError: larkcore.CodeError{Code: 0, Msg: "success"},
		Data:      &larkim.CreateImageRespData{ImageKey: strPtr("img_v3_abc")},
	}

	out := mapImageResp(resp)
	if out.Code == nil || *out.Code != 0 {
		t.Fatalf("expected code 0, got %v", out.Code)
	}
	if out.Msg != "success" {
		t.Fatalf("expected msg to pass through, got %q", out.Msg)
	}
	if out.Data == nil || out.Data.ImageKey == nil || *out.Data.ImageKey != "img_v3_abc" {
		t.Fatalf("expected image key under data, got %#v", out.Data)
	}
	if out.ImageKey != nil {
		t.Fatalf("SDK responses never carry a top-level key")
	}
}

func TestMapImageRespWithoutData(t *testing.T) {
	resp := &larkim.CreateImageResp{
		CodeError: larkcore.CodeError{Code: 234001, Msg: "invalid image"},
	}

	out := mapImageResp(resp)
	if out.Code == nil || *out.Code != 234001 {
		t.Fatalf("expected code 234001, got %v", out.Code)
	}
	if out.Data != nil {
		t.Fatalf("expected no data, got %#v", out.Data)
	}
}

func TestMapFileRespCarriesKey(t *testing.T) {
	resp := &larkim.CreateFileResp{
		CodeError: larkcore.CodeError{Code: 0},
		Data:      &larkim.CreateFileRespData{FileKey: strPtr("file_v3_def")},
	}

	out := mapFileResp(resp)
	if out.Code == nil || *out.Code != 0 {
		t.Fatalf("expected code 0, got %v", out.Code)
	}
	if out.Data == nil || out.Data.FileKey == nil || *out.Data.FileKey != "file_v3_def" {
		t.Fatalf("expected file key under data, got %#v", out.Data)
	}
}

func TestNewAcceptsCustomDomain(t *testing.T) {
	c := New("cli_app", "secret", "https://open.larksuite.com")
	if c == nil || c.sdk == nil {
		t.Fatalf("expected a constructed client")
	}
}
