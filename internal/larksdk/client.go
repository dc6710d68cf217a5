// Package larksdk adapts the official Lark open-platform SDK to the neutral
// media.Client contract.
package larksdk

import (
	"context"

	lark "github.com/larksuite/oapi-sdk-go/v3"
	larkim "github.com/larksuite/oapi-sdk-go/v3/service/im/v1"

	"larkmedia/internal/media"
)

// Client implements media.Client over a *lark.Client. Transport, auth, and
// token refresh are the SDK's responsibility.
type Client struct {
	sdk *lark.Client
}

var _ media.Client = (*Client)(nil)

// New builds a REST client for the given app credentials. baseDomain overrides
// the open-platform domain when non-empty (e.g. a Feishu vs Lark deployment).
func New(appID, appSecret, baseDomain string) *Client {
	var opts []lark.ClientOptionFunc
	if baseDomain != "" {
		opts = append(opts, lark.WithOpenBaseUrl(baseDomain))
	}
	return Wrap(lark.NewClient(appID, appSecret, opts...))
}

// Wrap adapts an existing SDK client.
func Wrap(sdk *lark.Client) *Client {
	return &Client{sdk: sdk}
}

func (c *Client) CreateImage(ctx context.Context, req media.ImageRequest) (*media.Response, error) {
	r := larkim.NewCreateImageReqBuilder().
		Body(larkim.NewCreateImageReqBodyBuilder().
			ImageType(req.ImageType).
			Image(req.Image).
			Build()).
		Build()

	resp, err := c.sdk.Im.Image.Create(ctx, r)
	if err != nil {
		return nil, err
	}
	return mapImageResp(resp), nil
}

func (c *Client) CreateFile(ctx context.Context, req media.FileRequest) (*media.Response, error) {
	body := larkim.NewCreateFileReqBodyBuilder().
		FileType(req.FileType).
		FileName(req.FileName).
		File(req.File)
	if req.DurationMS != nil {
		body = body.Duration(*req.DurationMS)
	}
	r := larkim.NewCreateFileReqBuilder().
		Body(body.Build()).
		Build()

	resp, err := c.sdk.Im.File.Create(ctx, r)
	if err != nil {
		return nil, err
	}
	return mapFileResp(resp), nil
}

// mapImageResp converts the typed SDK response into the neutral shape. The SDK
// always carries the code at the top level and the key under data.
func mapImageResp(resp *larkim.CreateImageResp) *media.Response {
	code := resp.Code
	out := &media.Response{Code: &code, Msg: resp.Msg}
	if resp.Data != nil && resp.Data.ImageKey != nil {
		out.Data = &media.ResponseData{ImageKey: resp.Data.ImageKey}
	}
	return out
}

func mapFileResp(resp *larkim.CreateFileResp) *media.Response {
	code := resp.Code
	out := &media.Response{Code: &code, Msg: resp.Msg}
	if resp.Data != nil && resp.Data.FileKey != nil {
		out.Data = &media.ResponseData{FileKey: resp.Data.FileKey}
	}
	return out
}
