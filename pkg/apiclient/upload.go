package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// Upload sends a file as multipart/form-data to endpoint under the given
// form field. The bearer credential and request ID are attached as for Do;
// Content-Type is the multipart boundary instead of JSON.
//
// The body is buffered through a pipe so large files are streamed rather
// than held in memory.
func (c *Client) Upload(ctx context.Context, endpoint, field, filename string, r io.Reader, opts ...RequestOption) (json.RawMessage, error) {
	if endpoint == "" || !strings.HasPrefix(endpoint, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEndpoint, endpoint)
	}

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := writer.CreateFormFile(field, filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, r); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL.JoinPath(endpoint).String(), pr)
	if err != nil {
		return nil, fmt.Errorf("apiclient: build upload request: %w", err)
	}

	c.applyHeaders(req, opts)
	// The multipart boundary must win over any configured content type.
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req)
}
