package middleware

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/go-resty/resty/v2"
)

// DecompressMiddleware inflates provider bodies that arrive still encoded.
// Go's transport only undoes gzip it asked for itself; brotli and deflate
// bodies are left for us.
func DecompressMiddleware(c *resty.Client, resp *resty.Response) error {
	encoding := strings.ToLower(strings.TrimSpace(resp.Header().Get("Content-Encoding")))
	if encoding == "" || encoding == "identity" || len(resp.Body()) == 0 {
		return nil
	}

	var reader io.ReadCloser
	switch encoding {
	case "br":
		reader = io.NopCloser(brotli.NewReader(bytes.NewReader(resp.Body())))
	case "gzip":
		gz, err := gzip.NewReader(bytes.NewReader(resp.Body()))
		if err != nil {
			return fmt.Errorf("gzip body from %s: %w", resp.Request.URL, err)
		}
		reader = gz
	case "deflate":
		reader = flate.NewReader(bytes.NewReader(resp.Body()))
	default:
		return nil
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("decode %s body: %w", encoding, err)
	}

	resp.SetBody(decompressed)
	resp.Header().Del("Content-Encoding")
	return nil
}
