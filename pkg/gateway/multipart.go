package gateway

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"sort"
	"strings"

	"github.com/sreeram/alumnet/pkg/models"
)

// encodeMultipart writes the present fields and file parts into a multipart
// body. Only keys that exist in the maps are written — an absent field is
// simply not sent. Keys are written in sorted order so request bodies are
// deterministic.
func encodeMultipart(fields map[string]string, files map[string]*models.FileUpload) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for _, key := range sortedKeys(fields) {
		if err := writer.WriteField(key, fields[key]); err != nil {
			return nil, "", fmt.Errorf("write form field %s: %w", key, err)
		}
	}

	for _, key := range sortedFileKeys(files) {
		file := files[key]
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
			escapeQuotes(key), escapeQuotes(file.Filename)))
		if file.ContentType != "" {
			header.Set("Content-Type", file.ContentType)
		}

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", fmt.Errorf("create file part %s: %w", key, err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return nil, "", fmt.Errorf("write file part %s: %w", key, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize multipart body: %w", err)
	}

	return body, writer.FormDataContentType(), nil
}

// doMultipart issues a multipart request and returns the response body text.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, files map[string]*models.FileUpload) (string, error) {
	body, contentType, err := encodeMultipart(fields, files)
	if err != nil {
		return "", err
	}

	data, _, err := c.do(ctx, method, path, nil, body, contentType)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFileKeys(m map[string]*models.FileUpload) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
