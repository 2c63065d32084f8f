package backendsvc

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/pathshala/admin/core"
)

var uploadsPrefix = regexp.MustCompile(`(?i)^uploads/`)

// File is a downloaded upload.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// FileURL builds the URL of an uploaded file from the path stored on a record.
// Windows separators and one leading "uploads/" are dropped and only the base name is kept.
// A blank filename gives "".
func (c *Client) FileURL(filename string) string {
	base := baseName(filename)
	if base == "" {
		return ""
	}
	return c.baseURL + "/uploads/" + encodeURIComponent(base)
}

func baseName(filename string) string {
	clean := core.CleanString(filename)
	if clean == "" {
		return ""
	}
	clean = strings.ReplaceAll(clean, `\`, "/")
	clean = uploadsPrefix.ReplaceAllString(clean, "")
	if clean == "" || strings.HasSuffix(clean, "/") {
		return ""
	}
	return core.CleanString(path.Base(clean))
}

// encodeURIComponent escapes s like its javascript namesake does for file names.
func encodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	for _, r := range []string{"!", "'", "(", ")", "*"} {
		escaped = strings.ReplaceAll(escaped, url.QueryEscape(r), r)
	}
	return escaped
}

// DownloadFile fetches an uploaded file.
func (c *Client) DownloadFile(ctx context.Context, filename string) (File, error) {
	u := c.FileURL(filename)
	if u == "" {
		return File{}, validationError("File name is required")
	}

	content, contentType, err := c.do(ctx, http.MethodGet, u, nil)
	if err != nil {
		if e, ok := AsError(err); ok && e.Kind == KindHTTP {
			e.Message = "Failed to fetch file: " + filename
		}
		return File{}, err
	}
	return File{Name: baseName(filename), ContentType: contentType, Content: content}, nil
}
