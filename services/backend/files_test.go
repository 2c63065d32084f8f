package backendsvc

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pathshala/admin/tests"
)

func TestClient_FileURL(t *testing.T) {
	client := NewClient("http://api.test/", &testutil.Logger{})

	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{name: "empty", filename: "", want: ""},
		{name: "blank", filename: "   ", want: ""},
		{name: "plain", filename: "tree.jpg", want: "http://api.test/uploads/tree.jpg"},
		{name: "uploads prefix", filename: "uploads/tree.jpg", want: "http://api.test/uploads/tree.jpg"},
		{name: "uppercase prefix", filename: "UPLOADS/tree.jpg", want: "http://api.test/uploads/tree.jpg"},
		{name: "windows path", filename: `uploads\2025\tree.jpg`, want: "http://api.test/uploads/tree.jpg"},
		{name: "only one prefix stripped", filename: "uploads/uploads/tree.jpg", want: "http://api.test/uploads/tree.jpg"},
		{name: "spaces", filename: " uploads/my tree.jpg ", want: "http://api.test/uploads/my%20tree.jpg"},
		{name: "reserved characters", filename: "a&b=c?(1)!.jpg", want: "http://api.test/uploads/a%26b%3Dc%3F(1)!.jpg"},
		{name: "unicode", filename: "पेड़.jpg", want: "http://api.test/uploads/%E0%A4%AA%E0%A5%87%E0%A4%A1%E0%A4%BC.jpg"},
		{name: "prefix only", filename: "uploads/", want: ""},
		{name: "directory", filename: `C:\photos\`, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := client.FileURL(tt.filename)
			assert.Equal(t, tt.want, got)
			if got != "" {
				assert.NotContains(t, got, `\`)
				assert.Equal(t, 1, strings.Count(got, "uploads/"))
			}
		})
	}
}

func TestClient_DownloadFile(t *testing.T) {
	client, fb := setup(t)
	ctx := context.Background()

	f, err := client.DownloadFile(ctx, `uploads\tree 1.jpg`)
	assert.NoError(t, err)
	assert.Equal(t, "tree 1.jpg", f.Name)
	assert.Equal(t, "image/jpeg", f.ContentType)
	assert.Equal(t, []byte("\xff\xd8\xff\xe0fake-jpeg"), f.Content)

	f, err = client.DownloadFile(ctx, "uploads/cert.pdf")
	assert.NoError(t, err)
	assert.Equal(t, "application/pdf", f.ContentType)

	_, err = client.DownloadFile(ctx, "missing.png")
	assertError(t, err, KindHTTP, http.StatusNotFound, "Failed to fetch file: missing.png")

	before := len(fb.Requests())
	_, err = client.DownloadFile(ctx, "  ")
	assertError(t, err, KindValidation, 0, "")
	assert.Len(t, fb.Requests(), before)
}

func TestValidateUdiseCode(t *testing.T) {
	assert.True(t, ValidateUdiseCode("22010100101"))
	assert.True(t, ValidateUdiseCode(" 2201 "))
	assert.False(t, ValidateUdiseCode(""))
	assert.False(t, ValidateUdiseCode(" \t"))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "Network error. Please check your connection and try again.", Message(networkError(nil)))
	assert.Equal(t, "HTTP error! Status: 503", Message(httpError(503, "")))
	assert.Equal(t, assert.AnError.Error(), Message(assert.AnError))

	wrapped := statsError(msgDashboard, httpError(502, ""))
	e, ok := AsError(wrapped)
	if assert.True(t, ok) {
		assert.Equal(t, KindHTTP, e.Kind)
		assert.Equal(t, 500, e.Status)
	}
	assert.Equal(t, "http", KindHTTP.String())
}
