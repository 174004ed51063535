package upload

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, fields map[string]string, filename string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile(FormField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/addRecipe", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func testContext(req *http.Request) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestNewKey(t *testing.T) {
	tests := []struct {
		name    string
		wantExt string
	}{
		{"cake.JPG", ".jpg"},
		{"../../etc/passwd", ""},
		{"photo.final.png", ".png"},
		{"noext", ""},
	}
	for _, tt := range tests {
		key := NewKey(tt.name)
		assert.Equal(t, tt.wantExt, filepath.Ext(key), tt.name)
		assert.True(t, ValidKey(key), "key %q for %q should be valid", key, tt.name)
		assert.NotContains(t, key, "/")
	}

	assert.NotEqual(t, NewKey("same.png"), NewKey("same.png"))
}

func TestValidKey(t *testing.T) {
	assert.False(t, ValidKey("cake.png"))
	assert.False(t, ValidKey("../"+NewKey("x.png")))
	assert.False(t, ValidKey(""))
}

func TestDiskStore_SaveAndOpen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	store, err := NewDiskStore(dir)
	require.NoError(t, err)

	c := testContext(multipartRequest(t, nil, "pie.png", []byte("png-bytes")))
	key, uploaded, err := FromRequest(c, store)
	require.NoError(t, err)
	require.True(t, uploaded)
	assert.True(t, strings.HasSuffix(key, ".png"))

	onDisk, err := os.ReadFile(filepath.Join(dir, key))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(onDisk))

	rc, size, ct, err := store.Open(context.Background(), key)
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(got))
	assert.Equal(t, int64(len("png-bytes")), size)
	assert.Equal(t, "image/png", ct)
}

func TestDiskStore_SameNameDoesNotOverwrite(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	first, _, err := FromRequest(testContext(multipartRequest(t, nil, "pie.png", []byte("one"))), store)
	require.NoError(t, err)
	second, _, err := FromRequest(testContext(multipartRequest(t, nil, "pie.png", []byte("two"))), store)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	one, err := os.ReadFile(filepath.Join(store.Dir(), first))
	require.NoError(t, err)
	assert.Equal(t, "one", string(one))
}

func TestDiskStore_OpenUnknown(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	_, _, _, err = store.Open(context.Background(), NewKey("missing.png"))
	assert.ErrorIs(t, err, ErrNotFound)

	_, _, _, err = store.Open(context.Background(), "../secret.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFromRequest_NoFile(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	c := testContext(multipartRequest(t, map[string]string{"recipe_name": "Soup"}, "", nil))
	key, uploaded, err := FromRequest(c, store)
	require.NoError(t, err)
	assert.False(t, uploaded)
	assert.Empty(t, key)
}

func TestFromRequest_URLEncoded(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/addRecipe", strings.NewReader("recipe_name=Soup"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, uploaded, err := FromRequest(testContext(req), store)
	require.NoError(t, err)
	assert.False(t, uploaded)
}

func TestNormaliseEndpoint(t *testing.T) {
	tests := []struct {
		in           string
		wantEndpoint string
		wantSecure   bool
		wantErr      bool
	}{
		{"minio:9000", "minio:9000", false, false},
		{"http://minio:9000", "minio:9000", false, false},
		{"https://minio:9000", "minio:9000", true, false},
		{"http://minio:9000/", "minio:9000", false, false},
		{"http://minio:9000/images", "", false, true},
		{"", "", false, true},
	}

	for _, tt := range tests {
		ep, secure, err := normaliseEndpoint(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.wantEndpoint, ep, tt.in)
		assert.Equal(t, tt.wantSecure, secure, tt.in)
	}
}

func TestNewMinioStore_Incomplete(t *testing.T) {
	_, err := NewMinioStore(context.Background(), MinioOptions{Endpoint: "minio:9000"})
	assert.Error(t, err)
}
