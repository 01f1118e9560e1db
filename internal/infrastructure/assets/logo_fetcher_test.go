package assets

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "development", Level: "error"})
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestFetch_PNGValido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(pngBytes(t, 120, 40))
	}))
	defer srv.Close()

	f := NewHTTPLogoFetcher(2*time.Second, testLogger())
	logo := f.Fetch(context.Background(), srv.URL)

	require.NotNil(t, logo)
	assert.Equal(t, "png", logo.ImageType)
	assert.InDelta(t, 3.0, logo.AspectRatio, 0.001, "aspect ratio = ancho / alto")
	assert.NotEmpty(t, logo.Bytes)
}

func TestFetch_Status404_DevuelveNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewHTTPLogoFetcher(2*time.Second, testLogger())
	assert.Nil(t, f.Fetch(context.Background(), srv.URL))
}

func TestFetch_BytesNoDecodificables_DevuelveNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>esto no es una imagen</html>"))
	}))
	defer srv.Close()

	f := NewHTTPLogoFetcher(2*time.Second, testLogger())
	assert.Nil(t, f.Fetch(context.Background(), srv.URL))
}

func TestFetch_ServidorCaido_DevuelveNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // cerrado a propósito

	f := NewHTTPLogoFetcher(500*time.Millisecond, testLogger())
	assert.Nil(t, f.Fetch(context.Background(), srv.URL))
}

func TestFetch_URLInvalida_DevuelveNil(t *testing.T) {
	f := NewHTTPLogoFetcher(time.Second, testLogger())
	assert.Nil(t, f.Fetch(context.Background(), "http://\x7f tal cual"))
}
