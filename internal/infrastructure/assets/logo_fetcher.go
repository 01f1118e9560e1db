// Package assets resuelve recursos externos embebibles en los documentos.
package assets

import (
	"bytes"
	"context"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/docgen"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

// Máximo de bytes aceptados para un logo remoto.
const maxLogoBytes = 4 << 20

var _ docgen.LogoFetcher = (*HTTPLogoFetcher)(nil)

// HTTPLogoFetcher descarga el logo por HTTP y sondea sus dimensiones.
// Todo fallo degrada a nil: el logo es decorativo y nunca bloquea la
// generación del documento.
type HTTPLogoFetcher struct {
	client *http.Client
	log    *logger.Logger
}

// NewHTTPLogoFetcher construye el fetcher con el timeout configurado.
func NewHTTPLogoFetcher(timeout time.Duration, log *logger.Logger) *HTTPLogoFetcher {
	return &HTTPLogoFetcher{
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// Fetch descarga la imagen y devuelve el logo listo para incrustar, o nil si
// la URL no responde, el status no es 2xx o los bytes no son PNG/JPEG.
func (f *HTTPLogoFetcher) Fetch(ctx context.Context, url string) *docgen.Logo {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		f.log.Warn().Str("url", url).Err(err).Msg("logo: URL inválida, se omite")
		return nil
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Warn().Str("url", url).Err(err).Msg("logo: descarga fallida, se omite")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		f.log.Warn().Str("url", url).Int("status", resp.StatusCode).Msg("logo: status no esperado, se omite")
		return nil
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
	if err != nil {
		f.log.Warn().Str("url", url).Err(err).Msg("logo: lectura fallida, se omite")
		return nil
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		f.log.Warn().Str("url", url).Err(err).Msg("logo: formato no soportado, se omite")
		return nil
	}

	imageType := "png"
	if format == "jpeg" {
		imageType = "jpg"
	}

	var aspect float64
	if cfg.Height > 0 {
		aspect = float64(cfg.Width) / float64(cfg.Height)
	}

	return &docgen.Logo{
		Bytes:       raw,
		ImageType:   imageType,
		AspectRatio: aspect,
	}
}
