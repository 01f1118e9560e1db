package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/application/docgen"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(t.TempDir(), logger.New(logger.Config{Env: "development", Level: "error"}))
}

func TestGet_PerfilAusente_DevuelveNil(t *testing.T) {
	s := newTestStore(t)
	assert.Nil(t, s.Get("co-sin-perfil"))
}

func TestGet_JSONCorrupto_DevuelveNil(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.WriteFile(s.path("co-1"), []byte("{corrupto"), 0o644))
	assert.Nil(t, s.Get("co-1"))
}

func TestPutGet_Roundtrip(t *testing.T) {
	s := newTestStore(t)
	identity := &docgen.CompanyIdentity{
		Name:      "Mi Empresa SL",
		Email:     "hola@miempresa.example",
		Phones:    []string{"600 000 000"},
		Addresses: []string{"Calle Mayor 1, Madrid"},
		LogoURL:   "https://cdn.example.com/logo.png",
	}

	require.NoError(t, s.Put("co-1", identity))

	got := s.Get("co-1")
	require.NotNil(t, got)
	assert.Equal(t, identity, got)
}

func TestPath_SaneaElCompanyID(t *testing.T) {
	s := newTestStore(t)

	p := s.path("../../etc/passwd")
	assert.Equal(t, s.dir, filepath.Dir(p), "el ID saneado nunca escapa del directorio")
	assert.Equal(t, "______etc_passwd.json", filepath.Base(p))
}

func TestPut_CreaElDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "perfiles")
	s := NewFileStore(dir, logger.New(logger.Config{Env: "development", Level: "error"}))

	require.NoError(t, s.Put("co-1", &docgen.CompanyIdentity{Name: "Acme"}))
	assert.NotNil(t, s.Get("co-1"))
}
