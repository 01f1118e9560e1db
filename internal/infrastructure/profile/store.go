// Package profile persiste la identidad de empresa usada en los documentos.
package profile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/Gestion-api/internal/application/docgen"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

var _ docgen.ProfileStore = (*FileStore)(nil)

// FileStore guarda un perfil JSON por empresa en disco, un fichero por
// companyID. La lectura es tolerante: fichero ausente o JSON corrupto
// devuelven nil y el documento sale sin bloque de empresa.
type FileStore struct {
	dir string
	log *logger.Logger
}

// NewFileStore construye el store sobre el directorio dado.
func NewFileStore(dir string, log *logger.Logger) *FileStore {
	return &FileStore{dir: dir, log: log}
}

// Get carga el perfil de la empresa, o nil si no existe o no es legible.
func (s *FileStore) Get(companyID string) *docgen.CompanyIdentity {
	raw, err := os.ReadFile(s.path(companyID))
	if err != nil {
		return nil
	}

	var identity docgen.CompanyIdentity
	if err := json.Unmarshal(raw, &identity); err != nil {
		s.log.Warn().Str("company_id", companyID).Err(err).Msg("perfil: JSON corrupto, se ignora")
		return nil
	}
	return &identity
}

// Put persiste el perfil de la empresa, creando el directorio si hace falta.
func (s *FileStore) Put(companyID string, identity *docgen.CompanyIdentity) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(identity, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(companyID), raw, 0o644)
}

// path sanea el companyID para que nunca escape del directorio de perfiles.
func (s *FileStore) path(companyID string) string {
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, companyID)
	return filepath.Join(s.dir, safe+".json")
}
