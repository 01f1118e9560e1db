package docgen

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeCatalog catálogo en memoria con contador de llamadas.
type fakeCatalog struct {
	refs  map[string]string
	fail  bool
	calls int32
}

func (f *fakeCatalog) LookupReference(_ context.Context, productID string) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.fail {
		return "", errors.New("catálogo caído")
	}
	return f.refs[productID], nil
}

func TestResolveReferences_Resuelve(t *testing.T) {
	catalog := &fakeCatalog{refs: map[string]string{"p1": "CAT-1", "p2": "CAT-2"}}

	refs := ResolveReferences(context.Background(), catalog, []string{"p1", "p2", "p3"})

	assert.Equal(t, "CAT-1", refs["p1"])
	assert.Equal(t, "CAT-2", refs["p2"])
	assert.Equal(t, "p3", refs["p3"], "producto ausente mapea a su propio ID")
	assert.Equal(t, int32(3), atomic.LoadInt32(&catalog.calls))
}

func TestResolveReferences_SetVacioNoConsulta(t *testing.T) {
	catalog := &fakeCatalog{}
	refs := ResolveReferences(context.Background(), catalog, nil)
	assert.Empty(t, refs)
	assert.Zero(t, atomic.LoadInt32(&catalog.calls))
}

func TestResolveReferences_ErrorDegradaAlID(t *testing.T) {
	catalog := &fakeCatalog{fail: true}
	refs := ResolveReferences(context.Background(), catalog, []string{"p1"})
	assert.Equal(t, "p1", refs["p1"], "un error de consulta nunca rompe la generación")
}

func TestResolveReferences_CatalogoNil(t *testing.T) {
	refs := ResolveReferences(context.Background(), nil, []string{"p1"})
	assert.Empty(t, refs)
}
