package docgen

import "context"

// ResolveReferences construye la tabla productID → referencia de catálogo.
// Con el set vacío no toca la red. Las consultas se lanzan en paralelo (una
// goroutine por ID único) y el resultado se indexa por ID, así que el orden
// de finalización no afecta al orden de las líneas. Un registro ausente o un
// error de consulta hacen que el ID se mapee a sí mismo: la generación del
// documento nunca falla por el catálogo.
func ResolveReferences(ctx context.Context, catalog CatalogLookup, ids []string) map[string]string {
	refs := make(map[string]string, len(ids))
	if len(ids) == 0 || catalog == nil {
		return refs
	}

	type result struct {
		id  string
		ref string
	}
	ch := make(chan result, len(ids))

	for _, id := range ids {
		go func(id string) {
			ref, err := catalog.LookupReference(ctx, id)
			if err != nil || ref == "" {
				ref = id // fallback: el ID crudo es su propia referencia
			}
			ch <- result{id: id, ref: ref}
		}(id)
	}

	for range ids {
		r := <-ch
		refs[r.id] = r.ref
	}
	return refs
}
