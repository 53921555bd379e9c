package status

// ConfigsByDocType mapa estado → configuración de la categoría del tipo de documento.
// Un tipo desconocido devuelve el catálogo genérico de documentos.
func ConfigsByDocType(dt DocType) map[Status]Config {
	w := documentCatalog
	if cat, ok := CategoryOf(dt); ok {
		w = workflowsByCategory[cat]
	}
	out := make(map[Status]Config, len(w.entries))
	for _, e := range w.entries {
		out[e.Status] = e.Config
	}
	return out
}

// DocumentTransitions grafo de transiciones de la categoría del tipo de documento.
// Tipo desconocido → mapa vacío. Los estados terminales aparecen con una lista vacía.
func DocumentTransitions(dt DocType) map[Status][]Status {
	cat, ok := CategoryOf(dt)
	if !ok {
		return map[Status][]Status{}
	}
	w := workflowsByCategory[cat]
	out := make(map[Status][]Status, len(w.edges))
	for s := range w.edges {
		out[s] = w.next(s)
	}
	return out
}

// Entries catálogo ordenado de una categoría (para tests y documentación).
func Entries(cat Category) []Entry {
	w, ok := workflowsByCategory[cat]
	if !ok {
		return nil
	}
	out := make([]Entry, len(w.entries))
	copy(out, w.entries)
	return out
}
