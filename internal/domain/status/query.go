package status

// Label etiqueta del estado en el idioma pedido. Si el estado no existe en el catálogo
// (o no tiene traducción) devuelve el estado crudo.
func Label(s Status, entity Entity, loc Locale, dt DocType) string {
	cfg, ok := resolve(entity, dt).config(s)
	if !ok {
		return string(s)
	}
	if l, ok := cfg.Labels.Get(loc); ok {
		return l
	}
	return string(s)
}

// ConfigFor configuración del estado; false si no pertenece al catálogo resuelto.
func ConfigFor(s Status, entity Entity, dt DocType) (Config, bool) {
	return resolve(entity, dt).config(s)
}

// Options lista de estados para un selector, en orden de declaración.
func Options(entity Entity, loc Locale, dt DocType) []Option {
	w := resolve(entity, dt)
	out := make([]Option, 0, len(w.entries))
	for _, e := range w.entries {
		label, ok := e.Config.Labels.Get(loc)
		if !ok {
			label = string(e.Status)
		}
		out = append(out, Option{Value: e.Status, Label: label, Config: e.Config})
	}
	return out
}

// IsTerminal indica si el estado ya no admite avanzar en su workflow.
func IsTerminal(s Status, entity Entity, dt DocType) bool {
	return resolve(entity, dt).isTerminal(s)
}

// IsSuccess indica si el estado representa un desenlace favorable.
func IsSuccess(s Status, entity Entity, dt DocType) bool {
	return contains(resolve(entity, dt).success, s)
}

// IsFailure indica si el estado representa un problema o desenlace desfavorable.
func IsFailure(s Status, entity Entity, dt DocType) bool {
	return contains(resolve(entity, dt).failure, s)
}

// NextStatuses estados alcanzables en un paso. Lista vacía (nunca nil) si no hay ninguno.
func NextStatuses(current Status, entity Entity, dt DocType) []Status {
	return resolve(entity, dt).next(current)
}

// IsValidTransition valida un cambio de estado de documento.
func IsValidTransition(from, to Status, dt DocType) bool {
	return contains(NextStatuses(from, EntityDocument, dt), to)
}
