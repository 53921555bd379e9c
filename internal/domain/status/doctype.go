package status

// DocType tipo de documento comercial (valor del enum en base de datos).
type DocType string

const (
	DocTypeQuote          DocType = "DEVIS"
	DocTypePurchaseOrder  DocType = "BON_COMMANDE"
	DocTypeDeliveryNote   DocType = "BON_LIVRAISON"
	DocTypeReception      DocType = "PV_RECEPTION"
	DocTypeInvoice        DocType = "FACTURE"
	DocTypeDepositInvoice DocType = "FACTURE_ACOMPTE"
	DocTypeCreditNote     DocType = "AVOIR"
)

// DocTypes todos los tipos en el orden del pipeline de facturación.
var DocTypes = []DocType{
	DocTypeQuote,
	DocTypePurchaseOrder,
	DocTypeDeliveryNote,
	DocTypeReception,
	DocTypeInvoice,
	DocTypeDepositInvoice,
	DocTypeCreditNote,
}

// ParseDocType valida un tipo recibido como texto.
func ParseDocType(s string) (DocType, bool) {
	dt := DocType(s)
	if _, ok := CategoryOf(dt); ok {
		return dt, true
	}
	return "", false
}

// CategoryOf devuelve la máquina de estados que gobierna el tipo de documento.
func CategoryOf(dt DocType) (Category, bool) {
	switch dt {
	case DocTypeQuote:
		return CategoryQuote, true
	case DocTypeInvoice, DocTypeDepositInvoice, DocTypeCreditNote:
		return CategoryInvoice, true
	case DocTypePurchaseOrder:
		return CategoryOrder, true
	case DocTypeDeliveryNote:
		return CategoryDelivery, true
	case DocTypeReception:
		return CategoryReception, true
	}
	return "", false
}

// IsPayable indica si el tipo de documento admite pagos (factura y factura de anticipo).
func IsPayable(dt DocType) bool {
	return dt == DocTypeInvoice || dt == DocTypeDepositInvoice
}

var docTypeLabels = map[DocType]Labels{
	DocTypeQuote:          {FR: "Devis", EN: "Quote", ES: "Presupuesto", AR: "عرض سعر"},
	DocTypePurchaseOrder:  {FR: "Bon de commande", EN: "Purchase Order", ES: "Orden de compra", AR: "أمر شراء"},
	DocTypeDeliveryNote:   {FR: "Bon de livraison", EN: "Delivery Note", ES: "Albarán", AR: "سند تسليم"},
	DocTypeReception:      {FR: "PV Réception", EN: "Reception Report", ES: "Acta de recepción", AR: "محضر استلام"},
	DocTypeInvoice:        {FR: "Facture", EN: "Invoice", ES: "Factura", AR: "فاتورة"},
	DocTypeDepositInvoice: {FR: "Facture d'acompte", EN: "Deposit Invoice", ES: "Factura de anticipo", AR: "فاتورة مقدمة"},
	DocTypeCreditNote:     {FR: "Avoir", EN: "Credit Note", ES: "Nota de crédito", AR: "إشعار دائن"},
}

// DocTypeLabel etiqueta del tipo de documento; el tipo crudo si no hay traducción.
func DocTypeLabel(dt DocType, loc Locale) string {
	if l, ok := docTypeLabels[dt].Get(loc); ok {
		return l
	}
	return string(dt)
}

var numberPrefixes = map[DocType]string{
	DocTypeInvoice:        "FAC",
	DocTypeDepositInvoice: "FAAC",
	DocTypeQuote:          "DEV",
	DocTypePurchaseOrder:  "BC",
	DocTypeDeliveryNote:   "BL",
	DocTypeReception:      "PV",
	DocTypeCreditNote:     "AV",
}

// NumberPrefix prefijo de la numeración oficial (FAC-2026-000001); "DOC" si el tipo es desconocido.
func NumberPrefix(dt DocType) string {
	if p, ok := numberPrefixes[dt]; ok {
		return p
	}
	return "DOC"
}

// Pipeline de conversión: devis → BC → BL → PV → factura → avoir. BC y BL pueden facturarse directamente.
var conversionTargets = map[DocType][]DocType{
	DocTypeQuote:         {DocTypePurchaseOrder},
	DocTypePurchaseOrder: {DocTypeDeliveryNote, DocTypeInvoice},
	DocTypeDeliveryNote:  {DocTypeReception, DocTypeInvoice},
	DocTypeReception:     {DocTypeInvoice},
	DocTypeInvoice:       {DocTypeCreditNote},
}

// ConversionTargets tipos en los que puede convertirse un documento. Lista vacía (nunca nil) si ninguno.
func ConversionTargets(dt DocType) []DocType {
	out := make([]DocType, len(conversionTargets[dt]))
	copy(out, conversionTargets[dt])
	return out
}

// CanConvert indica si un documento de tipo from puede originar uno de tipo to.
func CanConvert(from, to DocType) bool {
	for _, t := range conversionTargets[from] {
		if t == to {
			return true
		}
	}
	return false
}
