package status

import "fmt"

// tone arma los tokens de estilo (Tailwind) a partir del color base.
func tone(color string, labels Labels) Config {
	return Config{
		Color:       color,
		BgColor:     fmt.Sprintf("bg-%s-100 dark:bg-%s-900/30", color, color),
		TextColor:   fmt.Sprintf("text-%s-800 dark:text-%s-300", color, color),
		BorderColor: fmt.Sprintf("border-%s-200 dark:border-%s-800", color, color),
		Labels:      labels,
	}
}

// ── Leads ─────────────────────────────────────────────────────────────────────

var leadEntries = []Entry{
	{StatusNew, tone("blue", Labels{FR: "Nouveau", EN: "New", ES: "Nuevo", AR: "جديد"})},
	{StatusContacted, tone("cyan", Labels{FR: "Contacté", EN: "Contacted", ES: "Contactado", AR: "تم التواصل"})},
	{StatusVisitScheduled, tone("purple", Labels{FR: "Visite prévue", EN: "Visit Scheduled", ES: "Visita programada", AR: "زيارة مجدولة"})},
	{StatusMeasuresTaken, tone("indigo", Labels{FR: "Mesures prises", EN: "Measures Taken", ES: "Medidas tomadas", AR: "تم أخذ القياسات"})},
	{StatusQuoteSent, tone("amber", Labels{FR: "Devis envoyé", EN: "Quote Sent", ES: "Presupuesto enviado", AR: "تم إرسال عرض السعر"})},
	{StatusNegotiation, tone("orange", Labels{FR: "Négociation", EN: "Negotiation", ES: "Negociación", AR: "مفاوضات"})},
	{StatusWon, tone("green", Labels{FR: "Gagné", EN: "Won", ES: "Ganado", AR: "مكسب"})},
	{StatusLost, tone("red", Labels{FR: "Perdu", EN: "Lost", ES: "Perdido", AR: "خاسر"})},
}

// ── Proyectos ─────────────────────────────────────────────────────────────────

var projectEntries = []Entry{
	{StatusStudy, tone("slate", Labels{FR: "Étude", EN: "Study", ES: "Estudio", AR: "دراسة"})},
	{StatusMeasures, tone("violet", Labels{FR: "Mesures", EN: "Measures", ES: "Medidas", AR: "القياسات"})},
	{StatusQuote, tone("blue", Labels{FR: "Devis", EN: "Quote", ES: "Presupuesto", AR: "عرض سعر"})},
	{StatusPending, tone("yellow", Labels{FR: "En attente", EN: "Pending", ES: "Pendiente", AR: "في الانتظار"})},
	{StatusProduction, tone("amber", Labels{FR: "Production", EN: "Production", ES: "Producción", AR: "إنتاج"})},
	{StatusReady, tone("cyan", Labels{FR: "Prêt", EN: "Ready", ES: "Listo", AR: "جاهز"})},
	{StatusDelivery, tone("purple", Labels{FR: "Livraison", EN: "Delivery", ES: "Entrega", AR: "توصيل"})},
	{StatusInstallation, tone("indigo", Labels{FR: "Pose", EN: "Installation", ES: "Instalación", AR: "تركيب"})},
	{StatusCompleted, tone("teal", Labels{FR: "Terminé", EN: "Completed", ES: "Completado", AR: "مكتمل"})},
	{StatusReceived, tone("green", Labels{FR: "Réceptionné", EN: "Received", ES: "Recibido", AR: "مستلم"})},
	{StatusClosed, tone("gray", Labels{FR: "Clôturé", EN: "Closed", ES: "Cerrado", AR: "مغلق"})},
	{StatusCancelled, tone("red", Labels{FR: "Annulé", EN: "Cancelled", ES: "Cancelado", AR: "ملغى"})},
}

// ── Documentos ────────────────────────────────────────────────────────────────

// documentEntries catálogo común de estados de documento. Las categorías toman
// subconjuntos de aquí, así un mismo estado comparte color y traducciones.
var documentEntries = []Entry{
	{StatusDraft, tone("gray", Labels{FR: "Brouillon", EN: "Draft", ES: "Borrador", AR: "مسودة"})},
	{StatusSent, tone("blue", Labels{FR: "Envoyé", EN: "Sent", ES: "Enviado", AR: "مرسل"})},
	{StatusViewed, tone("cyan", Labels{FR: "Vu", EN: "Viewed", ES: "Visto", AR: "تمت المشاهدة"})},
	{StatusAccepted, tone("green", Labels{FR: "Accepté", EN: "Accepted", ES: "Aceptado", AR: "مقبول"})},
	{StatusRejected, tone("red", Labels{FR: "Refusé", EN: "Rejected", ES: "Rechazado", AR: "مرفوض"})},
	{StatusConfirmed, tone("indigo", Labels{FR: "Confirmé", EN: "Confirmed", ES: "Confirmado", AR: "مؤكد"})},
	{StatusPartial, tone("amber", Labels{FR: "Partiel", EN: "Partial", ES: "Parcial", AR: "جزئي"})},
	{StatusDelivered, tone("purple", Labels{FR: "Livré", EN: "Delivered", ES: "Entregado", AR: "تم التسليم"})},
	{StatusSigned, tone("teal", Labels{FR: "Signé", EN: "Signed", ES: "Firmado", AR: "موقع"})},
	{StatusPaid, tone("emerald", Labels{FR: "Payé", EN: "Paid", ES: "Pagado", AR: "مدفوع"})},
	{StatusOverdue, tone("rose", Labels{FR: "En retard", EN: "Overdue", ES: "Vencido", AR: "متأخر"})},
	{StatusCancelled, tone("slate", Labels{FR: "Annulé", EN: "Cancelled", ES: "Cancelado", AR: "ملغى"})},
}

// pick selecciona estados del catálogo de documentos respetando el orden pedido.
// Panics en init si se pide un estado inexistente: es un error de declaración.
func pick(statuses ...Status) []Entry {
	out := make([]Entry, 0, len(statuses))
	for _, s := range statuses {
		found := false
		for _, e := range documentEntries {
			if e.Status == s {
				out = append(out, e)
				found = true
				break
			}
		}
		if !found {
			panic("status: estado de documento no declarado: " + string(s))
		}
	}
	return out
}
