// Package receivable calcula la antigüedad de saldos (aging) de las facturas impagas.
//
// El cálculo es puro: recibe las facturas ya consultadas y la fecha de referencia,
// y devuelve buckets, totales por cliente y resumen. No accede a la base de datos.
package receivable

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Bucket rango de días de vencimiento.
type Bucket string

const (
	BucketCurrent Bucket = "current" // no vencida
	Bucket1To30   Bucket = "days30"
	Bucket31To60  Bucket = "days60"
	Bucket61To90  Bucket = "days90"
	BucketOver90  Bucket = "over90"
)

// Buckets en orden de antigüedad.
var Buckets = []Bucket{BucketCurrent, Bucket1To30, Bucket31To60, Bucket61To90, BucketOver90}

var hundred = decimal.NewFromInt(100)

// Invoice factura impaga tal como la entrega el repositorio.
type Invoice struct {
	ID           string
	Number       string
	Status       string
	ClientID     string // vacío si el cliente fue eliminado
	ClientName   string
	ClientNumber string
	Date         time.Time
	DueDate      *time.Time // nil → se usa Date
	TotalTTC     decimal.Decimal
	PaidAmount   decimal.Decimal
	Balance      decimal.Decimal
}

// EffectiveDueDate fecha de vencimiento o, en su defecto, fecha del documento.
func (inv Invoice) EffectiveDueDate() time.Time {
	if inv.DueDate != nil {
		return *inv.DueDate
	}
	return inv.Date
}

// BucketTotal conteo y saldo acumulado de un bucket.
type BucketTotal struct {
	Count int
	Total decimal.Decimal
}

// ClientTotal saldo de un cliente repartido por bucket.
type ClientTotal struct {
	ClientID      string
	ClientName    string
	ClientNumber  string
	ByBucket      map[Bucket]decimal.Decimal
	Total         decimal.Decimal
	InvoicesCount int
}

// Line factura con sus días de vencimiento (nunca negativos) y bucket asignado.
type Line struct {
	Invoice     Invoice
	DaysOverdue int
	Bucket      Bucket
}

// Summary totales del reporte.
type Summary struct {
	TotalOutstanding   decimal.Decimal
	TotalInvoices      int
	TotalClients       int
	Current            decimal.Decimal
	Overdue            decimal.Decimal
	OverduePercent     decimal.Decimal
	AvgDaysOutstanding float64
}

// Report resultado completo del aging.
type Report struct {
	Summary  Summary
	Aging    map[Bucket]BucketTotal
	ByClient []ClientTotal // ordenado por saldo descendente
	Lines    []Line
}

// DaysOverdue días completos transcurridos desde el vencimiento; negativo si aún no vence.
func DaysOverdue(due, now time.Time) int {
	return int(math.Floor(now.Sub(due).Hours() / 24))
}

// BucketFor asigna el bucket según los días de vencimiento.
func BucketFor(daysOverdue int) Bucket {
	switch {
	case daysOverdue <= 0:
		return BucketCurrent
	case daysOverdue <= 30:
		return Bucket1To30
	case daysOverdue <= 60:
		return Bucket31To60
	case daysOverdue <= 90:
		return Bucket61To90
	default:
		return BucketOver90
	}
}

// Build agrupa las facturas en buckets y por cliente.
func Build(invoices []Invoice, now time.Time) Report {
	aging := make(map[Bucket]BucketTotal, len(Buckets))
	for _, b := range Buckets {
		aging[b] = BucketTotal{Total: decimal.Zero}
	}

	byClient := map[string]*ClientTotal{}
	var order []string
	lines := make([]Line, 0, len(invoices))
	totalDays := 0

	for _, inv := range invoices {
		days := DaysOverdue(inv.EffectiveDueDate(), now)
		bucket := BucketFor(days)
		if days < 0 {
			days = 0
		}
		totalDays += days

		bt := aging[bucket]
		bt.Count++
		bt.Total = bt.Total.Add(inv.Balance)
		aging[bucket] = bt

		key := inv.ClientID
		if key == "" {
			key = inv.ClientName
		}
		ct, ok := byClient[key]
		if !ok {
			ct = &ClientTotal{
				ClientID:     inv.ClientID,
				ClientName:   inv.ClientName,
				ClientNumber: inv.ClientNumber,
				ByBucket:     make(map[Bucket]decimal.Decimal, len(Buckets)),
				Total:        decimal.Zero,
			}
			for _, b := range Buckets {
				ct.ByBucket[b] = decimal.Zero
			}
			byClient[key] = ct
			order = append(order, key)
		}
		ct.ByBucket[bucket] = ct.ByBucket[bucket].Add(inv.Balance)
		ct.Total = ct.Total.Add(inv.Balance)
		ct.InvoicesCount++

		lines = append(lines, Line{Invoice: inv, DaysOverdue: days, Bucket: bucket})
	}

	clients := make([]ClientTotal, 0, len(order))
	for _, k := range order {
		clients = append(clients, *byClient[k])
	}
	sort.SliceStable(clients, func(i, j int) bool {
		return clients[i].Total.GreaterThan(clients[j].Total)
	})

	total := decimal.Zero
	for _, b := range Buckets {
		total = total.Add(aging[b].Total)
	}
	current := aging[BucketCurrent].Total
	overdue := total.Sub(current)

	summary := Summary{
		TotalOutstanding: total,
		TotalInvoices:    len(invoices),
		TotalClients:     len(clients),
		Current:          current,
		Overdue:          overdue,
		OverduePercent:   decimal.Zero,
	}
	if total.IsPositive() {
		summary.OverduePercent = overdue.Div(total).Mul(hundred)
	}
	if len(invoices) > 0 {
		summary.AvgDaysOutstanding = float64(totalDays) / float64(len(invoices))
	}

	return Report{Summary: summary, Aging: aging, ByClient: clients, Lines: lines}
}
