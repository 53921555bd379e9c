package receivable_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menuiserie-crm/internal/domain/receivable"
)

var now = time.Date(2026, time.March, 15, 10, 30, 0, 0, time.UTC)

func dueDaysAgo(days int) *time.Time {
	d := now.AddDate(0, 0, -days)
	return &d
}

func inv(clientID string, balance int64, due *time.Time) receivable.Invoice {
	return receivable.Invoice{
		ClientID:   clientID,
		ClientName: "Client " + clientID,
		Date:       now.AddDate(0, -6, 0),
		DueDate:    due,
		Balance:    decimal.NewFromInt(balance),
	}
}

func TestBucketFor_Limites(t *testing.T) {
	cases := []struct {
		days int
		want receivable.Bucket
	}{
		{-10, receivable.BucketCurrent},
		{0, receivable.BucketCurrent},
		{1, receivable.Bucket1To30},
		{30, receivable.Bucket1To30},
		{31, receivable.Bucket31To60},
		{60, receivable.Bucket31To60},
		{61, receivable.Bucket61To90},
		{90, receivable.Bucket61To90},
		{91, receivable.BucketOver90},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, receivable.BucketFor(tc.days), "días=%d", tc.days)
	}
}

func TestBuild_AsignacionDeBuckets(t *testing.T) {
	cases := []struct {
		daysAgo int
		want    receivable.Bucket
	}{
		{0, receivable.BucketCurrent},
		{15, receivable.Bucket1To30},
		{45, receivable.Bucket31To60},
		{75, receivable.Bucket61To90},
		{120, receivable.BucketOver90},
	}
	for _, tc := range cases {
		r := receivable.Build([]receivable.Invoice{inv("c1", 100, dueDaysAgo(tc.daysAgo))}, now)
		require.Len(t, r.Lines, 1)
		assert.Equal(t, tc.want, r.Lines[0].Bucket, "hace %d días", tc.daysAgo)
		assert.Equal(t, tc.daysAgo, r.Lines[0].DaysOverdue)
		assert.Equal(t, 1, r.Aging[tc.want].Count)
	}
}

func TestBuild_VencimientoFuturoNoCuentaDiasNegativos(t *testing.T) {
	future := now.AddDate(0, 0, 20)
	r := receivable.Build([]receivable.Invoice{inv("c1", 100, &future)}, now)
	assert.Equal(t, 0, r.Lines[0].DaysOverdue)
	assert.Equal(t, receivable.BucketCurrent, r.Lines[0].Bucket)
	assert.Equal(t, float64(0), r.Summary.AvgDaysOutstanding)
}

func TestBuild_SinFechaDeVencimientoUsaFechaDelDocumento(t *testing.T) {
	i := inv("c1", 100, nil)
	i.Date = now.AddDate(0, 0, -40)
	r := receivable.Build([]receivable.Invoice{i}, now)
	assert.Equal(t, receivable.Bucket31To60, r.Lines[0].Bucket)
}

func TestBuild_SumaPorBucket(t *testing.T) {
	r := receivable.Build([]receivable.Invoice{
		inv("c1", 100, dueDaysAgo(10)),
		inv("c2", 200, dueDaysAgo(12)),
		inv("c1", 50, dueDaysAgo(20)),
	}, now)

	b := r.Aging[receivable.Bucket1To30]
	assert.Equal(t, 3, b.Count)
	assert.True(t, decimal.NewFromInt(350).Equal(b.Total), "total=%s", b.Total)
	assert.True(t, decimal.NewFromInt(350).Equal(r.Summary.TotalOutstanding))
	assert.True(t, decimal.NewFromInt(100).Equal(r.Summary.OverduePercent))
	assert.Equal(t, 2, r.Summary.TotalClients)
}

func TestBuild_TodoAlDiaNoTieneVencido(t *testing.T) {
	r := receivable.Build([]receivable.Invoice{
		inv("c1", 100, dueDaysAgo(0)),
		inv("c2", 40, dueDaysAgo(-5)),
	}, now)
	assert.True(t, r.Summary.OverduePercent.IsZero())
	assert.True(t, r.Summary.Overdue.IsZero())
	assert.True(t, decimal.NewFromInt(140).Equal(r.Summary.Current))
}

func TestBuild_ListaVacia(t *testing.T) {
	r := receivable.Build(nil, now)
	assert.True(t, r.Summary.TotalOutstanding.IsZero())
	assert.True(t, r.Summary.OverduePercent.IsZero())
	assert.Equal(t, float64(0), r.Summary.AvgDaysOutstanding)
	assert.Empty(t, r.ByClient)
	assert.Len(t, r.Aging, len(receivable.Buckets))
}

func TestBuild_ResumenYClientes(t *testing.T) {
	orphan := inv("", 30, dueDaysAgo(100))
	orphan.ClientName = "Ancien client"

	r := receivable.Build([]receivable.Invoice{
		inv("c1", 100, dueDaysAgo(0)),  // current
		inv("c2", 300, dueDaysAgo(35)), // 31-60
		inv("c1", 200, dueDaysAgo(65)), // 61-90
		orphan,                         // 90+
	}, now)

	s := r.Summary
	assert.True(t, decimal.NewFromInt(630).Equal(s.TotalOutstanding))
	assert.True(t, decimal.NewFromInt(100).Equal(s.Current))
	assert.True(t, decimal.NewFromInt(530).Equal(s.Overdue))
	assert.Equal(t, "84.13", s.OverduePercent.StringFixed(2))
	assert.InDelta(t, 50.0, s.AvgDaysOutstanding, 0.001) // (0+35+65+100)/4
	assert.Equal(t, 4, s.TotalInvoices)
	assert.Equal(t, 3, s.TotalClients)

	require.Len(t, r.ByClient, 3)
	assert.Equal(t, "c1", r.ByClient[0].ClientID, "ordenado por saldo descendente")
	assert.True(t, decimal.NewFromInt(300).Equal(r.ByClient[0].Total))
	assert.Equal(t, 2, r.ByClient[0].InvoicesCount)
	assert.True(t, decimal.NewFromInt(200).Equal(r.ByClient[0].ByBucket[receivable.Bucket61To90]))
	assert.Equal(t, "Ancien client", r.ByClient[2].ClientName, "sin client_id se agrupa por nombre")
	assert.Empty(t, r.ByClient[2].ClientID)
}
