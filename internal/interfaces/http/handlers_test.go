package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menuiserie-crm/internal/application/billing"
	"github.com/jhoicas/menuiserie-crm/internal/application/dto"
	"github.com/jhoicas/menuiserie-crm/internal/application/reports"
	"github.com/jhoicas/menuiserie-crm/internal/application/workflow"
	"github.com/jhoicas/menuiserie-crm/internal/domain"
	"github.com/jhoicas/menuiserie-crm/internal/domain/entity"
	"github.com/jhoicas/menuiserie-crm/internal/domain/receivable"
	"github.com/jhoicas/menuiserie-crm/internal/domain/repository"
	"github.com/jhoicas/menuiserie-crm/internal/domain/status"
	apphttp "github.com/jhoicas/menuiserie-crm/internal/interfaces/http"
	"github.com/jhoicas/menuiserie-crm/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	docs     map[string]*entity.Document
	items    map[string][]*entity.DocumentItem
	payments []*entity.Payment
	seq      int64
	leads    map[string]*entity.Lead
}

func (m *memStore) Create(_ context.Context, d *entity.Document) error {
	cp := *d
	m.docs[d.ID] = &cp
	return nil
}
func (m *memStore) CreateItem(_ context.Context, it *entity.DocumentItem) error {
	m.items[it.DocumentID] = append(m.items[it.DocumentID], it)
	return nil
}
func (m *memStore) GetByID(_ context.Context, id string) (*entity.Document, error) {
	d, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}
func (m *memStore) GetByIDForUpdate(ctx context.Context, id string) (*entity.Document, error) {
	return m.GetByID(ctx, id)
}
func (m *memStore) GetItems(_ context.Context, id string) ([]*entity.DocumentItem, error) {
	return m.items[id], nil
}
func (m *memStore) CountItems(_ context.Context, id string) (int, error) {
	return len(m.items[id]), nil
}
func (m *memStore) List(_ context.Context, companyID string, _ repository.DocumentFilter) ([]*entity.Document, int, error) {
	var out []*entity.Document
	for _, d := range m.docs {
		if d.CompanyID == companyID {
			out = append(out, d)
		}
	}
	return out, len(out), nil
}
func (m *memStore) Update(_ context.Context, d *entity.Document) error {
	cp := *d
	m.docs[d.ID] = &cp
	return nil
}

type memPayments struct{ m *memStore }

func (p memPayments) Create(_ context.Context, pay *entity.Payment) error {
	p.m.payments = append(p.m.payments, pay)
	return nil
}
func (p memPayments) ListByDocument(_ context.Context, id string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, pay := range p.m.payments {
		if pay.DocumentID == id {
			out = append(out, pay)
		}
	}
	return out, nil
}

type memSeq struct{ m *memStore }

func (s memSeq) Next(context.Context, string, string, int) (int64, error) {
	s.m.seq++
	return s.m.seq, nil
}

type memTx struct{ m *memStore }

func (t memTx) RunDocuments(_ context.Context, fn func(repository.DocumentRepository, repository.PaymentRepository, repository.SequenceRepository) error) error {
	return fn(t.m, memPayments{t.m}, memSeq{t.m})
}

type memLeads struct{ m *memStore }

func (l memLeads) GetByID(_ context.Context, id string) (*entity.Lead, error) {
	lead, ok := l.m.leads[id]
	if !ok {
		return nil, nil
	}
	cp := *lead
	return &cp, nil
}
func (l memLeads) UpdateStatus(_ context.Context, id string, from, to status.Status) error {
	lead, ok := l.m.leads[id]
	if !ok || lead.Status != from {
		return domain.ErrConflict
	}
	lead.Status = to
	return nil
}

type noProjects struct{}

func (noProjects) GetByID(context.Context, string) (*entity.Project, error) { return nil, nil }
func (noProjects) UpdateStatus(context.Context, string, status.Status, status.Status) error {
	return nil
}

type noClients struct{}

func (noClients) GetByID(context.Context, string) (*entity.Client, error) { return nil, nil }

type memReceivables struct{ m *memStore }

func (r memReceivables) OpenInvoices(_ context.Context, companyID, _ string) ([]receivable.Invoice, error) {
	var out []receivable.Invoice
	for _, d := range r.m.docs {
		if d.CompanyID == companyID && d.Type == status.DocTypeInvoice && d.Balance.IsPositive() {
			out = append(out, receivable.Invoice{ID: d.ID, Number: d.Number, Status: string(d.Status), ClientName: d.ClientName, Date: d.Date, DueDate: d.DueDate, TotalTTC: d.TotalTTC, PaidAmount: d.PaidAmount, Balance: d.Balance})
		}
	}
	return out, nil
}

const (
	invID     = "9b2f6c1e-3d4a-4f5b-8c7d-000000000001"
	draftID   = "9b2f6c1e-3d4a-4f5b-8c7d-000000000002"
	leadID    = "9b2f6c1e-3d4a-4f5b-8c7d-000000000003"
	clientID  = "9b2f6c1e-3d4a-4f5b-8c7d-000000000004"
	missingID = "9b2f6c1e-3d4a-4f5b-8c7d-0000000000ff"
)

func newCRMApp(t *testing.T) (*fiber.App, *memStore) {
	t.Helper()
	m := &memStore{
		docs:  map[string]*entity.Document{},
		items: map[string][]*entity.DocumentItem{},
		leads: map[string]*entity.Lead{
			leadID: {ID: leadID, CompanyID: testCompanyID, Status: status.StatusNew},
		},
	}
	due := time.Now().AddDate(0, 0, -40)
	m.docs[invID] = &entity.Document{
		ID: invID, CompanyID: testCompanyID, Type: status.DocTypeInvoice, Number: "FAC-2026-000001",
		Status: status.StatusSent, ClientID: clientID, ClientName: "Dupont", Date: due, DueDate: &due,
		TotalTTC: decimal.NewFromInt(1000), Balance: decimal.NewFromInt(1000),
	}
	m.docs[draftID] = &entity.Document{
		ID: draftID, CompanyID: testCompanyID, Type: status.DocTypeInvoice, Number: "DRAFT-0000AAAA",
		Status: status.StatusDraft, Date: time.Now(),
	}

	log := logger.Nop()
	tx := memTx{m}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Catalog:        workflow.NewCatalogUseCase(),
		DocumentStatus: workflow.NewDocumentStatusUseCase(tx, log),
		Pipeline:       workflow.NewPipelineStatusUseCase(memLeads{m}, noProjects{}, log),
		Documents:      billing.NewDocumentUseCase(tx, m, noClients{}, 30, log),
		Payments:       billing.NewPaymentUseCase(tx, m, memPayments{m}, log),
		Receivables:    reports.NewReceivablesUseCase(memReceivables{m}),
		JWTSecret:      testJWTSecret,
		JWTIssuer:      testIssuer,
		DefaultLocale:  "fr",
	})
	return app, m
}

func call(t *testing.T, app *fiber.App, method, path, role string, body any, headers ...string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", tokenForRole(t, role))
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo e idioma
// ──────────────────────────────────────────────────────────────────────────────

func TestStatuses_LocalePorQueryYAcceptLanguage(t *testing.T) {
	app, _ := newCRMApp(t)

	byQuery := decode[dto.StatusOptionsResponse](t, call(t, app, http.MethodGet, "/api/crm/statuses/documents?doc_type=FACTURE&locale=en", "commercial", nil))
	assert.Equal(t, "en", byQuery.Locale)
	assert.Equal(t, "Draft", byQuery.Options[0].Label)

	byHeader := decode[dto.StatusOptionsResponse](t, call(t, app, http.MethodGet, "/api/crm/statuses/leads", "commercial", nil,
		"Accept-Language", "es-MX,es;q=0.9,en;q=0.5"))
	assert.Equal(t, "es", byHeader.Locale)
	assert.Equal(t, "Nuevo", byHeader.Options[0].Label)

	fallback := decode[dto.StatusOptionsResponse](t, call(t, app, http.MethodGet, "/api/crm/statuses/leads", "commercial", nil,
		"Accept-Language", "de-DE"))
	assert.Equal(t, "fr", fallback.Locale)
}

func TestStatuses_EntidadInvalida400(t *testing.T) {
	app, _ := newCRMApp(t)
	resp := call(t, app, http.MethodGet, "/api/crm/statuses/tickets", "admin", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTransitions_Y_DocumentTypes(t *testing.T) {
	app, _ := newCRMApp(t)

	tr := decode[dto.TransitionsResponse](t, call(t, app, http.MethodGet, "/api/crm/statuses/documents/DEVIS/transitions", "comptable", nil))
	assert.Equal(t, "Devis", tr.TypeLabel)
	assert.Len(t, tr.Nodes, 6)

	resp := call(t, app, http.MethodGet, "/api/crm/statuses/documents/NOPE/transitions", "comptable", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	types := decode[[]dto.DocumentTypeResponse](t, call(t, app, http.MethodGet, "/api/crm/document-types?locale=ar", "admin", nil))
	require.Len(t, types, 7)
	assert.Equal(t, "عرض سعر", types[0].Label)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cambios de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestChangeDocumentStatus_TransicionInvalida400(t *testing.T) {
	app, _ := newCRMApp(t)
	resp := call(t, app, http.MethodPut, "/api/crm/documents/"+invID+"/status", "admin", dto.ChangeStatusRequest{Status: "DRAFT"})
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_TRANSITION", body.Code)
	assert.Equal(t, []string{"PARTIAL", "PAID", "OVERDUE", "CANCELLED"}, body.Details)
}

func TestChangeDocumentStatus_EmisionIncompleta422(t *testing.T) {
	app, _ := newCRMApp(t)
	resp := call(t, app, http.MethodPut, "/api/crm/documents/"+draftID+"/status", "admin", dto.ChangeStatusRequest{Status: "SENT"})
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Len(t, body.Details, 2)
}

func TestChangeDocumentStatus_StatusRequerido400(t *testing.T) {
	app, _ := newCRMApp(t)
	resp := call(t, app, http.MethodPut, "/api/crm/documents/"+invID+"/status", "admin", map[string]string{})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestChangeDocumentStatus_NoEncontrado404(t *testing.T) {
	app, _ := newCRMApp(t)
	resp := call(t, app, http.MethodPut, "/api/crm/documents/"+missingID+"/status", "admin", dto.ChangeStatusRequest{Status: "SENT"})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRutasConID_IDNoUUID404(t *testing.T) {
	app, _ := newCRMApp(t)
	cases := []struct {
		method, path, role string
		body               any
	}{
		{http.MethodGet, "/api/crm/documents/abc", "admin", nil},
		{http.MethodPut, "/api/crm/documents/abc/status", "admin", dto.ChangeStatusRequest{Status: "SENT"}},
		{http.MethodGet, "/api/crm/documents/1;DROP/payments", "admin", nil},
		{http.MethodPost, "/api/crm/documents/abc/payments", "comptable", dto.RecordPaymentRequest{Amount: decimal.NewFromInt(1), Method: "CASH"}},
		{http.MethodPut, "/api/crm/leads/abc/status", "commercial", dto.ChangeStatusRequest{Status: "CONTACTED"}},
		{http.MethodPut, "/api/crm/projects/abc/status", "commercial", dto.ChangeStatusRequest{Status: "CLOSED"}},
		{http.MethodPost, "/api/crm/documents/abc/convert", "commercial", dto.ConvertDocumentRequest{TargetType: "BON_COMMANDE"}},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			resp := call(t, app, tc.method, tc.path, tc.role, tc.body)
			body := decode[dto.ErrorResponse](t, resp)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
			assert.Equal(t, "NOT_FOUND", body.Code)
		})
	}
}

func TestConvert_DevisAceptadoABC_201(t *testing.T) {
	app, m := newCRMApp(t)
	quoteID := "9b2f6c1e-3d4a-4f5b-8c7d-000000000005"
	m.docs[quoteID] = &entity.Document{
		ID: quoteID, CompanyID: testCompanyID, Type: status.DocTypeQuote, Number: "DEV-2026-000003",
		Status: status.StatusAccepted, ClientID: clientID, ClientName: "Dupont", Date: time.Now(),
	}
	m.items[quoteID] = []*entity.DocumentItem{{
		ID: "9b2f6c1e-3d4a-4f5b-8c7d-000000000006", DocumentID: quoteID, Designation: "Porte d'entrée",
		Quantity: decimal.NewFromInt(1), Unit: "u", UnitPriceHT: decimal.NewFromInt(1500), TVARate: decimal.NewFromInt(20), Position: 1,
	}}

	resp := call(t, app, http.MethodPost, "/api/crm/documents/"+quoteID+"/convert", "commercial",
		dto.ConvertDocumentRequest{TargetType: "BON_COMMANDE"}, "Accept-Language", "en")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	doc := decode[dto.DocumentResponse](t, resp)

	assert.Equal(t, "BON_COMMANDE", doc.Type)
	assert.Equal(t, "Purchase Order", doc.TypeLabel)
	assert.Equal(t, "DRAFT", doc.Status)
	assert.Equal(t, quoteID, doc.ParentID)
	assert.Equal(t, "Dupont", doc.ClientName)
	assert.True(t, doc.TotalTTC.Equal(decimal.NewFromInt(1800)), doc.TotalTTC.String())
	require.Len(t, doc.Items, 1)
	assert.Contains(t, m.docs, doc.ID)
}

func TestConvert_FacturaNoPagada409(t *testing.T) {
	app, _ := newCRMApp(t)
	resp := call(t, app, http.MethodPost, "/api/crm/documents/"+invID+"/convert", "admin",
		dto.ConvertDocumentRequest{TargetType: "AVOIR"})
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", body.Code)
}

func TestConvert_RutaNoPermitida400(t *testing.T) {
	app, _ := newCRMApp(t)
	resp := call(t, app, http.MethodPost, "/api/crm/documents/"+invID+"/convert", "admin",
		dto.ConvertDocumentRequest{TargetType: "BON_LIVRAISON"})
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body.Code)
}

func TestConvert_ComptableSinPermiso403(t *testing.T) {
	app, _ := newCRMApp(t)
	resp := call(t, app, http.MethodPost, "/api/crm/documents/"+invID+"/convert", "comptable",
		dto.ConvertDocumentRequest{TargetType: "AVOIR"})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestFiltroClientID_NoUUID400(t *testing.T) {
	app, _ := newCRMApp(t)
	for _, path := range []string{"/api/crm/reports/receivables?client_id=x", "/api/crm/documents?client_id=x"} {
		resp := call(t, app, http.MethodGet, path, "admin", nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestChangeLeadStatus_OK(t *testing.T) {
	app, m := newCRMApp(t)
	resp := call(t, app, http.MethodPut, "/api/crm/leads/"+leadID+"/status?locale=en", "commercial", dto.ChangeStatusRequest{Status: "CONTACTED"})
	out := decode[dto.StatusChangeResponse](t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Contacted", out.Status.Label)
	assert.Equal(t, status.StatusContacted, m.leads[leadID].Status)
}

func TestChangeLeadStatus_ComptableSinPermiso(t *testing.T) {
	app, _ := newCRMApp(t)
	resp := call(t, app, http.MethodPut, "/api/crm/leads/"+leadID+"/status", "comptable", dto.ChangeStatusRequest{Status: "CONTACTED"})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Documentos y pagos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateDocument_201(t *testing.T) {
	app, m := newCRMApp(t)
	resp := call(t, app, http.MethodPost, "/api/crm/documents", "commercial", dto.CreateDocumentRequest{
		Type:  "DEVIS",
		Items: []dto.CreateDocumentItemRequest{{Designation: "Baie vitrée", Quantity: decimal.NewFromInt(1), UnitPriceHT: decimal.NewFromInt(2000)}},
	})
	out := decode[dto.DocumentResponse](t, resp)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Brouillon", out.StatusLabel)
	assert.True(t, out.TotalTTC.Equal(decimal.NewFromInt(2400)))
	assert.Contains(t, m.docs, out.ID)
}

func TestRecordPayment_FlujoCompleto(t *testing.T) {
	app, _ := newCRMApp(t)

	resp := call(t, app, http.MethodPost, "/api/crm/documents/"+invID+"/payments", "comptable",
		dto.RecordPaymentRequest{Amount: decimal.NewFromInt(300), Method: "CHECK"})
	out := decode[dto.RecordPaymentResponse](t, resp)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "PARTIAL", out.Status.Value)
	assert.True(t, out.Balance.Equal(decimal.NewFromInt(700)))

	list := decode[[]dto.PaymentResponse](t, call(t, app, http.MethodGet, "/api/crm/documents/"+invID+"/payments", "commercial", nil))
	assert.Len(t, list, 1)

	over := call(t, app, http.MethodPost, "/api/crm/documents/"+invID+"/payments", "comptable",
		dto.RecordPaymentRequest{Amount: decimal.NewFromInt(701), Method: "CHECK"})
	body := decode[dto.ErrorResponse](t, over)
	assert.Equal(t, http.StatusBadRequest, over.StatusCode)
	assert.Equal(t, "AMOUNT_EXCEEDS_BALANCE", body.Code)
}

func TestRecordPayment_BorradorDevuelve409(t *testing.T) {
	app, m := newCRMApp(t)
	m.docs[draftID].TotalTTC = decimal.NewFromInt(100)
	m.docs[draftID].Balance = decimal.NewFromInt(100)

	resp := call(t, app, http.MethodPost, "/api/crm/documents/"+draftID+"/payments", "comptable",
		dto.RecordPaymentRequest{Amount: decimal.NewFromInt(10), Method: "CASH"})
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INVALID_TRANSITION", body.Code)
}

func TestRecordPayment_CommercialSinPermiso(t *testing.T) {
	app, _ := newCRMApp(t)
	resp := call(t, app, http.MethodPost, "/api/crm/documents/"+invID+"/payments", "commercial",
		dto.RecordPaymentRequest{Amount: decimal.NewFromInt(10), Method: "CASH"})
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestReceivables_Reporte(t *testing.T) {
	app, _ := newCRMApp(t)
	out := decode[dto.ReceivablesReportResponse](t, call(t, app, http.MethodGet, "/api/crm/reports/receivables", "comptable", nil))
	assert.Equal(t, 1, out.Summary.TotalInvoices)
	assert.Equal(t, 1, out.Aging["days60"].Count)
	assert.Equal(t, 40, out.Summary.AvgDaysOutstanding)
	require.Len(t, out.ByClient, 1)
	assert.Equal(t, "Dupont", out.ByClient[0].ClientName)
}

func TestCRM_SinToken401(t *testing.T) {
	app, _ := newCRMApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/crm/document-types", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
