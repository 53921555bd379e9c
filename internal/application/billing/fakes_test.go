package billing_test

import (
	"context"

	"github.com/jhoicas/menuiserie-crm/internal/domain/entity"
	"github.com/jhoicas/menuiserie-crm/internal/domain/repository"
)

type memDocs struct {
	docs  map[string]*entity.Document
	items map[string][]*entity.DocumentItem
}

func newMemDocs(docs ...*entity.Document) *memDocs {
	m := &memDocs{docs: map[string]*entity.Document{}, items: map[string][]*entity.DocumentItem{}}
	for _, d := range docs {
		m.docs[d.ID] = d
	}
	return m
}

func (m *memDocs) Create(_ context.Context, d *entity.Document) error {
	cp := *d
	m.docs[d.ID] = &cp
	return nil
}

func (m *memDocs) CreateItem(_ context.Context, it *entity.DocumentItem) error {
	m.items[it.DocumentID] = append(m.items[it.DocumentID], it)
	return nil
}

func (m *memDocs) GetByID(_ context.Context, id string) (*entity.Document, error) {
	d, ok := m.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (m *memDocs) GetByIDForUpdate(ctx context.Context, id string) (*entity.Document, error) {
	return m.GetByID(ctx, id)
}

func (m *memDocs) GetItems(_ context.Context, id string) ([]*entity.DocumentItem, error) {
	return m.items[id], nil
}

func (m *memDocs) CountItems(_ context.Context, id string) (int, error) {
	return len(m.items[id]), nil
}

func (m *memDocs) List(_ context.Context, companyID string, f repository.DocumentFilter) ([]*entity.Document, int, error) {
	var out []*entity.Document
	for _, d := range m.docs {
		if d.CompanyID != companyID {
			continue
		}
		if f.Type != "" && d.Type != f.Type {
			continue
		}
		out = append(out, d)
	}
	return out, len(out), nil
}

func (m *memDocs) Update(_ context.Context, d *entity.Document) error {
	cp := *d
	m.docs[d.ID] = &cp
	return nil
}

type memPayments struct {
	list []*entity.Payment
}

func (m *memPayments) Create(_ context.Context, p *entity.Payment) error {
	m.list = append(m.list, p)
	return nil
}

func (m *memPayments) ListByDocument(_ context.Context, id string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range m.list {
		if p.DocumentID == id {
			out = append(out, p)
		}
	}
	return out, nil
}

type memSeq struct {
	last map[string]int64
}

func (m *memSeq) Next(_ context.Context, companyID, series string, _ int) (int64, error) {
	if m.last == nil {
		m.last = map[string]int64{}
	}
	m.last[companyID+series]++
	return m.last[companyID+series], nil
}

type memClients struct {
	clients map[string]*entity.Client
}

func (m *memClients) GetByID(_ context.Context, id string) (*entity.Client, error) {
	c, ok := m.clients[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

type memTx struct {
	docs     *memDocs
	payments *memPayments
	seq      *memSeq
}

func (m *memTx) RunDocuments(_ context.Context, fn func(
	repository.DocumentRepository,
	repository.PaymentRepository,
	repository.SequenceRepository,
) error) error {
	return fn(m.docs, m.payments, m.seq)
}
