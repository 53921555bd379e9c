package workflow_test

import (
	"context"
	"sync"

	"github.com/jhoicas/menuiserie-crm/internal/domain"
	"github.com/jhoicas/menuiserie-crm/internal/domain/entity"
	"github.com/jhoicas/menuiserie-crm/internal/domain/repository"
	"github.com/jhoicas/menuiserie-crm/internal/domain/status"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repos en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeDocRepo struct {
	docs  map[string]*entity.Document
	items map[string][]*entity.DocumentItem
}

func newFakeDocRepo(docs ...*entity.Document) *fakeDocRepo {
	r := &fakeDocRepo{docs: map[string]*entity.Document{}, items: map[string][]*entity.DocumentItem{}}
	for _, d := range docs {
		r.docs[d.ID] = d
	}
	return r
}

func (r *fakeDocRepo) Create(_ context.Context, d *entity.Document) error {
	cp := *d
	r.docs[d.ID] = &cp
	return nil
}

func (r *fakeDocRepo) CreateItem(_ context.Context, it *entity.DocumentItem) error {
	r.items[it.DocumentID] = append(r.items[it.DocumentID], it)
	return nil
}

func (r *fakeDocRepo) GetByID(_ context.Context, id string) (*entity.Document, error) {
	d, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDocRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Document, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeDocRepo) GetItems(_ context.Context, id string) ([]*entity.DocumentItem, error) {
	return r.items[id], nil
}

func (r *fakeDocRepo) CountItems(_ context.Context, id string) (int, error) {
	return len(r.items[id]), nil
}

func (r *fakeDocRepo) List(_ context.Context, companyID string, _ repository.DocumentFilter) ([]*entity.Document, int, error) {
	var out []*entity.Document
	for _, d := range r.docs {
		if d.CompanyID == companyID {
			out = append(out, d)
		}
	}
	return out, len(out), nil
}

func (r *fakeDocRepo) Update(_ context.Context, d *entity.Document) error {
	cp := *d
	r.docs[d.ID] = &cp
	return nil
}

type fakeSeqRepo struct {
	mu   sync.Mutex
	last map[string]int64
}

func (r *fakeSeqRepo) Next(_ context.Context, companyID, series string, year int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		r.last = map[string]int64{}
	}
	key := companyID + "/" + series
	r.last[key]++
	return r.last[key], nil
}

type fakePaymentRepo struct {
	created []*entity.Payment
}

func (r *fakePaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	r.created = append(r.created, p)
	return nil
}

func (r *fakePaymentRepo) ListByDocument(_ context.Context, id string) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.created {
		if p.DocumentID == id {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeTxRunner no hace rollback: los tests solo verifican el estado tras un commit exitoso
// o que no se llamó a Update cuando la validación falla.
type fakeTxRunner struct {
	docs     *fakeDocRepo
	payments *fakePaymentRepo
	seq      *fakeSeqRepo
}

func (f *fakeTxRunner) RunDocuments(_ context.Context, fn func(
	repository.DocumentRepository,
	repository.PaymentRepository,
	repository.SequenceRepository,
) error) error {
	return fn(f.docs, f.payments, f.seq)
}

// fakeLeadRepo escribe con compare-and-set como el repositorio real.
// afterRead, si no es nil, se ejecuta tras leer y antes de devolver (para forzar lecturas concurrentes).
type fakeLeadRepo struct {
	mu        sync.Mutex
	leads     map[string]*entity.Lead
	afterRead func()
}

func (r *fakeLeadRepo) GetByID(_ context.Context, id string) (*entity.Lead, error) {
	r.mu.Lock()
	l, ok := r.leads[id]
	var cp entity.Lead
	if ok {
		cp = *l
	}
	r.mu.Unlock()
	if r.afterRead != nil {
		r.afterRead()
	}
	if !ok {
		return nil, nil
	}
	return &cp, nil
}

func (r *fakeLeadRepo) UpdateStatus(_ context.Context, id string, from, to status.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.leads[id]
	if !ok || l.Status != from {
		return domain.ErrConflict
	}
	l.Status = to
	return nil
}

type fakeProjectRepo struct {
	projects map[string]*entity.Project
}

func (r *fakeProjectRepo) GetByID(_ context.Context, id string) (*entity.Project, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProjectRepo) UpdateStatus(_ context.Context, id string, from, to status.Status) error {
	p, ok := r.projects[id]
	if !ok || p.Status != from {
		return domain.ErrConflict
	}
	p.Status = to
	return nil
}
