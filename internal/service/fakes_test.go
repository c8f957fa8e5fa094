package service

import (
	"context"
	"sort"

	"github.com/spec-kit/seller-service/internal/domain"
	"github.com/spec-kit/seller-service/internal/events"
)

type fakeSellerRepo struct {
	rows   map[int]domain.Seller
	nextID int
	err    error
}

func newFakeSellerRepo() *fakeSellerRepo {
	return &fakeSellerRepo{rows: map[int]domain.Seller{}, nextID: 1}
}

func (r *fakeSellerRepo) Insert(_ context.Context, s *domain.Seller) error {
	if r.err != nil {
		return r.err
	}
	s.ID = r.nextID
	r.nextID++
	r.rows[s.ID] = *s
	return nil
}

func (r *fakeSellerRepo) Update(_ context.Context, s *domain.Seller) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.rows[s.ID]; ok {
		r.rows[s.ID] = *s
	}
	return nil
}

func (r *fakeSellerRepo) DeleteByID(_ context.Context, id int) error {
	if r.err != nil {
		return r.err
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeSellerRepo) FindByID(_ context.Context, id int) (*domain.Seller, error) {
	if r.err != nil {
		return nil, r.err
	}
	s, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeSellerRepo) FindAll(ctx context.Context) ([]*domain.Seller, error) {
	return r.filter(func(domain.Seller) bool { return true })
}

func (r *fakeSellerRepo) FindByDepartment(_ context.Context, d *domain.Department) ([]*domain.Seller, error) {
	return r.filter(func(s domain.Seller) bool { return s.DepartmentID() == d.ID })
}

func (r *fakeSellerRepo) filter(keep func(domain.Seller) bool) ([]*domain.Seller, error) {
	if r.err != nil {
		return nil, r.err
	}
	result := []*domain.Seller{}
	for _, s := range r.rows {
		if keep(s) {
			s := s
			result = append(result, &s)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

type fakeDepartmentRepo struct {
	rows   map[int]domain.Department
	nextID int
	err    error
}

func newFakeDepartmentRepo(depts ...domain.Department) *fakeDepartmentRepo {
	r := &fakeDepartmentRepo{rows: map[int]domain.Department{}, nextID: 1}
	for _, d := range depts {
		r.rows[d.ID] = d
		if d.ID >= r.nextID {
			r.nextID = d.ID + 1
		}
	}
	return r
}

func (r *fakeDepartmentRepo) Insert(_ context.Context, d *domain.Department) error {
	if r.err != nil {
		return r.err
	}
	d.ID = r.nextID
	r.nextID++
	r.rows[d.ID] = *d
	return nil
}

func (r *fakeDepartmentRepo) Update(_ context.Context, d *domain.Department) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.rows[d.ID]; ok {
		r.rows[d.ID] = *d
	}
	return nil
}

func (r *fakeDepartmentRepo) DeleteByID(_ context.Context, id int) error {
	if r.err != nil {
		return r.err
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeDepartmentRepo) FindByID(_ context.Context, id int) (*domain.Department, error) {
	if r.err != nil {
		return nil, r.err
	}
	d, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (r *fakeDepartmentRepo) FindAll(_ context.Context) ([]*domain.Department, error) {
	if r.err != nil {
		return nil, r.err
	}
	result := []*domain.Department{}
	for _, d := range r.rows {
		d := d
		result = append(result, &d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

type capturingDispatcher struct {
	published []events.Event
}

func (d *capturingDispatcher) Publish(_ context.Context, e events.Event) error {
	d.published = append(d.published, e)
	return nil
}

func (d *capturingDispatcher) Subscribe(events.EventType, events.EventHandler) {}
