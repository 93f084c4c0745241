package usecase_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

var errMovementInsert = errors.New("fallo simulado al insertar movimiento")

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok || !p.IsActive {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetByBarcode(_ context.Context, barcode string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.IsActive && p.Barcode == barcode {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	if p, ok := f.products[id]; ok {
		p.IsActive = false
		p.UpdatedAt = at
	}
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, int, error) {
	var all []*entity.Product
	for _, p := range f.products {
		if p.IsActive {
			cp := *p
			all = append(all, &cp)
		}
	}
	total := len(all)
	if filter.Offset >= total {
		return nil, total, nil
	}
	end := filter.Offset + filter.Limit
	if end > total {
		end = total
	}
	return all[filter.Offset:end], total, nil
}

func (f *fakeProductRepo) CountByCreator(_ context.Context, userID string) (int, error) {
	n := 0
	for _, p := range f.products {
		if p.IsActive && p.CreatedBy == userID {
			n++
		}
	}
	return n, nil
}

type fakeCategoryRepo struct {
	categories     map[string]*entity.Category
	activeProducts map[string]int // categoryID -> conteo
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories:     map[string]*entity.Category{},
		activeProducts: map[string]int{},
	}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	cp := *c
	f.categories[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := f.categories[id]
	if !ok || !c.IsActive {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) GetByName(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.IsActive && strings.EqualFold(c.Name, name) {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	cp := *c
	f.categories[c.ID] = &cp
	return nil
}

func (f *fakeCategoryRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	if c, ok := f.categories[id]; ok {
		c.IsActive = false
		c.UpdatedAt = at
	}
	return nil
}

func (f *fakeCategoryRepo) List(_ context.Context, _ bool) ([]*entity.Category, error) {
	var all []*entity.Category
	for _, c := range f.categories {
		if c.IsActive {
			cp := *c
			all = append(all, &cp)
		}
	}
	return all, nil
}

func (f *fakeCategoryRepo) CountActiveProducts(_ context.Context, categoryID string) (int, error) {
	return f.activeProducts[categoryID], nil
}

type fakeMovementRepo struct {
	movements  []*entity.InventoryMovement
	failCreate bool
}

func (f *fakeMovementRepo) Create(_ context.Context, m *entity.InventoryMovement) error {
	if f.failCreate {
		return errMovementInsert
	}
	cp := *m
	f.movements = append(f.movements, &cp)
	return nil
}

func (f *fakeMovementRepo) List(_ context.Context, filter repository.MovementFilter) ([]*entity.InventoryMovement, int, error) {
	return f.movements, len(f.movements), nil
}

// fakeTxRunner simula la atomicidad con snapshot/restore de ambos stores:
// si fn falla, ni el producto ni el movimiento quedan visibles.
type fakeTxRunner struct {
	products  *fakeProductRepo
	movements *fakeMovementRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.InventoryMovementRepository) error) error {
	productSnap := make(map[string]*entity.Product, len(f.products.products))
	for k, v := range f.products.products {
		cp := *v
		productSnap[k] = &cp
	}
	movementSnap := make([]*entity.InventoryMovement, len(f.movements.movements))
	copy(movementSnap, f.movements.movements)

	if err := fn(f.products, f.movements); err != nil {
		f.products.products = productSnap
		f.movements.movements = movementSnap
		return err
	}
	return nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
	order []string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	f.order = append(f.order, u.ID)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsernameOrEmail(_ context.Context, username, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, limit, offset int) ([]*entity.User, int, error) {
	total := len(f.order)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	var out []*entity.User
	for _, id := range f.order[offset:end] {
		cp := *f.users[id]
		out = append(out, &cp)
	}
	return out, total, nil
}
