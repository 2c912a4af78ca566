package services_test

import (
	"context"
	"errors"
	"mime/multipart"
	"sort"
	"sync"
	"time"

	"furniture-shop/models"
	"furniture-shop/repositories"

	"github.com/google/uuid"
)

type fakeProducts struct {
	mu       sync.Mutex
	items    map[string]models.Product
	listHits int
	err      error
}

func newFakeProducts(products ...models.Product) *fakeProducts {
	f := &fakeProducts{items: map[string]models.Product{}}
	for _, p := range products {
		f.items[p.ID] = p
	}
	return f
}

func (f *fakeProducts) List(_ context.Context) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listHits++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Product, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeProducts) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	all, err := f.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Featured && !all[j].Featured })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeProducts) GetByID(_ context.Context, id string) (models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return models.Product{}, f.err
	}
	p, ok := f.items[id]
	if !ok {
		return models.Product{}, repositories.ErrNotFound
	}
	return p, nil
}

func (f *fakeProducts) Create(_ context.Context, p models.Product) (models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = time.Now()
	f.items[p.ID] = p
	return p, nil
}

func (f *fakeProducts) Update(_ context.Context, p models.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[p.ID]; !ok {
		return repositories.ErrNotFound
	}
	f.items[p.ID] = p
	return nil
}

func (f *fakeProducts) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeOrders struct {
	mu        sync.Mutex
	orders    map[string]models.Order
	createErr error
	// block makes Create wait for the context to end.
	block bool
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{orders: map[string]models.Order{}}
}

func (f *fakeOrders) Create(ctx context.Context, o models.Order) (models.Order, error) {
	if f.block {
		<-ctx.Done()
		return models.Order{}, ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return models.Order{}, f.createErr
	}
	o.ID = uuid.NewString()
	f.orders[o.ID] = o
	return o, nil
}

func (f *fakeOrders) GetByID(_ context.Context, id string) (models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return models.Order{}, repositories.ErrNotFound
	}
	return o, nil
}

func (f *fakeOrders) ListByUser(_ context.Context, userID string) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeOrders) List(_ context.Context, status models.OrderStatus) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Order
	for _, o := range f.orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id string, from, to models.OrderStatus) (models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok || o.Status != from {
		return models.Order{}, repositories.ErrConflict
	}
	o.Status = to
	f.orders[id] = o
	return o, nil
}

func (f *fakeOrders) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders)
}

type fakeUsers struct {
	mu       sync.Mutex
	users    map[string]models.User
	profiles map[string]models.UserProfile
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[string]models.User{}, profiles: map[string]models.UserProfile{}}
}

func (f *fakeUsers) Create(_ context.Context, u models.User, fullName string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return models.User{}, repositories.ErrDuplicate
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedAt = time.Now()
	f.users[u.ID] = u
	f.profiles[u.ID] = models.UserProfile{ID: u.ID, Email: u.Email, FullName: fullName, Role: u.Role, CreatedAt: u.CreatedAt}
	return u, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repositories.ErrNotFound
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return models.User{}, repositories.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetProfile(_ context.Context, id string) (models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[id]
	if !ok {
		return models.UserProfile{}, repositories.ErrNotFound
	}
	return p, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, p models.UserProfile) (models.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.profiles[p.ID]
	if !ok {
		return models.UserProfile{}, repositories.ErrNotFound
	}
	cur.FullName, cur.Phone, cur.Address, cur.City, cur.PostalCode = p.FullName, p.Phone, p.Address, p.City, p.PostalCode
	f.profiles[p.ID] = cur
	return cur, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id, hashed string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return repositories.ErrNotFound
	}
	u.Password = hashed
	f.users[id] = u
	return nil
}

func (f *fakeUsers) put(p models.UserProfile) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[p.ID] = models.User{ID: p.ID, Email: p.Email, Role: p.Role}
	f.profiles[p.ID] = p
}

type sentMail struct {
	orderID string
	to      string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeNotifier) OrderPlaced(_ context.Context, o models.Order, to string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{orderID: o.ID, to: to})
	return nil
}

type fakeImages struct {
	url string
	err error
}

func (f *fakeImages) Upload(_ context.Context, _ *multipart.FileHeader) (string, error) {
	return f.url, f.err
}

var errStoreDown = errors.New("store unavailable")
