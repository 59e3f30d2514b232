package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"salescrm/internal/domain"
)

// In-memory fakes over the domain repository interfaces. They mirror the
// mongo repositories' error translation (NotFound, DuplicateEmail,
// InsufficientStock) so use case behavior can be asserted without a store.

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, fmt.Errorf("user %s: %w", user.Email, domain.ErrDuplicateEmail)
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, domain.ErrNotFound)
}

func (f *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, fmt.Errorf("user %s: %w", id.Hex(), domain.ErrNotFound)
}

type fakeProductRepo struct {
	products map[primitive.ObjectID]*domain.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[primitive.ObjectID]*domain.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	f.products[product.ID] = product
	return product, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Product, error) {
	if p, ok := f.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, fmt.Errorf("product %s: %w", id.Hex(), domain.ErrNotFound)
}

func (f *fakeProductRepo) List(_ context.Context) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, id primitive.ObjectID, input domain.ProductInput) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s: %w", id.Hex(), domain.ErrNotFound)
	}
	p.Name = input.Name
	p.Stock = input.Stock
	p.Price = input.Price
	copied := *p
	return &copied, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.products[id]; !ok {
		return fmt.Errorf("product %s: %w", id.Hex(), domain.ErrNotFound)
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) Search(_ context.Context, text string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(text)) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) DecrementStock(_ context.Context, id primitive.ObjectID, qty int32) error {
	p, ok := f.products[id]
	if !ok {
		return fmt.Errorf("product %s: %w", id.Hex(), domain.ErrNotFound)
	}
	if p.Stock < qty {
		return fmt.Errorf("product %q: %w", p.Name, domain.ErrInsufficientStock)
	}
	p.Stock -= qty
	return nil
}

func (f *fakeProductRepo) IncrementStock(_ context.Context, id primitive.ObjectID, qty int32) error {
	p, ok := f.products[id]
	if !ok {
		return fmt.Errorf("product %s: %w", id.Hex(), domain.ErrNotFound)
	}
	p.Stock += qty
	return nil
}

type fakeClientRepo struct {
	clients map[primitive.ObjectID]*domain.Client
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[primitive.ObjectID]*domain.Client)}
}

func (f *fakeClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	for _, c := range f.clients {
		if c.Email == client.Email {
			return nil, fmt.Errorf("client %s: %w", client.Email, domain.ErrDuplicateEmail)
		}
	}
	client.ID = primitive.NewObjectID()
	client.CreatedAt = time.Now()
	f.clients[client.ID] = client
	return client, nil
}

func (f *fakeClientRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Client, error) {
	if c, ok := f.clients[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, fmt.Errorf("client %s: %w", id.Hex(), domain.ErrNotFound)
}

func (f *fakeClientRepo) GetByEmail(_ context.Context, email string) (*domain.Client, error) {
	for _, c := range f.clients {
		if c.Email == email {
			copied := *c
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("client with email %s: %w", email, domain.ErrNotFound)
}

func (f *fakeClientRepo) List(_ context.Context) ([]domain.Client, error) {
	var out []domain.Client
	for _, c := range f.clients {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeClientRepo) ListBySeller(_ context.Context, seller primitive.ObjectID) ([]domain.Client, error) {
	var out []domain.Client
	for _, c := range f.clients {
		if c.Seller == seller {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeClientRepo) Update(_ context.Context, id primitive.ObjectID, input domain.ClientInput) (*domain.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, fmt.Errorf("client %s: %w", id.Hex(), domain.ErrNotFound)
	}
	c.Name = input.Name
	c.Surname = input.Surname
	c.Company = input.Company
	c.Email = input.Email
	if input.Phone != nil {
		c.Phone = *input.Phone
	}
	copied := *c
	return &copied, nil
}

func (f *fakeClientRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.clients[id]; !ok {
		return fmt.Errorf("client %s: %w", id.Hex(), domain.ErrNotFound)
	}
	delete(f.clients, id)
	return nil
}

type fakeOrderRepo struct {
	orders     map[primitive.ObjectID]*domain.Order
	topClients []domain.ClientTotal
	topSellers []domain.SellerTotal
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[primitive.ObjectID]*domain.Order)}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	order.ID = primitive.NewObjectID()
	order.CreatedAt = time.Now()
	f.orders[order.ID] = order
	return order, nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Order, error) {
	if o, ok := f.orders[id]; ok {
		copied := *o
		return &copied, nil
	}
	return nil, fmt.Errorf("order %s: %w", id.Hex(), domain.ErrNotFound)
}

func (f *fakeOrderRepo) List(_ context.Context) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrderRepo) ListBySeller(_ context.Context, seller primitive.ObjectID) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		if o.Seller == seller {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListBySellerAndStatus(_ context.Context, seller primitive.ObjectID, status domain.OrderStatus, limit int64) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range f.orders {
		if o.Seller == seller && o.Status == status {
			out = append(out, *o)
			if int64(len(out)) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, id primitive.ObjectID, update domain.OrderUpdate) (*domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %s: %w", id.Hex(), domain.ErrNotFound)
	}
	if update.Lines != nil {
		o.Lines = update.Lines
	}
	if update.Total != nil {
		o.Total = *update.Total
	}
	if update.Client != nil {
		o.ClientID = *update.Client
	}
	if update.Status != nil {
		o.Status = *update.Status
	}
	copied := *o
	return &copied, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := f.orders[id]; !ok {
		return fmt.Errorf("order %s: %w", id.Hex(), domain.ErrNotFound)
	}
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) TopClients(_ context.Context, _ int64) ([]domain.ClientTotal, error) {
	return f.topClients, nil
}

func (f *fakeOrderRepo) TopSellers(_ context.Context, _ int64) ([]domain.SellerTotal, error) {
	return f.topSellers, nil
}
