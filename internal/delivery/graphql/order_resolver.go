package graphql

import (
	"context"
	"time"

	"github.com/graph-gophers/graphql-go"

	"salescrm/internal/domain"
)

type OrderResolver struct {
	order  *domain.Order
	orders domain.OrderUseCase
}

func (r *OrderResolver) ID() graphql.ID     { return graphql.ID(r.order.ID.Hex()) }
func (r *OrderResolver) Total() float64     { return r.order.Total }
func (r *OrderResolver) Seller() graphql.ID { return graphql.ID(r.order.Seller.Hex()) }
func (r *OrderResolver) Status() string     { return string(r.order.Status) }
func (r *OrderResolver) Created() string    { return r.order.CreatedAt.Format(time.RFC3339) }

func (r *OrderResolver) Lines() []*OrderLineResolver {
	lines := make([]*OrderLineResolver, 0, len(r.order.Lines))
	for i := range r.order.Lines {
		lines = append(lines, &OrderLineResolver{line: &r.order.Lines[i]})
	}
	return lines
}

// Client resolves the referenced client document on demand.
func (r *OrderResolver) Client(ctx context.Context) (*ClientResolver, error) {
	client, err := r.orders.Client(ctx, r.order.ClientID)
	if err != nil {
		return nil, err
	}
	return &ClientResolver{client: client}, nil
}

type OrderLineResolver struct {
	line *domain.OrderLine
}

func (r *OrderLineResolver) Product() graphql.ID { return graphql.ID(r.line.ProductID.Hex()) }
func (r *OrderLineResolver) Name() string        { return r.line.Name }
func (r *OrderLineResolver) Quantity() int32     { return r.line.Quantity }
func (r *OrderLineResolver) Price() float64      { return r.line.Price }

type TopClientResolver struct {
	total  float64
	client domain.Client
}

func (r *TopClientResolver) Total() float64          { return r.total }
func (r *TopClientResolver) Client() *ClientResolver { return &ClientResolver{client: &r.client} }

type TopSellerResolver struct {
	total  float64
	seller domain.User
}

func (r *TopSellerResolver) Total() float64        { return r.total }
func (r *TopSellerResolver) Seller() *UserResolver { return &UserResolver{user: &r.seller} }

type orderLineInput struct {
	Product  graphql.ID
	Quantity int32
	Name     string
	Price    float64
}

type orderInput struct {
	Lines  []orderLineInput
	Total  float64
	Client graphql.ID
	Status *string
}

type orderUpdateInput struct {
	Lines  *[]orderLineInput
	Total  *float64
	Client *graphql.ID
	Status *string
}

func (r *Resolver) Orders(ctx context.Context) ([]*OrderResolver, error) {
	orders, err := r.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	return r.orderResolvers(orders), nil
}

func (r *Resolver) MyOrders(ctx context.Context) ([]*OrderResolver, error) {
	seller, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := r.orders.ListBySeller(ctx, seller)
	if err != nil {
		return nil, err
	}
	return r.orderResolvers(orders), nil
}

func (r *Resolver) Order(ctx context.Context, args struct{ ID graphql.ID }) (*OrderResolver, error) {
	seller, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	id, err := objectID(args.ID)
	if err != nil {
		return nil, err
	}
	order, err := r.orders.Get(ctx, seller, id)
	if err != nil {
		return nil, err
	}
	return &OrderResolver{order: order, orders: r.orders}, nil
}

func (r *Resolver) OrdersByStatus(ctx context.Context, args struct{ Status string }) ([]*OrderResolver, error) {
	seller, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := r.orders.ListBySellerAndStatus(ctx, seller, domain.OrderStatus(args.Status))
	if err != nil {
		return nil, err
	}
	return r.orderResolvers(orders), nil
}

func (r *Resolver) TopClients(ctx context.Context) ([]*TopClientResolver, error) {
	totals, err := r.orders.TopClients(ctx)
	if err != nil {
		return nil, err
	}
	resolvers := make([]*TopClientResolver, 0, len(totals))
	for _, t := range totals {
		resolvers = append(resolvers, &TopClientResolver{total: t.Total, client: t.Client})
	}
	return resolvers, nil
}

func (r *Resolver) TopSellers(ctx context.Context) ([]*TopSellerResolver, error) {
	totals, err := r.orders.TopSellers(ctx)
	if err != nil {
		return nil, err
	}
	resolvers := make([]*TopSellerResolver, 0, len(totals))
	for _, t := range totals {
		resolvers = append(resolvers, &TopSellerResolver{total: t.Total, seller: t.Seller})
	}
	return resolvers, nil
}

func (r *Resolver) CreateOrder(ctx context.Context, args struct{ Input orderInput }) (*OrderResolver, error) {
	seller, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	clientID, err := objectID(args.Input.Client)
	if err != nil {
		return nil, err
	}
	lines, err := orderLines(args.Input.Lines)
	if err != nil {
		return nil, err
	}

	input := domain.OrderInput{
		Lines:  lines,
		Total:  args.Input.Total,
		Client: clientID,
	}
	if args.Input.Status != nil {
		input.Status = domain.OrderStatus(*args.Input.Status)
	}

	order, err := r.orders.Create(ctx, seller, input)
	if err != nil {
		return nil, err
	}
	return &OrderResolver{order: order, orders: r.orders}, nil
}

func (r *Resolver) UpdateOrder(ctx context.Context, args struct {
	ID    graphql.ID
	Input orderUpdateInput
}) (*OrderResolver, error) {
	seller, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	id, err := objectID(args.ID)
	if err != nil {
		return nil, err
	}

	var update domain.OrderUpdate
	if args.Input.Lines != nil {
		lines, err := orderLines(*args.Input.Lines)
		if err != nil {
			return nil, err
		}
		update.Lines = lines
	}
	update.Total = args.Input.Total
	if args.Input.Client != nil {
		clientID, err := objectID(*args.Input.Client)
		if err != nil {
			return nil, err
		}
		update.Client = &clientID
	}
	if args.Input.Status != nil {
		status := domain.OrderStatus(*args.Input.Status)
		update.Status = &status
	}

	order, err := r.orders.Update(ctx, seller, id, update)
	if err != nil {
		return nil, err
	}
	return &OrderResolver{order: order, orders: r.orders}, nil
}

func (r *Resolver) DeleteOrder(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	seller, err := identity(ctx)
	if err != nil {
		return false, err
	}
	id, err := objectID(args.ID)
	if err != nil {
		return false, err
	}
	if err := r.orders.Delete(ctx, seller, id); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Resolver) orderResolvers(orders []domain.Order) []*OrderResolver {
	resolvers := make([]*OrderResolver, 0, len(orders))
	for i := range orders {
		resolvers = append(resolvers, &OrderResolver{order: &orders[i], orders: r.orders})
	}
	return resolvers
}

func orderLines(inputs []orderLineInput) ([]domain.OrderLine, error) {
	lines := make([]domain.OrderLine, 0, len(inputs))
	for _, in := range inputs {
		productID, err := objectID(in.Product)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.OrderLine{
			ProductID: productID,
			Quantity:  in.Quantity,
			Name:      in.Name,
			Price:     in.Price,
		})
	}
	return lines, nil
}
