package graphql

import (
	"context"

	"github.com/graph-gophers/graphql-go"

	"salescrm/internal/domain"
)

type ClientResolver struct {
	client *domain.Client
}

func (r *ClientResolver) ID() graphql.ID    { return graphql.ID(r.client.ID.Hex()) }
func (r *ClientResolver) Name() string      { return r.client.Name }
func (r *ClientResolver) Surname() string   { return r.client.Surname }
func (r *ClientResolver) Company() string   { return r.client.Company }
func (r *ClientResolver) Email() string     { return r.client.Email }
func (r *ClientResolver) Seller() graphql.ID { return graphql.ID(r.client.Seller.Hex()) }

func (r *ClientResolver) Phone() *string {
	if r.client.Phone == "" {
		return nil
	}
	phone := r.client.Phone
	return &phone
}

type clientInput struct {
	Name    string
	Surname string
	Company string
	Email   string
	Phone   *string
}

func (in clientInput) toDomain() domain.ClientInput {
	return domain.ClientInput{
		Name:    in.Name,
		Surname: in.Surname,
		Company: in.Company,
		Email:   in.Email,
		Phone:   in.Phone,
	}
}

func (r *Resolver) Clients(ctx context.Context) ([]*ClientResolver, error) {
	clients, err := r.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	return clientResolvers(clients), nil
}

// MyClients lists only the clients owned by the caller.
func (r *Resolver) MyClients(ctx context.Context) ([]*ClientResolver, error) {
	seller, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := r.clients.ListBySeller(ctx, seller)
	if err != nil {
		return nil, err
	}
	return clientResolvers(clients), nil
}

func (r *Resolver) Client(ctx context.Context, args struct{ ID graphql.ID }) (*ClientResolver, error) {
	seller, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	id, err := objectID(args.ID)
	if err != nil {
		return nil, err
	}
	client, err := r.clients.Get(ctx, seller, id)
	if err != nil {
		return nil, err
	}
	return &ClientResolver{client: client}, nil
}

func (r *Resolver) CreateClient(ctx context.Context, args struct{ Input clientInput }) (*ClientResolver, error) {
	seller, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	client, err := r.clients.Create(ctx, seller, args.Input.toDomain())
	if err != nil {
		return nil, err
	}
	return &ClientResolver{client: client}, nil
}

func (r *Resolver) UpdateClient(ctx context.Context, args struct {
	ID    graphql.ID
	Input clientInput
}) (*ClientResolver, error) {
	seller, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	id, err := objectID(args.ID)
	if err != nil {
		return nil, err
	}
	client, err := r.clients.Update(ctx, seller, id, args.Input.toDomain())
	if err != nil {
		return nil, err
	}
	return &ClientResolver{client: client}, nil
}

func (r *Resolver) DeleteClient(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	seller, err := identity(ctx)
	if err != nil {
		return false, err
	}
	id, err := objectID(args.ID)
	if err != nil {
		return false, err
	}
	if err := r.clients.Delete(ctx, seller, id); err != nil {
		return false, err
	}
	return true, nil
}

func clientResolvers(clients []domain.Client) []*ClientResolver {
	resolvers := make([]*ClientResolver, 0, len(clients))
	for i := range clients {
		resolvers = append(resolvers, &ClientResolver{client: &clients[i]})
	}
	return resolvers
}
