package graphql

import (
	"context"
	"time"

	"github.com/graph-gophers/graphql-go"

	"salescrm/internal/domain"
)

type ProductResolver struct {
	product *domain.Product
}

func (r *ProductResolver) ID() graphql.ID  { return graphql.ID(r.product.ID.Hex()) }
func (r *ProductResolver) Name() string    { return r.product.Name }
func (r *ProductResolver) Stock() int32    { return r.product.Stock }
func (r *ProductResolver) Price() float64  { return r.product.Price }
func (r *ProductResolver) Created() string { return r.product.CreatedAt.Format(time.RFC3339) }

type productInput struct {
	Name  string
	Stock int32
	Price float64
}

func (in productInput) toDomain() domain.ProductInput {
	return domain.ProductInput{Name: in.Name, Stock: in.Stock, Price: in.Price}
}

func (r *Resolver) Products(ctx context.Context) ([]*ProductResolver, error) {
	products, err := r.products.List(ctx)
	if err != nil {
		return nil, err
	}
	return productResolvers(products), nil
}

func (r *Resolver) Product(ctx context.Context, args struct{ ID graphql.ID }) (*ProductResolver, error) {
	id, err := objectID(args.ID)
	if err != nil {
		return nil, err
	}
	product, err := r.products.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProductResolver{product: product}, nil
}

func (r *Resolver) SearchProducts(ctx context.Context, args struct{ Text string }) ([]*ProductResolver, error) {
	products, err := r.products.Search(ctx, args.Text)
	if err != nil {
		return nil, err
	}
	return productResolvers(products), nil
}

func (r *Resolver) CreateProduct(ctx context.Context, args struct{ Input productInput }) (*ProductResolver, error) {
	product, err := r.products.Create(ctx, args.Input.toDomain())
	if err != nil {
		return nil, err
	}
	return &ProductResolver{product: product}, nil
}

func (r *Resolver) UpdateProduct(ctx context.Context, args struct {
	ID    graphql.ID
	Input productInput
}) (*ProductResolver, error) {
	id, err := objectID(args.ID)
	if err != nil {
		return nil, err
	}
	product, err := r.products.Update(ctx, id, args.Input.toDomain())
	if err != nil {
		return nil, err
	}
	return &ProductResolver{product: product}, nil
}

func (r *Resolver) DeleteProduct(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	id, err := objectID(args.ID)
	if err != nil {
		return false, err
	}
	if err := r.products.Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}

func productResolvers(products []domain.Product) []*ProductResolver {
	resolvers := make([]*ProductResolver, 0, len(products))
	for i := range products {
		resolvers = append(resolvers, &ProductResolver{product: &products[i]})
	}
	return resolvers
}
