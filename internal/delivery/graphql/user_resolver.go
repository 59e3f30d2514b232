package graphql

import (
	"context"
	"time"

	"github.com/graph-gophers/graphql-go"

	"salescrm/internal/domain"
)

type UserResolver struct {
	user *domain.User
}

func (r *UserResolver) ID() graphql.ID  { return graphql.ID(r.user.ID.Hex()) }
func (r *UserResolver) Name() string    { return r.user.Name }
func (r *UserResolver) Surname() string { return r.user.Surname }
func (r *UserResolver) Email() string   { return r.user.Email }
func (r *UserResolver) Created() string { return r.user.CreatedAt.Format(time.RFC3339) }

type TokenResolver struct {
	token string
}

func (r *TokenResolver) Token() string { return r.token }

type registerInput struct {
	Name     string
	Surname  string
	Email    string
	Password string
}

type authInput struct {
	Email    string
	Password string
}

// Me returns the authenticated seller, re-read from the store.
func (r *Resolver) Me(ctx context.Context) (*UserResolver, error) {
	seller, err := identity(ctx)
	if err != nil {
		return nil, err
	}
	user, err := r.users.GetByID(ctx, seller)
	if err != nil {
		return nil, err
	}
	return &UserResolver{user: user}, nil
}

func (r *Resolver) RegisterUser(ctx context.Context, args struct{ Input registerInput }) (*UserResolver, error) {
	user, err := r.users.Register(ctx, args.Input.Name, args.Input.Surname, args.Input.Email, args.Input.Password)
	if err != nil {
		return nil, err
	}
	return &UserResolver{user: user}, nil
}

func (r *Resolver) Authenticate(ctx context.Context, args struct{ Input authInput }) (*TokenResolver, error) {
	token, err := r.users.Authenticate(ctx, args.Input.Email, args.Input.Password)
	if err != nil {
		return nil, err
	}
	return &TokenResolver{token: token}, nil
}
