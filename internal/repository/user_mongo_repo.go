package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"salescrm/internal/domain"
)

type mongoUserRepository struct {
	coll *mongo.Collection
	log  *logrus.Logger
}

func NewMongoUserRepository(database *mongo.Database, logger *logrus.Logger) domain.UserRepository {
	return &mongoUserRepository{
		coll: database.Collection("users"),
		log:  logger,
	}
}

func (r *mongoUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.log.Debugf("Repository: Attempting to create user with email: %s", user.Email)

	user.CreatedAt = time.Now()
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			r.log.Warnf("Repository: Attempted to create user with duplicate email: %s", user.Email)
			return nil, fmt.Errorf("user %s: %w", user.Email, domain.ErrDuplicateEmail)
		}
		r.log.Errorf("Repository: Failed to create user '%s': %v", user.Email, err)
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	r.log.Infof("Repository: User created successfully with ID: %s, Email: %s", user.ID.Hex(), user.Email)
	return user, nil
}

func (r *mongoUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.log.Debugf("Repository: Attempting to find user by email: %s", email)

	var user domain.User
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warnf("Repository: User with email %s not found", email)
			return nil, fmt.Errorf("user with email %s: %w", email, domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to get user by email %s: %v", email, err)
		return nil, fmt.Errorf("could not get user by email: %w", err)
	}

	return &user, nil
}

func (r *mongoUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.log.Debugf("Repository: Attempting to find user by ID: %s", id.Hex())

	var user domain.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.log.Warnf("Repository: User with ID %s not found", id.Hex())
			return nil, fmt.Errorf("user %s: %w", id.Hex(), domain.ErrNotFound)
		}
		r.log.Errorf("Repository: Failed to get user by ID %s: %v", id.Hex(), err)
		return nil, fmt.Errorf("could not get user by id: %w", err)
	}

	return &user, nil
}
