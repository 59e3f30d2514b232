package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"salescrm/internal/auth"
	"salescrm/internal/domain"
)

type userUseCase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenService
	log      *logrus.Logger
}

func NewUserUseCase(repo domain.UserRepository, tokens *auth.TokenService, logger *logrus.Logger) domain.UserUseCase {
	return &userUseCase{
		userRepo: repo,
		tokens:   tokens,
		log:      logger,
	}
}

// Register validates the input, rejects duplicate emails before writing,
// and persists the user with a bcrypt-hashed password.
func (uc *userUseCase) Register(ctx context.Context, name, surname, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	uc.log.Infof("Use Case: Attempting registration for email: %s", email)

	name = strings.TrimSpace(name)
	surname = strings.TrimSpace(surname)
	if name == "" || surname == "" {
		uc.log.Warn("Use Case: Registration failed - empty name or surname")
		return nil, errors.New("name and surname cannot be empty")
	}
	if !isValidEmail(email) {
		uc.log.Warnf("Use Case: Registration failed - invalid email format: %s", email)
		return nil, errors.New("invalid email format")
	}
	if password == "" {
		uc.log.Warn("Use Case: Registration failed - empty password")
		return nil, errors.New("password cannot be empty")
	}

	// Duplicate check before hashing so a Conflict performs no write.
	if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		uc.log.Warnf("Use Case: Registration failed - email already exists: %s", email)
		return nil, fmt.Errorf("user %s: %w", email, domain.ErrDuplicateEmail)
	} else if !errors.Is(err, domain.ErrNotFound) {
		uc.log.Errorf("Use Case: Error checking email existence for %s: %v", email, err)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to hash password for %s: %v", email, err)
		return nil, fmt.Errorf("internal error processing password: %w", err)
	}

	created, err := uc.userRepo.Create(ctx, &domain.User{
		Name:         name,
		Surname:      surname,
		Email:        email,
		PasswordHash: string(hashed),
	})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create user %s: %v", email, err)
		return nil, err
	}

	uc.log.Infof("Use Case: User registered successfully. ID: %s, Email: %s", created.ID.Hex(), created.Email)
	return created, nil
}

// Authenticate checks the credentials and returns a signed token carrying
// the seller's identity claims.
func (uc *userUseCase) Authenticate(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	uc.log.Infof("Use Case: Attempting authentication for email: %s", email)

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			uc.log.Warnf("Use Case: Auth failed - user not found: %s", email)
			return "", err
		}
		uc.log.Errorf("Use Case: Error retrieving user %s during auth: %v", email, err)
		return "", fmt.Errorf("failed to retrieve user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			uc.log.Warnf("Use Case: Auth failed - incorrect password for user %s", email)
			return "", fmt.Errorf("user %s: %w", email, domain.ErrInvalidCredentials)
		}
		uc.log.Errorf("Use Case: Error comparing password hash for user %s: %v", email, err)
		return "", fmt.Errorf("internal error during authentication: %w", err)
	}

	token, err := uc.tokens.Issue(auth.Claims{
		UserID:  user.ID.Hex(),
		Email:   user.Email,
		Name:    user.Name,
		Surname: user.Surname,
	})
	if err != nil {
		uc.log.Errorf("Use Case: Failed to issue token for user %s: %v", email, err)
		return "", err
	}

	uc.log.Infof("Use Case: Authentication successful for user %s (ID: %s)", email, user.ID.Hex())
	return token, nil
}

func (uc *userUseCase) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

// isValidEmail provides a basic structural check for email addresses.
func isValidEmail(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	domainParts := strings.Split(parts[1], ".")
	return len(domainParts) >= 2 && domainParts[0] != "" && domainParts[len(domainParts)-1] != ""
}
