package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/user"
	idgen "github.com/riskibarqy/prediction-league/internal/platform/id"
)

const minPasswordLength = 6

type passwordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

type tokenIssuer interface {
	Issue(email string) (string, error)
	Verify(token string) (string, error)
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is returned on successful register and login.
type AuthResult struct {
	User  user.User
	Token string
}

type AuthService struct {
	users  user.Repository
	hasher passwordHasher
	tokens tokenIssuer
	idGen  idgen.Generator
	now    func() time.Time
}

func NewAuthService(users user.Repository, hasher passwordHasher, tokens tokenIssuer, idGen idgen.Generator) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		idGen:  idGen,
		now:    time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (result AuthResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Register")
	defer func() { endUsecaseSpan(span, err) }()

	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return AuthResult{}, fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return AuthResult{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(input.Password) < minPasswordLength {
		return AuthResult{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	_, exists, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("get user by email: %w", err)
	}
	if exists {
		return AuthResult{}, fmt.Errorf("%w: email already registered", ErrConflict)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}
	userID, err := s.idGen.NewID()
	if err != nil {
		return AuthResult{}, fmt.Errorf("generate user id: %w", err)
	}

	item := user.User{
		ID:           userID,
		Email:        input.Email,
		Name:         input.Name,
		Role:         user.RolePlayer,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, item); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return AuthResult{}, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		return AuthResult{}, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Issue(item.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	return AuthResult{User: item, Token: token}, nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (result AuthResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer func() { endUsecaseSpan(span, err) }()

	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" {
		return AuthResult{}, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	item, exists, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("get user by email: %w", err)
	}
	if !exists {
		return AuthResult{}, fmt.Errorf("%w: incorrect email or password", ErrUnauthenticated)
	}
	if err := s.hasher.Verify(item.PasswordHash, input.Password); err != nil {
		return AuthResult{}, fmt.Errorf("%w: incorrect email or password", ErrUnauthenticated)
	}

	token, err := s.tokens.Issue(item.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	return AuthResult{User: item, Token: token}, nil
}

// ResolveToken maps a bearer token to its user. Any failure is ErrUnauthenticated
// except store errors.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (item user.User, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.ResolveToken")
	defer func() { endUsecaseSpan(span, err) }()

	token = strings.TrimSpace(token)
	if token == "" {
		return user.User{}, fmt.Errorf("%w: missing bearer token", ErrUnauthenticated)
	}

	email, err := s.tokens.Verify(token)
	if err != nil {
		return user.User{}, fmt.Errorf("%w: could not validate credentials", ErrUnauthenticated)
	}

	item, exists, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return user.User{}, fmt.Errorf("get user by email: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: could not validate credentials", ErrUnauthenticated)
	}
	return item, nil
}

func (s *AuthService) Me(ctx context.Context, userID string) (item user.User, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Me")
	defer func() { endUsecaseSpan(span, err) }()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	item, exists, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user by id: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user not found", ErrNotFound)
	}
	return item, nil
}
