package auth

import (
	"context"
	"errors"

	"github.com/jwalitptl/pharmacy-api/internal/model"
	"github.com/jwalitptl/pharmacy-api/internal/repository"
	"github.com/jwalitptl/pharmacy-api/pkg/apperror"
	"github.com/jwalitptl/pharmacy-api/pkg/security"
	"github.com/jwalitptl/pharmacy-api/pkg/token"
)

type Servicer interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error)
	Register(ctx context.Context, req *model.RegisterRequest) (*model.Identity, error)
}

type Service struct {
	store  repository.Store
	tokens token.Service
	hasher security.PasswordHasher
}

func NewService(store repository.Store, tokens token.Service, hasher security.PasswordHasher) *Service {
	return &Service{
		store:  store,
		tokens: tokens,
		hasher: hasher,
	}
}

// Login searches every role partition for the username and issues a token
// carrying the role the account was found under.
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	identity, err := s.store.Identities().GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperror.NotFoundMsg("user not found")
		}
		return nil, apperror.Store(err)
	}

	if err := s.hasher.Compare(identity.Password, req.Password); err != nil {
		return nil, apperror.InvalidCredential("invalid password")
	}

	tok, err := s.tokens.Issue(identity.ID, string(identity.Role))
	if err != nil {
		return nil, apperror.Store(err)
	}

	return &model.TokenResponse{
		Token: tok,
		Role:  identity.Role,
		ID:    identity.ID,
	}, nil
}

// Register derives the account role from the ID prefix. An ID that matches
// no known prefix is rejected before anything is written.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.Identity, error) {
	role, ok := model.RoleFromID(req.ID)
	if !ok {
		return nil, apperror.Validation("invalid ID format")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperror.Store(err)
	}

	identity := &model.Identity{
		ID:       req.ID,
		Username: req.Username,
		Password: hash,
		Role:     role,
	}

	if err := s.store.Identities().Create(ctx, identity); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperror.Duplicate("an account with this ID or username already exists")
		}
		return nil, apperror.Store(err)
	}

	return identity, nil
}
