package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/BruksfildServices01/arena-manager/internal/audit"
	"github.com/BruksfildServices01/arena-manager/internal/backend"
	domain "github.com/BruksfildServices01/arena-manager/internal/domain/catalog"
	"github.com/BruksfildServices01/arena-manager/internal/dto"
	"github.com/BruksfildServices01/arena-manager/internal/httperr"
	"github.com/BruksfildServices01/arena-manager/internal/usecase"
)

// Revoker encerra um token localmente (session.Resolver).
type Revoker interface {
	Logout(ctx context.Context, token string) error
}

type Service struct {
	repo    domain.Repository
	revoker Revoker
	audit   *audit.Dispatcher
}

func NewService(
	repo domain.Repository,
	revoker Revoker,
	audit *audit.Dispatcher,
) *Service {
	return &Service{
		repo:    repo,
		revoker: revoker,
		audit:   audit,
	}
}

// Login troca usuário e senha por token e já devolve o perfil.
func (s *Service) Login(
	ctx context.Context,
	req dto.LoginRequest,
	requestID string,
) (*dto.LoginResponse, error) {

	tok, err := s.repo.Login(ctx, req.Username, req.Password)
	if err != nil {
		if isBadCredentials(err) {
			return nil, httperr.ErrBusiness("invalid_credentials")
		}
		return nil, err
	}

	user, err := s.repo.Me(ctx, tok.AccessToken)
	if err != nil {
		return nil, err
	}

	viewer := usecase.Viewer{Token: tok.AccessToken, RequestID: requestID, User: user}
	s.audit.Dispatch(viewer.Actor().Event("login", "user", nil, nil))

	return &dto.LoginResponse{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		User:        user,
	}, nil
}

// Register cria a conta e faz o login em seguida.
func (s *Service) Register(
	ctx context.Context,
	req dto.RegisterRequest,
	requestID string,
) (*dto.LoginResponse, error) {

	if err := s.repo.Register(ctx, req); err != nil {
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		RequestID:     requestID,
		ActorUsername: req.Username,
		Action:        "user_registered",
		Entity:        "user",
	})

	return s.Login(ctx, dto.LoginRequest{Username: req.Username, Password: req.Password}, requestID)
}

// Logout revoga o token apresentado mesmo quando a sessão não chegou a
// Authenticated (perfil indisponível, por exemplo).
func (s *Service) Logout(ctx context.Context, viewer usecase.Viewer, token string) error {
	if token == "" {
		token = viewer.Token
	}
	if token == "" {
		return nil
	}
	if err := s.revoker.Logout(ctx, token); err != nil {
		return err
	}
	if viewer.Authenticated() {
		s.audit.Dispatch(viewer.Actor().Event("logout", "user", nil, nil))
	}
	return nil
}

// O backend responde 401 ou 400 para senha errada, conforme a versão.
func isBadCredentials(err error) bool {
	if backend.IsKind(err, backend.KindUnauthorized) {
		return true
	}
	var be *backend.Error
	return errors.As(err, &be) && be.Status == http.StatusBadRequest
}
