package services

import (
	"context"
	"fmt"

	"github.com/apetrenko/eventhub/internal/client/models"
)

// UserService covers authentication and the favorites list.
type UserService struct {
	api     Gateway
	session SessionStore
}

func NewUserService(api Gateway, session SessionStore) *UserService {
	return &UserService{api: api, session: session}
}

type credentialsRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	User    *models.User `json:"user"`
	Token   string       `json:"token"`
	Error   string       `json:"error"`
}

// Login authenticates with one request. On success the session is
// established — user record and any returned token in a single call — as
// a side effect before the user is returned.
func (s *UserService) Login(ctx context.Context, email, password string) (models.User, error) {
	body := credentialsRequest{Email: email, Password: password}
	return s.authenticate(ctx, "/auth/login", body, "login failed")
}

// Register creates an account with one request and establishes the
// session the same way Login does.
func (s *UserService) Register(ctx context.Context, username, email, password string) (models.User, error) {
	body := credentialsRequest{Username: username, Email: email, Password: password}
	return s.authenticate(ctx, "/auth/register", body, "registration failed")
}

func (s *UserService) authenticate(ctx context.Context, path string, body credentialsRequest, fallback string) (models.User, error) {
	var resp authResponse
	if err := s.api.Post(ctx, path, body, &resp); err != nil {
		return models.User{}, err
	}
	if !resp.Success || resp.User == nil {
		return models.User{}, remoteError(resp.Error, fallback)
	}
	if err := s.session.Establish(ctx, *resp.User, resp.Token); err != nil {
		return models.User{}, fmt.Errorf("persist session: %w", err)
	}
	return *resp.User, nil
}

// Favorites fetches the user's full favorites list in one response; the
// server defines no pagination for it.
func (s *UserService) Favorites(ctx context.Context, userID string) ([]models.Favorite, error) {
	var resp struct {
		Success   bool              `json:"success"`
		Favorites []models.Favorite `json:"favorites"`
		Error     string            `json:"error"`
	}
	if err := s.api.Get(ctx, fmt.Sprintf("/users/%s/favorites", userID), nil, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, remoteError(resp.Error, "could not load favorites")
	}
	return resp.Favorites, nil
}

type addFavoriteRequest struct {
	Event models.FavoriteSnapshot `json:"event"`
}

type mutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

// AddFavorite saves an event snapshot to the user's favorites. No
// optimistic local state: the caller reflects the change only after the
// server confirms it.
func (s *UserService) AddFavorite(ctx context.Context, userID string, event models.FavoriteSnapshot) error {
	var resp mutationResponse
	path := fmt.Sprintf("/users/%s/favorites", userID)
	if err := s.api.Post(ctx, path, addFavoriteRequest{Event: event}, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return remoteError(resp.Error, "could not add favorite")
	}
	return nil
}

// RemoveFavorite deletes one favorite by event id.
func (s *UserService) RemoveFavorite(ctx context.Context, userID, eventID string) error {
	var resp mutationResponse
	path := fmt.Sprintf("/users/%s/favorites/%s", userID, eventID)
	if err := s.api.Delete(ctx, path, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return remoteError(resp.Error, "could not remove favorite")
	}
	return nil
}
