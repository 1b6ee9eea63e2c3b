package services

import (
	"context"
	"fmt"

	"github.com/apetrenko/eventhub/internal/client/models"
)

// EventService looks events up in the remote catalog.
type EventService struct {
	api Gateway
}

func NewEventService(api Gateway) *EventService {
	return &EventService{api: api}
}

// Search issues one search query built from the non-empty filter fields
// and returns the raw result list, which may be empty. Gateway errors
// propagate unchanged.
func (s *EventService) Search(ctx context.Context, filters models.SearchFilters) ([]models.EventResult, error) {
	var resp struct {
		Success bool                 `json:"success"`
		Events  []models.EventResult `json:"events"`
		Error   string               `json:"error"`
	}
	if err := s.api.Get(ctx, "/events/search", filters.Query(), &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, remoteError(resp.Error, "search failed")
	}
	return resp.Events, nil
}

// GetByID fetches one event record.
func (s *EventService) GetByID(ctx context.Context, id string) (models.EventResult, error) {
	var resp struct {
		Success bool               `json:"success"`
		Event   models.EventResult `json:"event"`
		Error   string             `json:"error"`
	}
	if err := s.api.Get(ctx, fmt.Sprintf("/events/%s", id), nil, &resp); err != nil {
		return models.EventResult{}, err
	}
	if !resp.Success {
		return models.EventResult{}, remoteError(resp.Error, "event not found")
	}
	return resp.Event, nil
}
