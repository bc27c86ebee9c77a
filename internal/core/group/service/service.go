package groupapp

import (
	"context"
	"errors"
	"fmt"

	groupEntity "inkwell/internal/core/group"
	groupPort "inkwell/internal/ports/group"

	"github.com/gofrs/uuid"
)

var ErrNotFound = errors.New("group not found")

type GroupService struct {
	GroupRepository groupPort.GroupRepository
}

func NewGroupService(repo groupPort.GroupRepository) *GroupService {
	return &GroupService{GroupRepository: repo}
}

// Create is an administrative operation; there is no public route for it.
func (s *GroupService) Create(ctx context.Context, title, slug, description string) (*groupPort.GroupDTO, error) {
	g := &groupEntity.Group{
		ID:          uuid.Must(uuid.NewV4()),
		Title:       title,
		Slug:        slug,
		Description: description,
	}
	created, err := s.GroupRepository.Create(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}
	return toDTO(created), nil
}

func (s *GroupService) GetBySlug(ctx context.Context, slug string) (*groupPort.GroupDTO, error) {
	g, err := s.GroupRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, ErrNotFound
	}
	return toDTO(g), nil
}

func (s *GroupService) List(ctx context.Context) ([]*groupPort.GroupDTO, error) {
	groups, err := s.GroupRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	dtos := make([]*groupPort.GroupDTO, 0, len(groups))
	for _, g := range groups {
		dtos = append(dtos, toDTO(g))
	}
	return dtos, nil
}

func toDTO(g *groupEntity.Group) *groupPort.GroupDTO {
	return &groupPort.GroupDTO{
		ID:          g.ID.String(),
		Title:       g.Title,
		Slug:        g.Slug,
		Description: g.Description,
	}
}
