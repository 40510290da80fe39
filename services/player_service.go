package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/boardgame-tracker/models"
	"github.com/Dosada05/boardgame-tracker/repositories"
)

var (
	ErrPlayerCreationFailed = errors.New("failed to create player")
	ErrPlayerUpdateFailed   = errors.New("failed to update player")
	ErrPlayerDeleteFailed   = errors.New("failed to delete player")
)

type PlayerService interface {
	CreatePlayer(ctx context.Context, input CreatePlayerInput) (*models.Player, error)
	GetPlayerByID(ctx context.Context, id string) (*models.Player, error)
	GetAllPlayers(ctx context.Context) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, id string, input UpdatePlayerInput) (*models.Player, error)
	DeletePlayer(ctx context.Context, id string) error
}

type CreatePlayerInput struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

type UpdatePlayerInput struct {
	Name *string `json:"name"`
}

type playerService struct {
	playerRepo repositories.PlayerRepository
}

func NewPlayerService(playerRepo repositories.PlayerRepository) PlayerService {
	return &playerService{playerRepo: playerRepo}
}

func (s *playerService) CreatePlayer(ctx context.Context, input CreatePlayerInput) (*models.Player, error) {
	if err := requireField(input.Name, "name"); err != nil {
		return nil, err
	}

	player := &models.Player{
		ID:   optionalID(input.ID),
		Name: *input.Name,
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerConflict) {
			return nil, ErrPlayerConflict
		}
		return nil, fmt.Errorf("%w: %w", ErrPlayerCreationFailed, err)
	}
	return player, nil
}

func (s *playerService) GetPlayerByID(ctx context.Context, id string) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by id %s: %w", id, err)
	}
	return player, nil
}

func (s *playerService) GetAllPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := s.playerRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all players: %w", err)
	}
	if players == nil {
		return []models.Player{}, nil
	}
	return players, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, id string, input UpdatePlayerInput) (*models.Player, error) {
	updated, err := s.playerRepo.Update(ctx, id, repositories.PlayerUpdate{Name: input.Name})
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("%w (id: %s): %w", ErrPlayerUpdateFailed, id, err)
	}
	return updated, nil
}

func (s *playerService) DeletePlayer(ctx context.Context, id string) error {
	err := s.playerRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrPlayerNotFound):
			return ErrPlayerNotFound
		case errors.Is(err, repositories.ErrPlayerInUse):
			return ErrPlayerInUse
		default:
			return fmt.Errorf("%w (id: %s): %w", ErrPlayerDeleteFailed, id, err)
		}
	}
	return nil
}
