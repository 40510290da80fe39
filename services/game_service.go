package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/boardgame-tracker/models"
	"github.com/Dosada05/boardgame-tracker/repositories"
)

var (
	ErrGameCreationFailed = errors.New("failed to create game")
	ErrGameUpdateFailed   = errors.New("failed to update game")
	ErrGameDeleteFailed   = errors.New("failed to delete game")
)

type GameService interface {
	CreateGame(ctx context.Context, input CreateGameInput) (*models.Game, error)
	GetGameByID(ctx context.Context, id string) (*models.Game, error)
	GetAllGames(ctx context.Context) ([]models.Game, error)
	UpdateGame(ctx context.Context, id string, input UpdateGameInput) (*models.Game, error)
	DeleteGame(ctx context.Context, id string) error
}

type CreateGameInput struct {
	ID      *string `json:"id"`
	Name    *string `json:"name"`
	Scoring *string `json:"scoring"`
}

type UpdateGameInput struct {
	Name    *string `json:"name"`
	Scoring *string `json:"scoring"`
}

type gameService struct {
	gameRepo repositories.GameRepository
}

func NewGameService(gameRepo repositories.GameRepository) GameService {
	return &gameService{
		gameRepo: gameRepo,
	}
}

func (s *gameService) CreateGame(ctx context.Context, input CreateGameInput) (*models.Game, error) {
	if err := requireField(input.Name, "name"); err != nil {
		return nil, err
	}
	if err := requireField(input.Scoring, "scoring"); err != nil {
		return nil, err
	}

	game := &models.Game{
		ID:      optionalID(input.ID),
		Name:    *input.Name,
		Scoring: *input.Scoring,
	}

	if err := s.gameRepo.Create(ctx, game); err != nil {
		if errors.Is(err, repositories.ErrGameConflict) {
			return nil, ErrGameConflict
		}
		return nil, fmt.Errorf("%w: %w", ErrGameCreationFailed, err)
	}

	return game, nil
}

func (s *gameService) GetGameByID(ctx context.Context, id string) (*models.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game by id %s: %w", id, err)
	}
	return game, nil
}

func (s *gameService) GetAllGames(ctx context.Context) ([]models.Game, error) {
	games, err := s.gameRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all games: %w", err)
	}
	if games == nil {
		return []models.Game{}, nil
	}
	return games, nil
}

func (s *gameService) UpdateGame(ctx context.Context, id string, input UpdateGameInput) (*models.Game, error) {
	updated, err := s.gameRepo.Update(ctx, id, repositories.GameUpdate{
		Name:    input.Name,
		Scoring: input.Scoring,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("%w (id: %s): %w", ErrGameUpdateFailed, id, err)
	}
	return updated, nil
}

func (s *gameService) DeleteGame(ctx context.Context, id string) error {
	err := s.gameRepo.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrGameNotFound):
			return ErrGameNotFound
		case errors.Is(err, repositories.ErrGameInUse):
			return ErrGameInUse
		default:
			return fmt.Errorf("%w (id: %s): %w", ErrGameDeleteFailed, id, err)
		}
	}
	return nil
}
