package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/boardgame-tracker/models"
	"github.com/Dosada05/boardgame-tracker/repositories"
)

var (
	ErrSessionCreationFailed = errors.New("failed to create session")
	ErrSessionUpdateFailed   = errors.New("failed to update session")
	ErrSessionDeleteFailed   = errors.New("failed to delete session")
)

type SessionService interface {
	CreateSession(ctx context.Context, input CreateSessionInput) (*models.Session, error)
	GetSessionByID(ctx context.Context, id string) (*models.Session, error)
	GetAllSessions(ctx context.Context) ([]models.Session, error)
	UpdateSession(ctx context.Context, id string, input UpdateSessionInput) (*models.Session, error)
	// DeleteSession удаляет партию вместе с результатами её игроков.
	DeleteSession(ctx context.Context, id string) error
}

// CreateSessionInput.Date ожидается в формате YYYY-MM-DD.
type CreateSessionInput struct {
	ID     *string `json:"id"`
	Date   *string `json:"date"`
	GameID *string `json:"game_id"`
}

type UpdateSessionInput struct {
	Date   *string `json:"date"`
	GameID *string `json:"game_id"`
}

type sessionService struct {
	sessionRepo repositories.SessionRepository
	gameRepo    repositories.GameRepository
}

func NewSessionService(sessionRepo repositories.SessionRepository, gameRepo repositories.GameRepository) SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		gameRepo:    gameRepo,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, input CreateSessionInput) (*models.Session, error) {
	if err := requireField(input.Date, "date"); err != nil {
		return nil, err
	}
	if err := requireField(input.GameID, "game_id"); err != nil {
		return nil, err
	}

	date, err := models.ParseDate(*input.Date)
	if err != nil {
		return nil, err
	}

	if err := s.checkGameExists(ctx, *input.GameID); err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:      optionalID(input.ID),
		Date:    date,
		GameID:  *input.GameID,
		Players: []models.SessionPlayers{},
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSessionConflict):
			return nil, ErrSessionConflict
		case errors.Is(err, repositories.ErrSessionGameInvalid):
			return nil, ErrGameReferenceInvalid
		default:
			return nil, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
		}
	}

	return session, nil
}

func (s *sessionService) GetSessionByID(ctx context.Context, id string) (*models.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session by id %s: %w", id, err)
	}
	return session, nil
}

func (s *sessionService) GetAllSessions(ctx context.Context) ([]models.Session, error) {
	sessions, err := s.sessionRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all sessions: %w", err)
	}
	if sessions == nil {
		return []models.Session{}, nil
	}
	return sessions, nil
}

func (s *sessionService) UpdateSession(ctx context.Context, id string, input UpdateSessionInput) (*models.Session, error) {
	// Сначала сама партия: update несуществующего id - это 404, даже при неверном теле
	exists, err := s.sessionRepo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w (id: %s): %w", ErrSessionUpdateFailed, id, err)
	}
	if !exists {
		return nil, ErrSessionNotFound
	}

	date, err := parseOptionalDate(input.Date)
	if err != nil {
		return nil, err
	}

	if input.GameID != nil {
		if err := s.checkGameExists(ctx, *input.GameID); err != nil {
			return nil, err
		}
	}

	updated, err := s.sessionRepo.Update(ctx, id, repositories.SessionUpdate{
		Date:   date,
		GameID: input.GameID,
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrSessionNotFound):
			return nil, ErrSessionNotFound
		case errors.Is(err, repositories.ErrSessionGameInvalid):
			return nil, ErrGameReferenceInvalid
		default:
			return nil, fmt.Errorf("%w (id: %s): %w", ErrSessionUpdateFailed, id, err)
		}
	}
	return updated, nil
}

func (s *sessionService) DeleteSession(ctx context.Context, id string) error {
	err := s.sessionRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("%w (id: %s): %w", ErrSessionDeleteFailed, id, err)
	}
	return nil
}

func (s *sessionService) checkGameExists(ctx context.Context, gameID string) error {
	exists, err := s.gameRepo.Exists(ctx, gameID)
	if err != nil {
		return fmt.Errorf("failed to check game %s: %w", gameID, err)
	}
	if !exists {
		return ErrGameReferenceInvalid
	}
	return nil
}
