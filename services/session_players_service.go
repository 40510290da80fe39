package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/boardgame-tracker/models"
	"github.com/Dosada05/boardgame-tracker/repositories"
)

// reservedSessionPlayersID совпадает с маршрутом PUT /session-players/merge,
// поэтому запись с таким id нельзя было бы обновить по своему URL.
const reservedSessionPlayersID = "merge"

var (
	ErrSessionPlayersCreationFailed = errors.New("failed to create session players entry")
	ErrSessionPlayersUpdateFailed   = errors.New("failed to update session players entry")
	ErrSessionPlayersDeleteFailed   = errors.New("failed to delete session players entry")
	ErrSessionPlayersMergeFailed    = errors.New("failed to merge session players")
)

type SessionPlayersService interface {
	CreateSessionPlayers(ctx context.Context, input SessionPlayersInput) (*models.SessionPlayers, error)
	GetSessionPlayersByID(ctx context.Context, id string) (*models.SessionPlayers, error)
	GetAllSessionPlayers(ctx context.Context) ([]models.SessionPlayers, error)
	UpdateSessionPlayers(ctx context.Context, id string, input UpdateSessionPlayersInput) (*models.SessionPlayers, error)
	DeleteSessionPlayers(ctx context.Context, id string) error
	// MergeSessionPlayers создаёт запись или полностью перезаписывает запись с тем же id.
	MergeSessionPlayers(ctx context.Context, input SessionPlayersInput) (*models.SessionPlayers, error)
	// MergeAllSessionPlayers применяет merge ко всем записям партии атомарно.
	// session_id каждой записи заменяется на sessionID.
	MergeAllSessionPlayers(ctx context.Context, sessionID string, inputs []SessionPlayersInput) ([]models.SessionPlayers, error)
}

// SessionPlayersInput используется для create и merge: все поля, кроме id, обязательны.
// В теле PUT /sessions/{id}/players поле session_id можно не передавать.
type SessionPlayersInput struct {
	ID        *string `json:"id"`
	SessionID *string `json:"session_id"`
	PlayerID  *string `json:"player_id"`
	Score     *int    `json:"score"`
	Team      *int    `json:"team"`
	Winner    *bool   `json:"winner"`
}

type UpdateSessionPlayersInput struct {
	SessionID *string `json:"session_id"`
	PlayerID  *string `json:"player_id"`
	Score     *int    `json:"score"`
	Team      *int    `json:"team"`
	Winner    *bool   `json:"winner"`
}

type sessionPlayersService struct {
	repo        repositories.SessionPlayersRepository
	sessionRepo repositories.SessionRepository
	playerRepo  repositories.PlayerRepository
	logger      *slog.Logger
}

func NewSessionPlayersService(
	repo repositories.SessionPlayersRepository,
	sessionRepo repositories.SessionRepository,
	playerRepo repositories.PlayerRepository,
	logger *slog.Logger,
) SessionPlayersService {
	if logger == nil {
		logger = slog.Default()
	}
	return &sessionPlayersService{
		repo:        repo,
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,
		logger:      logger,
	}
}

func (s *sessionPlayersService) CreateSessionPlayers(ctx context.Context, input SessionPlayersInput) (*models.SessionPlayers, error) {
	sp, err := s.buildEntry(input, nil)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, sp.SessionID, sp.PlayerID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, sp); err != nil {
		switch {
		case errors.Is(err, repositories.ErrSessionPlayersConflict):
			return nil, ErrSessionPlayersConflict
		case errors.Is(err, repositories.ErrSessionPlayersReferenceInvalid):
			return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
		default:
			return nil, fmt.Errorf("%w: %w", ErrSessionPlayersCreationFailed, err)
		}
	}
	return sp, nil
}

func (s *sessionPlayersService) GetSessionPlayersByID(ctx context.Context, id string) (*models.SessionPlayers, error) {
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionPlayersNotFound) {
			return nil, ErrSessionPlayersNotFound
		}
		return nil, fmt.Errorf("failed to get session players entry by id %s: %w", id, err)
	}
	return sp, nil
}

func (s *sessionPlayersService) GetAllSessionPlayers(ctx context.Context) ([]models.SessionPlayers, error) {
	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all session players: %w", err)
	}
	if entries == nil {
		return []models.SessionPlayers{}, nil
	}
	return entries, nil
}

func (s *sessionPlayersService) UpdateSessionPlayers(ctx context.Context, id string, input UpdateSessionPlayersInput) (*models.SessionPlayers, error) {
	if _, err := s.GetSessionPlayersByID(ctx, id); err != nil {
		return nil, err
	}

	if input.SessionID != nil {
		if err := s.checkSession(ctx, *input.SessionID); err != nil {
			return nil, err
		}
	}
	if input.PlayerID != nil {
		if err := s.checkPlayer(ctx, *input.PlayerID); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, id, repositories.SessionPlayersUpdate{
		SessionID: input.SessionID,
		PlayerID:  input.PlayerID,
		Score:     input.Score,
		Team:      input.Team,
		Winner:    input.Winner,
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrSessionPlayersNotFound):
			return nil, ErrSessionPlayersNotFound
		case errors.Is(err, repositories.ErrSessionPlayersReferenceInvalid):
			return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
		default:
			return nil, fmt.Errorf("%w (id: %s): %w", ErrSessionPlayersUpdateFailed, id, err)
		}
	}
	return updated, nil
}

func (s *sessionPlayersService) DeleteSessionPlayers(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrSessionPlayersNotFound) {
			return ErrSessionPlayersNotFound
		}
		return fmt.Errorf("%w (id: %s): %w", ErrSessionPlayersDeleteFailed, id, err)
	}
	return nil
}

func (s *sessionPlayersService) MergeSessionPlayers(ctx context.Context, input SessionPlayersInput) (*models.SessionPlayers, error) {
	sp, err := s.buildEntry(input, nil)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, sp.SessionID, sp.PlayerID); err != nil {
		return nil, err
	}

	if err := s.repo.Merge(ctx, sp); err != nil {
		return nil, s.mergeError(err)
	}
	return sp, nil
}

func (s *sessionPlayersService) MergeAllSessionPlayers(ctx context.Context, sessionID string, inputs []SessionPlayersInput) ([]models.SessionPlayers, error) {
	if inputs == nil {
		return nil, ErrSessionPlayersRequired
	}

	s.logger.DebugContext(ctx, "merging session players",
		slog.String("session_id", sessionID),
		slog.Int("count", len(inputs)),
	)

	if err := s.checkSession(ctx, sessionID); err != nil {
		if errors.Is(err, ErrSessionReferenceInvalid) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	entries := make([]models.SessionPlayers, 0, len(inputs))
	checkedPlayers := make(map[string]bool)
	for i, input := range inputs {
		sp, err := s.buildEntry(input, &sessionID)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if !checkedPlayers[sp.PlayerID] {
			if err := s.checkPlayer(ctx, sp.PlayerID); err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			checkedPlayers[sp.PlayerID] = true
		}
		entries = append(entries, *sp)
	}

	merged, err := s.repo.MergeAll(ctx, sessionID, entries)
	if err != nil {
		return nil, s.mergeError(err)
	}
	return merged, nil
}

// buildEntry проверяет обязательные поля. Если sessionID задан, он имеет приоритет над телом.
func (s *sessionPlayersService) buildEntry(input SessionPlayersInput, sessionID *string) (*models.SessionPlayers, error) {
	if sessionID == nil {
		if err := requireField(input.SessionID, "session_id"); err != nil {
			return nil, err
		}
		sessionID = input.SessionID
	}
	if err := requireField(input.PlayerID, "player_id"); err != nil {
		return nil, err
	}
	if err := requireField(input.Score, "score"); err != nil {
		return nil, err
	}
	if err := requireField(input.Team, "team"); err != nil {
		return nil, err
	}
	if err := requireField(input.Winner, "winner"); err != nil {
		return nil, err
	}

	id := optionalID(input.ID)
	if id == reservedSessionPlayersID {
		return nil, fmt.Errorf("%w: id %q is reserved", ErrValidationFailed, id)
	}

	return &models.SessionPlayers{
		ID:        id,
		SessionID: *sessionID,
		PlayerID:  *input.PlayerID,
		Score:     *input.Score,
		Team:      *input.Team,
		Winner:    *input.Winner,
	}, nil
}

func (s *sessionPlayersService) mergeError(err error) error {
	switch {
	case errors.Is(err, repositories.ErrSessionPlayersBatchNil):
		return ErrSessionPlayersRequired
	case errors.Is(err, repositories.ErrSessionPlayersReferenceInvalid):
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	default:
		return fmt.Errorf("%w: %w", ErrSessionPlayersMergeFailed, err)
	}
}

func (s *sessionPlayersService) checkReferences(ctx context.Context, sessionID, playerID string) error {
	if err := s.checkSession(ctx, sessionID); err != nil {
		return err
	}
	return s.checkPlayer(ctx, playerID)
}

func (s *sessionPlayersService) checkSession(ctx context.Context, sessionID string) error {
	exists, err := s.sessionRepo.Exists(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to check session %s: %w", sessionID, err)
	}
	if !exists {
		return ErrSessionReferenceInvalid
	}
	return nil
}

func (s *sessionPlayersService) checkPlayer(ctx context.Context, playerID string) error {
	exists, err := s.playerRepo.Exists(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to check player %s: %w", playerID, err)
	}
	if !exists {
		return ErrPlayerReferenceInvalid
	}
	return nil
}
