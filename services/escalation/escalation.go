package escalation

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"tagsweep/clients"
	"tagsweep/core"
	"tagsweep/models"
)

// cardTitleSuffix is appended to the order identifier on escalation cards
const cardTitleSuffix = " - NeedPhotoNoShip follow-up"

// EscalationService creates Trello cards for escalated orders. The
// destination board/list pair is resolved once and cached process-wide;
// concurrent first-use may resolve twice, which is harmless.
type EscalationService struct {
	trelloClient clients.TrelloClient

	// Direct identifiers; when both are set, name resolution is skipped
	boardID string
	listID  string

	// Fallback display names for resolution
	boardName string
	listName  string

	mu     sync.Mutex
	cached *models.BoardListIdentity
}

// NewEscalationService creates a new instance of EscalationService
func NewEscalationService(trelloClient clients.TrelloClient, boardID, listID, boardName, listName string) *EscalationService {
	return &EscalationService{
		trelloClient: trelloClient,
		boardID:      boardID,
		listID:       listID,
		boardName:    boardName,
		listName:     listName,
	}
}

// ResolveBoardList returns the escalation destination. Directly configured
// identifiers are used unconditionally, without existence validation.
// Otherwise the board and list are found by case-insensitive name match
// among the open boards/lists, and the result is cached.
func (s *EscalationService) ResolveBoardList(ctx context.Context) (models.BoardListIdentity, error) {
	if s.boardID != "" && s.listID != "" {
		return models.BoardListIdentity{BoardID: s.boardID, ListID: s.listID}, nil
	}

	s.mu.Lock()
	if s.cached != nil {
		identity := *s.cached
		s.mu.Unlock()
		return identity, nil
	}
	s.mu.Unlock()

	identity, err := s.resolveByName(ctx)
	if err != nil {
		return models.BoardListIdentity{}, err
	}

	s.mu.Lock()
	s.cached = &identity
	s.mu.Unlock()

	log.Printf("✅ Resolved Trello destination: board %s, list %s", identity.BoardID, identity.ListID)
	return identity, nil
}

func (s *EscalationService) resolveByName(ctx context.Context) (models.BoardListIdentity, error) {
	boards, err := s.trelloClient.ListOpenBoards(ctx)
	if err != nil {
		return models.BoardListIdentity{}, fmt.Errorf("failed to fetch boards: %w", err)
	}

	var boardID string
	for _, board := range boards {
		if namesEqual(board.Name, s.boardName) {
			boardID = board.ID
			break
		}
	}
	if boardID == "" {
		return models.BoardListIdentity{}, fmt.Errorf("%w: %q", core.ErrBoardNotFound, s.boardName)
	}

	lists, err := s.trelloClient.ListOpenLists(ctx, boardID)
	if err != nil {
		return models.BoardListIdentity{}, fmt.Errorf("failed to fetch lists: %w", err)
	}

	for _, list := range lists {
		if namesEqual(list.Name, s.listName) {
			return models.BoardListIdentity{BoardID: boardID, ListID: list.ID}, nil
		}
	}
	return models.BoardListIdentity{}, fmt.Errorf("%w: %q", core.ErrListNotFound, s.listName)
}

// WarmupBoardList eagerly resolves the destination at startup. Failure is
// logged, not fatal - resolution will be retried lazily on first use.
func (s *EscalationService) WarmupBoardList(ctx context.Context) {
	if _, err := s.ResolveBoardList(ctx); err != nil {
		log.Printf("⚠️ Eager Trello resolution failed, will retry on first use: %v", err)
	}
}

// EscalateOrder creates one card for the order. Repeated escalation of the
// same order produces repeated cards; no dedup is attempted.
func (s *EscalationService) EscalateOrder(ctx context.Context, orderName string) (*models.TrelloCard, error) {
	identity, err := s.ResolveBoardList(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve Trello destination: %w", err)
	}

	description := fmt.Sprintf("Escalated from the daily NeedPhotoNoShip reminder on %s.",
		time.Now().UTC().Format("2006-01-02"))
	card, err := s.trelloClient.CreateCard(ctx, identity.ListID, orderName+cardTitleSuffix, description)
	if err != nil {
		return nil, fmt.Errorf("failed to create card for %s: %w", orderName, err)
	}

	log.Printf("✅ Created escalation card %s for order %s", card.ID, orderName)
	return card, nil
}

func namesEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
