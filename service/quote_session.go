package service

import (
	"context"
	"log"
	"sync"
	"time"

	"benbao-ev/models"

	"github.com/google/uuid"
)

// translateTimeout bounds one collaborator round trip
const translateTimeout = 30 * time.Second

// QuoteSession is one open quote-builder: a cart, the selected language and
// document type, and the working display copy of the cart (translated when
// the language is English). All access goes through its mutex.
type QuoteSession struct {
	ID        string
	CreatedAt time.Time

	mu           sync.Mutex
	cart         *Cart
	language     string
	docType      string
	displayLines []models.CartLine
	translating  bool
	token        uint64 // latest issued translation request token
}

// QuoteService owns the quote sessions and drives the translation sync.
// Catalog lookups go through the repositories; the cart itself never touches
// storage.
type QuoteService struct {
	vehicleRepo   repositoryVehicle
	accessoryRepo repositoryAccessory
	translator    TranslatorInterface

	mu       sync.RWMutex
	sessions map[string]*QuoteSession
}

// Narrow views of the repository interfaces; keeps the service mockable
// without importing the repository package.
type repositoryVehicle interface {
	GetByID(ctx context.Context, id string) (*models.Vehicle, error)
}

type repositoryAccessory interface {
	GetByID(ctx context.Context, id string) (*models.Accessory, error)
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(vehicleRepo repositoryVehicle, accessoryRepo repositoryAccessory, translator TranslatorInterface) *QuoteService {
	return &QuoteService{
		vehicleRepo:   vehicleRepo,
		accessoryRepo: accessoryRepo,
		translator:    translator,
		sessions:      make(map[string]*QuoteSession),
	}
}

// CreateSession opens a new quote-builder session with an empty cart,
// Chinese language and quotation document type.
func (s *QuoteService) CreateSession() models.QuoteState {
	session := &QuoteSession{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		cart:      NewCart(),
		language:  models.LanguageZH,
		docType:   models.DocTypeQuotation,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	log.Printf("🧾 Quote session created: %s", session.ID)
	return session.state()
}

// ListSessions returns the state of all open sessions
func (s *QuoteService) ListSessions() []models.QuoteState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	states := make([]models.QuoteState, 0, len(s.sessions))
	for _, session := range s.sessions {
		session.mu.Lock()
		states = append(states, session.stateLocked())
		session.mu.Unlock()
	}
	return states
}

// DeleteSession discards a session. Unknown ids are not an error: the cart
// is session-scoped and a stale delete changes nothing.
func (s *QuoteService) DeleteSession(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	log.Printf("🗑️  Quote session deleted: %s", id)
}

func (s *QuoteService) session(id string) (*QuoteSession, error) {
	s.mu.RLock()
	session, exists := s.sessions[id]
	s.mu.RUnlock()
	if !exists {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// State returns the current state of a session
func (s *QuoteService) State(id string) (models.QuoteState, error) {
	session, err := s.session(id)
	if err != nil {
		return models.QuoteState{}, err
	}
	return session.state(), nil
}

// AddVehicle adds one unit of the vehicle to the session cart. An unknown
// vehicle id is a silent no-op; a repository error is reported.
func (s *QuoteService) AddVehicle(ctx context.Context, sessionID, vehicleID, color string) (models.QuoteState, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return models.QuoteState{}, err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return models.QuoteState{}, err
	}
	if vehicle == nil {
		log.Printf("⚠️  AddVehicle: unknown vehicle id %q, ignoring", vehicleID)
		return session.state(), nil
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.cart.AddVehicle(vehicle, color)
	s.resyncLocked(session)
	return session.stateLocked(), nil
}

// AddAccessory adds one unit of the accessory to the session cart. An
// unknown accessory id is a silent no-op.
func (s *QuoteService) AddAccessory(ctx context.Context, sessionID, accessoryID string) (models.QuoteState, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return models.QuoteState{}, err
	}

	accessory, err := s.accessoryRepo.GetByID(ctx, accessoryID)
	if err != nil {
		return models.QuoteState{}, err
	}
	if accessory == nil {
		log.Printf("⚠️  AddAccessory: unknown accessory id %q, ignoring", accessoryID)
		return session.state(), nil
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.cart.AddAccessory(accessory)
	s.resyncLocked(session)
	return session.stateLocked(), nil
}

// RemoveLine removes the line at index; out-of-range indices are tolerated
func (s *QuoteService) RemoveLine(sessionID string, index int) (models.QuoteState, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return models.QuoteState{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.cart.RemoveLine(index) {
		s.resyncLocked(session)
	}
	return session.stateLocked(), nil
}

// SetQuantity updates the quantity at index; quantities below 1 are ignored
func (s *QuoteService) SetQuantity(sessionID string, index, qty int) (models.QuoteState, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return models.QuoteState{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.cart.SetQuantity(index, qty) {
		s.resyncLocked(session)
	}
	return session.stateLocked(), nil
}

// SetLanguage switches the document language. Switching to English starts a
// translation pass; switching back to Chinese resolves immediately with the
// untranslated cart and no collaborator call.
func (s *QuoteService) SetLanguage(sessionID, language string) (models.QuoteState, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return models.QuoteState{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	if session.language != language {
		session.language = language
		s.resyncLocked(session)
	}
	return session.stateLocked(), nil
}

// SetDocType switches between quotation and price list. Rendering is a pure
// projection, so this never alters cart contents or triggers translation.
func (s *QuoteService) SetDocType(sessionID, docType string) (models.QuoteState, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return models.QuoteState{}, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	session.docType = docType
	return session.stateLocked(), nil
}

// DisplayLines returns the working display copy of the cart plus the
// language/docType pair and whether a translation is still in flight.
func (s *QuoteService) DisplayLines(sessionID string) ([]models.CartLine, string, string, bool, error) {
	session, err := s.session(sessionID)
	if err != nil {
		return nil, "", "", false, err
	}

	session.mu.Lock()
	defer session.mu.Unlock()
	return models.CloneLines(session.displayLines), session.language, session.docType, session.translating, nil
}

// resyncLocked re-derives the display state after a cart mutation or a
// language switch. Issuing a new token invalidates any in-flight translation:
// only the response carrying the latest token may ever be applied
// (last-request-wins).
func (s *QuoteService) resyncLocked(session *QuoteSession) {
	session.token++
	token := session.token

	lines := session.cart.Lines()
	if session.language != models.LanguageEN || len(lines) == 0 {
		session.translating = false
		session.displayLines = lines
		return
	}

	session.translating = true
	session.displayLines = nil
	go s.runTranslation(session, token, lines)
}

// runTranslation performs one collaborator round trip for the given cart
// snapshot and applies the result only if the token is still the latest.
func (s *QuoteService) runTranslation(session *QuoteSession, token uint64, lines []models.CartLine) {
	// Only vehicle lines carry translatable fields; accessories pass through.
	var vehicles []models.Vehicle
	for _, line := range lines {
		if line.Kind == models.LineKindVehicle {
			vehicles = append(vehicles, *line.Vehicle)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), translateTimeout)
	defer cancel()

	translated, err := s.translator.TranslateVehicles(ctx, vehicles)

	session.mu.Lock()
	defer session.mu.Unlock()

	if token != session.token {
		log.Printf("⏭️  Discarding stale translation response (token %d, latest %d)", token, session.token)
		return
	}

	display, applyErr := attachTranslations(lines, vehicles, translated, err)
	if applyErr != nil {
		// Collaborator failure degrades to the untranslated cart verbatim;
		// the requested language stays selected and export re-enables.
		log.Printf("⚠️  Translation failed, falling back to untranslated cart: %v", applyErr)
		display = lines
	}

	session.displayLines = display
	session.translating = false
}

// state returns a JSON-ready snapshot of the session
func (session *QuoteSession) state() models.QuoteState {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.stateLocked()
}

func (session *QuoteSession) stateLocked() models.QuoteState {
	return models.QuoteState{
		ID:           session.ID,
		Language:     session.language,
		DocType:      session.docType,
		Translating:  session.translating,
		Lines:        session.cart.Lines(),
		DisplayLines: models.CloneLines(session.displayLines),
		Total:        session.cart.Total(),
		CreatedAt:    session.CreatedAt.Format(time.RFC3339),
	}
}
