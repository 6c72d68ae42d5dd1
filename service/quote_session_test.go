package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"benbao-ev/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockVehicleRepo struct {
	vehicles map[string]models.Vehicle
}

func (m *mockVehicleRepo) GetByID(_ context.Context, id string) (*models.Vehicle, error) {
	v, exists := m.vehicles[id]
	if !exists {
		return nil, nil
	}
	cp := v
	return &cp, nil
}

type mockAccessoryRepo struct {
	accessories map[string]models.Accessory
}

func (m *mockAccessoryRepo) GetByID(_ context.Context, id string) (*models.Accessory, error) {
	a, exists := m.accessories[id]
	if !exists {
		return nil, nil
	}
	cp := a
	return &cp, nil
}

// mockTranslator lets a test script each collaborator round trip: fn builds
// the response, block (when non-nil) holds the call open until released.
type mockTranslator struct {
	m     sync.Mutex
	calls int
	fn    func(call int, vehicles []models.Vehicle) ([]models.Vehicle, error)
	block map[int]chan struct{}
}

func (m *mockTranslator) TranslateVehicles(_ context.Context, vehicles []models.Vehicle) ([]models.Vehicle, error) {
	m.m.Lock()
	m.calls++
	call := m.calls
	gate := m.block[call]
	fn := m.fn
	m.m.Unlock()

	if gate != nil {
		<-gate
	}
	return fn(call, vehicles)
}

func (m *mockTranslator) callCount() int {
	m.m.Lock()
	defer m.m.Unlock()
	return m.calls
}

// translateOK translates names by prefixing, keeping order and passing
// id/model/price through like the real collaborator
func translateOK(prefix string) func(int, []models.Vehicle) ([]models.Vehicle, error) {
	return func(_ int, vehicles []models.Vehicle) ([]models.Vehicle, error) {
		out := make([]models.Vehicle, len(vehicles))
		for i, v := range vehicles {
			out[i] = v
			out[i].Name = prefix + v.Name
		}
		return out, nil
	}
}

func newTestQuoteService(translator TranslatorInterface) *QuoteService {
	vehicles := &mockVehicleRepo{vehicles: map[string]models.Vehicle{
		"v1": *testVehicle("v1", 10000, "红色", "黑色"),
		"v2": *testVehicle("v2", 3980, "白色"),
	}}
	accessories := &mockAccessoryRepo{accessories: map[string]models.Accessory{
		"a1": *testAccessory("a1", 500),
	}}
	return NewQuoteService(vehicles, accessories, translator)
}

func waitIdle(t *testing.T, s *QuoteService, sessionID string) models.QuoteState {
	t.Helper()
	var state models.QuoteState
	require.Eventually(t, func() bool {
		var err error
		state, err = s.State(sessionID)
		require.NoError(t, err)
		return !state.Translating
	}, 2*time.Second, 10*time.Millisecond)
	return state
}

func TestAddUnknownIDIsSilentNoop(t *testing.T) {
	s := newTestQuoteService(NoopTranslator{})
	session := s.CreateSession()

	state, err := s.AddVehicle(context.Background(), session.ID, "missing", "")
	require.NoError(t, err)
	assert.Empty(t, state.Lines)

	state, err = s.AddAccessory(context.Background(), session.ID, "missing")
	require.NoError(t, err)
	assert.Empty(t, state.Lines)
}

func TestSessionNotFound(t *testing.T) {
	s := newTestQuoteService(NoopTranslator{})

	_, err := s.AddVehicle(context.Background(), "nope", "v1", "")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = s.SetLanguage("nope", models.LanguageEN)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestDefaultLanguageSkipsCollaborator(t *testing.T) {
	translator := &mockTranslator{fn: translateOK("EN ")}
	s := newTestQuoteService(translator)
	session := s.CreateSession()

	_, err := s.AddVehicle(context.Background(), session.ID, "v1", "红色")
	require.NoError(t, err)

	state, err := s.State(session.ID)
	require.NoError(t, err)
	assert.False(t, state.Translating)
	require.Len(t, state.DisplayLines, 1)
	assert.Equal(t, "奔宝 v1", state.DisplayLines[0].Vehicle.Name)
	assert.Equal(t, 0, translator.callCount())
}

func TestTranslationSuccessReattachesMetadata(t *testing.T) {
	translator := &mockTranslator{fn: translateOK("EN ")}
	s := newTestQuoteService(translator)
	session := s.CreateSession()
	ctx := context.Background()

	_, err := s.AddVehicle(ctx, session.ID, "v1", "黑色")
	require.NoError(t, err)
	_, err = s.AddAccessory(ctx, session.ID, "a1")
	require.NoError(t, err)
	_, err = s.AddVehicle(ctx, session.ID, "v2", "")
	require.NoError(t, err)
	_, err = s.SetQuantity(session.ID, 0, 4)
	require.NoError(t, err)

	_, err = s.SetLanguage(session.ID, models.LanguageEN)
	require.NoError(t, err)

	state := waitIdle(t, s, session.ID)
	require.Len(t, state.DisplayLines, 3)

	// Vehicle lines carry translated text with the original quantity,
	// color, id, model and price; cart order is preserved
	first := state.DisplayLines[0]
	assert.Equal(t, "EN 奔宝 v1", first.Vehicle.Name)
	assert.Equal(t, "v1", first.Vehicle.ID)
	assert.Equal(t, int64(10000), first.Vehicle.Price)
	assert.Equal(t, "黑色", first.SelectedColor)
	assert.Equal(t, 4, first.Quantity)

	// Accessory lines pass through untouched, in place
	assert.Equal(t, models.LineKindAccessory, state.DisplayLines[1].Kind)
	assert.Equal(t, "a1", state.DisplayLines[1].Accessory.ID)

	assert.Equal(t, "EN 奔宝 v2", state.DisplayLines[2].Vehicle.Name)
	assert.Equal(t, "白色", state.DisplayLines[2].SelectedColor)

	// The untranslated cart is untouched
	assert.Equal(t, "奔宝 v1", state.Lines[0].Vehicle.Name)
}

func TestTranslationFailureFallsBackVerbatim(t *testing.T) {
	translator := &mockTranslator{fn: func(int, []models.Vehicle) ([]models.Vehicle, error) {
		return nil, errors.New("collaborator unreachable")
	}}
	s := newTestQuoteService(translator)
	session := s.CreateSession()
	ctx := context.Background()

	_, err := s.AddVehicle(ctx, session.ID, "v1", "红色")
	require.NoError(t, err)
	_, err = s.SetLanguage(session.ID, models.LanguageEN)
	require.NoError(t, err)

	state := waitIdle(t, s, session.ID)

	// Untranslated cart verbatim, requested language still selected,
	// export re-enabled (translating false)
	assert.Equal(t, models.LanguageEN, state.Language)
	require.Len(t, state.DisplayLines, 1)
	assert.Equal(t, "奔宝 v1", state.DisplayLines[0].Vehicle.Name)

	_, _, _, translating, err := s.DisplayLines(session.ID)
	require.NoError(t, err)
	assert.False(t, translating)
}

func TestTranslationOrderMismatchIsFailure(t *testing.T) {
	// The collaborator echoes ids but swaps the two vehicles; positional
	// re-attachment must not silently swap quantities/colors between them
	translator := &mockTranslator{fn: func(_ int, vehicles []models.Vehicle) ([]models.Vehicle, error) {
		out := make([]models.Vehicle, len(vehicles))
		for i, v := range vehicles {
			out[len(vehicles)-1-i] = v
		}
		return out, nil
	}}
	s := newTestQuoteService(translator)
	session := s.CreateSession()
	ctx := context.Background()

	_, err := s.AddVehicle(ctx, session.ID, "v1", "红色")
	require.NoError(t, err)
	_, err = s.AddVehicle(ctx, session.ID, "v2", "白色")
	require.NoError(t, err)
	_, err = s.SetQuantity(session.ID, 0, 7)
	require.NoError(t, err)

	_, err = s.SetLanguage(session.ID, models.LanguageEN)
	require.NoError(t, err)

	state := waitIdle(t, s, session.ID)
	require.Len(t, state.DisplayLines, 2)

	// Fallback to the untranslated cart: v1 keeps its quantity and color
	assert.Equal(t, "v1", state.DisplayLines[0].Vehicle.ID)
	assert.Equal(t, 7, state.DisplayLines[0].Quantity)
	assert.Equal(t, "红色", state.DisplayLines[0].SelectedColor)
	assert.Equal(t, "v2", state.DisplayLines[1].Vehicle.ID)
	assert.Equal(t, 1, state.DisplayLines[1].Quantity)
}

func TestStaleTranslationResponseDiscarded(t *testing.T) {
	gate := make(chan struct{})
	translator := &mockTranslator{
		block: map[int]chan struct{}{1: gate},
		fn: func(call int, vehicles []models.Vehicle) ([]models.Vehicle, error) {
			prefix := "FRESH "
			if call == 1 {
				prefix = "STALE "
			}
			out := make([]models.Vehicle, len(vehicles))
			for i, v := range vehicles {
				out[i] = v
				out[i].Name = prefix + v.Name
			}
			return out, nil
		},
	}
	s := newTestQuoteService(translator)
	session := s.CreateSession()
	ctx := context.Background()

	_, err := s.AddVehicle(ctx, session.ID, "v1", "红色")
	require.NoError(t, err)

	// First translation request hangs at the collaborator
	_, err = s.SetLanguage(session.ID, models.LanguageEN)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return translator.callCount() == 1 }, time.Second, 5*time.Millisecond)

	// A cart mutation invalidates it and issues a second request
	_, err = s.AddVehicle(ctx, session.ID, "v2", "")
	require.NoError(t, err)

	state := waitIdle(t, s, session.ID)
	require.Len(t, state.DisplayLines, 2)
	assert.Equal(t, "FRESH 奔宝 v1", state.DisplayLines[0].Vehicle.Name)

	// Release the stale response; it must not overwrite the newer state
	close(gate)
	time.Sleep(50 * time.Millisecond)

	state, err = s.State(session.ID)
	require.NoError(t, err)
	require.Len(t, state.DisplayLines, 2)
	assert.Equal(t, "FRESH 奔宝 v1", state.DisplayLines[0].Vehicle.Name)
	assert.Equal(t, "FRESH 奔宝 v2", state.DisplayLines[1].Vehicle.Name)
}

func TestSwitchBackToChineseResolvesImmediately(t *testing.T) {
	gate := make(chan struct{})
	defer close(gate)
	translator := &mockTranslator{
		block: map[int]chan struct{}{1: gate},
		fn:    translateOK("EN "),
	}
	s := newTestQuoteService(translator)
	session := s.CreateSession()
	ctx := context.Background()

	_, err := s.AddVehicle(ctx, session.ID, "v1", "红色")
	require.NoError(t, err)
	_, err = s.SetLanguage(session.ID, models.LanguageEN)
	require.NoError(t, err)

	state, err := s.State(session.ID)
	require.NoError(t, err)
	assert.True(t, state.Translating)

	// Back to the default language: idle at once, no collaborator wait
	state, err = s.SetLanguage(session.ID, models.LanguageZH)
	require.NoError(t, err)
	assert.False(t, state.Translating)
	require.Len(t, state.DisplayLines, 1)
	assert.Equal(t, "奔宝 v1", state.DisplayLines[0].Vehicle.Name)
}

func TestDocTypeSwitchDoesNotTouchCart(t *testing.T) {
	s := newTestQuoteService(NoopTranslator{})
	session := s.CreateSession()
	ctx := context.Background()

	_, err := s.AddVehicle(ctx, session.ID, "v1", "红色")
	require.NoError(t, err)
	_, err = s.SetQuantity(session.ID, 0, 3)
	require.NoError(t, err)

	before, err := s.State(session.ID)
	require.NoError(t, err)

	_, err = s.SetDocType(session.ID, models.DocTypePriceList)
	require.NoError(t, err)
	_, err = s.SetDocType(session.ID, models.DocTypeQuotation)
	require.NoError(t, err)

	after, err := s.State(session.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Lines, after.Lines)
	assert.Equal(t, before.Total, after.Total)
}
