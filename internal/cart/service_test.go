package cart

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razoraze123/gnamgnam/internal/domain"
)

type memStore struct {
	lines map[string][]domain.CartLine
	err   error
}

func newMemStore() *memStore {
	return &memStore{lines: make(map[string][]domain.CartLine)}
}

func (m *memStore) Load(_ context.Context, sessionID string) ([]domain.CartLine, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.lines[sessionID], nil
}

func (m *memStore) Save(_ context.Context, sessionID string, lines []domain.CartLine) error {
	if m.err != nil {
		return m.err
	}
	saved := make([]domain.CartLine, len(lines))
	copy(saved, lines)
	m.lines[sessionID] = saved
	return nil
}

func (m *memStore) Delete(_ context.Context, sessionID string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.lines, sessionID)
	return nil
}

func testProduct(id string, price, stock int64) domain.Product {
	return domain.Product{ID: id, Name: "Bouillie " + id, Price: price, Stock: stock}
}

func newTestService() (*Service, *memStore) {
	store := newMemStore()
	log := logrus.New()
	return NewService(store, log), store
}

func TestAddItem_NewLineStartsAtOne(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, "s1", testProduct("a", 500, 10))
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(1), cart.Lines[0].Quantity)
}

func TestAddItem_ExistingLineIncrements(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", testProduct("a", 500, 10))
	require.NoError(t, err)
	cart, err := svc.AddItem(ctx, "s1", testProduct("a", 500, 10))
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(2), cart.Lines[0].Quantity)
}

func TestAddItem_NeverDuplicatesProductLines(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.AddItem(ctx, "s1", testProduct("a", 500, 10))
		require.NoError(t, err)
	}
	_, err := svc.AddItem(ctx, "s1", testProduct("b", 1000, 10))
	require.NoError(t, err)

	cart, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 2)
	for _, l := range cart.Lines {
		assert.GreaterOrEqual(t, l.Quantity, int64(1))
	}
}

func TestAddItem_OutOfStock(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddItem(context.Background(), "s1", testProduct("a", 500, 0))
	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestAddItem_StopsAtAvailableStock(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	p := testProduct("a", 500, 2)
	_, err := svc.AddItem(ctx, "s1", p)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "s1", p)
	require.NoError(t, err)

	_, err = svc.AddItem(ctx, "s1", p)
	assert.ErrorIs(t, err, ErrInsufficientStock)

	cart, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), cart.Lines[0].Quantity)
}

func TestSetQuantity_AbsoluteSet(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", testProduct("a", 500, 10))
	require.NoError(t, err)

	cart, err := svc.SetQuantity(ctx, "s1", "a", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cart.Lines[0].Quantity)
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", testProduct("a", 500, 10))
	require.NoError(t, err)

	cart, err := svc.SetQuantity(ctx, "s1", "a", 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestSetQuantity_NegativeRemovesLine(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", testProduct("a", 500, 10))
	require.NoError(t, err)

	cart, err := svc.SetQuantity(ctx, "s1", "a", -3)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
}

func TestSetQuantity_ClampsToStock(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", testProduct("a", 500, 4))
	require.NoError(t, err)

	cart, err := svc.SetQuantity(ctx, "s1", "a", 99)
	require.NoError(t, err)
	assert.Equal(t, int64(4), cart.Lines[0].Quantity)
}

func TestRemoveItem_AbsentProductIsNoop(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", testProduct("a", 500, 10))
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, "s1", "does-not-exist")
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 1)
}

func TestClear_EmptiesCart(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", testProduct("a", 500, 10))
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "s1", testProduct("b", 1000, 10))
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "s1"))

	cart, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
	assert.Equal(t, int64(0), cart.Subtotal())
}

func TestDerivedTotals(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", testProduct("a", 500, 10))
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "s1", testProduct("a", 500, 10))
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "s1", testProduct("b", 1000, 10))
	require.NoError(t, err)

	cart, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(2000), cart.Subtotal())
	assert.Equal(t, int64(3), cart.ItemCount())
}

func TestSessionsAreIsolated(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", testProduct("a", 500, 10))
	require.NoError(t, err)

	other, err := svc.Get(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, other.Lines)
}
