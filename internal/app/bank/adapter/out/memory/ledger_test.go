package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-mem-bank/internal/app/bank/domain"
)

func TestOpenAccount(t *testing.T) {
	l := NewLedger()

	a, err := l.OpenAccount("1234567890", 1000)
	require.NoError(t, err)
	assert.Equal(t, "1234567890", a.AccountNumber())
	assert.Equal(t, 1000.0, a.Balance())

	got, err := l.Account("1234567890")
	require.NoError(t, err)
	assert.Same(t, a, got)
}

func TestOpenAccountDuplicate(t *testing.T) {
	l := NewLedger()

	_, err := l.OpenAccount("A", 1)
	require.NoError(t, err)

	_, err = l.OpenAccount("A", 2)
	require.ErrorIs(t, err, domain.ErrAccountAlreadyExists)

	a, err := l.Account("A")
	require.NoError(t, err)
	assert.Equal(t, 1.0, a.Balance())
}

func TestAccountNotFound(t *testing.T) {
	_, err := NewLedger().Account("missing")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountsKeepsOpeningOrder(t *testing.T) {
	l := NewLedger()
	for _, id := range []string{"c", "a", "b"} {
		_, err := l.OpenAccount(id, 0)
		require.NoError(t, err)
	}

	ids := l.Accounts()
	assert.Equal(t, []string{"c", "a", "b"}, ids)

	ids[0] = "z"
	assert.Equal(t, []string{"c", "a", "b"}, l.Accounts())
}

func TestAccountOptionsApplied(t *testing.T) {
	at := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	l := NewLedger(domain.WithClock(func() time.Time { return at }))

	a, err := l.OpenAccount("A", 0)
	require.NoError(t, err)
	require.NoError(t, a.Deposit(10))

	assert.Equal(t, at, a.TransactionHistory()[0].Date)
}
