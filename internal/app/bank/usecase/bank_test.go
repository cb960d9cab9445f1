package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/JoeShih716/go-mem-bank/internal/app/bank/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/bank/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/bank/usecase"
)

func newBank(t *testing.T) (*usecase.BankUseCase, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	bank := usecase.NewBankUseCase(memory.NewLedger(), zap.New(core))

	_, err := bank.OpenAccount("1234567890", 1000)
	require.NoError(t, err)
	_, err = bank.OpenAccount("0987654321", 500)
	require.NoError(t, err)
	return bank, logs
}

func TestScenario(t *testing.T) {
	bank, _ := newBank(t)

	require.NoError(t, bank.Deposit("1234567890", 500))
	require.NoError(t, bank.Withdraw("1234567890", 200))
	require.NoError(t, bank.Transfer("1234567890", "0987654321", 300))

	info1, err := bank.AccountInfo("1234567890")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountInfo{AccountNumber: "1234567890", Balance: 1000}, info1)

	info2, err := bank.AccountInfo("0987654321")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountInfo{AccountNumber: "0987654321", Balance: 800}, info2)

	history1, err := bank.TransactionHistory("1234567890")
	require.NoError(t, err)
	require.Len(t, history1, 4)
	assert.Equal(t, domain.TransactionTypeDeposit, history1[0].Type)
	assert.Equal(t, domain.TransactionTypeWithdraw, history1[1].Type)
	assert.Equal(t, domain.TransactionTypeWithdraw, history1[2].Type)
	assert.Equal(t, domain.TransactionTypeTransfer, history1[3].Type)
	assert.Equal(t, "Transferred to account 0987654321", history1[3].Details)

	history2, err := bank.TransactionHistory("0987654321")
	require.NoError(t, err)
	require.Len(t, history2, 2)
	assert.Equal(t, domain.TransactionTypeDeposit, history2[0].Type)
	assert.Equal(t, domain.TransactionTypeTransfer, history2[1].Type)
	assert.Equal(t, "Received from account 1234567890", history2[1].Details)
}

func TestErrorsKeepDomainKind(t *testing.T) {
	cases := []struct {
		name string
		run  func(b *usecase.BankUseCase) error
		want error
	}{
		{
			name: "deposit zero",
			run:  func(b *usecase.BankUseCase) error { return b.Deposit("1234567890", 0) },
			want: domain.ErrInvalidAmount,
		},
		{
			name: "withdraw negative",
			run:  func(b *usecase.BankUseCase) error { return b.Withdraw("1234567890", -5) },
			want: domain.ErrInvalidAmount,
		},
		{
			name: "withdraw too much",
			run:  func(b *usecase.BankUseCase) error { return b.Withdraw("1234567890", 1000.5) },
			want: domain.ErrInsufficientFunds,
		},
		{
			name: "transfer too much",
			run:  func(b *usecase.BankUseCase) error { return b.Transfer("0987654321", "1234567890", 501) },
			want: domain.ErrInsufficientFunds,
		},
		{
			name: "deposit unknown account",
			run:  func(b *usecase.BankUseCase) error { return b.Deposit("missing", 1) },
			want: domain.ErrAccountNotFound,
		},
		{
			name: "withdraw unknown account",
			run:  func(b *usecase.BankUseCase) error { return b.Withdraw("missing", 1) },
			want: domain.ErrAccountNotFound,
		},
		{
			name: "transfer unknown source",
			run:  func(b *usecase.BankUseCase) error { return b.Transfer("missing", "1234567890", 1) },
			want: domain.ErrAccountNotFound,
		},
		{
			name: "transfer unknown destination",
			run:  func(b *usecase.BankUseCase) error { return b.Transfer("1234567890", "missing", 1) },
			want: domain.ErrAccountNotFound,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			bank, logs := newBank(t)

			err := c.run(bank)
			require.ErrorIs(t, err, c.want)

			// 失敗的操作不得改變任何帳戶
			for _, id := range []string{"1234567890", "0987654321"} {
				history, err := bank.TransactionHistory(id)
				require.NoError(t, err)
				assert.Empty(t, history)
			}

			warns := logs.FilterLevelExact(zapcore.WarnLevel).All()
			require.Len(t, warns, 1)
			assert.Contains(t, warns[0].Message, "rejected")
			assert.Equal(t, c.want.Error(), warns[0].ContextMap()["error"])
		})
	}
}

func TestOpenAccountDuplicate(t *testing.T) {
	bank, _ := newBank(t)

	_, err := bank.OpenAccount("1234567890", 10)
	require.ErrorIs(t, err, domain.ErrAccountAlreadyExists)

	info, err := bank.AccountInfo("1234567890")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, info.Balance)
}

func TestQueriesUnknownAccount(t *testing.T) {
	bank, _ := newBank(t)

	_, err := bank.AccountInfo("missing")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = bank.TransactionHistory("missing")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAcceptedOperationsAreLogged(t *testing.T) {
	bank, logs := newBank(t)

	require.NoError(t, bank.Deposit("1234567890", 500))
	require.NoError(t, bank.Transfer("1234567890", "0987654321", 100))

	deposits := logs.FilterMessage("deposit accepted").All()
	require.Len(t, deposits, 1)
	assert.Equal(t, "1234567890", deposits[0].ContextMap()["account"])
	assert.Equal(t, 1500.0, deposits[0].ContextMap()["balance"])

	transfers := logs.FilterMessage("transfer accepted").All()
	require.Len(t, transfers, 1)
	assert.Equal(t, 1400.0, transfers[0].ContextMap()["from_balance"])
	assert.Equal(t, 600.0, transfers[0].ContextMap()["to_balance"])
}

func TestNilLogger(t *testing.T) {
	bank := usecase.NewBankUseCase(memory.NewLedger(), nil)

	_, err := bank.OpenAccount("A", 1)
	require.NoError(t, err)
	require.NoError(t, bank.Deposit("A", 1))
}
