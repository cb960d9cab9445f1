package memory

import (
	"github.com/JoeShih716/go-mem-bank/internal/app/bank/domain"
	"github.com/JoeShih716/go-mem-bank/internal/app/bank/usecase"
)

// Ledger 是一個記憶體內的帳戶表
//
// 結構:
//
//	accounts: 帳號對應的帳戶
//	order: 開戶順序
//	opts: 開戶時套用到每個帳戶的配置
//
// 不支援並發存取，只供單一呼叫者使用。
type Ledger struct {
	accounts map[string]*domain.Account
	order    []string
	opts     []domain.AccountOption
}

// NewLedger 建立一個空的 Ledger
//
// 參數:
//
//	opts: 開戶時傳給 domain.NewAccount 的配置 (如測試用的時鐘)
func NewLedger(opts ...domain.AccountOption) *Ledger {
	return &Ledger{
		accounts: make(map[string]*domain.Account),
		order:    make([]string, 0),
		opts:     opts,
	}
}

// OpenAccount 開立帳戶
func (l *Ledger) OpenAccount(accountNumber string, initialBalance float64) (*domain.Account, error) {
	if _, ok := l.accounts[accountNumber]; ok {
		return nil, domain.ErrAccountAlreadyExists
	}
	account := domain.NewAccount(accountNumber, initialBalance, l.opts...)
	l.accounts[accountNumber] = account
	l.order = append(l.order, accountNumber)
	return account, nil
}

// Account 取得帳戶
func (l *Ledger) Account(accountNumber string) (*domain.Account, error) {
	account, ok := l.accounts[accountNumber]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

// Accounts 依開戶順序回傳帳號
func (l *Ledger) Accounts() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

var _ usecase.Ledger = (*Ledger)(nil)
