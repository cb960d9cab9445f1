package usecase

import (
	"github.com/JoeShih716/go-mem-bank/internal/app/bank/domain"
)

// Ledger 是帳戶儲存的介面
type Ledger interface {
	// OpenAccount 開立帳戶，帳號重複時回傳 domain.ErrAccountAlreadyExists
	OpenAccount(accountNumber string, initialBalance float64) (*domain.Account, error)
	// Account 取得帳戶，不存在時回傳 domain.ErrAccountNotFound
	Account(accountNumber string) (*domain.Account, error)
	// Accounts 依開戶順序回傳所有帳號
	Accounts() []string
}
