package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AccountInfo 帳戶基本資訊快照
type AccountInfo struct {
	AccountNumber string  `json:"accountNumber"`
	Balance       float64 `json:"balance"`
}

// Account 銀行帳戶
//
// 結構:
//
//	accountNumber: 帳號，建立後不可變
//	balance: 餘額
//	history: 交易紀錄，只能追加
//	now / newID: 時間與交易 ID 來源，測試時可替換
//
// Account 不是 thread-safe，只供單一呼叫者依序使用。
type Account struct {
	accountNumber string
	balance       float64
	history       []Transaction

	now   func() time.Time
	newID func() uuid.UUID
}

// AccountOption 定義了 Account 的配置選項函數
type AccountOption func(*Account)

// WithClock 設定交易時間來源 (預設 time.Now)
func WithClock(now func() time.Time) AccountOption {
	return func(a *Account) {
		a.now = now
	}
}

// WithIDGenerator 設定交易 ID 產生器 (預設 uuid.New)
func WithIDGenerator(newID func() uuid.UUID) AccountOption {
	return func(a *Account) {
		a.newID = newID
	}
}

// NewAccount 建立一個新的帳戶
//
// 參數:
//
//	accountNumber: 帳號
//	initialBalance: 初始餘額 (不檢查是否為負數)
//	opts: 可選的配置
//
// 回傳:
//
//	*Account: 帳戶實例
func NewAccount(accountNumber string, initialBalance float64, opts ...AccountOption) *Account {
	a := &Account{
		accountNumber: accountNumber,
		balance:       initialBalance,
		history:       make([]Transaction, 0),
		now:           time.Now,
		newID:         uuid.New,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AccountNumber 回傳帳號
func (a *Account) AccountNumber() string {
	return a.accountNumber
}

// Balance 回傳目前餘額
func (a *Account) Balance() float64 {
	return a.balance
}

// AccountInfo 回傳帳號與目前餘額，沒有任何副作用
func (a *Account) AccountInfo() AccountInfo {
	return AccountInfo{
		AccountNumber: a.accountNumber,
		Balance:       a.balance,
	}
}

// Deposit 存款
func (a *Account) Deposit(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	a.balance += amount
	a.record(TransactionTypeDeposit, amount, "")
	return nil
}

// Withdraw 提款
//
// 回傳:
//
//	error: ErrInvalidAmount (金額 <= 0) 或 ErrInsufficientFunds (餘額不足)
func (a *Account) Withdraw(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > a.balance {
		return ErrInsufficientFunds
	}

	a.balance -= amount
	a.record(TransactionTypeWithdraw, amount, "")
	return nil
}

// TransferFunds 轉帳至 to
//
// 流程: 先在本帳戶提款 (記一筆 withdraw)，再存入目標帳戶 (記一筆 deposit)，
// 最後雙方各追加一筆 transfer。
// 因此轉出方會多 2 筆紀錄 (withdraw, transfer)，轉入方也多 2 筆 (deposit, transfer)。
//
// 參數:
//
//	amount: 轉帳金額
//	to: 目標帳戶
//
// 回傳:
//
//	error: 任何檢查失敗時回傳，雙方狀態皆不變
func (a *Account) TransferFunds(amount float64, to *Account) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > a.balance {
		return ErrInsufficientFunds
	}
	if to == nil {
		return ErrNilAccount
	}

	// Withdraw 會再檢查一次金額與餘額
	if err := a.Withdraw(amount); err != nil {
		return err
	}
	if err := to.Deposit(amount); err != nil {
		return err
	}

	a.record(TransactionTypeTransfer, amount, fmt.Sprintf("Transferred to account %s", to.accountNumber))
	to.record(TransactionTypeTransfer, amount, fmt.Sprintf("Received from account %s", a.accountNumber))
	return nil
}

// TransactionHistory 回傳交易紀錄的複本
// 呼叫端修改回傳的 slice 不會影響帳戶內部紀錄
func (a *Account) TransactionHistory() []Transaction {
	out := make([]Transaction, len(a.history))
	copy(out, a.history)
	return out
}

func (a *Account) record(typ TransactionType, amount float64, details string) {
	a.history = append(a.history, Transaction{
		ID:      a.newID(),
		Type:    typ,
		Amount:  amount,
		Date:    a.now(),
		Details: details,
	})
}
