package usecase

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/JoeShih716/go-mem-bank/internal/app/bank/domain"
)

// BankUseCase 是核心業務邏輯層
// 以帳號操作帳戶，並記錄每一次操作結果
type BankUseCase struct {
	ledger Ledger
	logger *zap.Logger
}

// NewBankUseCase 建立 BankUseCase，logger 為 nil 時不輸出任何 log
func NewBankUseCase(ledger Ledger, logger *zap.Logger) *BankUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BankUseCase{
		ledger: ledger,
		logger: logger,
	}
}

// OpenAccount 開立帳戶
func (b *BankUseCase) OpenAccount(accountNumber string, initialBalance float64) (domain.AccountInfo, error) {
	account, err := b.ledger.OpenAccount(accountNumber, initialBalance)
	if err != nil {
		b.logger.Warn("open account rejected",
			zap.String("account", accountNumber),
			zap.Error(err),
		)
		return domain.AccountInfo{}, fmt.Errorf("open account %s: %w", accountNumber, err)
	}
	b.logger.Debug("account opened",
		zap.String("account", accountNumber),
		zap.Float64("balance", account.Balance()),
	)
	return account.AccountInfo(), nil
}

// Deposit 存款
func (b *BankUseCase) Deposit(accountNumber string, amount float64) error {
	account, err := b.ledger.Account(accountNumber)
	if err != nil {
		return b.reject("deposit", accountNumber, amount, err)
	}
	if err := account.Deposit(amount); err != nil {
		return b.reject("deposit", accountNumber, amount, err)
	}
	b.accepted("deposit", account, amount)
	return nil
}

// Withdraw 提款
func (b *BankUseCase) Withdraw(accountNumber string, amount float64) error {
	account, err := b.ledger.Account(accountNumber)
	if err != nil {
		return b.reject("withdraw", accountNumber, amount, err)
	}
	if err := account.Withdraw(amount); err != nil {
		return b.reject("withdraw", accountNumber, amount, err)
	}
	b.accepted("withdraw", account, amount)
	return nil
}

// Transfer 由 from 轉帳至 to
//
// 參數:
//
//	from: 轉出帳號
//	to: 轉入帳號
//	amount: 金額
//
// 回傳:
//
//	error: 帳戶不存在、金額不合法或餘額不足
func (b *BankUseCase) Transfer(from, to string, amount float64) error {
	fromAccount, err := b.ledger.Account(from)
	if err != nil {
		return b.reject("transfer", from, amount, err)
	}
	toAccount, err := b.ledger.Account(to)
	if err != nil {
		return b.reject("transfer", to, amount, err)
	}
	if err := fromAccount.TransferFunds(amount, toAccount); err != nil {
		return b.reject("transfer", from, amount, err)
	}
	b.logger.Debug("transfer accepted",
		zap.String("from", from),
		zap.String("to", to),
		zap.Float64("amount", amount),
		zap.Float64("from_balance", fromAccount.Balance()),
		zap.Float64("to_balance", toAccount.Balance()),
	)
	return nil
}

// AccountInfo 取得帳號與餘額
func (b *BankUseCase) AccountInfo(accountNumber string) (domain.AccountInfo, error) {
	account, err := b.ledger.Account(accountNumber)
	if err != nil {
		return domain.AccountInfo{}, fmt.Errorf("account info %s: %w", accountNumber, err)
	}
	return account.AccountInfo(), nil
}

// TransactionHistory 取得交易紀錄複本
func (b *BankUseCase) TransactionHistory(accountNumber string) ([]domain.Transaction, error) {
	account, err := b.ledger.Account(accountNumber)
	if err != nil {
		return nil, fmt.Errorf("transaction history %s: %w", accountNumber, err)
	}
	return account.TransactionHistory(), nil
}

func (b *BankUseCase) accepted(op string, account *domain.Account, amount float64) {
	b.logger.Debug(op+" accepted",
		zap.String("account", account.AccountNumber()),
		zap.Float64("amount", amount),
		zap.Float64("balance", account.Balance()),
	)
}

func (b *BankUseCase) reject(op, accountNumber string, amount float64, err error) error {
	b.logger.Warn(op+" rejected",
		zap.String("account", accountNumber),
		zap.Float64("amount", amount),
		zap.Error(err),
	)
	return fmt.Errorf("%s %v on account %s: %w", op, amount, accountNumber, err)
}
