package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TransactionType 交易類型
type TransactionType uint8

const (
	// 存款
	TransactionTypeDeposit TransactionType = 1
	// 提款
	TransactionTypeWithdraw TransactionType = 2
	// 轉帳
	TransactionTypeTransfer TransactionType = 3
)

var transactionTypeNames = map[TransactionType]string{
	TransactionTypeDeposit:  "deposit",
	TransactionTypeWithdraw: "withdraw",
	TransactionTypeTransfer: "transfer",
}

// String 回傳交易類型名稱，未知類型回傳 "unknown"
func (t TransactionType) String() string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// MarshalText 讓 JSON 輸出使用類型名稱而非數字
func (t TransactionType) MarshalText() ([]byte, error) {
	name, ok := transactionTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("unknown transaction type: %d", uint8(t))
	}
	return []byte(name), nil
}

// UnmarshalText 由類型名稱還原 TransactionType
func (t *TransactionType) UnmarshalText(text []byte) error {
	for typ, name := range transactionTypeNames {
		if name == string(text) {
			*t = typ
			return nil
		}
	}
	return fmt.Errorf("unknown transaction type: %q", text)
}

// Transaction 交易紀錄
//
// 建立後不可修改，只屬於記錄它的帳戶。
// 轉帳會產生兩筆獨立的 Transaction (轉出方與轉入方各一筆)。
type Transaction struct {
	// ID: 交易識別碼 (UUID)
	ID uuid.UUID `json:"id"`
	// Type: 交易類型
	Type TransactionType `json:"type"`
	// Amount: 金額，恆為正數
	Amount float64 `json:"amount"`
	// Date: 交易建立時間
	Date time.Time `json:"date"`
	// Details: 只有轉帳會填寫，描述對方帳戶
	Details string `json:"details,omitempty"`
}
