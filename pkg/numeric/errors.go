package numeric

import "errors"

var (
	// ErrEmptyInput 輸入為空
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidInput 輸入不合法 (如負數階乘)
	ErrInvalidInput = errors.New("invalid input")

	// ErrOverflow 結果超出 int64 範圍
	ErrOverflow = errors.New("result overflows int64")
)
