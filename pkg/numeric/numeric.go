// Package numeric 提供無狀態的數值工具函式
package numeric

import (
	"cmp"
	"fmt"
	"slices"
)

// MaxFactorial 是 int64 能容納的最大階乘參數 (20! = 2432902008176640000)
const MaxFactorial = 20

// Add 回傳 a + b
func Add(a, b float64) float64 {
	return a + b
}

// Multiply 回傳 a x b
func Multiply(a, b float64) float64 {
	return a * b
}

// FilterEven 依原順序回傳所有偶數，結果永不為 nil
func FilterEven(numbers []int) []int {
	out := make([]int, 0, len(numbers))
	for _, n := range numbers {
		if n%2 == 0 {
			out = append(out, n)
		}
	}
	return out
}

// Max 回傳最大值，空 slice 回傳 ErrEmptyInput
func Max[T cmp.Ordered](values []T) (T, error) {
	if len(values) == 0 {
		var zero T
		return zero, ErrEmptyInput
	}
	return slices.Max(values), nil
}

// Factorial 以遞迴計算 n!
//
// 參數:
//
//	n: 0 <= n <= MaxFactorial
//
// 回傳:
//
//	int64: n!
//	error: n < 0 回傳 ErrInvalidInput，n > MaxFactorial 回傳 ErrOverflow
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("factorial of %d: %w", n, ErrInvalidInput)
	}
	if n > MaxFactorial {
		return 0, fmt.Errorf("factorial of %d: %w", n, ErrOverflow)
	}
	return factorial(int64(n)), nil
}

func factorial(n int64) int64 {
	if n == 0 || n == 1 {
		return 1
	}
	return n * factorial(n-1)
}
