// Package stringx 提供字串工具函式
//
// 大小寫轉換使用 golang.org/x/text/cases 的完整 Unicode 對應，
// 單一字元可能轉成多個字元 (例如 "ß" 轉大寫為 "SS")。
package stringx

import (
	"regexp"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]`)

// Capitalize 將第一個字元轉為大寫，其餘不變；空字串回傳空字串
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	// cases.Caser 有狀態，不可跨 goroutine 共用
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}

// IsPalindrome 判斷是否為迴文
// 先轉小寫並移除 [a-z0-9] 以外的字元，再與反轉結果比較
func IsPalindrome(s string) bool {
	clean := normalize(s)
	for i, j := 0, len(clean)-1; i < j; i, j = i+1, j-1 {
		if clean[i] != clean[j] {
			return false
		}
	}
	return true
}

// normalize 只保留 ASCII 小寫字母與數字，因此可以逐 byte 比較
func normalize(s string) string {
	return nonAlphanumeric.ReplaceAllString(cases.Lower(language.Und).String(s), "")
}
