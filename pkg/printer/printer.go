// Package printer 將結果依序寫成文字行
//
// 每行格式為 "<label>: <value>"，值為結構時以 JSON 編碼。
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// Printer 是 thread-safe 的行輸出器
type Printer struct {
	w  io.Writer
	mu sync.Mutex
}

// New 建立輸出到 w 的 Printer
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// JSON 寫入一行 "<label>: <json>"
func (p *Printer) JSON(label string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", label, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	_, err = fmt.Fprintf(p.w, "%s: %s\n", label, raw)
	return err
}

// Linef 依格式寫入一行，結尾自動補上換行
func (p *Printer) Linef(format string, args ...any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := fmt.Fprintf(p.w, format+"\n", args...)
	return err
}
