// Package config 載入示範程式的設定檔
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"

	"gopkg.in/yaml.v3"
)

// DefaultPath 預設設定檔路徑 (相對於工作目錄)
const DefaultPath = "config/config.yaml"

// 情境步驟的操作名稱
const (
	OpDeposit  = "deposit"
	OpWithdraw = "withdraw"
	OpTransfer = "transfer"
)

// Config 示範程式設定
type Config struct {
	LogLevel string  `yaml:"log_level"`
	Bank     Bank    `yaml:"bank"`
	Toolbox  Toolbox `yaml:"toolbox"`
}

// Bank 帳戶與操作情境
type Bank struct {
	Accounts []Account `yaml:"accounts"`
	Steps    []Step    `yaml:"steps"`
}

// Account 開戶資料
type Account struct {
	AccountNumber  string  `yaml:"account_number"`
	InitialBalance float64 `yaml:"initial_balance"`
}

// Step 單一操作；To 只有轉帳使用
type Step struct {
	Op      string  `yaml:"op"`
	Account string  `yaml:"account"`
	To      string  `yaml:"to,omitempty"`
	Amount  float64 `yaml:"amount"`
}

// Toolbox 工具函式的輸入
type Toolbox struct {
	Rectangle  Rectangle  `yaml:"rectangle"`
	Circle     Circle     `yaml:"circle"`
	Add        [2]float64 `yaml:"add"`
	Multiply   [2]float64 `yaml:"multiply"`
	Capitalize string     `yaml:"capitalize"`
	FilterEven []int      `yaml:"filter_even"`
	Max        []int      `yaml:"max"`
	Palindrome string     `yaml:"palindrome"`
	Factorial  int        `yaml:"factorial"`
}

// Rectangle 矩形尺寸
type Rectangle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Circle 圓形半徑
type Circle struct {
	Radius float64 `yaml:"radius"`
}

// Default 回傳內建的預設設定
func Default() Config {
	return Config{
		LogLevel: "info",
		Bank: Bank{
			Accounts: []Account{
				{AccountNumber: "1234567890", InitialBalance: 1000},
				{AccountNumber: "0987654321", InitialBalance: 500},
			},
			Steps: []Step{
				{Op: OpDeposit, Account: "1234567890", Amount: 500},
				{Op: OpWithdraw, Account: "1234567890", Amount: 200},
				{Op: OpTransfer, Account: "1234567890", To: "0987654321", Amount: 300},
			},
		},
		Toolbox: Toolbox{
			Rectangle:  Rectangle{Width: 5, Height: 8},
			Circle:     Circle{Radius: 3},
			Add:        [2]float64{5, 3},
			Multiply:   [2]float64{4, 7},
			Capitalize: "javascript is fun",
			FilterEven: []int{1, 2, 3, 4, 5, 6, 7, 8},
			Max:        []int{23, 56, 12, 89, 43},
			Palindrome: "A man, a plan, a canal, Panama",
			Factorial:  5,
		},
	}
}

// Load 讀取設定檔並補全預設值
//
// 參數:
//
//	path: 設定檔路徑，檔案不存在時直接使用 Default()
//
// 回傳:
//
//	Config: 設定
//	error: 讀檔、解析或驗證錯誤
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse 解析 YAML 內容並補全預設值
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyDefaults 補全沒寫的區段 (yaml 沒寫就用預設)
// 區段有寫時整段照用，不逐欄合併
func (c *Config) applyDefaults() {
	def := Default()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if len(c.Bank.Accounts) == 0 && len(c.Bank.Steps) == 0 {
		c.Bank = def.Bank
	}
	if reflect.ValueOf(c.Toolbox).IsZero() {
		c.Toolbox = def.Toolbox
	}
}

// Validate 檢查情境步驟只引用已開立的帳戶與已知的操作
func (c *Config) Validate() error {
	known := make(map[string]bool, len(c.Bank.Accounts))
	for _, a := range c.Bank.Accounts {
		if a.AccountNumber == "" {
			return errors.New("config: account_number must not be empty")
		}
		if known[a.AccountNumber] {
			return fmt.Errorf("config: duplicate account %q", a.AccountNumber)
		}
		known[a.AccountNumber] = true
	}

	for i, s := range c.Bank.Steps {
		if !known[s.Account] {
			return fmt.Errorf("config: step %d references unknown account %q", i, s.Account)
		}
		switch s.Op {
		case OpDeposit, OpWithdraw:
		case OpTransfer:
			if !known[s.To] {
				return fmt.Errorf("config: step %d transfers to unknown account %q", i, s.To)
			}
		default:
			return fmt.Errorf("config: step %d has unknown op %q", i, s.Op)
		}
	}
	return nil
}
