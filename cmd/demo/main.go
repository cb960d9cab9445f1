package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/JoeShih716/go-mem-bank/internal/app/bank/adapter/out/memory"
	"github.com/JoeShih716/go-mem-bank/internal/app/bank/usecase"
	"github.com/JoeShih716/go-mem-bank/internal/config"
	"github.com/JoeShih716/go-mem-bank/pkg/geometry"
	"github.com/JoeShih716/go-mem-bank/pkg/logger"
	"github.com/JoeShih716/go-mem-bank/pkg/numeric"
	"github.com/JoeShih716/go-mem-bank/pkg/printer"
	"github.com/JoeShih716/go-mem-bank/pkg/stringx"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	flag.Parse()

	// 1. 載入設定
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化 Logger (輸出到 stderr，stdout 只放結果)
	log := logger.New(cfg.LogLevel, os.Stderr)
	defer func() { _ = log.Sync() }()

	// 3. 依序執行
	if err := run(cfg, os.Stdout, log); err != nil {
		log.Fatal("demo aborted", zap.Error(err))
	}
}

// run 依固定順序執行帳戶情境與工具函式，第一個錯誤即中止
func run(cfg config.Config, w io.Writer, log *zap.Logger) error {
	out := printer.New(w)
	if err := runBank(cfg.Bank, out, log); err != nil {
		return err
	}
	return runToolbox(cfg.Toolbox, out)
}

func runBank(cfg config.Bank, out *printer.Printer, log *zap.Logger) error {
	ledger := memory.NewLedger()
	bank := usecase.NewBankUseCase(ledger, log)

	for _, a := range cfg.Accounts {
		if _, err := bank.OpenAccount(a.AccountNumber, a.InitialBalance); err != nil {
			return err
		}
	}

	for _, step := range cfg.Steps {
		var err error
		switch step.Op {
		case config.OpDeposit:
			err = bank.Deposit(step.Account, step.Amount)
		case config.OpWithdraw:
			err = bank.Withdraw(step.Account, step.Amount)
		case config.OpTransfer:
			err = bank.Transfer(step.Account, step.To, step.Amount)
		default:
			err = fmt.Errorf("unknown op %q", step.Op)
		}
		if err != nil {
			return err
		}
	}
	log.Info("bank scenario completed", zap.Int("steps", len(cfg.Steps)))

	for i, id := range ledger.Accounts() {
		info, err := bank.AccountInfo(id)
		if err != nil {
			return err
		}
		if err := out.JSON(fmt.Sprintf("Account %d Info", i+1), info); err != nil {
			return err
		}

		history, err := bank.TransactionHistory(id)
		if err != nil {
			return err
		}
		if err := out.JSON(fmt.Sprintf("Account %d Transactions", i+1), history); err != nil {
			return err
		}
	}
	return nil
}

func runToolbox(cfg config.Toolbox, out *printer.Printer) error {
	rectangle := geometry.NewRectangle(cfg.Rectangle.Width, cfg.Rectangle.Height)
	circle := geometry.NewCircle(cfg.Circle.Radius)

	if err := out.Linef("Rectangle Area: %v, Perimeter: %v", rectangle.Area(), rectangle.Perimeter()); err != nil {
		return err
	}
	if err := out.Linef("Circle Area: %v, Perimeter: %v", circle.Area(), circle.Perimeter()); err != nil {
		return err
	}
	if err := out.Linef("Sum: %v", numeric.Add(cfg.Add[0], cfg.Add[1])); err != nil {
		return err
	}
	if err := out.Linef("Multiplication: %v", numeric.Multiply(cfg.Multiply[0], cfg.Multiply[1])); err != nil {
		return err
	}
	if err := out.Linef("Capitalized String: %s", stringx.Capitalize(cfg.Capitalize)); err != nil {
		return err
	}
	if err := out.Linef("Even Numbers: %s", joinInts(numeric.FilterEven(cfg.FilterEven))); err != nil {
		return err
	}

	maxNumber, err := numeric.Max(cfg.Max)
	if err != nil {
		return fmt.Errorf("max number: %w", err)
	}
	if err := out.Linef("Max Number: %d", maxNumber); err != nil {
		return err
	}
	if err := out.Linef("Is Palindrome: %t", stringx.IsPalindrome(cfg.Palindrome)); err != nil {
		return err
	}

	factorial, err := numeric.Factorial(cfg.Factorial)
	if err != nil {
		return err
	}
	return out.Linef("Factorial: %d", factorial)
}

func joinInts(numbers []int) string {
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
