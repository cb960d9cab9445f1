// Package logger 建立專案共用的 zap Logger
package logger

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelSilent 不輸出任何 log
const LevelSilent = "silent"

// New 根據 level 建立輸出到 w 的 console 格式 Logger
//
// 參數:
//
//	level: "debug", "info", "warn", "error", "silent"，其他值視為 "info"
//	w: 輸出目的地 (通常為 os.Stderr)
//
// 回傳值:
//
//	*zap.Logger: level 為 "silent" 時回傳 zap.NewNop()
func New(level string, w zapcore.WriteSyncer) *zap.Logger {
	if strings.EqualFold(level, LevelSilent) {
		return zap.NewNop()
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(w),
		ParseLevel(level),
	)
	return zap.New(core)
}

// ParseLevel 將設定檔中的等級字串轉為 zapcore.Level
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel // 預設 info
	}
}
