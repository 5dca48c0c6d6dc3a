// logger.go - Structured logging for the note ledger driver.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap SugaredLogger writing to the console and, when
// configured, to a log file. Audit events (Warn and above) additionally go to
// the audit file so rejections leave a durable trail.
func NewLogger(level string, logFile string, auditFile string) (*zap.SugaredLogger, func(), error) {
	var lvl zapcore.Level
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "info":
		lvl = zapcore.InfoLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	default:
		lvl = zapcore.InfoLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	consoleEnc := zapcore.NewConsoleEncoder(encCfg)
	jsonEnc := zapcore.NewJSONEncoder(encCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEnc, zapcore.Lock(os.Stdout), lvl),
	}
	var files []*os.File

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		files = append(files, f)
		cores = append(cores, zapcore.NewCore(jsonEnc, zapcore.Lock(f), lvl))
	}

	if auditFile != "" {
		f, err := os.OpenFile(auditFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open audit file: %w", err)
		}
		files = append(files, f)
		cores = append(cores, zapcore.NewCore(jsonEnc, zapcore.Lock(f), zapcore.WarnLevel))
	}

	log := zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zapcore.FatalLevel))
	closeFn := func() {
		_ = log.Sync()
		for _, f := range files {
			_ = f.Close()
		}
	}
	return log.Sugar(), closeFn, nil
}
