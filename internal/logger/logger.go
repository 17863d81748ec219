/*
Copyright 2025 Piotr Janik.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package logger builds logr loggers backed by zap.
package logger

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu            sync.RWMutex
	defaultLogger = logr.Discard()
)

// Options configures New.
type Options struct {
	Output io.Writer
	// Verbosity enables V(n) logs up to n.
	Verbosity int
	// Development switches to the console encoder.
	Development bool
}

// New returns a zap-backed logr.Logger.
func New(optFns ...func(*Options)) logr.Logger {
	opts := &Options{
		Output: os.Stderr,
	}
	for _, fn := range optFns {
		if fn == nil {
			continue
		}
		fn(opts)
	}

	var encCfg zapcore.EncoderConfig
	var enc zapcore.Encoder
	if opts.Development {
		encCfg = zap.NewDevelopmentEncoderConfig()
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encCfg = zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.RFC3339TimeEncoder
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	// zapr maps V(n) to zap level -n.
	level := zap.NewAtomicLevelAt(zapcore.Level(-opts.Verbosity))
	core := zapcore.NewCore(enc, zapcore.AddSync(opts.Output), level)

	return zapr.NewLogger(zap.New(core))
}

// SetDefault replaces the process default logger.
func SetDefault(log logr.Logger) {
	mu.Lock()
	defer mu.Unlock()

	defaultLogger = log
}

// Default returns the process default logger; it discards until SetDefault
// is called.
func Default() logr.Logger {
	mu.RLock()
	defer mu.RUnlock()

	return defaultLogger
}

func FromContext(ctx context.Context) logr.Logger {
	log, err := logr.FromContext(ctx)
	if err != nil {
		return Default()
	}
	return log
}

func NewContext(ctx context.Context, log logr.Logger) context.Context {
	return logr.NewContext(ctx, log)
}
