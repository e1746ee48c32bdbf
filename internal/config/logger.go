/*
 * logger.go, part of gofrag.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package config

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//NewLogger builds the zap logger described by c. Console loggers use the
//development encoder, JSON loggers the production one. If c.File is empty, the
//log goes to standard error.
func NewLogger(c LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("config: invalid log level %q: %w", c.Level, err)
	}
	var encCfg zapcore.EncoderConfig
	switch c.Format {
	case "console":
		encCfg = zap.NewDevelopmentEncoderConfig()
	case "json":
		encCfg = zap.NewProductionEncoderConfig()
	default:
		return nil, fmt.Errorf("config: invalid log format %q", c.Format)
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	out := []string{"stderr"}
	if c.File != "" {
		out = []string{c.File}
	}
	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      c.Format == "console",
		Encoding:         c.Format,
		EncoderConfig:    encCfg,
		OutputPaths:      out,
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("config: failed to build logger: %w", err)
	}
	return logger, nil
}
