// Copyright 2019, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"io"

	log "github.com/sirupsen/logrus"
)

type generalOptions struct {
	Verbose   []bool `short:"v" long:"verbose" description:"Show verbose debug information (repeat for more)"`
	LogFormat string `long:"log-format" env:"BASEENC_LOG_FORMAT" description:"Log format" choice:"text" choice:"json" default:"text"`
}

// setupLogging configures the standard logger to write to w.
func setupLogging(g *generalOptions, w io.Writer) {
	setVerbosity(g.Verbose)
	if g.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
			},
		})
	} else {
		log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	}
	log.SetOutput(w)
	log.Debugf("Verbosity level: %v", log.GetLevel())
}

// setVerbosity maps each -v flag to one level above ErrorLevel.
func setVerbosity(v []bool) {
	level := log.ErrorLevel + log.Level(len(v))
	if level > log.TraceLevel {
		level = log.TraceLevel
	}
	log.SetLevel(level)
}
