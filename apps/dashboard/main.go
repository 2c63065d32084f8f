package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pathshala/admin/core"
	"github.com/pathshala/admin/core/i18n"
	"github.com/pathshala/admin/core/session"
	"github.com/pathshala/admin/services/backend"
	"github.com/pathshala/admin/services/logger"
	"github.com/pathshala/admin/storage/kv"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stderr, "DASHBOARD : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf, err := core.NewConfig()
	errAndDie(err)

	// the std logger only echoes to the terminal in debug
	var out io.Writer = io.Discard
	if conf.Debug {
		out = os.Stderr
	}
	appLogger := logsvc.NewRollbarLogger(log.New(out, "DASHBOARD : ", log.LstdFlags|log.Lmicroseconds), conf)
	appLogger.Enable(!conf.Debug && !conf.TestMode)

	ctx := context.Background()

	// set up storage
	store, closer, err := kv.Open(ctx, conf)
	errAndDie(err)
	defer closer.Close()

	validate, translator := core.NewValidator()
	sessions := session.NewManager(store, appLogger, validate, translator)
	errAndDie(sessions.Init(ctx))
	sessions.Subscribe(func(s session.Session) {
		appLogger.Debug("session changed", s)
	})

	loc, err := i18n.New(store, i18n.Language(conf.DefaultLanguage))
	errAndDie(err)
	errAndDie(loc.Load(ctx))

	// start CLI
	cli := commandLine{
		out:      os.Stdout,
		client:   backendsvc.NewClient(conf.API.BaseURL, appLogger),
		sessions: sessions,
		loc:      loc,
		logger:   appLogger,
	}
	if err := cli.run(os.Args); err != nil {
		switch {
		case err == errHelp:
		case core.IsValidationError(err):
			fmt.Fprintf(os.Stderr, "\ninvalid input: %s\n", err)
		default:
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", backendsvc.Message(err))
		}
		closer.Close()
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
