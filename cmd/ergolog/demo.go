package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/ergolog/logger"
)

func newDemoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the logging tour",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), ctx.pause)
		},
	}
}

func runDemo(out io.Writer, pause time.Duration) error {
	line := func() { fmt.Fprintln(out, strings.Repeat("-", 100)) }

	logger.Debug("debug")
	logger.Info("info")
	logger.Warning("warning")
	logger.Error("error")
	logger.Critical("critical")

	line()

	named := logger.Get("named_logger")
	named.Debug("debug")
	named.Info("info")
	named.Warning("warning")
	named.Error("error")
	named.Critical("critical")

	line()

	logger.Tag("with_tag").Do(func() {
		logger.Info("one tag")
		logger.Tag("and").Do(func() {
			logger.Info("two tags")
			logger.Tag("more_tags").Do(func() {
				logger.Info("three tags")
			})
		})
	})

	line()

	logger.Tag().With("keyword", "tags").With("comma", "multiple").Do(func() {
		logger.Debug("")
		logger.Tag("regular_tag").Do(func() {
			logger.Info("")
			logger.Tag().With("more", "keywords").Do(func() {
				logger.Info("")
			})
		})
		logger.Debug("")
	})

	line()

	inner := logger.Tag("inner").Wrap(func() {
		logger.Info("test")
	})
	outer := logger.Tag("outer").Wrap(func() {
		logger.Debug("before")
		inner()
		logger.Debug("after")
	})
	logger.Debug("start")
	outer()
	logger.Debug("end")

	line()

	innerJob := logger.Tag("job").Wrap(func() {
		logger.Info("inner job")
	})
	outerJob := logger.Tag("job").Wrap(func() {
		logger.Info("outer job")
		innerJob()
		innerJob()
	})
	outerJob()

	line()

	a := logger.Get("a")
	logger.Tag("A").Do(func() {
		t := logger.Timer(func(elapsed string) { a.Debugf("took %s S", elapsed) })
		a.Info("before")
		time.Sleep(pause)
		a.Info("after")
		t.Stop()
	})

	line()

	b := logger.Get("b")
	t := logger.Timer(nil)
	logger.Tag("B").Do(func() {
		b.Info("before")
		time.Sleep(pause)
		b.Info("after")
		t.Stop()
	})
	b.Debugf("took %s S", t)

	return nil
}
