package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"github.com/spf13/cobra"

	"github.com/milk9111/tilerunner/engine"
)

var (
	flagTicks    int
	flagRealtime bool
	flagScript   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation without a window",
	Long: `Run advances the campaign headless, feeding a scripted input sequence,
and prints where the hero ended up. With --realtime it ticks at the
configured interval instead of as fast as possible.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagTicks, "ticks", 3000, "Number of ticks to simulate")
	runCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Tick at the configured interval")
	runCmd.Flags().StringVar(&flagScript, "script", "", `Input script, e.g. "right:100,right+jump:12"`)
}

func runRun(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	script, err := parseScript(flagScript)
	if err != nil {
		return err
	}
	l, _, err := newLevel(logger, engine.WithInput(script))
	if err != nil {
		return err
	}

	ticks := 0
	onTick := func(l *engine.Level) {
		ticks++
		script.advance()
		for _, evt := range l.Events().Drain() {
			logEvent(logger, evt)
		}
	}

	if flagRealtime {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		loop := engine.NewLoop(l, func(l *engine.Level) {
			onTick(l)
			if ticks >= flagTicks {
				cancel()
			}
		})
		if err := loop.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	} else {
		for ticks < flagTicks && l.Active() {
			l.Tick()
			onTick(l)
		}
	}

	printSummary(cmd, l, ticks)
	return nil
}

func printSummary(cmd *cobra.Command, l *engine.Level, ticks int) {
	tally := l.Events().Totals()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ticks: %d\nlevel: %d\n", ticks, l.ID())
	if h := heroOf(l); h != nil {
		fmt.Fprintf(out, "hero: x=%.1f y=%.1f size=%d power=%d lives=%d coins=%d\n", h.X, h.Y, h.Size, h.Power, h.Lives, h.Coins)
	}

	types := make([]string, 0, len(tally))
	for t := range tally {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Fprintf(out, "  %-13s %d\n", t, tally[engine.EventType(t)])
	}
}
