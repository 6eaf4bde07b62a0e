package cmd

import (
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/theory/juliandate/jd"
)

// newReplCmd builds the interactive calculator command.
func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively convert dates and Julian Dates",
		Long: `repl executes a read, eval, print loop. Each line is a civil date or
date-time string, a raw Julian Date, or the word "now". An empty
line or end of input ends the loop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return repl(cmd)
		},
	}
}

// repl reads, evaluates, and prints until EOF or a blank line.
func repl(cmd *cobra.Command) error {
	rl, err := readline.New("jd> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" || line == "exit" {
			return nil
		}
		if err := eval(cmd, line); err != nil {
			cmd.PrintErrln(err)
		}
	}
}

// eval evaluates a single repl line.
func eval(cmd *cobra.Command, line string) error {
	if line == "now" {
		now, err := jd.Now()
		if err != nil {
			return err
		}
		printValue(cmd, now)
		return nil
	}

	if julian, err := strconv.ParseFloat(line, 64); err == nil {
		printValue(cmd, fromJulian(julian, 0))
		return nil
	}

	value, err := jd.Parse(line)
	if err != nil {
		return err
	}
	printValue(cmd, value)
	return nil
}
