package main

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <utterance>...",
		Short: "Resolve each argument as one utterance",
		Example: `  tvremote resolve "farðu upp þrisvar"
  tvremote resolve --json "stöð 2 sport 2" "lækkaðu um tuttugu"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, utterance := range args {
				out := a.engine.Process(utterance)
				if err := a.print(cmd.OutOrStdout(), out); err != nil {
					return err
				}
				failed = failed || !out.OK()
			}
			if failed {
				return errUnresolved
			}
			return nil
		},
	}
}

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Resolve utterances read line by line from standard input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				line := strings.TrimSpace(sc.Text())
				if line == "" {
					continue
				}
				if err := a.print(cmd.OutOrStdout(), a.engine.Process(line)); err != nil {
					return err
				}
			}
			return sc.Err()
		},
	}
}

func newChannelsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "channels",
		Short: "List the channel directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := a.cfg.Directory()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range dir.Entries() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", strconv.FormatInt(e.ID, 10), e.Name, strings.Join(e.Aliases, ", "))
			}
			return tw.Flush()
		},
	}
}
