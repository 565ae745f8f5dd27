package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/appengine-ltd/tvremote/internal/command"
	"github.com/appengine-ltd/tvremote/internal/config"
	"github.com/appengine-ltd/tvremote/internal/query"
	"github.com/appengine-ltd/tvremote/internal/report"
)

// errUnresolved is returned when at least one utterance did not resolve.
// The outcome has already been printed.
var errUnresolved = errors.New("utterance not resolved")

type app struct {
	configPath string
	envFile    string
	jsonOut    bool

	cfg    *config.Config
	logger *zap.Logger
	engine *query.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "tvremote",
		Short:         "Resolve Icelandic voice commands into set-top box commands",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "tvremote.yaml", "config file")
	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before the environment is read")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print outcomes as JSON")

	root.AddCommand(
		newResolveCmd(a),
		newReplCmd(a),
		newChannelsCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) init() error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", a.envFile, err)
		}
	}
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	assembler, err := cfg.Assembler()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.engine = query.New(query.WithAssembler(assembler), query.WithLogger(logger))
	return nil
}

type outcomeJSON struct {
	Status  string           `json:"status"`
	Command string           `json:"command,omitempty"`
	Payload *command.Payload `json:"payload,omitempty"`
	Error   string           `json:"error,omitempty"`
	Hint    string           `json:"hint,omitempty"`
}

func (a *app) print(w io.Writer, out report.Outcome) error {
	if a.jsonOut {
		return json.NewEncoder(w).Encode(outcomeJSON{
			Status:  out.Status.String(),
			Command: out.Command,
			Payload: out.Payload,
			Error:   out.Code(),
			Hint:    out.Hint,
		})
	}
	if out.OK() {
		_, err := fmt.Fprintln(w, out.Command)
		return err
	}
	if _, err := fmt.Fprintln(w, out.Code()); err != nil {
		return err
	}
	if out.Hint != "" {
		_, err := fmt.Fprintln(w, out.Hint)
		return err
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "tvremote %s (%s) %s\n", version, commit, date)
			return err
		},
	}
}
