// Command agentdeck starts the interactive terminal workspace: type a
// request, mention an agent with the trigger character or let the matcher
// route it, and watch artifacts progress to completion.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/agentdeck"
	"github.com/hupe1980/agentdeck/config"
	"github.com/hupe1980/agentdeck/logging"
	"github.com/hupe1980/agentdeck/tui"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logPath    string
	)

	cmd := &cobra.Command{
		Use:     "agentdeck",
		Short:   "Conversational multi-agent workspace",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			// The TUI owns the terminal; logs go to a file or nowhere.
			var logger logging.Logger = logging.NoOpLogger{}
			if logPath != "" {
				f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				logger = logging.NewLogger(&logging.LoggerConfig{
					Level:     logging.ParseLevel(cfg.Logger.Level),
					Format:    cfg.Logger.Format,
					Output:    f,
					Component: "agentdeck",
				})
			}

			deck := newDeck(cfg, logger)
			return tui.Run(deck)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVar(&logPath, "log", "", "write structured logs to this file")
	cmd.AddCommand(newAgentsCmd(&configPath))
	return cmd
}

// newAgentsCmd lists every registered agent with its trigger keywords.
func newAgentsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "List the registered agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			deck := newDeck(cfg, logging.NoOpLogger{})
			for _, d := range deck.Registry().GetAll() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-8s %s\n", d.ID, d.Name, d.Description)
			}
			return nil
		},
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newDeck(cfg *config.Config, logger logging.Logger) *agentdeck.AgentDeck {
	return agentdeck.New(func(o *agentdeck.Options) {
		o.Config = cfg
		o.Logger = logger
	})
}
