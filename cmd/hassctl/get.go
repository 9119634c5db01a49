package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hausnet/hass-go/client"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the server configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		cfg, err := c.GetConfig(context.Background())
		if err != nil {
			return err
		}
		return printJSON(cfg)
	},
}

var statesCmd = &cobra.Command{
	Use:   "states [entity-id]",
	Short: "Show entity states, or a single entity's state",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		if len(args) == 1 {
			state, err := c.GetState(context.Background(), args[0])
			if err != nil {
				return err
			}
			return printJSON(state)
		}
		states, err := c.GetStates(context.Background())
		if err != nil {
			return err
		}
		return printJSON(states)
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List registered event types",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		events, err := c.GetEvents(context.Background())
		if err != nil {
			return err
		}
		return printJSON(events)
	},
}

var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List registered services per domain",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		services, err := c.GetServices(context.Background())
		if err != nil {
			return err
		}
		return printJSON(services)
	},
}

var (
	historyMinimal     bool
	historyNoAttrs     bool
	historySignificant bool
)

var historyCmd = &cobra.Command{
	Use:   "history [entity-id]",
	Short: "Show state history",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		opts := client.HistoryOptions{
			MinimalResponse:        historyMinimal,
			NoAttributes:           historyNoAttrs,
			SignificantChangesOnly: historySignificant,
		}
		if len(args) == 1 {
			opts.EntityID = args[0]
		}
		entries, err := c.GetHistory(context.Background(), opts)
		if err != nil {
			return err
		}
		return printJSON(entries)
	},
}

var logbookCmd = &cobra.Command{
	Use:   "logbook [entity-id]",
	Short: "Show logbook entries",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		entityID := ""
		if len(args) == 1 {
			entityID = args[0]
		}
		entries, err := c.GetLogbook(context.Background(), entityID)
		if err != nil {
			return err
		}
		return printJSON(entries)
	},
}

var errorLogCmd = &cobra.Command{
	Use:   "error-log",
	Short: "Show the server's error log",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		text, err := c.GetErrorLog(context.Background())
		if err != nil {
			return err
		}
		fmt.Print(text)
		return nil
	},
}

func init() {
	historyCmd.Flags().BoolVar(&historyMinimal, "minimal-response", false, "omit attributes and entity ids from intermediate entries")
	historyCmd.Flags().BoolVar(&historyNoAttrs, "no-attributes", false, "skip attributes entirely")
	historyCmd.Flags().BoolVar(&historySignificant, "significant-changes-only", false, "only return significant state changes")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(statesCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(servicesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(logbookCmd)
	rootCmd.AddCommand(errorLogCmd)
}
