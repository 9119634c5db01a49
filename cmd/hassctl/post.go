package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hausnet/hass-go/models"
)

var (
	callData           string
	callReturnResponse bool
)

var callCmd = &cobra.Command{
	Use:   "call <domain> <service>",
	Short: "Call a service",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		data, err := parseJSONFlag(callData)
		if err != nil {
			return err
		}
		raw, err := c.CallService(context.Background(), args[0], args[1], data, callReturnResponse)
		if err != nil {
			return err
		}
		var pretty interface{}
		if err := json.Unmarshal(raw, &pretty); err != nil {
			fmt.Println(string(raw))
			return nil
		}
		return printJSON(pretty)
	},
}

var fireData string

var fireCmd = &cobra.Command{
	Use:   "fire <event-type>",
	Short: "Fire an event on the event bus",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		data, err := parseJSONFlag(fireData)
		if err != nil {
			return err
		}
		msg, err := c.FireEvent(context.Background(), args[0], data)
		if err != nil {
			return err
		}
		return printJSON(msg)
	},
}

var setStateAttrs string

var setStateCmd = &cobra.Command{
	Use:   "set-state <entity-id> <state>",
	Short: "Create or update an entity state",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		attrs, err := parseJSONFlag(setStateAttrs)
		if err != nil {
			return err
		}
		state, err := c.SetState(context.Background(), args[0], models.StateUpdate{
			State:      args[1],
			Attributes: attrs,
		})
		if err != nil {
			return err
		}
		return printJSON(state)
	},
}

var templateCmd = &cobra.Command{
	Use:   "template <template>",
	Short: "Render a template on the server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		text, err := c.RenderTemplate(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

var checkConfigCmd = &cobra.Command{
	Use:   "check-config",
	Short: "Validate the server configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient()
		if err != nil {
			return err
		}
		check, err := c.CheckConfig(context.Background())
		if err != nil {
			return err
		}
		return printJSON(check)
	},
}

func init() {
	callCmd.Flags().StringVar(&callData, "data", "", "service data as JSON")
	callCmd.Flags().BoolVar(&callReturnResponse, "return-response", false, "ask the service for response data")
	fireCmd.Flags().StringVar(&fireData, "data", "", "event data as JSON")
	setStateCmd.Flags().StringVar(&setStateAttrs, "attributes", "", "state attributes as JSON")

	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(fireCmd)
	rootCmd.AddCommand(setStateCmd)
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(checkConfigCmd)
}
