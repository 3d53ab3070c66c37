package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// Keys users may persist. Anything else is rejected so typos do not
// silently land in the config file.
var configKeys = map[string]string{
	keyWordList: "path to the default custom word list",
	keyNoFilter: "disable word list filtering by default (true/false)",
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persistent solve defaults",
	Long: `View and change defaults stored in the blueprince config file.

Available keys:
  solve.word_list  path to the default custom word list
  solve.no_filter  disable word list filtering by default`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	store := openConfigStore()
	if store == nil {
		return errors.New("config store unavailable")
	}

	keys := store.Keys()
	if len(keys) == 0 {
		cmd.Println("No configuration set.")
		return nil
	}

	for _, key := range keys {
		val, _ := store.Get(key)
		cmd.Printf("%s = %v\n", key, val)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]
	if _, ok := configKeys[key]; !ok {
		return fmt.Errorf("unknown config key %q", key)
	}

	store := openConfigStore()
	if store == nil {
		return errors.New("config store unavailable")
	}

	// Booleans are stored typed so GetBool works on reload.
	var value any = raw
	if key == keyNoFilter {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("value for %s must be true or false: %w", key, err)
		}
		value = b
	}

	if err := store.Set(key, value); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	cmd.Printf("%s = %v\n", key, value)
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	key := args[0]
	if _, ok := configKeys[key]; !ok {
		return fmt.Errorf("unknown config key %q", key)
	}

	store := openConfigStore()
	if store == nil {
		return errors.New("config store unavailable")
	}

	if err := store.Unset(key); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	cmd.Printf("unset %s\n", key)
	return nil
}
