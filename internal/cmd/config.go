package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fleetinglore/lore-cli/internal/config"
	"github.com/fleetinglore/lore-cli/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long: `Manage CLI configuration stored in ~/.config/lore/config.yaml.

You can view, set, or unset config keys such as title, stylesheet, and
output_format.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigFromFlag()
		if err != nil {
			return formatConfigLoadError(err)
		}
		if structuredOutputRequested() {
			return printStructured(configOutput(cfg))
		}

		w := stdoutFromContext(cmd.Context())
		fmt.Fprintln(w, "Config:")
		fmt.Fprintf(w, "  title: %s\n", cfg.Title)
		fmt.Fprintf(w, "  stylesheet: %s\n", cfg.Stylesheet)
		fmt.Fprintf(w, "  output_format: %s\n", cfg.OutputFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Unset a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List supported configuration keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := supportedConfigKeys()
		sort.Strings(keys)

		if structuredOutputRequested() {
			return printStructured(keys)
		}

		w := stdoutFromContext(cmd.Context())
		fmt.Fprintln(w, "Supported keys:")
		for _, key := range keys {
			fmt.Fprintf(w, "  %s\n", key)
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdoutFromContext(cmd.Context()), path)
		return nil
	},
}

func configPath() (string, error) {
	if strings.TrimSpace(configFile) != "" {
		return configFile, nil
	}
	return config.DefaultConfigPath()
}

func supportedConfigKeys() []string {
	return []string{
		"title",
		"stylesheet",
		"output_format",
	}
}

func configOutput(cfg *config.Config) map[string]string {
	return map[string]string{
		"title":         cfg.Title,
		"stylesheet":    cfg.Stylesheet,
		"output_format": cfg.OutputFormat,
	}
}

func applyConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "title":
		cfg.Title = value
	case "stylesheet":
		cfg.Stylesheet = value
	case "output_format":
		if _, err := output.ParseFormat(value); err != nil {
			return err
		}
		cfg.OutputFormat = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func clearConfigValue(cfg *config.Config, key string) error {
	switch key {
	case "title":
		cfg.Title = ""
	case "stylesheet":
		cfg.Stylesheet = ""
	case "output_format":
		cfg.OutputFormat = ""
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(strings.TrimSpace(args[0]))
	value := strings.TrimSpace(args[1])

	cfg, err := loadConfigFromFlag()
	if err != nil {
		return formatConfigLoadError(err)
	}
	if err := applyConfigValue(cfg, key, value); err != nil {
		return err
	}

	path, err := configPath()
	if err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	if !output.QuietFromContext(cmd.Context()) {
		fmt.Fprintf(stdoutFromContext(cmd.Context()), "set %s\n", key)
	}
	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(strings.TrimSpace(args[0]))

	cfg, err := loadConfigFromFlag()
	if err != nil {
		return formatConfigLoadError(err)
	}
	if err := clearConfigValue(cfg, key); err != nil {
		return err
	}

	path, err := configPath()
	if err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	if !output.QuietFromContext(cmd.Context()) {
		fmt.Fprintf(stdoutFromContext(cmd.Context()), "unset %s\n", key)
	}
	return nil
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}
