package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Shivam2709/attendance-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage attend configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration and state file paths",
	Run:   runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Println("# Effective configuration (defaults + config file + env)")
	fmt.Println(string(data))
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) {
	fmt.Println("Config:", config.GlobalConfigPath())
	fmt.Println("State: ", config.GlobalStateDir())
}
