package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/pll_trainer/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configuration in effect",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with the defaults",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var targetCmd = &cobra.Command{
	Use:   "target <recognition-seconds> <tps>",
	Short: "Set how fast you want to be",
	Long: `Set the target speed: a fixed time to recognize a case plus the time to
turn its algorithm at the given turns per second. A comma works as the
decimal separator.

Examples:
  plltrainer target 2 2.5
  plltrainer target 1,5 3`,
	Args: cobra.ExactArgs(2),
	RunE: runTarget,
}

func init() {
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(targetCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing file")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), labelStyle.Render("# "+getConfigPath()))
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := getConfigPath()
	if _, err := os.Stat(path); err == nil && !configForce {
		return fmt.Errorf("config file %s already exists, use --force to overwrite", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), goodStyle.Render("Wrote "+path))
	return nil
}

func runTarget(cmd *cobra.Command, args []string) error {
	target, err := config.ParseTargetParameters(args[0], args[1])
	if err != nil {
		return err
	}

	cfg.Target = target
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(getConfigPath()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, label("Recognition", fmt.Sprintf("%gs", target.RecognitionTimeSeconds)))
	fmt.Fprintln(out, label("TPS", fmt.Sprintf("%g", target.TPS)))
	return nil
}
