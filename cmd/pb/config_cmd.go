package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/raphi011/pb/internal/config"
	"github.com/raphi011/pb/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration",
		Long: `Show the effective configuration after defaults are applied.

The configuration is read from ~/.config/pb/config.toml (or
$XDG_CONFIG_HOME/pb/config.toml). A missing file means defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := output.FromContext(cmd.Context())

			if path, err := config.Path(); err == nil {
				p.Printf("# %s\n", path)
			}
			if err := toml.NewEncoder(p.Writer()).Encode(cfg); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return nil
		},
	}

	return cmd
}
