package main

import (
	"fmt"

	"github.com/christophwitzko/waitfor/pkg/cli"
	"github.com/christophwitzko/waitfor/pkg/config"
	"github.com/christophwitzko/waitfor/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func configCmd(log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective wait config",
		Args:  cobra.NoArgs,
		Run:   cli.WrapRunE(log, configRun),
	}
}

func configRun(log *logger.Logger, cmd *cobra.Command, args []string) error {
	c, err := config.NewWaitConfig(viper.GetViper())
	if err != nil {
		return err
	}

	cfgStr, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# waitfor config\n%s", cfgStr)
	return nil
}
