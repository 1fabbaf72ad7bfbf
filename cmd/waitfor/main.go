package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/christophwitzko/waitfor/pkg/cli"
	"github.com/christophwitzko/waitfor/pkg/config"
	"github.com/christophwitzko/waitfor/pkg/endpoint"
	"github.com/christophwitzko/waitfor/pkg/logger"
	"github.com/christophwitzko/waitfor/pkg/wait"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	log := logger.New()
	rootCmd := newRootCmd(log)
	cobra.OnInitialize(func() {
		if err := config.InitConfig(rootCmd, "waitfor"); err != nil {
			log.Errorf("Config error: %v", err)
			os.Exit(1)
		}
		usedConfigFile := viper.ConfigFileUsed()
		if usedConfigFile != "" {
			log.Debugf("using config: %s", cli.GetRelativePath(usedConfigFile))
		}
	})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "waitfor <host>[:<port>] [<host>[:<port>]...]",
		Short: "wait for TCP endpoints to accept connections",
		Long: `waitfor blocks until every given TCP endpoint accepts a connection.
Failed attempts are retried at a fixed interval, the port defaults to 80.`,
		Args:    cobra.ArbitraryArgs,
		Version: cli.GetBuildInfo(),
		Run:     cli.WrapRunE(log, rootRun),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetVerbose(viper.GetBool("verbose"))
			log.Debug(cli.GetBuildInfo())
		},
	}
	config.WaitSetupFlagsAndViper(rootCmd)
	rootCmd.AddCommand(configCmd(log))
	return rootCmd
}

func rootRun(log *logger.Logger, cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &endpoint.UsageError{Reason: "missing target, expected <host>[:<port>]"}
	}
	conf, err := config.NewWaitConfig(viper.GetViper())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = wait.WaitAll(ctx, log, args, wait.Options{
		Interval:    conf.Interval,
		DialTimeout: conf.DialTimeout,
		Timeout:     conf.Timeout,
	})
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("interrupted while waiting: %w", err)
	}
	if err != nil {
		return err
	}

	if conf.SdNotify {
		return notifySystemd(ctx, log)
	}
	return nil
}
