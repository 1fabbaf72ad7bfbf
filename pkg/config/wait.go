package config

import (
	"fmt"
	"time"

	"github.com/christophwitzko/waitfor/pkg/cli"
	"github.com/christophwitzko/waitfor/pkg/wait"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type WaitConfig struct {
	Interval    time.Duration
	DialTimeout time.Duration
	Timeout     time.Duration
	SdNotify    bool
	Verbose     bool
}

// NewWaitConfig reads the wait settings from v and reports every invalid value at once.
func NewWaitConfig(v *viper.Viper) (*WaitConfig, error) {
	c := &WaitConfig{
		Interval:    v.GetDuration("interval"),
		DialTimeout: v.GetDuration("dial-timeout"),
		Timeout:     v.GetDuration("timeout"),
		SdNotify:    v.GetBool("sd-notify"),
		Verbose:     v.GetBool("verbose"),
	}

	var confErr error
	if c.Interval <= 0 {
		confErr = multierror.Append(confErr, fmt.Errorf("interval must be positive, got %s", c.Interval))
	}
	if c.DialTimeout <= 0 {
		confErr = multierror.Append(confErr, fmt.Errorf("dial timeout must be positive, got %s", c.DialTimeout))
	}
	if c.Timeout < 0 {
		confErr = multierror.Append(confErr, fmt.Errorf("timeout must not be negative, got %s", c.Timeout))
	}
	if confErr != nil {
		return nil, confErr
	}

	return c, nil
}

// MarshalYAML renders durations in their human readable form.
func (c *WaitConfig) MarshalYAML() (interface{}, error) {
	return struct {
		Interval    string `yaml:"interval"`
		DialTimeout string `yaml:"dial-timeout"`
		Timeout     string `yaml:"timeout"`
		SdNotify    bool   `yaml:"sd-notify"`
		Verbose     bool   `yaml:"verbose"`
	}{
		Interval:    c.Interval.String(),
		DialTimeout: c.DialTimeout.String(),
		Timeout:     c.Timeout.String(),
		SdNotify:    c.SdNotify,
		Verbose:     c.Verbose,
	}, nil
}

func WaitSetupFlagsAndViper(cmd *cobra.Command) {
	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().Duration("interval", wait.DefaultInterval, "time to sleep between connection attempts")
	cmd.PersistentFlags().Duration("dial-timeout", wait.DefaultDialTimeout, "timeout of a single connection attempt")
	cmd.PersistentFlags().Duration("timeout", 0, "overall deadline, 0 waits forever")
	cmd.PersistentFlags().Bool("sd-notify", false, "notify systemd (READY=1) once all targets are up")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log every failed connection attempt")
	cli.Must(viper.BindPFlags(cmd.PersistentFlags()))
}
