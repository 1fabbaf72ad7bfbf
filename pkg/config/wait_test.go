package config

import (
	"testing"
	"time"

	"github.com/christophwitzko/waitfor/pkg/wait"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNewWaitConfig(t *testing.T) {
	v := viper.New()
	v.Set("interval", "500ms")
	v.Set("dial-timeout", "1s")
	v.Set("timeout", "1m")
	v.Set("sd-notify", true)

	c, err := NewWaitConfig(v)
	require.NoError(t, err)
	require.Equal(t, 500*time.Millisecond, c.Interval)
	require.Equal(t, time.Second, c.DialTimeout)
	require.Equal(t, time.Minute, c.Timeout)
	require.True(t, c.SdNotify)
	require.False(t, c.Verbose)
}

func TestNewWaitConfigCollectsAllErrors(t *testing.T) {
	v := viper.New()
	v.Set("interval", "0s")
	v.Set("dial-timeout", "-1s")
	v.Set("timeout", "-5s")

	_, err := NewWaitConfig(v)
	require.Error(t, err)
	var mErr *multierror.Error
	require.ErrorAs(t, err, &mErr)
	require.Len(t, mErr.Errors, 3)
}

func TestWaitSetupFlagsDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	cmd := &cobra.Command{Use: "test"}
	WaitSetupFlagsAndViper(cmd)

	c, err := NewWaitConfig(viper.GetViper())
	require.NoError(t, err)
	require.Equal(t, wait.DefaultInterval, c.Interval)
	require.Equal(t, wait.DefaultDialTimeout, c.DialTimeout)
	require.Zero(t, c.Timeout)
}

func TestWaitConfigMarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(&WaitConfig{Interval: 2 * time.Second, DialTimeout: time.Second})
	require.NoError(t, err)
	require.Contains(t, string(out), "interval: 2s")
	require.Contains(t, string(out), "dial-timeout: 1s")
	require.Contains(t, string(out), "timeout: 0s")
}
