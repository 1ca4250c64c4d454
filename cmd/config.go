package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	defaultLinksFile        = "links.txt"
	defaultOutputDir        = "dominios"
	defaultTimeoutSeconds   = 10
	defaultThresholdSeconds = 600
	defaultStepDelayMillis  = 100
	defaultSiteDelayMillis  = 500
	defaultShotWaitSeconds  = 2
)

// CLIConfig captures runtime configuration shared across commands.
type CLIConfig struct {
	LinksFile string
	OutputDir string
	Verify    VerifyRuntimeConfig
}

// VerifyRuntimeConfig consolidates flag-driven settings for the verify command.
type VerifyRuntimeConfig struct {
	TimeoutSecs     int
	ThresholdSecs   int
	StepDelayMS     int
	SiteDelayMS     int
	ErrorKeywords   []string
	ProgressEnabled bool
	Screenshot      ScreenshotConfig
}

// ScreenshotConfig groups headless-capture options.
type ScreenshotConfig struct {
	Enabled  bool
	WaitSecs int
}

var cliConfig = newCLIConfig()

func newCLIConfig() *CLIConfig {
	return &CLIConfig{
		LinksFile: defaultLinksFile,
		OutputDir: defaultOutputDir,
		Verify: VerifyRuntimeConfig{
			TimeoutSecs:     defaultTimeoutSeconds,
			ThresholdSecs:   defaultThresholdSeconds,
			StepDelayMS:     defaultStepDelayMillis,
			SiteDelayMS:     defaultSiteDelayMillis,
			ProgressEnabled: true,
			Screenshot: ScreenshotConfig{
				Enabled:  true,
				WaitSecs: defaultShotWaitSeconds,
			},
		},
	}
}

// applyConfigOverrides layers config-file values under explicit flags: a
// value from the file wins only when the corresponding flag was not set on
// the command line. The root command is passed in rather than read from the
// package variable so this function carries no reference back to it.
func applyConfigOverrides(root *cobra.Command, cfg *CLIConfig) {
	setString := func(key string, flag *pflag.Flag, dst *string) {
		if viper.IsSet(key) && (flag == nil || !flag.Changed) {
			*dst = viper.GetString(key)
		}
	}
	setInt := func(key string, flag *pflag.Flag, dst *int) {
		if viper.IsSet(key) && (flag == nil || !flag.Changed) {
			*dst = viper.GetInt(key)
		}
	}
	setBool := func(key string, flag *pflag.Flag, dst *bool) {
		if viper.IsSet(key) && (flag == nil || !flag.Changed) {
			*dst = viper.GetBool(key)
		}
	}

	setString("links_file", root.PersistentFlags().Lookup("links"), &cfg.LinksFile)
	setString("output_dir", root.PersistentFlags().Lookup("output"), &cfg.OutputDir)

	verifyFlags := verifyCmd.Flags()
	setInt("verify.timeout_secs", verifyFlags.Lookup("timeout"), &cfg.Verify.TimeoutSecs)
	setInt("verify.recheck_threshold_secs", verifyFlags.Lookup("recheck-threshold"), &cfg.Verify.ThresholdSecs)
	setInt("verify.step_delay_ms", verifyFlags.Lookup("step-delay"), &cfg.Verify.StepDelayMS)
	setInt("verify.site_delay_ms", verifyFlags.Lookup("site-delay"), &cfg.Verify.SiteDelayMS)
	setBool("verify.progress", verifyFlags.Lookup("progress"), &cfg.Verify.ProgressEnabled)
	setBool("verify.screenshot.enabled", verifyFlags.Lookup("screenshot"), &cfg.Verify.Screenshot.Enabled)
	setInt("verify.screenshot.wait_secs", verifyFlags.Lookup("screenshot-wait"), &cfg.Verify.Screenshot.WaitSecs)

	if viper.IsSet("verify.error_keywords") && !verifyFlags.Lookup("error-keywords").Changed {
		cfg.Verify.ErrorKeywords = viper.GetStringSlice("verify.error_keywords")
	}
}

func (c *VerifyRuntimeConfig) timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}

func (c *VerifyRuntimeConfig) threshold() time.Duration {
	return time.Duration(c.ThresholdSecs) * time.Second
}

func (c *VerifyRuntimeConfig) stepDelay() time.Duration {
	return time.Duration(c.StepDelayMS) * time.Millisecond
}

func (c *VerifyRuntimeConfig) siteDelay() time.Duration {
	return time.Duration(c.SiteDelayMS) * time.Millisecond
}
