package cmd

import (
	"testing"

	"github.com/spf13/viper"
)

func TestApplyConfigOverridesFromFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("links_file", "sites.txt")
	viper.Set("output_dir", "archive")
	viper.Set("verify.timeout_secs", 25)
	viper.Set("verify.recheck_threshold_secs", 1200)
	viper.Set("verify.error_keywords", []string{"offline", "suspended"})
	viper.Set("verify.screenshot.enabled", false)

	cfg := newCLIConfig()
	applyConfigOverrides(rootCmd, cfg)

	if cfg.LinksFile != "sites.txt" {
		t.Errorf("Expected links file 'sites.txt', got %q", cfg.LinksFile)
	}
	if cfg.OutputDir != "archive" {
		t.Errorf("Expected output dir 'archive', got %q", cfg.OutputDir)
	}
	if cfg.Verify.TimeoutSecs != 25 {
		t.Errorf("Expected timeout 25, got %d", cfg.Verify.TimeoutSecs)
	}
	if cfg.Verify.ThresholdSecs != 1200 {
		t.Errorf("Expected threshold 1200, got %d", cfg.Verify.ThresholdSecs)
	}
	if len(cfg.Verify.ErrorKeywords) != 2 || cfg.Verify.ErrorKeywords[0] != "offline" {
		t.Errorf("Expected configured keywords, got %v", cfg.Verify.ErrorKeywords)
	}
	if cfg.Verify.Screenshot.Enabled {
		t.Error("Expected screenshots disabled by config")
	}
}

func TestApplyConfigOverridesFlagWins(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("verify.site_delay_ms", 5000)

	if err := verifyCmd.Flags().Set("site-delay", "250"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	cfg := newCLIConfig()
	cfg.Verify.SiteDelayMS = 250
	applyConfigOverrides(rootCmd, cfg)

	if cfg.Verify.SiteDelayMS != 250 {
		t.Errorf("Expected explicit flag to win over config, got %d", cfg.Verify.SiteDelayMS)
	}
}

func TestApplyConfigOverridesDefaultsUntouched(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	cfg := newCLIConfig()
	applyConfigOverrides(rootCmd, cfg)

	if cfg.LinksFile != defaultLinksFile {
		t.Errorf("Expected default links file, got %q", cfg.LinksFile)
	}
	if cfg.Verify.TimeoutSecs != defaultTimeoutSeconds {
		t.Errorf("Expected default timeout, got %d", cfg.Verify.TimeoutSecs)
	}
}
