package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/spalmeida/verifica-sites/internal/checker"
	"github.com/spalmeida/verifica-sites/internal/report"
	"github.com/spalmeida/verifica-sites/internal/score"
	"github.com/spalmeida/verifica-sites/internal/screenshot"
	"github.com/spalmeida/verifica-sites/internal/store"
)

const resultsFilename = "results.json"

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run the full health assessment for every site in the links file",
	Long: `Assess each site in the links file, strictly in order.

Per site this runs:
- five availability probes (GET, HEAD, browser-UA GET, trailing-slash GET, TCP dial)
- response time, redirect chain, SSL certificate, DNS, ping
- content-type, page title, error patterns, robots.txt, sitemap.xml, meta refresh
- WordPress fingerprint checks
- homepage content versioning (hash-deduplicated daily snapshots)
- a headless-browser screenshot of the homepage

Every probe is timeout-bounded and its failure only degrades that signal;
only a missing links file aborts the run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify()
	},
}

func runVerify() error {
	links, err := readLinks(cliConfig.LinksFile)
	if err != nil {
		return err
	}
	if len(links) == 0 {
		return &EmptyLinksError{Path: cliConfig.LinksFile}
	}

	runtimeCfg := cliConfig.Verify

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			fmt.Printf("\n%s Received %s, finalizing partial results...\n", colorWarn("!"), sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	st := store.New(cliConfig.OutputDir)
	st.Threshold = runtimeCfg.threshold()

	var reporter checker.Reporter = checker.NopReporter{}
	var progress *progressPrinter
	if runtimeCfg.ProgressEnabled {
		progress = newProgressPrinter(len(links))
		progress.Start()
		reporter = progress
	}

	runner := &checker.Runner{
		Timeout:  runtimeCfg.timeout(),
		Keywords: runtimeCfg.ErrorKeywords,
		Limiter:  rate.NewLimiter(rate.Every(runtimeCfg.stepDelay()), 1),
		Reporter: reporter,
	}

	capturer := &screenshot.Capturer{
		Timeout: runtimeCfg.timeout() + time.Duration(runtimeCfg.Screenshot.WaitSecs)*time.Second,
		Wait:    time.Duration(runtimeCfg.Screenshot.WaitSecs) * time.Second,
	}

	startedAt := time.Now()
	results := make([]report.SiteResult, 0, len(links))
	renderer := &report.Renderer{Out: os.Stdout}

	for _, target := range links {
		if ctx.Err() != nil {
			break
		}

		res := assessSite(ctx, runner, st, capturer, reporter, target, runtimeCfg.Screenshot.Enabled)
		results = append(results, res)

		if progress != nil {
			progress.Stop()
		}
		renderer.RenderSite(res)
		if progress != nil && ctx.Err() == nil {
			progress = restartProgress(progress)
			reporter = progress
			runner.Reporter = progress
		}

		// Courtesy pause before the next site.
		select {
		case <-time.After(runtimeCfg.siteDelay()):
		case <-ctx.Done():
		}
	}

	if progress != nil {
		progress.Stop()
	}

	out := report.RunOutput{
		Metadata: report.RunMetadata{
			LinksFile:    cliConfig.LinksFile,
			StartedAt:    startedAt,
			CompletedAt:  time.Now(),
			TotalTargets: len(results),
		},
		Results: results,
	}

	resultsPath := filepath.Join(cliConfig.OutputDir, resultsFilename)
	if err := report.WriteJSON(resultsPath, out); err != nil {
		return err
	}

	if ctx.Err() != nil {
		fmt.Printf("%s partial run: %d of %d site(s) assessed\n", colorWarn("!"), len(results), len(links))
	} else {
		fmt.Println(colorSuccess("Run complete."))
	}
	fmt.Printf("%s %s\n", colorInfo("Results:"), resultsPath)

	return nil
}

// assessSite runs the whole pipeline for one target and assembles the tuple
// the report assembler consumes.
func assessSite(ctx context.Context, runner *checker.Runner, st *store.Store, capturer *screenshot.Capturer, reporter checker.Reporter, target string, shotEnabled bool) report.SiteResult {
	obs := runner.Collect(ctx, target)

	res := report.SiteResult{}

	// Versioned snapshot of the homepage content. A storage failure is
	// surfaced for this site only; the run continues.
	saved, err := st.Save(obs.Domain, obs.Body)
	if err != nil {
		logger.Warnw("snapshot save failed", "domain", obs.Domain, "error", err)
		res.StorageError = err.Error()
	} else {
		res.NewSnapshot = saved.Filename
		res.TotalToday = saved.TotalToday
	}
	reporter.Step(target, "content versioning")

	res.Performance = score.Performance(obs)
	reporter.Step(target, "performance")

	if shotEnabled {
		if path, err := st.ScreenshotPath(obs.Domain); err != nil {
			obs.ScreenshotErr = err.Error()
		} else if err := capturer.Capture(ctx, checker.NormalizeHTTPTarget(target), path); err != nil {
			logger.Warnw("screenshot failed", "target", target, "error", err)
			obs.ScreenshotErr = err.Error()
		} else {
			obs.ScreenshotPath = path
		}
	}
	reporter.Step(target, "screenshot")

	res.Observations = obs
	res.Grade = score.Grade(obs)
	res.Band = score.Band(res.Grade)
	return res
}

// restartProgress replaces a stopped printer, carrying its counters forward
// so the percentage stays continuous across per-site renders.
func restartProgress(old *progressPrinter) *progressPrinter {
	next := &progressPrinter{
		total:   old.total,
		done:    old.done,
		updates: make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}
	next.Start()
	return next
}

func init() {
	flags := verifyCmd.Flags()
	flags.IntVarP(&cliConfig.Verify.TimeoutSecs, "timeout", "t", cliConfig.Verify.TimeoutSecs, "per-probe timeout in seconds")
	flags.IntVar(&cliConfig.Verify.ThresholdSecs, "recheck-threshold", cliConfig.Verify.ThresholdSecs, "minimum seconds before a same-day snapshot is reconsidered")
	flags.IntVar(&cliConfig.Verify.StepDelayMS, "step-delay", cliConfig.Verify.StepDelayMS, "courtesy delay between steps in milliseconds")
	flags.IntVar(&cliConfig.Verify.SiteDelayMS, "site-delay", cliConfig.Verify.SiteDelayMS, "courtesy delay between sites in milliseconds")
	flags.StringSliceVar(&cliConfig.Verify.ErrorKeywords, "error-keywords", cliConfig.Verify.ErrorKeywords, "error keywords matched against the homepage body")
	flags.BoolVar(&cliConfig.Verify.ProgressEnabled, "progress", cliConfig.Verify.ProgressEnabled, "display live progress")
	flags.BoolVar(&cliConfig.Verify.Screenshot.Enabled, "screenshot", cliConfig.Verify.Screenshot.Enabled, "capture a homepage screenshot per site")
	flags.IntVar(&cliConfig.Verify.Screenshot.WaitSecs, "screenshot-wait", cliConfig.Verify.Screenshot.WaitSecs, "seconds to wait for the page to render before capturing")
}
