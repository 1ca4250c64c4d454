// Package screenshot captures the first fold of a site's homepage with a
// headless browser.
package screenshot

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/chromedp"
)

const (
	viewportWidth  = 1280
	viewportHeight = 800
	filePerm       = 0o644
)

// Capturer drives a headless Chrome instance. A zero Wait uses the default
// render pause.
type Capturer struct {
	Timeout time.Duration
	Wait    time.Duration // pause after navigation so the page can render
}

// Capture navigates to the URL and writes a PNG of the viewport to outFile,
// overwriting any previous capture. The failure is the caller's to report;
// it never aborts a run.
func (c *Capturer) Capture(ctx context.Context, url, outFile string) error {
	wait := c.Wait
	if wait <= 0 {
		wait = 2 * time.Second
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(viewportWidth, viewportHeight),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		browserCtx, cancel = context.WithTimeout(browserCtx, c.Timeout)
		defer cancel()
	}

	var png []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(wait),
		chromedp.CaptureScreenshot(&png),
	)
	if err != nil {
		return fmt.Errorf("capture screenshot: %w", err)
	}

	if err := os.WriteFile(outFile, png, filePerm); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}
	return nil
}
