// Package snapshot captures the running dashboard once per site selection
// with a headless browser.
package snapshot

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"spacex-dashboard/config"
	"spacex-dashboard/models"
	"spacex-dashboard/utils"
)

// Target is one page to capture.
type Target struct {
	Site string
	URL  string
	File string
}

// Exporter drives Chrome over the dashboard and writes one PNG per target.
type Exporter struct {
	cfg     *config.Config
	logger  *utils.Logger
	pool    *utils.WorkerPool
	visited *utils.URLSet
	retry   *utils.RetryConfig
}

// New creates an Exporter.
func New(cfg *config.Config, logger *utils.Logger) *Exporter {
	return &Exporter{
		cfg:     cfg,
		logger:  logger,
		pool:    utils.NewWorkerPool(cfg.MaxConcurrency, cfg.RateLimitMs),
		visited: utils.NewURLSet(),
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
	}
}

// Targets builds one capture per dropdown option against baseURL.
func Targets(baseURL string, layout *models.Layout, dir string) []Target {
	base := strings.TrimRight(baseURL, "/")
	targets := make([]Target, 0, len(layout.Dropdown.Options))
	for _, opt := range layout.Dropdown.Options {
		q := url.Values{}
		q.Set("site", opt.Value)
		targets = append(targets, Target{
			Site: opt.Value,
			URL:  base + "/?" + q.Encode(),
			File: filepath.Join(dir, FileName(opt.Value)),
		})
	}
	return targets
}

// FileName turns a site value into a PNG file name.
func FileName(site string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(site) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	name := strings.TrimRight(b.String(), "-")
	if name == "" {
		name = "site"
	}
	return name + ".png"
}

// Export captures every dropdown option of layout from the dashboard at
// baseURL. It returns the files written and the joined capture errors.
func (e *Exporter) Export(ctx context.Context, baseURL string, layout *models.Layout) ([]string, error) {
	if err := os.MkdirAll(e.cfg.SnapshotDir, 0o755); err != nil {
		return nil, fmt.Errorf("snapshot: create dir: %w", err)
	}

	chromeBin := findChromeBinary(e.cfg.ChromeBin)
	e.logger.Info("[snapshot] Using browser binary: %s", chromeBin)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(1280, 1100),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()

	if err := chromedp.Run(browserCtx); err != nil {
		return nil, fmt.Errorf("snapshot: start browser: %w", err)
	}

	written := make(chan string, len(layout.Dropdown.Options))
	for _, t := range Targets(baseURL, layout, e.cfg.SnapshotDir) {
		if !e.visited.Add(t.URL) {
			continue
		}
		e.pool.Submit(func() error {
			err := e.retry.Do(ctx, "snapshot "+t.Site, func() error {
				return e.capture(browserCtx, t)
			})
			if err != nil {
				e.logger.Warn("[snapshot] %s: %v", t.Site, err)
				return err
			}
			written <- t.File
			return nil
		})
	}

	err := e.pool.Wait()
	close(written)

	var files []string
	for f := range written {
		files = append(files, f)
	}
	e.logger.Info("[snapshot] wrote %d/%d snapshots to %s", len(files), e.visited.Size(), e.cfg.SnapshotDir)
	return files, err
}

// capture loads one page in a new tab, waits for both charts and saves a
// full-page PNG.
func (e *Exporter) capture(browserCtx context.Context, t Target) error {
	tabCtx, cancel := chromedp.NewContext(browserCtx)
	defer cancel()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, 45*time.Second)
	defer cancelTimeout()

	var png []byte
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(t.URL),
		chromedp.WaitVisible(`body[data-ready="1"]`, chromedp.ByQuery),
		chromedp.FullScreenshot(&png, 100),
	)
	if err != nil {
		return fmt.Errorf("chromedp: %w", err)
	}

	if err := os.WriteFile(t.File, png, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", t.File, err)
	}
	e.logger.Debug("[snapshot] %s -> %s (%d bytes)", t.URL, t.File, len(png))
	return nil
}

// findChromeBinary returns override when set, otherwise the first Chrome or
// Chromium found on PATH or in the usual install locations.
func findChromeBinary(override string) string {
	if override != "" {
		return override
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
