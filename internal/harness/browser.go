package harness

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// PlaywrightBrowser is a Chromium instance driven through Playwright.
type PlaywrightBrowser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	config  LaunchConfig
}

// LaunchBrowser starts Playwright and launches Chromium with cfg. The
// Playwright driver and browsers must already be installed.
func LaunchBrowser(cfg LaunchConfig) (*PlaywrightBrowser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(launchOptions(cfg))
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch chromium: %w", err)
	}

	return &PlaywrightBrowser{pw: pw, browser: browser, config: cfg}, nil
}

func launchOptions(cfg LaunchConfig) playwright.BrowserTypeLaunchOptions {
	args := append([]string(nil), cfg.Args...)
	if cfg.Devtools {
		args = append(args, "--auto-open-devtools-for-tabs")
	}
	return playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(float64(cfg.SlowMo.Milliseconds())),
		Timeout:  playwright.Float(float64(cfg.Timeout.Milliseconds())),
		Args:     args,
	}
}

func pageOptions(cfg LaunchConfig) playwright.BrowserNewPageOptions {
	vp := cfg.Viewport
	return playwright.BrowserNewPageOptions{
		Viewport:          &playwright.Size{Width: vp.Width, Height: vp.Height},
		DeviceScaleFactor: playwright.Float(vp.DeviceScaleFactor),
		HasTouch:          playwright.Bool(vp.HasTouch),
		IsMobile:          playwright.Bool(vp.IsMobile),
		Locale:            playwright.String("ko-KR"),
		BaseURL:           playwright.String(cfg.Server.URL()),
	}
}

// NewPage opens a page with the configured viewport, relative URLs resolving
// against the server under test.
func (b *PlaywrightBrowser) NewPage() (playwright.Page, error) {
	page, err := b.browser.NewPage(pageOptions(b.config))
	if err != nil {
		return nil, fmt.Errorf("new page: %w", err)
	}
	return page, nil
}

// Close closes the browser and stops the Playwright driver.
func (b *PlaywrightBrowser) Close() error {
	return errors.Join(b.browser.Close(), b.pw.Stop())
}
