//go:build e2e

package e2e

import (
	"path/filepath"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func screenshotPath(name string) string {
	return filepath.Join(session.Root, "tests", "screenshots", "current", name+".png")
}

func TestHomeShowsCoupleGreeting(t *testing.T) {
	page := newPage(t)
	_, err := page.Goto("/")
	require.NoError(t, err)

	greeting := page.GetByTestId("couple-greeting")
	require.NoError(t, greeting.WaitFor())

	text, err := greeting.TextContent()
	require.NoError(t, err)
	assert.Contains(t, text, "감자토끼 가계부")
	assert.Contains(t, text, "철수")
	assert.Contains(t, text, "영희")
	assert.Contains(t, text, "감자")
	assert.Contains(t, text, "토끼")
}

func TestSummaryCardReloadsEntries(t *testing.T) {
	page := newPage(t)
	_, err := page.Goto("/")
	require.NoError(t, err)

	card := page.GetByTestId("month-summary")
	role, err := card.GetAttribute("role")
	require.NoError(t, err)
	assert.Equal(t, "button", role)

	resp, err := page.ExpectResponse("**/ui/entries**", func() error {
		return card.Click()
	})
	require.NoError(t, err)
	assert.True(t, resp.Ok())

	require.NoError(t, page.GetByTestId("entries").WaitFor())
}

func TestComponentGalleryScreenshot(t *testing.T) {
	page := newPage(t)
	_, err := page.Goto("/ui/components")
	require.NoError(t, err)

	for _, section := range []string{"badge", "card", "character", "couple-greeting"} {
		require.NoError(t, page.GetByTestId("gallery-"+section).WaitFor(), section)
	}

	path := screenshotPath("components")
	_, err = page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	require.NoError(t, err)
	assert.FileExists(t, path)
}
