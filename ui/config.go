package ui

import (
	"strings"

	"github.com/1byung/tepdash/config"
)

// pageFromName maps a config page name to a Page. Unknown names fall back
// to the overview.
func pageFromName(name string) Page {
	for i, n := range pageNames {
		if strings.EqualFold(n, name) {
			return Page(i)
		}
	}
	return PageOverview
}

// pageConfigName is the persisted form of a page name.
func pageConfigName(p Page) string {
	if int(p) < len(pageNames) {
		return strings.ToLower(pageNames[p])
	}
	return strings.ToLower(pageNames[PageOverview])
}

// loadDefaultPage returns the user's preferred starting page.
func loadDefaultPage() Page {
	return pageFromName(config.Load().DefaultPage)
}

// saveDefaultPage persists the current page as the starting page.
func saveDefaultPage(p Page) error {
	cfg := config.Load()
	cfg.DefaultPage = pageConfigName(p)
	return config.Save(cfg)
}
