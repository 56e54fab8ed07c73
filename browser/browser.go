package browser

import (
	pkgbrowser "github.com/pkg/browser"
)

// Launcher opens a URL in the host environment's browser.
type Launcher interface {
	Open(url string) error
}

// DefaultLauncher opens URLs with the operating system's default browser.
type DefaultLauncher struct{}

func (DefaultLauncher) Open(url string) error {
	return pkgbrowser.OpenURL(url)
}
