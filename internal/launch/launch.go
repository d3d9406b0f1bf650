// Package launch opens card destinations in a new browsing context.
package launch

import (
	"io"

	"github.com/pkg/browser"
)

// Opener opens a URL in a new browsing context. The selector treats the
// call as fire-and-forget and never inspects the result.
type Opener interface {
	Open(url string) error
}

// Browser opens URLs with the system default web browser.
type Browser struct{}

func (Browser) Open(url string) error {
	return browser.OpenURL(url)
}

// Quiet discards output from the spawned browser process. The pick TUI
// calls this once before starting; stray child output would corrupt the
// alternate screen.
func Quiet() {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
}

// Recorder records open requests instead of performing them.
type Recorder struct {
	URLs []string
}

func (r *Recorder) Open(url string) error {
	r.URLs = append(r.URLs, url)
	return nil
}
