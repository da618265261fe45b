package progress

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/schollz/progressbar/v3"
)

// Options configures progress output behavior
type Options struct {
	Quiet   bool
	Verbose bool
}

// Manager handles scan progress bars and user cancellation
type Manager struct {
	options    Options
	walkBar    *progressbar.ProgressBar
	hashBar    *progressbar.ProgressBar
	cancelFunc context.CancelFunc
	cancelled  bool
	cancelMux  sync.Mutex
	signalChan chan os.Signal
}

// NewManager creates a new progress manager
func NewManager(options Options) *Manager {
	return &Manager{
		options:    options,
		signalChan: make(chan os.Signal, 1),
	}
}

// SetupCancellation sets up signal handling for cancellation. A SIGINT
// stops issuing new file reads promptly; in-flight reads drain and the
// partial results stay reportable.
func (pm *Manager) SetupCancellation(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	pm.cancelFunc = cancel

	signal.Notify(pm.signalChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-pm.signalChan:
			pm.cancelMux.Lock()
			pm.cancelled = true
			pm.cancelMux.Unlock()
			fmt.Fprintln(os.Stderr, "\nScan cancelled, reporting partial results")
			cancel()
		case <-ctx.Done():
			// Context already cancelled
		}
	}()

	return ctx
}

// IsCancelled checks if the operation was cancelled
func (pm *Manager) IsCancelled() bool {
	pm.cancelMux.Lock()
	defer pm.cancelMux.Unlock()
	return pm.cancelled
}

// Cleanup removes signal handlers
func (pm *Manager) Cleanup() {
	signal.Stop(pm.signalChan)
	if pm.cancelFunc != nil {
		pm.cancelFunc()
	}
}

// StartWalk shows an indeterminate spinner while candidate files are being
// collected (the total is unknown until the walk ends).
func (pm *Manager) StartWalk(description string) {
	if pm.options.Quiet {
		return
	}

	pm.walkBar = progressbar.NewOptions64(-1,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65),
		progressbar.OptionSpinnerType(14),
	)
}

// WalkFound advances the walk spinner by one discovered file.
func (pm *Manager) WalkFound() {
	if pm.options.Quiet || pm.walkBar == nil {
		return
	}
	// #nosec G104 - progress bar errors are not critical for functionality
	pm.walkBar.Add(1)
}

// FinishWalk clears the walk spinner.
func (pm *Manager) FinishWalk() {
	if pm.options.Quiet || pm.walkBar == nil {
		return
	}
	// #nosec G104 - progress bar errors are not critical for functionality
	pm.walkBar.Clear()
	fmt.Fprint(os.Stderr, "\r")
}

// InitHashProgress initializes the fingerprinting progress bar once the
// candidate count is known.
func (pm *Manager) InitHashProgress(totalFiles int64, description string) {
	if pm.options.Quiet {
		return
	}

	pm.hashBar = progressbar.NewOptions64(totalFiles,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(50),
		progressbar.OptionThrottle(65),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() {
			// #nosec G104 - progress bar completion message is not critical
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionFullWidth(),
	)
}

// UpdateHashProgress advances the fingerprinting bar by one file.
func (pm *Manager) UpdateHashProgress() {
	if pm.options.Quiet || pm.hashBar == nil {
		return
	}
	// #nosec G104 - progress bar errors are not critical for functionality
	pm.hashBar.Add(1)
}

// FinishHashProgress marks fingerprinting as complete.
func (pm *Manager) FinishHashProgress() {
	if pm.options.Quiet || pm.hashBar == nil {
		return
	}
	// #nosec G104 - progress bar errors are not critical for functionality
	pm.hashBar.Finish()
}

// PrintVerbose prints verbose information if verbose mode is enabled
func (pm *Manager) PrintVerbose(format string, args ...interface{}) {
	if !pm.options.Verbose {
		return
	}
	if pm.hashBar != nil {
		// #nosec G104 - progress bar clear is not critical for functionality
		pm.hashBar.Clear()
	}
	fmt.Printf(format, args...)
	if len(format) == 0 || format[len(format)-1] != '\n' {
		fmt.Println()
	}
}

// PrintInfo prints informational messages (unless quiet mode)
func (pm *Manager) PrintInfo(format string, args ...interface{}) {
	if pm.options.Quiet {
		return
	}
	if pm.hashBar != nil {
		// #nosec G104 - progress bar clear is not critical for functionality
		pm.hashBar.Clear()
	}
	fmt.Printf(format, args...)
}
