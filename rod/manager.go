package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultMaxPages is the default number of job pages opened before a
// launched browser is recycled.
const DefaultMaxPages = 75

// BrowserManager owns the Chrome connection used for scraping. It either
// launches a headless Chrome it owns, or attaches to a Chrome the user is
// already running (the one showing the job posting).
//
// Launched browsers are recycled after maxPages pages because Chrome's memory
// baseline keeps growing under load even when pages are closed. Attached
// browsers are never recycled or closed.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	browser    *rod.Browser
	launcher   *launcher.Launcher
	controlURL string
	pageCount  int64
	maxPages   int64
	mu         sync.Mutex
	closed     atomic.Bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithMaxPages sets the number of pages after which a launched browser is
// recycled. Defaults to DefaultMaxPages.
func WithMaxPages(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.maxPages = n
	}
}

// WithControlURL attaches to a running Chrome instead of launching one.
// The URL may be a DevTools websocket URL, an http://host:port address or a
// bare port, as accepted by launcher.ResolveURL.
func WithControlURL(u string) ManagerOption {
	return func(bm *BrowserManager) {
		bm.controlURL = u
	}
}

// NewBrowserManager connects to or launches Chrome.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(bm)
	}

	if bm.Attached() {
		if err := bm.attachBrowser(); err != nil {
			return nil, err
		}
		return bm, nil
	}

	if err := bm.launchBrowser(); err != nil {
		return nil, err
	}
	return bm, nil
}

// Attached reports whether the manager drives a user-owned Chrome.
func (bm *BrowserManager) Attached() bool {
	return bm.controlURL != ""
}

// Browser returns the current browser, recycling a launched browser first
// when its page budget is spent. Callers report each opened page with
// IncrementPageCount.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if !bm.Attached() && atomic.LoadInt64(&bm.pageCount) >= bm.maxPages {
		bm.recycleBrowser()
	}

	return bm.browser
}

// IncrementPageCount records one opened page.
func (bm *BrowserManager) IncrementPageCount() {
	atomic.AddInt64(&bm.pageCount, 1)
}

// Closed reports whether Close has been called.
func (bm *BrowserManager) Closed() bool {
	return bm.closed.Load()
}

// Close releases browser resources. Close is safe to call multiple times.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	return bm.closeBrowser()
}

func (bm *BrowserManager) attachBrowser() error {
	u, err := launcher.ResolveURL(bm.controlURL)
	if err != nil {
		return fmt.Errorf("resolving browser control URL: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("attaching to browser: %w", err)
	}

	bm.browser = browser
	return nil
}

// launchBrowser starts a headless browser with stability flags.
func (bm *BrowserManager) launchBrowser() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	bm.browser = browser
	bm.launcher = lnchr
	return nil
}

// closeBrowser shuts down a launched browser. An attached browser belongs to
// the user and is left running. Must be called with mu held.
func (bm *BrowserManager) closeBrowser() error {
	if bm.Attached() {
		bm.browser = nil
		return nil
	}

	var err error
	if bm.browser != nil {
		err = bm.browser.Close()
		bm.browser = nil
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
		bm.launcher = nil
	}
	return err
}

// recycleBrowser swaps in a fresh browser, keeping the old one if the launch
// fails. Must be called with mu held.
func (bm *BrowserManager) recycleBrowser() {
	oldBrowser := bm.browser
	oldLauncher := bm.launcher
	bm.browser = nil
	bm.launcher = nil

	if err := bm.launchBrowser(); err != nil {
		bm.browser = oldBrowser
		bm.launcher = oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	atomic.StoreInt64(&bm.pageCount, 0)
}

// LauncherPID returns the process ID of the launched browser, or 0 when
// attached. Used by tests to verify cleanup.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}
