package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// pdfTimeout bounds one render-and-print round trip
const pdfTimeout = 30 * time.Second

// PDFService rasterizes the printable quote page into a paginated PDF using
// headless Chrome. The page is a fixed A4 portrait surface; content taller
// than one page splits across additional pages via CSS page breaks.
type PDFService struct {
	baseURL string // where this server's render endpoint is reachable
}

// NewPDFService creates a new PDFService
func NewPDFService(baseURL string) *PDFService {
	return &PDFService{baseURL: baseURL}
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// GeneratePDF navigates headless Chrome to the session's render view and
// prints it to an A4 PDF. Any failure here is recovered by the caller, which
// falls back to the browser print path.
func (s *PDFService) GeneratePDF(ctx context.Context, sessionID string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, pdfTimeout)
	defer cancel()

	chromePath := detectChromePath()
	var allocCtx context.Context
	var allocCancel context.CancelFunc

	if chromePath != "" {
		opts := append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.ExecPath(chromePath),
			chromedp.NoSandbox, // Required for running in Docker/containers
		)
		allocCtx, allocCancel = chromedp.NewExecAllocator(ctx, opts...)
		defer allocCancel()
	} else {
		// Let chromedp auto-detect (may fail in containers)
		allocCtx, allocCancel = chromedp.NewExecAllocator(ctx, chromedp.NoSandbox)
		defer allocCancel()
	}

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/admin/quotes/%s/render", s.baseURL, sessionID)
	log.Printf("🖨️  GeneratePDF: navigating to %s", renderURL)

	var pdfBuf []byte

	// 210mm = 794px at 96 DPI; the tall viewport keeps multi-page content
	// visible before printing.
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 3000),
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		// Wait for fonts and the embedded logo to settle
		chromedp.Evaluate(`
			(function() {
				return Promise.all([
					document.fonts.ready,
					Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
						return new Promise((resolve) => {
							if (img.complete) { resolve(); return; }
							const timeout = setTimeout(() => resolve(), 5000);
							img.onload = () => { clearTimeout(timeout); resolve(); };
							img.onerror = () => { clearTimeout(timeout); resolve(); };
						});
					}))
				]);
			})();
		`, nil),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 portrait: 210mm x 297mm = 8.27" x 11.69". Margins are zero
			// because the page padding lives in CSS; Chrome handles page
			// breaks when content overflows.
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	log.Printf("✓ PDF generated: %d bytes", len(pdfBuf))
	return pdfBuf, nil
}
