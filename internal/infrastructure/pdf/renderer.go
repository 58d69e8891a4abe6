package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const (
	defaultRenderTimeout = 30 * time.Second

	// A4 portrait in millimeters
	paperWidthMM  = 210
	paperHeightMM = 297
	marginMM      = 15
)

// footerTemplate prints the page number on every page. Chrome expects
// inline styles here; external CSS does not apply to print templates.
const footerTemplate = `<div style="font-size:8px;width:100%;text-align:center;color:#777;">` +
	`Page <span class="pageNumber"></span> of <span class="totalPages"></span></div>`

// Document is a rendered report ready for printing
type Document struct {
	Title string
	HTML  string
}

// Renderer converts an HTML document to PDF bytes
type Renderer interface {
	Render(ctx context.Context, doc Document) ([]byte, error)
	Close() error
}

// Config contains configuration for the chromedp renderer
type Config struct {
	// RemoteURL points at a remote Chrome instance. If empty, a local
	// browser is launched.
	RemoteURL string
	// Timeout for a single render
	Timeout time.Duration
	// NoSandbox runs Chrome without sandbox (required for Docker/root)
	NoSandbox bool
	Logger    *zap.Logger
}

// ChromedpRenderer renders HTML to PDF using Chrome DevTools Protocol
type ChromedpRenderer struct {
	config      Config
	logger      *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromedpRenderer creates a new chromedp-based PDF renderer
func NewChromedpRenderer(config Config) *ChromedpRenderer {
	if config.Timeout == 0 {
		config.Timeout = defaultRenderTimeout
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	renderer := &ChromedpRenderer{
		config: config,
		logger: logger,
	}
	renderer.initAllocator()
	return renderer
}

func (r *ChromedpRenderer) initAllocator() {
	if r.config.RemoteURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), r.config.RemoteURL)
		return
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true), // Important for Docker
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if r.config.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}
	r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
}

// Render converts an HTML document to PDF
func (r *ChromedpRenderer) Render(ctx context.Context, doc Document) ([]byte, error) {
	if strings.TrimSpace(doc.HTML) == "" {
		return nil, fmt.Errorf("document HTML is empty")
	}

	startTime := time.Now()

	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(r.allocCtx,
		chromedp.WithLogf(func(format string, args ...interface{}) {
			r.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer browserCancel()

	html := buildCompleteHTML(doc)

	var pdfData []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(mmToInches(paperWidthMM)).
				WithPaperHeight(mmToInches(paperHeightMM)).
				WithMarginTop(mmToInches(marginMM)).
				WithMarginRight(mmToInches(marginMM)).
				WithMarginBottom(mmToInches(marginMM)).
				WithMarginLeft(mmToInches(marginMM)).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate("<span></span>").
				WithFooterTemplate(footerTemplate).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfData = data
			return nil
		}),
	)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("PDF rendering timed out after %v: %w", r.config.Timeout, err)
		}
		r.logger.Error("chromedp rendering failed", zap.Error(err))
		return nil, fmt.Errorf("chromedp execution failed: %w", err)
	}
	if len(pdfData) == 0 {
		return nil, fmt.Errorf("generated PDF is empty")
	}

	r.logger.Info("PDF rendered",
		zap.String("title", doc.Title),
		zap.Int("bytes", len(pdfData)),
		zap.Duration("duration", time.Since(startTime)))

	return pdfData, nil
}

// Close releases the browser allocator
func (r *ChromedpRenderer) Close() error {
	if r.allocCancel != nil {
		r.allocCancel()
	}
	return nil
}

// buildCompleteHTML wraps a fragment in a full document. HTML that is
// already a complete document passes through unchanged.
func buildCompleteHTML(doc Document) string {
	lower := strings.ToLower(doc.HTML)
	if strings.Contains(lower, "<!doctype") || strings.Contains(lower, "<html") {
		return doc.HTML
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head>")
	b.WriteString(`<meta charset="UTF-8">`)
	if doc.Title != "" {
		b.WriteString("<title>")
		b.WriteString(doc.Title)
		b.WriteString("</title>")
	}
	b.WriteString("</head><body>")
	b.WriteString(doc.HTML)
	b.WriteString("</body></html>")
	return b.String()
}

func mmToInches(mm float64) float64 {
	return mm / 25.4
}

// Ensure ChromedpRenderer implements Renderer
var _ Renderer = (*ChromedpRenderer)(nil)
