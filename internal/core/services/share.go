package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driven"
	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driving"
)

// DefaultShareBaseURL is used for share links when no base URL is
// configured.
const DefaultShareBaseURL = "http://localhost:3000"

// ShareService publishes read-only snapshots of documents and renders
// them as standalone HTML pages.
type ShareService struct {
	shareStore driven.ShareStore
	baseURL    string
	now        func() time.Time
	newID      func() string
}

var _ driving.ShareService = (*ShareService)(nil)

// NewShareService creates a share service backed by the given store.
// An empty baseURL falls back to DefaultShareBaseURL.
func NewShareService(shareStore driven.ShareStore, baseURL string) *ShareService {
	if baseURL == "" {
		baseURL = DefaultShareBaseURL
	}
	return &ShareService{
		shareStore: shareStore,
		baseURL:    strings.TrimRight(baseURL, "/"),
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Create publishes a snapshot of the document and returns the share id.
func (s *ShareService) Create(ctx context.Context, ownerID, title, content string, public bool) (string, error) {
	if s.shareStore == nil {
		return "", fmt.Errorf("share store: %w", domain.ErrNotImplemented)
	}
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return "", fmt.Errorf("owner id is required: %w", domain.ErrInvalidInput)
	}
	title = domain.NormalizeTitle(strings.TrimSuffix(title, ".md"))

	share := &domain.SharedDocument{
		ID:        s.newID(),
		OwnerID:   ownerID,
		Title:     title,
		Content:   content,
		Public:    public,
		Views:     0,
		CreatedAt: s.now().UTC(),
	}
	if err := s.shareStore.Save(ctx, share); err != nil {
		return "", fmt.Errorf("creating share: %w", err)
	}
	return share.ID, nil
}

// Get returns a shared document and counts the view.
func (s *ShareService) Get(ctx context.Context, shareID string) (*domain.SharedDocument, error) {
	if s.shareStore == nil {
		return nil, fmt.Errorf("share store: %w", domain.ErrNotImplemented)
	}
	share, err := s.shareStore.Get(ctx, shareID)
	if err != nil {
		return nil, err
	}
	if err := s.shareStore.IncrementViews(ctx, shareID); err != nil {
		return nil, fmt.Errorf("counting view of %s: %w", shareID, err)
	}
	share.Views++
	return share, nil
}

// ShareURL returns the public link for a share id.
func (s *ShareService) ShareURL(shareID string) string {
	return fmt.Sprintf("%s/share/%s", s.baseURL, shareID)
}

// RenderHTML renders a shared document as a self-contained HTML page.
func (s *ShareService) RenderHTML(share *domain.SharedDocument) string {
	title := escapeHTML(share.Title)
	var warning string
	if !share.Public {
		warning = `<div class="share-warning">This document is shared with view-only access.</div>`
	}
	return fmt.Sprintf(sharePageTemplate,
		title,
		title,
		warning,
		markdownToBasicHTML(share.Content),
		s.now().Format("January 2, 2006"),
	)
}

var (
	reH3         = regexp.MustCompile(`(?m)^### (.*)$`)
	reH2         = regexp.MustCompile(`(?m)^## (.*)$`)
	reH1         = regexp.MustCompile(`(?m)^# (.*)$`)
	reBoldItalic = regexp.MustCompile(`\*\*\*(.*?)\*\*\*`)
	reBold       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	reItalic     = regexp.MustCompile(`\*(.*?)\*`)
	reCodeBlock  = regexp.MustCompile("(?s)```(.*?)```")
	reCode       = regexp.MustCompile("`(.*?)`")
	reImage      = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	reLink       = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	reOpenHead   = regexp.MustCompile(`<p><h([1-6])>`)
	reCloseHead  = regexp.MustCompile(`</h([1-6])></p>`)
)

// markdownToBasicHTML converts a useful subset of markdown (headings,
// emphasis, code, links, images, paragraphs) to HTML. It is a display
// convenience for share pages, not a full parser.
func markdownToBasicHTML(markdown string) string {
	html := markdown

	html = reH3.ReplaceAllString(html, "<h3>$1</h3>")
	html = reH2.ReplaceAllString(html, "<h2>$1</h2>")
	html = reH1.ReplaceAllString(html, "<h1>$1</h1>")

	html = reBoldItalic.ReplaceAllString(html, "<strong><em>$1</em></strong>")
	html = reBold.ReplaceAllString(html, "<strong>$1</strong>")
	html = reItalic.ReplaceAllString(html, "<em>$1</em>")

	html = reCodeBlock.ReplaceAllString(html, "<pre><code>$1</code></pre>")
	html = reCode.ReplaceAllString(html, "<code>$1</code>")

	// Images before links: both share the bracket syntax.
	html = reImage.ReplaceAllString(html, `<img src="$2" alt="$1" />`)
	html = reLink.ReplaceAllString(html, `<a href="$2" target="_blank">$1</a>`)

	html = strings.ReplaceAll(html, "\n\n", "</p><p>")
	html = strings.ReplaceAll(html, "\n", "<br>")
	html = "<p>" + html + "</p>"

	html = strings.ReplaceAll(html, "<p></p>", "")
	html = reOpenHead.ReplaceAllString(html, "<h$1>")
	html = reCloseHead.ReplaceAllString(html, "</h$1>")
	html = strings.ReplaceAll(html, "<p><pre>", "<pre>")
	html = strings.ReplaceAll(html, "</pre></p>", "</pre>")

	return html
}

func escapeHTML(unsafe string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#039;",
	)
	return r.Replace(unsafe)
}

const sharePageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 800px;
            margin: 40px auto;
            padding: 20px;
            background: #ffffff;
        }
        .header {
            text-align: center;
            border-bottom: 2px solid #f0f0f0;
            padding-bottom: 20px;
            margin-bottom: 30px;
        }
        .title { font-size: 2.5em; margin: 0; color: #2c3e50; }
        .subtitle { color: #7f8c8d; margin-top: 10px; font-size: 0.9em; }
        .content {
            background: #fdfdfd;
            border-radius: 8px;
            padding: 30px;
            box-shadow: 0 2px 10px rgba(0,0,0,0.1);
        }
        .footer {
            text-align: center;
            margin-top: 40px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            color: #888;
            font-size: 0.85em;
        }
        pre {
            background: #f8f9fa;
            border: 1px solid #e9ecef;
            border-radius: 4px;
            padding: 16px;
            overflow-x: auto;
            font-family: 'Monaco', 'Menlo', monospace;
        }
        code {
            background: #f1f3f4;
            padding: 2px 6px;
            border-radius: 3px;
            font-family: 'Monaco', 'Menlo', monospace;
            font-size: 0.9em;
        }
        img { max-width: 100%%; height: auto; border-radius: 4px; }
        h1, h2, h3 { color: #2c3e50; margin-top: 30px; margin-bottom: 15px; }
        .share-warning {
            background: #fff3cd;
            border: 1px solid #ffeaa7;
            border-radius: 4px;
            padding: 12px;
            margin-bottom: 20px;
            color: #856404;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1 class="title">%s</h1>
        <div class="subtitle">Shared from Markdown AI</div>
    </div>
    %s
    <div class="content">
        %s
    </div>
    <div class="footer">
        <p>Created with <strong>Markdown AI</strong></p>
        <p><small>Generated on %s</small></p>
    </div>
</body>
</html>`
