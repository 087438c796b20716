// Package render turns assembled drafts into downloadable files.  Documents
// are generated in memory and streamed to the caller; nothing is written to
// disk, so no user data persists server-side.
package render

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/turtacn/CivicDraft/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CivicDraft/pkg/errors"
)

// Field is one labelled value on a tracking sheet.  Slices of Field keep the
// caller's ordering, unlike a map.
type Field struct {
	Label string
	Value string
}

// Request carries everything a renderer may place in the output document.
type Request struct {
	DraftText     string
	DocumentType  string
	ApplicantName string

	ApplicantDetails []Field
	AuthorityDetails []Field

	// GeneratedAt stamps the document; the zero value means "now".
	GeneratedAt time.Time
}

// Output is a rendered document ready to stream.
type Output struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Renderer produces one output format.
type Renderer interface {
	Format() string
	Render(ctx context.Context, req Request) (Output, error)
}

// ─────────────────────────────────────────────────────────────────────────────
// Exporter
// ─────────────────────────────────────────────────────────────────────────────

// Exporter dispatches to the Renderer registered for a format.  Safe for
// concurrent use after construction.
type Exporter struct {
	renderers map[string]Renderer
	logger    logging.Logger
}

// NewExporter registers the in-tree renderers: txt and xlsx.  PDF and DOCX
// renderers are external collaborators; plug them in via Register before
// serving traffic.  A nil logger falls back to a no-op logger.
func NewExporter(logger logging.Logger) *Exporter {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	e := &Exporter{
		renderers: map[string]Renderer{},
		logger:    logger.Named("render"),
	}
	e.Register(NewTextRenderer())
	e.Register(NewXLSXRenderer())
	return e
}

// Register adds or replaces the renderer for its format.
func (e *Exporter) Register(r Renderer) {
	e.renderers[strings.ToLower(r.Format())] = r
}

// Formats lists the registered output formats.
func (e *Exporter) Formats() []string {
	out := make([]string, 0, len(e.renderers))
	for _, f := range []string{"txt", "xlsx", "pdf", "docx"} {
		if _, ok := e.renderers[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Export renders req in the requested format.
func (e *Exporter) Export(ctx context.Context, format string, req Request) (Output, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	r, ok := e.renderers[format]
	if !ok {
		return Output{}, errors.New(errors.CodeFormatUnsupported,
			fmt.Sprintf("unsupported format %q; supported: %s", format, strings.Join(e.Formats(), ", ")))
	}
	out, err := r.Render(ctx, req)
	if err != nil {
		return Output{}, errors.Wrap(err, errors.CodeRenderFailed,
			fmt.Sprintf("rendering %s failed", format))
	}
	e.logger.Info("document rendered",
		logging.String("format", format),
		logging.String("filename", out.Filename),
		logging.Int("bytes", len(out.Data)),
	)
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Shared helpers
// ─────────────────────────────────────────────────────────────────────────────

// safeFilename builds "<docType>_<name>_<yyyymmdd>.<ext>" with the applicant
// name reduced to filesystem-safe characters and capped at 30 runes.
func safeFilename(docType, applicantName, suffix, ext string, at time.Time) string {
	var b strings.Builder
	for _, r := range applicantName {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	name := strings.ReplaceAll(strings.TrimSpace(b.String()), " ", "_")
	if len(name) > 30 {
		name = name[:30]
	}
	if name == "" {
		name = "applicant"
	}
	if suffix != "" {
		suffix = "_" + suffix
	}
	return fmt.Sprintf("%s%s_%s_%s.%s", docType, suffix, name, at.Format("20060102"), ext)
}

func stampTime(req Request) time.Time {
	if req.GeneratedAt.IsZero() {
		return time.Now()
	}
	return req.GeneratedAt
}
