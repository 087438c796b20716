package render

import (
	"context"
	"fmt"
	"strings"
)

// TextRenderer emits the draft as plain UTF-8 text with a generation footer.
type TextRenderer struct{}

func NewTextRenderer() *TextRenderer { return &TextRenderer{} }

func (r *TextRenderer) Format() string { return "txt" }

func (r *TextRenderer) Render(ctx context.Context, req Request) (Output, error) {
	if err := ctx.Err(); err != nil {
		return Output{}, err
	}
	at := stampTime(req)

	var b strings.Builder
	b.WriteString(strings.TrimSpace(req.DraftText))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Generated on: %s\n", at.Format("02 January 2006 15:04")))

	return Output{
		Data:        []byte(b.String()),
		Filename:    safeFilename(req.DocumentType, req.ApplicantName, "", "txt", at),
		ContentType: "text/plain; charset=utf-8",
	}, nil
}
