package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XLSXRenderer produces a submission tracking workbook: one sheet with the
// application, applicant and authority details plus empty tracking rows, and
// a second sheet carrying the draft text for record keeping.
type XLSXRenderer struct{}

func NewXLSXRenderer() *XLSXRenderer { return &XLSXRenderer{} }

func (r *XLSXRenderer) Format() string { return "xlsx" }

const (
	trackerSheet = "Application Tracker"
	draftSheet   = "Draft Content"
)

func (r *XLSXRenderer) Render(ctx context.Context, req Request) (Output, error) {
	if err := ctx.Err(); err != nil {
		return Output{}, err
	}
	at := stampTime(req)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", trackerSheet); err != nil {
		return Output{}, err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return Output{}, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	if err != nil {
		return Output{}, err
	}
	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return Output{}, err
	}
	hintStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Italic: true, Color: "808080"}})
	if err != nil {
		return Output{}, err
	}

	title := strings.ToUpper(req.DocumentType) + " APPLICATION TRACKING SHEET"
	f.SetCellValue(trackerSheet, "A1", title)
	f.SetCellStyle(trackerSheet, "A1", "A1", titleStyle)
	f.MergeCell(trackerSheet, "A1", "D1")

	row := 3
	writeSection := func(header string, fields []Field) {
		f.SetCellValue(trackerSheet, cell("A", row), header)
		f.SetCellStyle(trackerSheet, cell("A", row), cell("A", row), headerStyle)
		f.MergeCell(trackerSheet, cell("A", row), cell("D", row))
		row++
		for _, fd := range fields {
			f.SetCellValue(trackerSheet, cell("A", row), fd.Label)
			f.SetCellStyle(trackerSheet, cell("A", row), cell("A", row), labelStyle)
			f.SetCellValue(trackerSheet, cell("B", row), fd.Value)
			row++
		}
		row++
	}

	writeSection("APPLICATION DETAILS", []Field{
		{Label: "Application Type", Value: titleWords(req.DocumentType)},
		{Label: "Date Generated", Value: at.Format("02/01/2006")},
		{Label: "Time Generated", Value: at.Format("15:04:05")},
	})

	applicant := req.ApplicantDetails
	if len(applicant) == 0 {
		applicant = []Field{{Label: "Name", Value: req.ApplicantName}}
	}
	writeSection("APPLICANT DETAILS", applicant)

	authority := req.AuthorityDetails
	if len(authority) == 0 {
		authority = []Field{{Label: "To be filled", Value: ""}}
	}
	writeSection("AUTHORITY DETAILS", authority)

	f.SetCellValue(trackerSheet, cell("A", row), "SUBMISSION TRACKING")
	f.SetCellStyle(trackerSheet, cell("A", row), cell("A", row), headerStyle)
	f.MergeCell(trackerSheet, cell("A", row), cell("D", row))
	row++
	for _, tf := range []Field{
		{Label: "Date Submitted"},
		{Label: "Mode of Submission", Value: "(Post/Online/In-Person)"},
		{Label: "Reference Number"},
		{Label: "Acknowledgment Received", Value: "(Yes/No)"},
		{Label: "Response Due Date"},
		{Label: "Response Received", Value: "(Yes/No)"},
		{Label: "Response Date"},
		{Label: "Status", Value: "(Pending/Resolved/Appeal Required)"},
		{Label: "Notes"},
	} {
		f.SetCellValue(trackerSheet, cell("A", row), tf.Label)
		f.SetCellStyle(trackerSheet, cell("A", row), cell("A", row), labelStyle)
		if tf.Value != "" {
			f.SetCellValue(trackerSheet, cell("B", row), tf.Value)
			f.SetCellStyle(trackerSheet, cell("B", row), cell("B", row), hintStyle)
		}
		row++
	}

	if _, err := f.NewSheet(draftSheet); err != nil {
		return Output{}, err
	}
	f.SetCellValue(draftSheet, "A1", "DRAFT CONTENT")
	f.SetCellStyle(draftSheet, "A1", "A1", titleStyle)
	for i, line := range strings.Split(strings.TrimSpace(req.DraftText), "\n") {
		f.SetCellValue(draftSheet, cell("A", i+3), line)
	}

	f.SetColWidth(trackerSheet, "A", "A", 25)
	f.SetColWidth(trackerSheet, "B", "B", 40)
	f.SetColWidth(trackerSheet, "C", "D", 20)
	f.SetColWidth(draftSheet, "A", "A", 100)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return Output{}, err
	}

	return Output{
		Data:        buf.Bytes(),
		Filename:    safeFilename(req.DocumentType, req.ApplicantName, "tracker", "xlsx", at),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}, nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func titleWords(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
