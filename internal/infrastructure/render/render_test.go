package render

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/turtacn/CivicDraft/pkg/errors"
)

var testStamp = time.Date(2024, time.March, 5, 10, 30, 0, 0, time.UTC)

func testRequest() Request {
	return Request{
		DraftText:     "To,\nThe Public Information Officer\n\nSubject: Test application\n\nBody text here.",
		DocumentType:  "grievance",
		ApplicantName: "Ravi Kumar!",
		ApplicantDetails: []Field{
			{Label: "Name", Value: "Ravi Kumar"},
			{Label: "State", Value: "Rajasthan"},
		},
		AuthorityDetails: []Field{
			{Label: "Department", Value: "Public Works Department"},
		},
		GeneratedAt: testStamp,
	}
}

func TestExportText(t *testing.T) {
	e := NewExporter(nil)

	out, err := e.Export(context.Background(), "txt", testRequest())
	require.NoError(t, err)

	assert.Equal(t, "grievance_Ravi_Kumar_20240305.txt", out.Filename)
	assert.Equal(t, "text/plain; charset=utf-8", out.ContentType)
	text := string(out.Data)
	assert.Contains(t, text, "Subject: Test application")
	assert.Contains(t, text, "Generated on: 05 March 2024 10:30")
}

func TestExportXLSXRoundTrip(t *testing.T) {
	e := NewExporter(nil)

	out, err := e.Export(context.Background(), "xlsx", testRequest())
	require.NoError(t, err)
	assert.Equal(t, "grievance_tracker_Ravi_Kumar_20240305.xlsx", out.Filename)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(out.Data))
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{trackerSheet, draftSheet}, f.GetSheetList())

	title, err := f.GetCellValue(trackerSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "GRIEVANCE APPLICATION TRACKING SHEET", title)

	appType, err := f.GetCellValue(trackerSheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "Grievance", appType)

	rows, err := f.GetRows(trackerSheet)
	require.NoError(t, err)
	flat := ""
	for _, row := range rows {
		flat += strings.Join(row, "|") + "\n"
	}
	assert.Contains(t, flat, "APPLICANT DETAILS")
	assert.Contains(t, flat, "Rajasthan")
	assert.Contains(t, flat, "Public Works Department")
	assert.Contains(t, flat, "Mode of Submission|(Post/Online/In-Person)")

	draftLine, err := f.GetCellValue(draftSheet, "A3")
	require.NoError(t, err)
	assert.Equal(t, "To,", draftLine)
}

func TestExportUnsupportedFormat(t *testing.T) {
	e := NewExporter(nil)

	_, err := e.Export(context.Background(), "odt", testRequest())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeFormatUnsupported))
}

type failingRenderer struct{}

func (failingRenderer) Format() string { return "pdf" }
func (failingRenderer) Render(context.Context, Request) (Output, error) {
	return Output{}, errors.New(errors.CodeInternal, "engine crashed")
}

func TestExportRegisteredRendererAndFailureWrap(t *testing.T) {
	e := NewExporter(nil)
	assert.ElementsMatch(t, []string{"txt", "xlsx"}, e.Formats())

	e.Register(failingRenderer{})
	assert.Contains(t, e.Formats(), "pdf")

	_, err := e.Export(context.Background(), "pdf", testRequest())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeRenderFailed))
}

func TestSafeFilename(t *testing.T) {
	got := safeFilename("rti", "A Very Long Applicant Name That Keeps Going", "", "txt", testStamp)
	assert.Equal(t, "rti_A_Very_Long_Applicant_Name_Tha_20240305.txt", got)

	got = safeFilename("rti", "///", "", "txt", testStamp)
	assert.Equal(t, "rti_applicant_20240305.txt", got)
}
