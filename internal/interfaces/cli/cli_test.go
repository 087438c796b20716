package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := executeCommand(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "civicdraft")
	assert.Contains(t, out, "infer")
	assert.Contains(t, out, "resolve")
}

func TestRootVersion(t *testing.T) {
	out, err := executeCommand(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestInferTextOutput(t *testing.T) {
	out, err := executeCommand(t, "infer",
		"I want to file an RTI application under the RTI Act to obtain information and copies of records.")
	require.NoError(t, err)

	assert.Contains(t, out, "Intent:")
	assert.Contains(t, out, "rti")
	assert.Contains(t, out, "Confidence:")
	assert.Contains(t, out, "Decision path:")
}

func TestInferJSONOutput(t *testing.T) {
	out, err := executeCommand(t, "infer", "-o", "json",
		"I want to file an RTI application under the RTI Act to obtain information and copies of records.")
	require.NoError(t, err)

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "rti", result["intent"])
	assert.Equal(t, "information_request", result["document_type"])
	assert.NotEmpty(t, result["audit_id"])
}

func TestInferRejectsShortText(t *testing.T) {
	_, err := executeCommand(t, "infer", "help")
	require.Error(t, err)
}

func TestInferRequiresExactlyOneArg(t *testing.T) {
	_, err := executeCommand(t, "infer")
	require.Error(t, err)
}

func TestResolveRTIPath(t *testing.T) {
	out, err := executeCommand(t, "resolve",
		"--category", "electricity", "--state", "rajasthan", "--rti")
	require.NoError(t, err)

	assert.Contains(t, out, "Category:   electricity")
	assert.Contains(t, out, "PIO, Electricity Department")
	assert.Contains(t, out, "Public Information Officer (PIO)")
}

func TestResolveJSONOutput(t *testing.T) {
	out, err := executeCommand(t, "resolve", "-o", "json",
		"--category", "water", "--state", "kerala", "--district", "Ernakulam")
	require.NoError(t, err)

	var res struct {
		Category string `json:"category"`
		Matches  []struct {
			Primary bool `json:"is_primary"`
		} `json:"matches"`
		RequiresStateSelection bool `json:"requires_state_selection"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "water", res.Category)
	require.NotEmpty(t, res.Matches)
	assert.True(t, res.Matches[0].Primary)
	assert.False(t, res.RequiresStateSelection)
}

func TestResolveList(t *testing.T) {
	out, err := executeCommand(t, "resolve", "--list")
	require.NoError(t, err)

	assert.Contains(t, out, "Categories:")
	assert.Contains(t, out, "electricity")
	assert.Contains(t, out, "Rajasthan")
}

func TestResolveRequiresCategory(t *testing.T) {
	_, err := executeCommand(t, "resolve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--category")
}
