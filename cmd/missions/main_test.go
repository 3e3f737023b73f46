package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	domainerrors "github.com/leengari/space-missions/internal/domain/errors"
	"github.com/leengari/space-missions/internal/testutil"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MISSIONS_SEQ_URL", "")
	t.Setenv("MISSIONS_OTEL_ENDPOINT", "")
	t.Setenv("MISSIONS_LOG_LEVEL", "error")

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestQuerySummary(t *testing.T) {
	path := testutil.WriteCSV(t, testutil.MissionsCSV)

	out, err := runCLI(t, "query", "summary", "--data", path)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal([]byte(out), &body); err != nil {
		t.Fatalf("Failed to decode %q: %v", out, err)
	}
	if body["total"] != float64(12) || body["topCompany"] != "SpaceX" {
		t.Errorf("Unexpected summary: %v", body)
	}
}

func TestQuerySearch(t *testing.T) {
	path := testutil.WriteCSV(t, testutil.MissionsCSV)

	out, err := runCLI(t, "query", "search", "2020-06-01", "2020-06-30", "--data", path)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if !strings.Contains(out, "Artemis-1") {
		t.Errorf("Expected Artemis-1 in output, got %q", out)
	}
}

func TestQueryTopCompaniesYAML(t *testing.T) {
	path := testutil.WriteCSV(t, testutil.MissionsCSV)

	out, err := runCLI(t, "query", "top-companies", "-n", "2", "--format", "yaml", "--data", path)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}

	var body []map[string]any
	if err := yaml.Unmarshal([]byte(out), &body); err != nil {
		t.Fatalf("Failed to decode yaml %q: %v", out, err)
	}
	if len(body) != 2 || body[0]["name"] != "SpaceX" || body[1]["name"] != "ULA" {
		t.Errorf("Unexpected ranking: %v", body)
	}
}

func TestQueryAveragePerYear(t *testing.T) {
	path := testutil.WriteCSV(t, testutil.MissionsCSV)

	out, err := runCLI(t, "query", "average-per-year", "2020", "2019", "--data", path)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if !strings.Contains(out, `"average": 0`) {
		t.Errorf("Expected zero average for inverted range, got %q", out)
	}
}

func TestQueryYearOutOfRange(t *testing.T) {
	path := testutil.WriteCSV(t, testutil.MissionsCSV)

	cases := [][]string{
		{"query", "missions-by-year", "0", "--data", path},
		{"query", "missions-by-year", "100000", "--data", path},
		{"query", "average-per-year", "2019", "100000", "--data", path},
		{"query", "average-per-year", "0", "2020", "--data", path},
	}
	for _, args := range cases {
		_, err := runCLI(t, args...)
		var inputErr *domainerrors.InputError
		if !errors.As(err, &inputErr) {
			t.Errorf("%v: expected InputError, got %v", args[1:4], err)
		}
	}
}

func TestQueryMissingDataset(t *testing.T) {
	_, err := runCLI(t, "query", "summary", "--data", "does/not/exist.csv")
	if err == nil {
		t.Fatal("Expected error for missing dataset")
	}
}

func TestQueryBadInput(t *testing.T) {
	path := testutil.WriteCSV(t, testutil.MissionsCSV)

	if _, err := runCLI(t, "query", "search", "2020-01-01", "soon", "--data", path); err == nil {
		t.Error("Expected error for malformed end date")
	}
	if _, err := runCLI(t, "query", "missions-by-year", "MMXX", "--data", path); err == nil {
		t.Error("Expected error for non-numeric year")
	}
	if _, err := runCLI(t, "query", "summary", "--format", "xml", "--data", path); err == nil {
		t.Error("Expected error for unknown format")
	}
}
