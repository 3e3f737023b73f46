package errors

import (
	stderrors "errors"
	"io/fs"
	"strings"
	"testing"
)

func TestLoadErrorMessage(t *testing.T) {
	err := NewCorruptRow("data.csv", "Date", 4, "unparseable date", nil)

	msg := err.Error()
	for _, want := range []string{"load data.csv", "column Date", "row 4", "unparseable date"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Expected %q in %q", want, msg)
		}
	}
}

func TestLoadErrorUnwrap(t *testing.T) {
	err := NewMissingFile("missing.csv", fs.ErrNotExist)

	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected load error to wrap fs.ErrNotExist, got %v", err)
	}
}

func TestMissingColumn(t *testing.T) {
	err := NewMissingColumn("data.csv", "Rocket")

	if err.Column != "Rocket" {
		t.Errorf("Expected column Rocket, got %s", err.Column)
	}
	if err.Row != 0 {
		t.Errorf("Expected no row, got %d", err.Row)
	}
}

func TestInputErrorMessage(t *testing.T) {
	err := NewInputError("start", "2020-13-01", "expected YYYY-MM-DD")
	want := `invalid start "2020-13-01": expected YYYY-MM-DD`
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}

	err = NewInputError("n", "", "required")
	if err.Error() != "invalid n: required" {
		t.Errorf("Unexpected message %q", err.Error())
	}
}
