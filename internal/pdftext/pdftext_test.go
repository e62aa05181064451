package pdftext

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"trims and drops blanks", "  10 Jan \n\n- Rs. 250.00\r\n   \nPaid to Swiggy\n", []string{"10 Jan", "- Rs. 250.00", "Paid to Swiggy"}},
		{"page break", "page one\fpage two", []string{"page one", "page two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitLines(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLines() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLinesPlainText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.txt")
	if err := os.WriteFile(path, []byte("- Rs. 250.00\nPaid to Swiggy\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := New("", 0).Lines(context.Background(), path)
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}
	if want := []string{"- Rs. 250.00", "Paid to Swiggy"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
}

func TestLinesMissingBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := New(filepath.Join(t.TempDir(), "no-such-pdftotext"), 0).Lines(context.Background(), path)
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("Lines() error = %v, want ErrUnreadable", err)
	}
}

func TestLinesMissingTextFile(t *testing.T) {
	_, err := New("", 0).Lines(context.Background(), filepath.Join(t.TempDir(), "gone.txt"))
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("Lines() error = %v, want ErrUnreadable", err)
	}
}
