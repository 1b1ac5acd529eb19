package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestTableCellAndColumn(t *testing.T) {
	tab := New([]string{"Residence", "BMI"})
	tab.AppendRow([]string{"urban", "21.4"})
	tab.AppendRow([]string{"rural"}) // short row is padded

	if got := tab.Cell(0, "Residence"); got != "urban" {
		t.Fatalf("Cell(0, Residence) = %q", got)
	}
	if got := tab.Cell(1, "BMI"); got != "" {
		t.Fatalf("padded cell should be missing, got %q", got)
	}
	if got := tab.Cell(0, "NoSuchColumn"); got != "" {
		t.Fatalf("absent column should read as missing, got %q", got)
	}
	col, ok := tab.Column("Residence")
	if !ok || len(col) != 2 || col[1] != "rural" {
		t.Fatalf("Column(Residence) = %v, %v", col, ok)
	}
}

func TestAddColumn(t *testing.T) {
	tab := New([]string{"A"})
	tab.AppendRow([]string{"1"})
	tab.AppendRow([]string{"2"})

	if err := tab.AddColumn("B", []string{"x", "y"}); err != nil {
		t.Fatalf("AddColumn: %v", err)
	}
	if got := tab.Cell(1, "B"); got != "y" {
		t.Fatalf("Cell(1, B) = %q", got)
	}
	if err := tab.AddColumn("B", []string{"", ""}); err == nil {
		t.Fatal("duplicate column should error")
	}
	if err := tab.AddColumn("C", []string{"only one"}); err == nil {
		t.Fatal("length mismatch should error")
	}
}

func TestFloatCoercion(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"21.4", 21.4, true},
		{" 18.5 ", 18.5, true},
		{"", 0, false},
		{"tall", 0, false},
		{"3", 3, true},
	}
	for _, c := range cases {
		got, ok := Float(c.in)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("Float(%q) = %v, %v; want %v, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.csv")

	tab := New([]string{"Residence", "BMI", "Note"})
	tab.AppendRow([]string{"urban", "17.9", "has, comma"})
	tab.AppendRow([]string{"rural", "", "plain"})
	if err := WriteCSV(tab, path); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	got, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if got.Len() != 2 {
		t.Fatalf("rows = %d, want 2", got.Len())
	}
	if v := got.Cell(0, "Note"); v != "has, comma" {
		t.Fatalf("quoted cell = %q", v)
	}
	if v := got.Cell(1, "BMI"); v != "" {
		t.Fatalf("missing cell should survive round trip, got %q", v)
	}
	// no stray temp file left behind
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestValidateManifest(t *testing.T) {
	tab := New([]string{"Residence", "BMI", "Weight (kg)", "Height (m)"})
	if err := tab.Validate(Required); err != nil {
		t.Fatalf("complete table should validate: %v", err)
	}

	partial := New([]string{"Residence", "BMI"})
	err := partial.Validate(Required)
	if err == nil {
		t.Fatal("expected a missing column error")
	}
	var missing *MissingColumnError
	if !errors.As(err, &missing) {
		t.Fatalf("error type = %T", err)
	}
	if missing.Column != "Weight (kg)" {
		t.Fatalf("missing column = %q", missing.Column)
	}
}
