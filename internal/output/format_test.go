package output

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{" JSON ", FormatJSON, false},
		{"ndjson", FormatNDJSON, false},
		{"table", FormatTable, false},
		{"yaml", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseFormat(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ParseFormat(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestIsStructured(t *testing.T) {
	for format, want := range map[Format]bool{
		FormatJSON:   true,
		FormatNDJSON: true,
		FormatYAML:   true,
		FormatText:   false,
		FormatTable:  false,
	} {
		if got := IsStructured(format); got != want {
			t.Fatalf("IsStructured(%q) = %v, want %v", format, got, want)
		}
	}
}

func TestPrinterJSONWithQuery(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)

	ctx := WithQuery(context.Background(), ".[0].name")
	data := []interface{}{
		map[string]interface{}{"name": "first"},
		map[string]interface{}{"name": "second"},
	}
	if err := p.Print(ctx, data); err != nil {
		t.Fatalf("print: %v", err)
	}
	if strings.TrimSpace(buf.String()) != `"first"` {
		t.Fatalf("query output = %q", buf.String())
	}
}

func TestPrinterJSONInvalidQuery(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)

	ctx := WithQuery(context.Background(), ".[invalid")
	if err := p.Print(ctx, map[string]interface{}{}); err == nil {
		t.Fatalf("expected parse error for bad query")
	}
}

func TestPrinterNDJSONEncodesSliceElements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatNDJSON)

	data := []map[string]string{{"a": "1"}, {"a": "2"}}
	if err := p.Print(context.Background(), data); err != nil {
		t.Fatalf("print: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 ndjson lines, got %d: %q", len(lines), buf.String())
	}
}

func TestPrinterYAML(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatYAML)

	if err := p.Print(context.Background(), map[string]string{"key": "value"}); err != nil {
		t.Fatalf("print: %v", err)
	}
	if !strings.Contains(buf.String(), "key: value") {
		t.Fatalf("yaml output = %q", buf.String())
	}
}

func TestPrinterTextMapSortsKeys(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatText)

	data := map[string]string{"b": "2", "a": "1"}
	if err := p.Print(context.Background(), data); err != nil {
		t.Fatalf("print: %v", err)
	}
	if buf.String() != "a: 1\nb: 2\n" {
		t.Fatalf("text output = %q", buf.String())
	}
}

func TestPrinterTable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatTable)

	table := Table{
		Headers: []string{"KIND", "NAME"},
		Rows:    [][]string{{"domain", "A"}, {"element", "x"}},
	}
	if err := p.Print(context.Background(), table); err != nil {
		t.Fatalf("print: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "KIND") || !strings.Contains(out, "domain") {
		t.Fatalf("table output = %q", out)
	}

	if err := p.Print(context.Background(), map[string]string{}); err == nil {
		t.Fatalf("expected error for non-table data in table format")
	}
}

func TestPrinterNilDataIsNoop(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, FormatJSON)
	if err := p.Print(context.Background(), nil); err != nil {
		t.Fatalf("print nil: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
