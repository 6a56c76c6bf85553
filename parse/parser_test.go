package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jonwraymond/lcdebug/value"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []value.Value
	}{
		{
			name: "three arguments",
			line: `1,[2,3],"x"`,
			want: []value.Value{value.Int(1), value.List{value.Int(2), value.Int(3)}, value.String("x")},
		},
		{
			name: "whitespace separated",
			line: `  [1, 2]   7 `,
			want: []value.Value{value.List{value.Int(1), value.Int(2)}, value.Int(7)},
		},
		{
			name: "empty array",
			line: "[]",
			want: []value.Value{value.List{}},
		},
		{
			name: "nested with nulls",
			line: "[1,null,[true,false]]",
			want: []value.Value{value.List{value.Int(1), value.Null{}, value.List{value.Bool(true), value.Bool(false)}}},
		},
		{
			name: "signed numbers",
			line: "-3,+4,-0.5",
			want: []value.Value{value.Int(-3), value.Int(4), value.Float(-0.5)},
		},
		{
			name: "no escape processing",
			line: `"a\b"`,
			want: []value.Value{value.String(`a\b`)},
		},
		{
			name: "large int64",
			line: "9223372036854775807",
			want: []value.Value{value.Int(9223372036854775807)},
		},
		{
			name: "trailing comma in array",
			line: "[1,2,]",
			want: []value.Value{value.List{value.Int(1), value.Int(2)}},
		},
		{
			name: "space separated array",
			line: "[1 2]",
			want: []value.Value{value.List{value.Int(1), value.Int(2)}},
		},
		{
			name: "blank",
			line: "   ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Line(tt.line)
			if err != nil {
				t.Fatalf("Line(%q) error = %v", tt.line, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Line(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestLine_Errors(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantCol   int
		wantFound string
	}{
		{"unknown leading character", "x", 1, "x"},
		{"unterminated string", `"abc`, 5, ""},
		{"unterminated array", "[1,2", 5, ""},
		{"wrong bracket", "[1,2}", 5, "}"},
		{"sign without digits", "-", 2, ""},
		{"dot without fraction", "1.", 3, ""},
		{"int overflow", "99999999999999999999", 1, "99999999999999999999"},
		{"double comma", "1,,2", 3, ","},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Line(tt.line)
			if err == nil {
				t.Fatalf("Line(%q) expected error", tt.line)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("errors.Is(err, ErrSyntax) = false for %v", err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %T is not *ParseError", err)
			}
			if pe.Column != tt.wantCol {
				t.Errorf("Column = %d, want %d", pe.Column, tt.wantCol)
			}
			if pe.Found != tt.wantFound {
				t.Errorf("Found = %q, want %q", pe.Found, tt.wantFound)
			}
		})
	}
}

func TestValue_Single(t *testing.T) {
	v, err := Value(" [1.5, \"s\"] ")
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	want := value.List{value.Float(1.5), value.String("s")}
	if !value.Equal(v, want) {
		t.Errorf("Value() = %s, want %s", v, want)
	}

	if _, err := Value("1 2"); !errors.Is(err, ErrSyntax) {
		t.Errorf("Value(\"1 2\") error = %v, want ErrSyntax", err)
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  ParseError
		want string
	}{
		{"with character", ParseError{Message: "unexpected character", Column: 3, Found: "}"}, `unexpected character: unexpected "}" (col 3)`},
		{"at end", ParseError{Message: "unterminated string", Column: 7}, "unterminated string at end of input (col 7)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Canonical text of any parsed tree parses back to an equal tree.
func TestCanonicalRoundTrip(t *testing.T) {
	lines := []string{
		`[1,2,3]`,
		`[[1.25,-7],[],null,"hello world"]`,
		`true,false,null`,
		`[0.0,-0.5,100]`,
	}
	for _, line := range lines {
		first, err := Line(line)
		if err != nil {
			t.Fatalf("Line(%q) error = %v", line, err)
		}
		second, err := Line(value.Format(first))
		if err != nil {
			t.Fatalf("Line(Format(%q)) error = %v", line, err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("round trip of %q mismatch (-first +second):\n%s", line, diff)
		}
	}
}
