package transcript

import "testing"

func TestAssemble(t *testing.T) {
	tests := []struct {
		name string
		in   Transcript
		want string
	}{
		{
			name: "multiple segments joined with single spaces",
			in:   Transcript{{Text: "A"}, {Text: "B"}, {Text: "C"}},
			want: "A B C",
		},
		{
			name: "empty transcript",
			in:   Transcript{},
			want: "",
		},
		{
			name: "nil transcript",
			in:   nil,
			want: "",
		},
		{
			name: "single segment",
			in:   Transcript{{Text: "A"}},
			want: "A",
		},
		{
			name: "no trimming applied",
			in:   Transcript{{Text: " hello "}, {Text: "world"}},
			want: " hello  world",
		},
		{
			name: "order preserved",
			in:   Transcript{{Text: "world", Start: 1.5}, {Text: "Hello", Start: 0}},
			want: "world Hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Assemble(); got != tt.want {
				t.Errorf("Assemble() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAssembleIdempotent(t *testing.T) {
	tr := Transcript{{Text: "Hello"}, {Text: "world"}}

	first := tr.Assemble()
	second := tr.Assemble()

	if first != second {
		t.Errorf("re-assembly changed output: %q vs %q", first, second)
	}
	if first != "Hello world" {
		t.Errorf("Assemble() = %q, want %q", first, "Hello world")
	}
}

func TestFromText(t *testing.T) {
	tr := FromText("full transcription text")
	if len(tr) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(tr))
	}
	if tr.Assemble() != "full transcription text" {
		t.Errorf("Assemble() = %q", tr.Assemble())
	}

	if got := FromText(""); len(got) != 0 {
		t.Errorf("FromText(\"\") should be empty, got %d segments", len(got))
	}
}
