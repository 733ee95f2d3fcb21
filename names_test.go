package arkparser

import "testing"

// TestNameResolutionLaw pins spec's name-resolution law: instance==0 is the
// base string verbatim; instance>0 appends "_" + (instance-1). Round
// tripping through ParseInlineName is idempotent.
func TestNameResolutionLaw(t *testing.T) {
	cases := []struct {
		name Name
		want string
	}{
		{Name{Text: "Inventory", Instance: 0}, "Inventory"},
		{Name{Text: "Inventory", Instance: 1}, "Inventory_0"},
		{Name{Text: "Inventory", Instance: 5}, "Inventory_4"},
	}
	for _, c := range cases {
		if got := c.name.String(); got != c.want {
			t.Fatalf("Name{%q,%d}.String() = %q, want %q", c.name.Text, c.name.Instance, got, c.want)
		}
	}
}

func TestParseInlineNameIdempotent(t *testing.T) {
	cases := []string{"Inventory", "Inventory_0", "Inventory_4", "Dino_Character_BP_C", "Weird_-1"}
	for _, s := range cases {
		n := ParseInlineName(s)
		again := ParseInlineName(n.String())
		if again != n {
			t.Fatalf("ParseInlineName(%q) not idempotent: first %+v, second %+v", s, n, again)
		}
	}
}

func TestDenseNameTableOutOfBounds(t *testing.T) {
	nt := NewDenseNameTable([]string{"Alpha", "Beta"})
	if got := nt.Resolve(1, 0).Text; got != "Alpha" {
		t.Fatalf("Resolve(1,0) = %q, want Alpha", got)
	}
	if got := nt.Resolve(99, 0).Text; got != "UnknownName_99" {
		t.Fatalf("Resolve(99,0) = %q, want placeholder", got)
	}
}

func TestSparseNameTableMissingKey(t *testing.T) {
	nt := NewSparseNameTable(map[int32]string{7: "Saddle"})
	if got := nt.Resolve(7, 0).Text; got != "Saddle" {
		t.Fatalf("Resolve(7,0) = %q, want Saddle", got)
	}
	if got := nt.Resolve(42, 0).Text; got != "UnknownName_42" {
		t.Fatalf("Resolve(42,0) = %q, want placeholder", got)
	}
}
