package arkparser

import "testing"

// TestComponentLinkage pins spec's component-linkage invariant: for every
// object with len(names) >= 2, after BuildRelationships its parent's
// primary name equals its last name, and the parent holds it under its
// primary name.
func TestComponentLinkage(t *testing.T) {
	parent := &GameObject{
		ID:        1,
		ClassName: "Dodo_Character_BP_C",
		Names:     []Name{{Text: "Dodo_Character_BP_C", Instance: 1}},
	}
	status := &GameObject{
		ID:        2,
		ClassName: "DinoCharacterStatusComponent_BP_C",
		Names: []Name{
			{Text: "DinoCharacterStatusComponent_BP_C", Instance: 1},
			{Text: "Dodo_Character_BP_C", Instance: 1},
		},
	}

	c := NewContainer([]*GameObject{parent, status})
	c.BuildRelationships()

	if !status.IsComponent() {
		t.Fatal("status object should report IsComponent() == true")
	}
	if status.Parent != parent {
		t.Fatalf("status.Parent = %p, want %p (the object named %q)", status.Parent, parent, parent.PrimaryName().String())
	}
	last := status.Names[len(status.Names)-1].String()
	if parent.PrimaryName().String() != last {
		t.Fatalf("parent primary name %q != component's last name %q", parent.PrimaryName().String(), last)
	}
	got, ok := parent.Components[status.PrimaryName().String()]
	if !ok || got != status {
		t.Fatalf("parent does not hold component under its primary name %q", status.PrimaryName().String())
	}
}

func TestContainerIndices(t *testing.T) {
	obj := &GameObject{
		ID:        5,
		ClassName: "Rex_Character_BP_C",
		Names:     []Name{{Text: "Rex_Character_BP_C", Instance: 1}},
	}
	c := NewContainer([]*GameObject{obj})
	if got, ok := c.ByName("Rex_Character_BP_C_0"); !ok || got != obj {
		t.Fatal("ByName lookup failed")
	}
	if got := c.ByClass("Rex_Character_BP_C"); len(got) != 1 || got[0] != obj {
		t.Fatal("ByClass lookup failed")
	}
}
