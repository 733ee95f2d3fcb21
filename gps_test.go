package arkparser

import "testing"

func TestMapConfigForKnownMap(t *testing.T) {
	cfg, ok := MapConfigFor("TheIsland")
	if !ok {
		t.Fatal("expected TheIsland to resolve")
	}
	lat, lon := cfg.ToGPS(0, 0)
	if lat != 50 || lon != 50 {
		t.Fatalf("ToGPS(0,0) = (%v,%v), want (50,50)", lat, lon)
	}
}

func TestMapConfigForUnknownMap(t *testing.T) {
	if _, ok := MapConfigFor("SomeModdedMap"); ok {
		t.Fatal("expected unknown map to not resolve")
	}
}
