package domain

import "testing"

func TestNewTribeLogEntryParsesDayAndTime(t *testing.T) {
	e := NewTribeLogEntry("Day 387, 22:35:36: Your Tribe killed a Wild <RichColor Color=\"1,0,0,1\">Dodo</>!")
	if e.Day != 387 {
		t.Fatalf("Day = %d, want 387", e.Day)
	}
	if e.Time != "22:35:36" {
		t.Fatalf("Time = %q, want 22:35:36", e.Time)
	}
}

func TestTribeLogEntryCleanMessageStripsRichColor(t *testing.T) {
	e := NewTribeLogEntry(`Day 387, 22:35:36: Your Tribe killed a Wild <RichColor Color="1,0,0,1">Dodo</>!`)
	clean := e.CleanMessage()
	if clean != "Your Tribe killed a Wild Dodo!" {
		t.Fatalf("CleanMessage() = %q", clean)
	}
}

func TestNewTribeLogEntryUnmatchedFallsBackToRaw(t *testing.T) {
	e := NewTribeLogEntry("not a log line")
	if e.Message != "not a log line" || e.Day != 0 {
		t.Fatalf("got %+v", e)
	}
}
