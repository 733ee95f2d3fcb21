package domain

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/vertyco/arkparser"
)

var (
	tribeLogPattern   = regexp.MustCompile(`(?s)Day\s+(\d+),?\s+([\d:]+):\s*(.*)`)
	richColorPattern  = regexp.MustCompile(`<RichColor[^>]*>|</>`)
)

// TribeLogEntry is one parsed tribe-log line, grounded on
// models/tribe.py's TribeLogEntry.
type TribeLogEntry struct {
	Day     int
	Time    string
	Message string
}

// NewTribeLogEntry parses a raw log line ("Day 387, 22:35:36: message").
func NewTribeLogEntry(raw string) TribeLogEntry {
	raw = strings.TrimSpace(raw)
	m := tribeLogPattern.FindStringSubmatch(raw)
	if m == nil {
		return TribeLogEntry{Message: raw}
	}
	day, _ := strconv.Atoi(m[1])
	return TribeLogEntry{Day: day, Time: m[2], Message: raw}
}

// CleanMessage strips the <RichColor> markup ARK embeds in log text.
func (e TribeLogEntry) CleanMessage() string {
	m := tribeLogPattern.FindStringSubmatch(e.Message)
	body := e.Message
	if m != nil {
		body = m[3]
	}
	return strings.TrimSpace(richColorPattern.ReplaceAllString(body, ""))
}

// Tribe wraps a decoded Tribe file, and its members/log entries, with the
// typed access models/tribe.py exposes over raw property lookups.
type Tribe struct {
	tribe *arkparser.Tribe
}

// NewTribe wraps t. t must be non-nil.
func NewTribe(t *arkparser.Tribe) Tribe { return Tribe{tribe: t} }

// TribeID is the tribe's unique identifier.
func (t Tribe) TribeID() int64 { return t.tribe.TribeID() }

// Name is the tribe's display name.
func (t Tribe) Name() string { return t.tribe.Name() }

// OwnerPlayerID is the player ID of the tribe's owner/founder.
func (t Tribe) OwnerPlayerID() int64 { return t.tribe.OwnerPlayerID() }

// GovernmentType is the tribe's configured government mode.
func (t Tribe) GovernmentType() int64 { return t.tribe.GovernmentType() }

// Members zips the tribe's member ID/name/rank arrays into Member values.
func (t Tribe) Members() []arkparser.Member { return t.tribe.Members() }

// Log returns parsed tribe log entries, newest-appended-last as stored.
func (t Tribe) Log() []TribeLogEntry {
	raw := t.tribe.LogEntries()
	out := make([]TribeLogEntry, 0, len(raw))
	for _, line := range raw {
		out = append(out, NewTribeLogEntry(line))
	}
	return out
}

// AllianceIDs returns the IDs of tribes allied with this one.
func (t Tribe) AllianceIDs() []int64 { return t.tribe.AllianceIDs() }
