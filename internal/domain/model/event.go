// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"strings"
)

// Sex of the competing athlete as recorded in the dataset.
type Sex string

const (
	Male   Sex = "M"
	Female Sex = "F"
)

// Season of the Games edition.
type Season string

const (
	Summer Season = "Summer"
	Winter Season = "Winter"
)

// Medal is the medal won in one event entry. The zero value means no medal.
type Medal uint8

const (
	NoMedal Medal = iota
	Gold
	Silver
	Bronze
)

// ParseMedal maps the dataset spelling to a Medal. Anything that is not a
// medal name (NA, blank) is NoMedal.
func ParseMedal(s string) Medal {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gold":
		return Gold
	case "silver":
		return Silver
	case "bronze":
		return Bronze
	default:
		return NoMedal
	}
}

func (m Medal) String() string {
	switch m {
	case Gold:
		return "Gold"
	case Silver:
		return "Silver"
	case Bronze:
		return "Bronze"
	default:
		return "None"
	}
}

// Label is the display form used in row-level extracts.
func (m Medal) Label() string {
	if m == NoMedal {
		return "No Medal"
	}
	return m.String()
}

// MarshalText implements encoding.TextMarshaler.
func (m Medal) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Medal) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if parsed := ParseMedal(s); parsed != NoMedal {
		*m = parsed
		return nil
	}
	switch strings.ToLower(s) {
	case "", "na", "none", "no medal":
		*m = NoMedal
		return nil
	}
	return fmt.Errorf("unknown medal %q", s)
}

// Measure is a numeric attribute that may be absent from the source row.
type Measure struct {
	Value float64
	Valid bool
}

// Some returns a present Measure.
func Some(v float64) Measure { return Measure{Value: v, Valid: true} }

// Event is one athlete entry in one event of one Games edition.
type Event struct {
	Name   string
	Sex    Sex
	Age    Measure
	Height Measure
	Weight Measure
	Team   string
	NOC    string
	// Region is the resolved country name; empty when the NOC has no mapping.
	Region string
	Games  string
	Year   int
	Season Season
	City   string
	Sport  string
	Event  string
	Medal  Medal
}

// HasMedal reports whether the entry won any medal.
func (e Event) HasMedal() bool { return e.Medal != NoMedal }

// Gold is the one-hot gold indicator.
func (e Event) Gold() int { return indicator(e.Medal == Gold) }

// Silver is the one-hot silver indicator.
func (e Event) Silver() int { return indicator(e.Medal == Silver) }

// Bronze is the one-hot bronze indicator.
func (e Event) Bronze() int { return indicator(e.Medal == Bronze) }

func indicator(b bool) int {
	if b {
		return 1
	}
	return 0
}
