package character

import "strconv"

// Kind tags how a field's value is validated and bound.
type Kind int

// Value kinds, one per Value implementation.
const (
	KindText Kind = iota + 1
	KindSeason
	KindDay
	KindBool
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindSeason:
		return "season"
	case KindDay:
		return "day"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Value is a validated field value. The concrete type is one of Text, Season,
// Day or Bool, and always agrees with Kind.
type Value interface {
	Kind() Kind
	// Arg returns the value to bind to a statement placeholder.
	Arg() any
	String() string
}

// Text is a free-form value for name and best_gift.
type Text string

func (Text) Kind() Kind       { return KindText }
func (t Text) Arg() any       { return string(t) }
func (t Text) String() string { return string(t) }

// Season is one of the four calendar periods a birthday falls within.
type Season string

// The four seasons, in calendar order.
const (
	Spring Season = "Spring"
	Summer Season = "Summer"
	Fall   Season = "Fall"
	Winter Season = "Winter"
)

// Seasons returns the seasons in calendar order.
func Seasons() []Season {
	return []Season{Spring, Summer, Fall, Winter}
}

func (Season) Kind() Kind       { return KindSeason }
func (s Season) Arg() any       { return string(s) }
func (s Season) String() string { return string(s) }

// Day is a birthday day within a season, 1 through 28.
type Day int

func (Day) Kind() Kind       { return KindDay }
func (d Day) Arg() any       { return int(d) }
func (d Day) String() string { return strconv.Itoa(int(d)) }

// Bool is the bachelor flag.
type Bool bool

func (Bool) Kind() Kind       { return KindBool }
func (b Bool) Arg() any       { return bool(b) }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }
