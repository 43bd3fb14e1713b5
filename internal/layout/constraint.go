package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind selects how a Constraint sizes its chunk.
type Kind int

const (
	Length Kind = iota
	Percentage
	Ratio
	Min
	Max
)

func (k Kind) String() string {
	switch k {
	case Percentage:
		return "percentage"
	case Ratio:
		return "ratio"
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return "length"
	}
}

// Constraint sizes one chunk of a Split.
type Constraint struct {
	Kind  Kind
	Value int
	// Den is the ratio denominator; Value holds the numerator.
	Den int
}

func LengthOf(n int) Constraint     { return Constraint{Kind: Length, Value: n} }
func PercentageOf(n int) Constraint { return Constraint{Kind: Percentage, Value: n} }
func MinOf(n int) Constraint        { return Constraint{Kind: Min, Value: n} }
func MaxOf(n int) Constraint        { return Constraint{Kind: Max, Value: n} }
func RatioOf(num, den int) Constraint {
	return Constraint{Kind: Ratio, Value: num, Den: den}
}

// ParseConstraint reads the constraint attribute grammar: "N%", "Nmin",
// "Nmax", "a:b" or "N". Numbers that fail to parse read as 1, and a value
// matching no form is Length(1).
func ParseConstraint(raw string) Constraint {
	s := strings.TrimSpace(raw)
	switch {
	case strings.HasSuffix(s, "%"):
		return PercentageOf(number(strings.TrimSuffix(s, "%")))
	case strings.HasSuffix(s, "min"):
		return MinOf(number(strings.TrimSuffix(s, "min")))
	case strings.HasSuffix(s, "max"):
		return MaxOf(number(strings.TrimSuffix(s, "max")))
	case strings.Contains(s, ":"):
		num, den, _ := strings.Cut(s, ":")
		return RatioOf(number(num), number(den))
	}
	return LengthOf(number(s))
}

func number(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 1
	}
	return n
}

// Size returns the preferred cell count for a total span.
func (c Constraint) Size(total int) int {
	switch c.Kind {
	case Percentage:
		return total * c.Value / 100
	case Ratio:
		if c.Den == 0 {
			return 0
		}
		return total * c.Value / c.Den
	default:
		return c.Value
	}
}

func (c Constraint) String() string {
	switch c.Kind {
	case Percentage:
		return fmt.Sprintf("%d%%", c.Value)
	case Ratio:
		return fmt.Sprintf("%d:%d", c.Value, c.Den)
	case Min:
		return fmt.Sprintf("%dmin", c.Value)
	case Max:
		return fmt.Sprintf("%dmax", c.Value)
	default:
		return strconv.Itoa(c.Value)
	}
}
