package domain

import (
	"fmt"
	"strings"
)

// Difficulty labels a named preset used for generation & storage layout.
type Difficulty int

const (
	Custom Difficulty = iota // explicit limits, no preset
	Easy
	Medium
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "custom"
	}
}

// ParseDifficulty maps a level name to a Difficulty. Unknown names are an error.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "custom":
		return Custom, nil
	}
	return Custom, fmt.Errorf("unknown difficulty %q (want easy|medium|hard)", s)
}

func (d Difficulty) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *Difficulty) UnmarshalText(b []byte) error {
	v, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// OpKind is one of the four arithmetic operators.
type OpKind int

const (
	Add OpKind = iota
	Subtract
	Multiply
	Divide
)

// Scaling reports whether the kind multiplies or divides the running value.
func (k OpKind) Scaling() bool { return k == Multiply || k == Divide }

func (k OpKind) String() string {
	switch k {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	default:
		return fmt.Sprintf("op(%d)", int(k))
	}
}

func (k OpKind) MarshalText() ([]byte, error) {
	if k < Add || k > Divide {
		return nil, fmt.Errorf("unknown operation kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *OpKind) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "add", "+":
		*k = Add
	case "subtract", "-":
		*k = Subtract
	case "multiply", "*":
		*k = Multiply
	case "divide", "/":
		*k = Divide
	default:
		return fmt.Errorf("unknown operation kind %q", string(b))
	}
	return nil
}
