package domain

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestDescribe(t *testing.T) {
	cases := map[Operation]string{
		{Kind: Add, Operand: 5}:       "Add 5",
		{Kind: Subtract, Operand: 12}: "Subtract 12",
		{Kind: Multiply, Operand: 3}:  "Multiply by 3",
		{Kind: Divide, Operand: 17}:   "Divide by 17",
	}
	for op, want := range cases {
		if got := Describe(op); got != want {
			t.Fatalf("Describe(%+v) = %q, want %q", op, got, want)
		}
	}
}

func TestPresets(t *testing.T) {
	cases := []struct {
		d                   Difficulty
		value, divisor, dur int
	}{
		{Easy, 50, 10, 1500},
		{Medium, 199, 20, 2000},
		{Hard, 499, 40, 2500},
	}
	for _, tc := range cases {
		p, ok := ProfileFor(tc.d)
		if !ok {
			t.Fatalf("no preset for %s", tc.d)
		}
		if p.ValueLimit != tc.value || p.DivisorLimit != tc.divisor || p.StepDuration() != time.Duration(tc.dur)*time.Millisecond {
			t.Fatalf("%s preset = %+v", tc.d, p)
		}
		if err := p.Check(); err != nil {
			t.Fatalf("%s preset rejected: %v", tc.d, err)
		}
	}
	if _, ok := ProfileFor(Custom); ok {
		t.Fatal("custom must not have a preset")
	}
}

func TestProfileCheck(t *testing.T) {
	for _, p := range []Profile{{ValueLimit: 0, DivisorLimit: 2}, {ValueLimit: 10, DivisorLimit: 1}} {
		if err := p.Check(); !errors.Is(err, ErrInvalidProfile) {
			t.Fatalf("Check(%+v) = %v", p, err)
		}
	}
	if err := (Profile{ValueLimit: 1, DivisorLimit: 2}).Check(); err != nil {
		t.Fatalf("minimal profile rejected: %v", err)
	}
}

func TestParseDifficulty(t *testing.T) {
	for in, want := range map[string]Difficulty{"easy": Easy, " Medium ": Medium, "HARD": Hard, "custom": Custom} {
		got, err := ParseDifficulty(in)
		if err != nil || got != want {
			t.Fatalf("ParseDifficulty(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseDifficulty("expert"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestPuzzleJSONUsesNames(t *testing.T) {
	p := Puzzle{Difficulty: Hard, Start: 2, Operations: []Operation{{Kind: Multiply, Operand: 4}}, Result: 8}
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	var raw struct {
		Difficulty string `json:"difficulty"`
		Operations []struct {
			Kind string `json:"kind"`
		} `json:"operations"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatal(err)
	}
	if raw.Difficulty != "hard" || raw.Operations[0].Kind != "multiply" {
		t.Fatalf("unexpected encoding: %s", b)
	}

	var back Puzzle
	if err := json.Unmarshal([]byte(`{"difficulty":"medium","operations":[{"kind":"/","operand":2}]}`), &back); err != nil {
		t.Fatal(err)
	}
	if back.Difficulty != Medium || back.Operations[0].Kind != Divide {
		t.Fatalf("decoded %+v", back)
	}
	if err := json.Unmarshal([]byte(`{"operations":[{"kind":"modulo","operand":2}]}`), &back); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestFallbackPuzzle(t *testing.T) {
	p := FallbackPuzzle(Profile{ValueLimit: 1, DivisorLimit: 2})
	if !IsFallback(p) || p.Result != 2 {
		t.Fatalf("unexpected fallback %+v", p)
	}
	p.Operations[0].Operand = 2
	if IsFallback(p) {
		t.Fatal("modified puzzle still reported as fallback")
	}
}
