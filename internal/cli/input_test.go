package cli

import (
	"reflect"
	"testing"
)

func TestParseInvocation_Defaults(t *testing.T) {
	inv, err := ParseInvocation([]string{"-average", "4.3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inv.Average.String() != "4.3" {
		t.Fatalf("average: got %s", inv.Average)
	}
	if inv.Bounds.Min != 1 || inv.Bounds.Max != 5 {
		t.Fatalf("default bounds: got [%d,%d]", inv.Bounds.Min, inv.Bounds.Max)
	}
	if inv.LowestTerms || inv.Print || inv.Seed != 0 || inv.Concurrency != 0 || inv.Algorithms != nil {
		t.Fatalf("unexpected non-default fields: %#v", inv)
	}
}

func TestParseInvocation_AllFlags(t *testing.T) {
	args := []string{
		"-average", "50.25",
		"-min", "1",
		"-max", "100",
		"-lowest-terms",
		"-seed", "7",
		"-concurrency", "3",
		"-algorithms", "maximal, backtrack,,",
		"-print",
	}
	inv1, err := ParseInvocation(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	inv2, err := ParseInvocation(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(inv1, inv2) {
		t.Fatalf("expected identical invocations, got\n%#v\n%#v", inv1, inv2)
	}
	if inv1.Bounds.Max != 100 || !inv1.LowestTerms || inv1.Seed != 7 || inv1.Concurrency != 3 || !inv1.Print {
		t.Fatalf("flags not applied: %#v", inv1)
	}
	if !reflect.DeepEqual(inv1.Algorithms, []string{"maximal", "backtrack"}) {
		t.Fatalf("algorithms: got %q", inv1.Algorithms)
	}
}

func TestParseInvocation_Errors(t *testing.T) {
	cases := map[string][]string{
		"missing average":   {},
		"blank average":     {"-average", "  "},
		"malformed average": {"-average", "4,3"},
		"unknown flag":      {"-average", "4.3", "-x"},
		"positional":        {"-average", "4.3", "extra"},
		"negative workers":  {"-average", "4.3", "-concurrency", "-1"},
		"bad min":           {"-average", "4.3", "-min", "one"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseInvocation(args)
			if err == nil {
				t.Fatalf("expected error")
			}
			if code := ExitCode(err); code != ExitInvalidInvocation {
				t.Fatalf("exit code: got %d want %d", code, ExitInvalidInvocation)
			}
		})
	}
}
