package distribute_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/avgdist/core"
	"github.com/katalvlaran/avgdist/distribute"
	"github.com/katalvlaran/avgdist/reduce"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMaximal
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A course rating of 4.3 on a 1..5 scale. Which ten integer votes produce it?
//	4.3 reduces to 43/10; truncating every vote to 4 leaves a pool of 3 that is
//	handed out one unit at a time from the front.
func ExampleMaximal() {
	b := core.NewBounds(1, 5)
	target, err := reduce.Reduce(decimal.RequireFromString("4.3"), b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	seq, err := distribute.Maximal(target, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("count=%d sum=%d\n%v\n", target.Count, target.Sum, seq)
	// Output:
	// count=10 sum=43
	// [5 5 5 4 4 4 4 4 4 4]
}

// ExampleSubtraction starts from the top of the range and walks down.
func ExampleSubtraction() {
	b := core.NewBounds(1, 5)
	target, _ := reduce.Reduce(decimal.RequireFromString("4.7"), b)

	seq, err := distribute.Subtraction(target, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(seq)
	// Output:
	// [4 4 4 5 5 5 5 5 5 5]
}

// ExampleRandomAdjustment shows the seeded, reproducible random strategy;
// only the invariant is printed since the draw depends on the seed.
func ExampleRandomAdjustment() {
	b := core.NewBounds(1, 5)
	target, _ := reduce.Reduce(decimal.RequireFromString("3.7"), b)

	seq, err := distribute.RandomAdjustment(target, b, distribute.WithSeed(42))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(len(seq), seq.Sum(), seq.Within(b))
	// Output:
	// 10 37 true
}
