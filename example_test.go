package fastaslice_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/bft-labs/fastaslice"
)

func ExamplePlan() {
	plan, err := fastaslice.Plan(10, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(plan)
	// Output: [4 3 3]
}

func ExampleFilter() {
	in := strings.NewReader(">sp|P1.2|A_HUMAN first\nMKV\n>sp|Q9|B_HUMAN second\nGGA\n")
	res, err := fastaslice.Filter(context.Background(), in, os.Stdout, []string{"P12"})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Matched, "of", res.Records)
	// Output:
	// >sp|P1.2|A_HUMAN first
	// MKV
	// 1 of 2
}
