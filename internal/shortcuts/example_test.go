package shortcuts

import "fmt"

// ExampleResolve demonstrates alias resolution.
func ExampleResolve() {
	fmt.Println(Resolve("conti"))
	fmt.Println(Resolve("Magna International Inc (NYS: MGA)"))

	// Output:
	// Continental AG (Germany, Fed. Rep.) (NBB: CTTA Y)
	// Magna International Inc (NYS: MGA)
}
