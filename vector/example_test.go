package vector_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/vector"
)

// ExampleCross shows the right-hand rule on the unit axes.
func ExampleCross() {
	x := vector.New(1, 0, 0)
	y := vector.New(0, 1, 0)

	z, err := vector.Cross(x, y)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(z)
	// Output:
	// [0, 0, 1]
}

// ExampleVector_Norm compares the three norms of one vector.
func ExampleVector_Norm() {
	v := vector.New(3, -4)
	fmt.Println(v.Norm1(), v.Norm(), v.NormInf())
	// Output:
	// 7 5 4
}
