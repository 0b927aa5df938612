package distance_test

import (
	"fmt"

	"github.com/nozzle/distances/distance"
)

func ExampleManhattan() {
	fmt.Println(distance.Manhattan([]float64{1, 2, 3}, []float64{4, 5, 6}))
	fmt.Println(distance.Manhattan([]float64{-1, 0, 2}, []float64{3, -4, 5}))
	fmt.Println(distance.Manhattan([]float64{0, 0, 0}, []float64{0, 0, 0}))
	// Output:
	// 9
	// 11
	// 0
}

func ExampleEuclideanGrad() {
	dist, grad := distance.EuclideanGrad([]float64{3, 0}, []float64{0, 4})
	fmt.Println(dist, grad)
	// Output:
	// 5 [0.6 -0.8]
}

func ExampleLookup() {
	m, ok := distance.Lookup[float32]("l1")
	fmt.Println(m.Name, ok)
	fmt.Println(m.Func([]float32{1, 2}, []float32{2, 4}))
	// Output:
	// manhattan true
	// 3
}

func ExampleJaccard() {
	fmt.Println(distance.Jaccard([]float64{1, 0, 1, 0}, []float64{1, 1, 0, 0}))
	fmt.Println(distance.Jaccard([]float64{0, 0}, []float64{0, 0}))
	// Output:
	// 0.6666666666666666
	// 0
}
