package dtw_test

import (
	"fmt"
	"math"

	"github.com/HammerLabML/edist/dtw"
	"github.com/HammerLabML/edist/metrics"
)

// ExampleNumeric demonstrates the scalar specialization: the sequences
// differ in pacing and in one trailing value, and elastic alignment prices
// only the real difference.
func ExampleNumeric() {
	x := []float64{0, 0, 1, 2}
	y := []float64{0, 1, 1, 3}

	dist, _, err := dtw.Numeric(x, y, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("distance=%.0f\n", dist)
	// Output:
	// distance=1
}

// ExampleDTW shows the generic engine with an explicit delta and path
// recovery. b repeats one element of a; the warp absorbs the repeat at
// zero cost and the path records the stretch.
func ExampleDTW() {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}

	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := dtw.DTW(a, b, metrics.AbsDiff, &opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("distance=%.0f\npath=%v\n", dist, path)
	// Output:
	// distance=0
	// path=[{0 0} {1 1} {2 2} {2 3} {3 4}]
}

// ExampleString compares two symbol sequences under the Kronecker delta:
// stretching repeated letters is free, so only the d→e substitution costs.
func ExampleString() {
	dist, _, err := dtw.String("aabbccdd", "aaabcccde", nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("distance=%.0f\n", dist)
	// Output:
	// distance=1
}

// ExampleEuclidean aligns two single-point vector sequences; the cost is
// simply the Euclidean distance between the entries.
func ExampleEuclidean() {
	dist, _, err := dtw.Euclidean([][]float64{{0, 0}}, [][]float64{{1, 1}}, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("distance=%.3f\n", dist)
	// Output:
	// distance=1.414
}

// ExampleNumeric_patternSearch slides a short pattern over a longer
// reference series and reports the elastically best-matching start offset —
// the shape of a subsequence search over sensor or price data.
func ExampleNumeric_patternSearch() {
	reference := []float64{0, 0, 0, 1, 2, 1, 0, 0}
	pattern := []float64{1, 2, 1}

	bestDist := math.Inf(1)
	bestStart := -1
	for start := 0; start+len(pattern) <= len(reference); start++ {
		segment := reference[start : start+len(pattern)]
		dist, _, err := dtw.Numeric(segment, pattern, nil)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		if dist < bestDist {
			bestDist = dist
			bestStart = start
		}
	}
	fmt.Printf("best match at index %d (distance=%.0f)\n", bestStart, bestDist)
	// Output:
	// best match at index 3 (distance=0)
}
