// Package numeric implements the numeric kernel shared by the graph model
// and the search strategies: Laplacian spectral radius, degree statistics,
// softmax sampling and the mean/covariance/spectral-decomposition routines
// used by the CMA-ES strategy.
package numeric

import (
	"log"

	"gonum.org/v1/gonum/mat"
)

// LargestLaplacianEigenvalue returns mu(G), the largest eigenvalue of the
// Laplacian matrix L = D - A of the graph described by the symmetric,
// zero-diagonal adjacency matrix adj.
func LargestLaplacianEigenvalue(adj [][]float64) float64 {
	n := len(adj)
	if n == 0 {
		return 0
	}

	deg := DegreeVector(adj)
	lap := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if i == j {
				lap.SetSym(i, j, deg[i])
			} else {
				lap.SetSym(i, j, -adj[i][j])
			}
		}
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(lap, false); !ok {
		log.Printf("numeric: Laplacian eigensolver failed to converge for a %d-vertex graph", n)
		return 0
	}

	values := eig.Values(nil)
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// DegreeVector returns the degree d_i of every vertex of adj.
func DegreeVector(adj [][]float64) []float64 {
	n := len(adj)
	deg := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += adj[i][j]
		}
		deg[i] = sum
	}
	return deg
}

// AverageNeighborDegree returns m_i, the average degree of the neighbors of
// every vertex of adj, given its degree vector deg. A vertex with degree
// zero produces NaN (0/0), matching the reference formulas, which fall back
// to their documented sentinel whenever this happens.
func AverageNeighborDegree(adj [][]float64, deg []float64) []float64 {
	n := len(adj)
	m := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			sum += adj[i][j] * deg[j]
		}
		m[i] = sum / deg[i]
	}
	return m
}
