package numeric

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// SoftmaxChoice draws an index from weights according to a softmax
// distribution over them: P(i) proportional to exp(weights[i]). If no index
// accumulates the drawn mass (the heuristic saturates the weights), the
// last index is returned.
func SoftmaxChoice(weights []float64, rng *rand.Rand) int {
	r := rng.Float64()

	sum := 0.0
	for _, w := range weights {
		sum += math.Exp(w)
	}

	acc := 0.0
	for i, w := range weights {
		acc += math.Exp(w) / sum
		if acc >= r {
			return i
		}
	}
	return len(weights) - 1
}

// RowMeans returns the column-wise mean of a set of equal-length sample
// vectors, one mean per feature.
func RowMeans(samples [][]float64) []float64 {
	if len(samples) == 0 {
		return nil
	}
	dim := len(samples[0])
	means := make([]float64, dim)
	for j := 0; j < dim; j++ {
		col := make([]float64, len(samples))
		for i, s := range samples {
			col[i] = s[j]
		}
		means[j] = stat.Mean(col, nil)
	}
	return means
}

// SampleCovariance returns the dim x dim covariance matrix of a set of
// equal-length sample vectors.
func SampleCovariance(samples [][]float64) *mat.SymDense {
	if len(samples) == 0 {
		return mat.NewSymDense(0, nil)
	}
	dim := len(samples[0])
	data := make([]float64, len(samples)*dim)
	for i, s := range samples {
		copy(data[i*dim:(i+1)*dim], s)
	}
	raw := mat.NewDense(len(samples), dim, data)

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, raw, nil)
	return &cov
}

// SpectralDecomposition eigendecomposes a symmetric matrix, returning the
// matrix of eigenvectors P (as columns) and the vector of eigenvalues delta,
// analogous to the (P, delta) pair produced by an SVD of a PSD covariance
// matrix.
func SpectralDecomposition(sym *mat.SymDense) (*mat.Dense, []float64) {
	n := sym.SymmetricDim()
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, true); !ok {
		return mat.NewDense(n, n, nil), make([]float64, n)
	}

	var vectors mat.Dense
	eig.VectorsTo(&vectors)
	values := eig.Values(nil)
	return &vectors, values
}
