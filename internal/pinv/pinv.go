// Package pinv implements the Moore-Penrose pseudo-inverse on top of
// gonum's singular value decomposition.
package pinv

import (
	"errors"

	"github.com/soypat/screw/internal/d3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// dlamchE is the machine epsilon. For IEEE this is 2^{-53}.
	dlamchE = 0x1p-53
	// dlamchP is base * eps.
	dlamchP = 2 * dlamchE
)

// ErrFactorization is returned when the SVD of the argument does not converge.
var ErrFactorization = errors.New("pinv: singular value decomposition failed")

// Pinv returns the m×n pseudo-inverse of the n×m matrix a.
//
// Singular values smaller than max(m,n)·σmax·eps are treated as zero, so
// rank deficient input (such as a skew-symmetric matrix, which always has
// rank 2 or 0) yields the least squares minimum norm inverse instead of
// an error. The zero matrix maps to the zero matrix.
func Pinv(a mat.Matrix) (*mat.Dense, error) {
	r, c := a.Dims()
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		return nil, ErrFactorization
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	sigma := svd.Values(nil)

	tol := 0.0
	if len(sigma) > 0 {
		tol = float64(maxInt(r, c)) * sigma[0] * dlamchP
	}
	// V·Σ⁺ computed in place by scaling the columns of V.
	vr, _ := v.Dims()
	for j, s := range sigma {
		inv := 0.0
		if s > tol {
			inv = 1 / s
		}
		for i := 0; i < vr; i++ {
			v.Set(i, j, v.At(i, j)*inv)
		}
	}
	dst := mat.NewDense(c, r, nil)
	dst.Mul(&v, u.T())
	return dst, nil
}

// MulVec returns the product a·x for a 3×3 matrix a.
func MulVec(a mat.Matrix, x r3.Vec) r3.Vec {
	var m r3.Mat
	m.CloneFrom(a)
	return m.MulVec(x)
}

// Solve returns the minimum norm least squares solution x of a·x = b
// for a 3×3 matrix a, computed as pinv(a)·b.
func Solve(a mat.Matrix, b r3.Vec) (r3.Vec, error) {
	p, err := Pinv(a)
	if err != nil {
		return r3.Vec{}, err
	}
	x := MulVec(p, b)
	if d3.HasNaN(x) {
		return x, errors.New("pinv: solution is not a number")
	}
	return x, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
