package tensor

import "fmt"

// FMatrix is a square complex matrix indexed by two lambda-basis
// positions, stored row-major in a flat slice. Constructed zero-filled;
// all access is bounds-validated.
type FMatrix struct {
	lamCount int
	data     []complex128
}

// NewFMatrix creates a zero-filled lamCount×lamCount matrix. A zero
// lamCount yields an empty matrix whose every lookup fails with
// ErrInvalidLambda.
// Complexity: O(lamCount²) memory.
func NewFMatrix(lamCount int) *FMatrix {
	if lamCount < 0 {
		lamCount = 0
	}
	return &FMatrix{
		lamCount: lamCount,
		data:     make([]complex128, lamCount*lamCount),
	}
}

// LamCount returns the matrix dimension.
func (m *FMatrix) LamCount() int { return m.lamCount }

// Get retrieves the (lam1, lam2) entry.
func (m *FMatrix) Get(lam1, lam2 int) (complex128, error) {
	index, err := m.flatIndex(lam1, lam2)
	if err != nil {
		return 0, err
	}
	return m.data[index], nil
}

// Set assigns value at (lam1, lam2).
func (m *FMatrix) Set(lam1, lam2 int, value complex128) error {
	index, err := m.flatIndex(lam1, lam2)
	if err != nil {
		return err
	}
	m.data[index] = value
	return nil
}

// Clone returns a deep copy.
func (m *FMatrix) Clone() *FMatrix {
	data := make([]complex128, len(m.data))
	copy(data, m.data)
	return &FMatrix{lamCount: m.lamCount, data: data}
}

// flatIndex validates both lambda positions and computes the row-major
// offset.
func (m *FMatrix) flatIndex(lam1, lam2 int) (int, error) {
	if lam1 < 0 || lam1 >= m.lamCount {
		return 0, fmt.Errorf("tensor: lam1=%d, lam_count=%d: %w", lam1, m.lamCount, ErrInvalidLambda)
	}
	if lam2 < 0 || lam2 >= m.lamCount {
		return 0, fmt.Errorf("tensor: lam2=%d, lam_count=%d: %w", lam2, m.lamCount, ErrInvalidLambda)
	}
	return lam1*m.lamCount + lam2, nil
}
