// Package tensor provides the dense complex storage types shared by the
// amplitude builders: FMatrix (square over lambda-basis positions),
// BTensor (4-index over mu labels and k channels), and HBTensor (3-index
// mu×mu×channel).
//
// All types store row-major flat complex128 slices, are constructed
// zero-filled, and validate every index on access — out-of-range lambda
// positions, unknown mu labels, and channel overflow return sentinel
// errors, never panic. Mu labels form an explicit set (not necessarily
// contiguous); lookup goes through a label→offset map built once at
// construction.
package tensor
