// Package geometry converts a scattering path, given as an ordered list
// of leg endpoints, into the Euler angles and leg lengths that the
// amplitude builders consume. Angles follow the z-y-z convention with the
// beam closing back on the absorber; an optional polarization frame adds
// one extra rotation aligned with the lab z axis.
package geometry
