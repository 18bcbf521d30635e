package tensor

import "fmt"

// BTensor is the 4-index complex tensor over (mu1, k1, mu2, k2), where mu
// values form an explicit label set and k channels run [0, channelCount).
// Lookup by mu label goes through an offset map built at construction.
type BTensor struct {
	muValues     []int
	muOffset     map[int]int
	channelCount int
	data         []complex128
}

// NewBTensor creates a zero-filled tensor over the given mu label set and
// channel count. Duplicate labels collapse to one offset (last wins), so
// callers should pass distinct labels.
// Complexity: O((len(muValues)·channelCount)²) memory.
func NewBTensor(muValues []int, channelCount int) *BTensor {
	if channelCount < 0 {
		channelCount = 0
	}
	labels := make([]int, len(muValues))
	copy(labels, muValues)

	offsets := make(map[int]int, len(labels))
	for index, mu := range labels {
		offsets[mu] = index
	}

	span := len(labels) * channelCount
	return &BTensor{
		muValues:     labels,
		muOffset:     offsets,
		channelCount: channelCount,
		data:         make([]complex128, span*span),
	}
}

// MuValues returns the mu label set. Treat as read-only.
func (t *BTensor) MuValues() []int { return t.muValues }

// ChannelCount returns the number of k channels.
func (t *BTensor) ChannelCount() int { return t.channelCount }

// Get retrieves the (mu1, k1, mu2, k2) entry.
func (t *BTensor) Get(mu1, k1, mu2, k2 int) (complex128, error) {
	index, err := t.flatIndex(mu1, k1, mu2, k2)
	if err != nil {
		return 0, err
	}
	return t.data[index], nil
}

// Set assigns value at (mu1, k1, mu2, k2).
func (t *BTensor) Set(mu1, k1, mu2, k2 int, value complex128) error {
	index, err := t.flatIndex(mu1, k1, mu2, k2)
	if err != nil {
		return err
	}
	t.data[index] = value
	return nil
}

// Add accumulates value into the (mu1, k1, mu2, k2) entry.
func (t *BTensor) Add(mu1, k1, mu2, k2 int, value complex128) error {
	index, err := t.flatIndex(mu1, k1, mu2, k2)
	if err != nil {
		return err
	}
	t.data[index] += value
	return nil
}

// muIndex resolves a mu label to its offset.
func (t *BTensor) muIndex(mu int) (int, error) {
	index, ok := t.muOffset[mu]
	if !ok {
		return 0, fmt.Errorf("tensor: mu=%d: %w", mu, ErrUnknownMu)
	}
	return index, nil
}

// flatIndex validates labels and channels, then computes the flat offset
// in (mu1, k1, mu2, k2) row-major order.
func (t *BTensor) flatIndex(mu1, k1, mu2, k2 int) (int, error) {
	mu1Index, err := t.muIndex(mu1)
	if err != nil {
		return 0, err
	}
	mu2Index, err := t.muIndex(mu2)
	if err != nil {
		return 0, err
	}
	if k1 < 0 || k1 >= t.channelCount {
		return 0, fmt.Errorf("tensor: k1=%d, channel_count=%d: %w", k1, t.channelCount, ErrInvalidChannel)
	}
	if k2 < 0 || k2 >= t.channelCount {
		return 0, fmt.Errorf("tensor: k2=%d, channel_count=%d: %w", k2, t.channelCount, ErrInvalidChannel)
	}

	muCount := len(t.muValues)
	prefix := (mu1Index*t.channelCount + k1) * muCount
	return (prefix+mu2Index)*t.channelCount + k2, nil
}

// ContiguousMu builds the symmetric label set -maxAbsM..maxAbsM; a
// negative bound yields an empty set.
func ContiguousMu(maxAbsM int) []int {
	if maxAbsM < 0 {
		return nil
	}
	values := make([]int, 0, 2*maxAbsM+1)
	for mu := -maxAbsM; mu <= maxAbsM; mu++ {
		values = append(values, mu)
	}
	return values
}
