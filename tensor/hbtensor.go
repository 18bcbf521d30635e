package tensor

import "fmt"

// HBTensor is the 3-index complex tensor over (mu2, mu1, k) produced by
// the NRIXS diagonal builder. Same label-set indexing contract as BTensor.
type HBTensor struct {
	muValues     []int
	muOffset     map[int]int
	channelCount int
	data         []complex128
}

// NewHBTensor creates a zero-filled (mu, mu, k) tensor.
func NewHBTensor(muValues []int, channelCount int) *HBTensor {
	if channelCount < 0 {
		channelCount = 0
	}
	labels := make([]int, len(muValues))
	copy(labels, muValues)

	offsets := make(map[int]int, len(labels))
	for index, mu := range labels {
		offsets[mu] = index
	}

	return &HBTensor{
		muValues:     labels,
		muOffset:     offsets,
		channelCount: channelCount,
		data:         make([]complex128, len(labels)*len(labels)*channelCount),
	}
}

// MuValues returns the mu label set. Treat as read-only.
func (t *HBTensor) MuValues() []int { return t.muValues }

// ChannelCount returns the number of k channels.
func (t *HBTensor) ChannelCount() int { return t.channelCount }

// Get retrieves the (mu2, mu1, k) entry.
func (t *HBTensor) Get(mu2, mu1, k int) (complex128, error) {
	index, err := t.flatIndex(mu2, mu1, k)
	if err != nil {
		return 0, err
	}
	return t.data[index], nil
}

// Set assigns value at (mu2, mu1, k).
func (t *HBTensor) Set(mu2, mu1, k int, value complex128) error {
	index, err := t.flatIndex(mu2, mu1, k)
	if err != nil {
		return err
	}
	t.data[index] = value
	return nil
}

func (t *HBTensor) flatIndex(mu2, mu1, k int) (int, error) {
	mu2Index, ok := t.muOffset[mu2]
	if !ok {
		return 0, fmt.Errorf("tensor: mu=%d: %w", mu2, ErrUnknownMu)
	}
	mu1Index, ok := t.muOffset[mu1]
	if !ok {
		return 0, fmt.Errorf("tensor: mu=%d: %w", mu1, ErrUnknownMu)
	}
	if k < 0 || k >= t.channelCount {
		return 0, fmt.Errorf("tensor: k=%d, channel_count=%d: %w", k, t.channelCount, ErrInvalidChannel)
	}
	return (mu2Index*len(t.muValues)+mu1Index)*t.channelCount + k, nil
}
