package main

// memory is a calculator memory register. The zero value holds 0.
type memory struct {
	v float64
}

func (m *memory) add(v float64) {
	m.v += v
}

func (m *memory) sub(v float64) {
	m.v -= v
}

func (m *memory) recall() float64 {
	return m.v
}

func (m *memory) clear() {
	m.v = 0
}
