package cases

import "io"

type gauge struct{}

// Read here has nothing to do with io.Reader.
func (gauge) Read(scale string) int {
	return len(scale)
}

func pollGauge(g gauge) {
	g.Read("celsius")
}

type metrics struct {
	sink io.Writer
}

// Write records a counter. Same name as io.Writer's method, different
// contract entirely.
func (m metrics) Write(key string, value int) {
	_ = key
	_ = value
}

func record(m metrics) {
	m.Write("reads", 1)
}
