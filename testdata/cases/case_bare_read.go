package cases

import "io"

func consumeSome(r io.Reader, buf []byte) {
	r.Read(buf) // want "read amount is not handled. Use the exact-fill read operation instead"
}

func countedRead(r io.Reader, buf []byte) (int, error) {
	// The count is bound to a name and stays checkable. Not flagged.
	n, err := r.Read(buf)
	return n, err
}
