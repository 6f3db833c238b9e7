package cases

import "io"

func adapt(n int, err error) (int, error) {
	if err == io.ErrShortWrite {
		return n, nil
	}
	return n, err
}

func adaptedWrite(w io.Writer, data []byte) error {
	_, err := adapt(w.Write(data)) // want "written amount is not handled. Use the exact-fill write operation instead"
	return err
}

func adaptedCounted(w io.Writer, data []byte) (int, error) {
	n, err := adapt(w.Write(data))
	return n, err
}
