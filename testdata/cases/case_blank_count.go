package cases

import "io"

func drainInto(w io.Writer, data []byte) error {
	_, err := w.Write(data) // want "written amount is not handled. Use the exact-fill write operation instead"
	if err != nil {
		return err
	}

	return nil
}

func dropBoth(w io.Writer, data []byte) {
	_, _ = w.Write(data) // want "written amount is not handled. Use the exact-fill write operation instead"
}

func blankRead(r io.Reader, buf []byte) error {
	_, err := r.Read(buf) // want "read amount is not handled. Use the exact-fill read operation instead"
	return err
}
