package cases

import "io"

func quietRead(r io.Reader, buf []byte) {
	r.Read(buf) //ioful:ignore
}

func loudRead(r io.Reader, buf []byte) {
	r.Read(buf) // want "read amount is not handled. Use the exact-fill read operation instead"
}

//ioful:silence // want "unknown directive //ioful:silence"
func typoDirective(w io.Writer, data []byte) error {
	_, err := w.Write(data) // want "written amount is not handled. Use the exact-fill write operation instead"
	return err
}
