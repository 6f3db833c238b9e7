package cases

import "io"

func must(n int, err error) int {
	if err != nil {
		panic(err)
	}
	return n
}

func forcedWrite(w io.Writer, data []byte) {
	must(w.Write(data)) // want "written amount is not handled. Use the exact-fill write operation instead"
}

func countedForce(w io.Writer, data []byte) int {
	return must(w.Write(data))
}
