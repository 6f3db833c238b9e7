package cases

type batchConn interface {
	ReadBatch(bufs [][]byte) (int, error)
}

func drainBatches(c batchConn, bufs [][]byte) error {
	_, err := c.ReadBatch(bufs) // want "read amount is not handled"
	return err
}

func fillBatches(c batchConn, bufs [][]byte) (int, error) {
	filled, err := c.ReadBatch(bufs)
	return filled, err
}
