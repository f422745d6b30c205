package cloudwriter

// CloudWriter accumulates bytes for a single remote object. The upload
// happens on Close, so callers must always close the writer.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

// CloudWriterFactory creates writers bound to a bucket and object path.
type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}
