package utils

import (
	"io"
	"sync"
)

// flushableWriter is implemented by buffering writers such as bufio.Writer.
type flushableWriter interface {
	Flush() error
}

// FlushingWriter pushes buffered output through after every write so that
// repository status lines appear as soon as they are reported.
type FlushingWriter struct {
	destination io.Writer
	writeMutex  sync.Mutex
}

// NewFlushingWriter wraps destination in a FlushingWriter. A destination that
// already flushes per write is returned unchanged; a nil destination yields nil.
func NewFlushingWriter(destination io.Writer) io.Writer {
	if destination == nil {
		return nil
	}
	if existingWriter, alreadyFlushing := destination.(*FlushingWriter); alreadyFlushing {
		return existingWriter
	}
	return &FlushingWriter{destination: destination}
}

// Write forwards data to the destination and flushes it when the destination buffers output.
func (writer *FlushingWriter) Write(data []byte) (int, error) {
	if writer == nil || writer.destination == nil {
		return 0, nil
	}

	writer.writeMutex.Lock()
	defer writer.writeMutex.Unlock()

	writtenBytes, writeError := writer.destination.Write(data)
	if writeError != nil {
		return writtenBytes, writeError
	}

	if bufferedDestination, destinationBuffers := writer.destination.(flushableWriter); destinationBuffers {
		writeError = bufferedDestination.Flush()
	}

	return writtenBytes, writeError
}
