package whitespace

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// sniffLen is how much of a file IsBinaryFile inspects.
const sniffLen = 512

// IsBinaryFile reports whether the file at path is likely binary: its first
// 512 bytes contain a NUL byte or more than 30% non-printable bytes.
// Empty files are text.
func IsBinaryFile(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, sniffLen)
	n, err := io.ReadFull(file, buffer)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, err
	}
	return IsBinary(buffer[:n]), nil
}

// IsBinary applies the IsBinaryFile heuristic to data.
func IsBinary(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return true
	}

	nonPrintable := 0
	for _, b := range data {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(data)) > 0.3
}

// isPrintable treats ASCII text, common control characters and bytes of
// multi-byte UTF-8 sequences as printable.
func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t' || b == '\f' || b >= 0x80
}
