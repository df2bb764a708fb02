package pwm2base_api

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/biogo/hts/bgzf"
	"github.com/carbocation/pfx"
)

// The default output path: the input without its extension plus the suffix,
// or the directory name plus the suffix
func OutputPath(input string, isDir bool, suffix string) string {
	if isDir {
		return strings.TrimRight(input, string(filepath.Separator)+"/") + suffix + ".tsv"
	}
	input = trimCompression(input)
	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix + ".tsv"
}

// Ask whether an existing output file may be overwritten
// Returns true when the file doesn't exist yet or the answer starts with 'y',
// an empty answer declines.
func ConfirmOverwrite(path string, in io.Reader, out io.Writer) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return true, nil
		}
		return false, pfx.Err(err)
	}

	fmt.Fprintf(out, "File '%s' already exists. Do you wish to override it? [y/N] ", path)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, pfx.Err(err)
	}
	response = strings.TrimSpace(response)
	return strings.HasPrefix(strings.ToLower(response), "y"), nil
}

// Writes the resolved records as "<name>"\t<sequence> lines
type RecordWriter struct {
	buffer  *bufio.Writer
	closers []io.Closer
}

// Create the output file, paths ending in .gz are written as bgzip
func CreateOutput(path string) (*RecordWriter, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("failed to create the output file: %w", err))
	}

	if strings.HasSuffix(path, ".gz") {
		bgWriter := bgzf.NewWriter(file, runtime.GOMAXPROCS(0))
		return &RecordWriter{
			buffer:  bufio.NewWriter(bgWriter),
			closers: []io.Closer{bgWriter, file},
		}, nil
	}
	return &RecordWriter{
		buffer:  bufio.NewWriter(file),
		closers: []io.Closer{file},
	}, nil
}

func (writer *RecordWriter) Write(record *Record) error {
	_, err := fmt.Fprintf(writer.buffer, "\"%s\"\t%s\n", record.Name(), record.Seq)
	return err
}

func (writer *RecordWriter) Close() error {
	errs := []error{writer.buffer.Flush()}
	for _, closer := range writer.closers {
		errs = append(errs, closer.Close())
	}
	return errors.Join(errs...)
}
