package pwm2base_api

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/io/seqio/fastq"
	"github.com/biogo/biogo/seq/linear"
	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const maxLineCapacity = 8 * 1000000 // 8 MB

// The extension of a file without the dot, ignoring a compression suffix
func Extension(path string) string {
	path = trimCompression(path)
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

func trimCompression(path string) string {
	for _, suffix := range []string{".gz", ".zst"} {
		if strings.HasSuffix(path, suffix) {
			return strings.TrimSuffix(path, suffix)
		}
	}
	return path
}

// List the input files of a path
// A directory is listed in name order and only files with one of the given
// extensions are kept. A single file is always used as is.
func ListInputs(path string, extensions []string, logger *log.Logger) ([]string, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, false, pfx.Err(err)
	}
	if !info.IsDir() {
		return []string{path}, false, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, true, pfx.Err(err)
	}
	files := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		extension := Extension(entry.Name())
		if !slices.Contains(extensions, extension) {
			logger.Printf("Unrecognized file extension '%s'. Skipping file '%s'", extension, entry.Name())
			continue
		}
		files = append(files, filepath.Join(path, entry.Name()))
	}
	return files, true, nil
}

// Open a file, decompressing gzip or bgzip (.gz) and zstd (.zst) files on the fly
func OpenInput(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	switch {
	case strings.HasSuffix(path, ".gz"):
		// bgzip is multi-member gzip, one reader handles both
		gzReader, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, pfx.Err(err)
		}
		return &stackedCloser{Reader: gzReader, closers: []io.Closer{gzReader, file}}, nil
	case strings.HasSuffix(path, ".zst"):
		decoder, err := zstd.NewReader(file)
		if err != nil {
			file.Close()
			return nil, pfx.Err(err)
		}
		zstReader := decoder.IOReadCloser()
		return &stackedCloser{Reader: zstReader, closers: []io.Closer{zstReader, file}}, nil
	default:
		return file, nil
	}
}

type stackedCloser struct {
	io.Reader
	closers []io.Closer
}

func (stacked *stackedCloser) Close() error {
	var errs []error
	for _, closer := range stacked.closers {
		errs = append(errs, closer.Close())
	}
	return errors.Join(errs...)
}

// Read all records of an input file and hand them to process one at a time
func ReadRecords(path string, matrix bool, process func(record *Record) error) error {
	input, err := OpenInput(path)
	if err != nil {
		return err
	}
	defer input.Close()

	name := strings.TrimSuffix(filepath.Base(trimCompression(path)), filepath.Ext(trimCompression(path)))
	extension := Extension(path)

	switch {
	case matrix || extension == "pfm":
		err = readMatrixBlocks(input, name, process)
	case extension == "fa" || extension == "fasta":
		err = readFasta(input, process)
	case extension == "fq" || extension == "fastq":
		err = readFastq(input, process)
	case extension == "txt":
		err = readText(input, name, process)
	default:
		err = fmt.Errorf("unsupported file extension '%s'", extension)
	}
	if err != nil {
		return pfx.Err(fmt.Errorf("%s: %w", path, err))
	}
	return nil
}

func newScanner(input io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineCapacity)
	return scanner
}

// Split a FASTA header into its ID and description
func parseHeader(line string) (string, string) {
	header := strings.TrimSpace(strings.TrimPrefix(line, ">"))
	split := strings.IndexAny(header, " \t")
	if split < 0 {
		return header, ""
	}
	return header[:split], strings.TrimSpace(header[split+1:])
}

// Read FASTA-like matrix records
// The body lines are kept with their line breaks so the matrix layout stays
// intact. Lines before the first header form a record named after the file.
func readMatrixBlocks(input io.Reader, name string, process func(record *Record) error) error {
	var (
		record *Record
		body   []string
	)
	flush := func() error {
		if record == nil {
			return nil
		}
		record.Seq = strings.Join(body, "\n")
		body = body[:0]
		return process(record)
	}

	scanner := newScanner(input)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return err
			}
			id, desc := parseHeader(line)
			record = &Record{Id: id, Desc: desc}
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if record == nil {
			record = &Record{Id: name}
		}
		body = append(body, line)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return flush()
}

func readFasta(input io.Reader, process func(record *Record) error) error {
	reader := fasta.NewReader(input, linear.NewSeq("", nil, alphabet.DNAgapped))
	for {
		sequence, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		letters := sequence.(*linear.Seq).Seq
		record := &Record{
			Id:   sequence.Name(),
			Desc: sequence.Description(),
			Seq:  string(alphabet.LettersToBytes(letters)),
		}
		if err := process(record); err != nil {
			return err
		}
	}
}

func readFastq(input io.Reader, process func(record *Record) error) error {
	reader := fastq.NewReader(input, linear.NewQSeq("", nil, alphabet.DNAgapped, alphabet.Sanger))
	for {
		sequence, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		qletters := sequence.(*linear.QSeq).Seq
		bases := make([]byte, len(qletters))
		for i, ql := range qletters {
			bases[i] = byte(ql.L)
		}
		record := &Record{
			Id:   sequence.Name(),
			Desc: sequence.Description(),
			Seq:  string(bases),
		}
		if err := process(record); err != nil {
			return err
		}
	}
}

// Read a plain text file
// Files starting with '>' are FASTA files. Otherwise every line is a record,
// either "<id>\t<sequence>" or a bare sequence that is named after the file
// and its line number.
func readText(input io.Reader, name string, process func(record *Record) error) error {
	buffered := bufio.NewReader(input)
	if first, err := buffered.Peek(1); err == nil && first[0] == '>' {
		return readFasta(buffered, process)
	}

	scanner := newScanner(buffered)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		record := &Record{}
		if header, sequence, ok := strings.Cut(line, "\t"); ok {
			record.Id, record.Desc = parseHeader(strings.Trim(header, `"`))
			record.Seq = strings.TrimSpace(sequence)
		} else {
			record.Id = name + "_" + strconv.Itoa(lineNumber)
			record.Seq = line
		}
		if err := process(record); err != nil {
			return err
		}
	}
	return scanner.Err()
}
