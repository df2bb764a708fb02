package pwm2base_api

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/biogo/hts/bgzf"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func collect(t *testing.T, path string, matrix bool) []Record {
	t.Helper()
	var records []Record
	err := ReadRecords(path, matrix, func(record *Record) error {
		records = append(records, *record)
		return nil
	})
	if err != nil {
		t.Fatalf("ReadRecords(%s): %v", path, err)
	}
	return records
}

func TestExtension(t *testing.T) {
	cases := map[string]string{
		"a/b/motifs.pfm":   "pfm",
		"motifs.FASTA":     "fasta",
		"reads.fq.gz":      "fq",
		"weights.txt.zst":  "txt",
		"no_extension":     "",
		"dir.v2/no_ext.gz": "",
	}
	for path, want := range cases {
		if got := Extension(path); got != want {
			t.Errorf("Extension(%q): got %q want %q", path, got, want)
		}
	}
}

func TestListInputs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pfm", "a.txt", "c.fa.gz", "notes.md", "out.tsv"} {
		writeFile(t, filepath.Join(dir, name), nil)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755); err != nil {
		t.Fatal(err)
	}

	var warnings bytes.Buffer
	files, isDir, err := ListInputs(dir, DefaultExtensions, log.New(&warnings, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.pfm"), filepath.Join(dir, "c.fa.gz")}
	if !isDir || !reflect.DeepEqual(files, want) {
		t.Fatalf("got %v (dir %v) want %v", files, isDir, want)
	}
	if !bytes.Contains(warnings.Bytes(), []byte("'md'")) || !bytes.Contains(warnings.Bytes(), []byte("'tsv'")) {
		t.Fatalf("missing skip warnings: %q", warnings.String())
	}

	single := filepath.Join(dir, "notes.md")
	files, isDir, err = ListInputs(single, DefaultExtensions, log.New(io.Discard, "", 0))
	if err != nil || isDir || !reflect.DeepEqual(files, []string{single}) {
		t.Fatalf("single file: got %v %v %v", files, isDir, err)
	}

	if _, _, err := ListInputs(filepath.Join(dir, "missing"), DefaultExtensions, log.New(io.Discard, "", 0)); err == nil {
		t.Fatal("expected an error for a missing input")
	}
}

func TestReadMatrixBlocks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jaspar.pfm")
	writeFile(t, path, []byte(">MA0004.1 Arnt\nA  [ 4 19 ]\nC  [16  0 ]\nG  [ 0  1 ]\nT  [ 0  0 ]\n\n>MA0006.1\nA [ 1 ]\nC [ 0 ]\nG [ 0 ]\nT [ 0 ]\n"))

	got := collect(t, path, false)
	want := []Record{
		{Id: "MA0004.1", Desc: "Arnt", Seq: "A  [ 4 19 ]\nC  [16  0 ]\nG  [ 0  1 ]\nT  [ 0  0 ]"},
		{Id: "MA0006.1", Seq: "A [ 1 ]\nC [ 0 ]\nG [ 0 ]\nT [ 0 ]"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestParseHeader(t *testing.T) {
	cases := []struct {
		line, id, desc string
	}{
		{">MA0004.1 Arnt", "MA0004.1", "Arnt"},
		{">MA0004.1\tArnt", "MA0004.1", "Arnt"},
		{">m1\tfirst motif", "m1", "first motif"},
		{">m2", "m2", ""},
	}
	for _, c := range cases {
		id, desc := parseHeader(c.line)
		if id != c.id || desc != c.desc {
			t.Errorf("parseHeader(%q): got %q, %q want %q, %q", c.line, id, desc, c.id, c.desc)
		}
	}
}

func TestReadMatrixTabHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jaspar2020.pfm")
	writeFile(t, path, []byte(">MA0004.1\tArnt\nA  [ 4 ]\nC  [ 0 ]\nG  [ 0 ]\nT  [ 0 ]\n"))

	got := collect(t, path, true)
	if len(got) != 1 || got[0].Id != "MA0004.1" || got[0].Desc != "Arnt" {
		t.Fatalf("got %#v", got)
	}
}

func TestReadMatrixWithoutHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weights.txt")
	writeFile(t, path, []byte("0.1\t0.2\t0.3\t0.4\r\n1\t0\t0\t0\n"))

	got := collect(t, path, true)
	want := []Record{{Id: "weights", Seq: "0.1\t0.2\t0.3\t0.4\n1\t0\t0\t0"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestReadFasta(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "motifs.fa")
	writeFile(t, path, []byte(">m1 first motif\nACGTN\nRY-.\n>m2\nWSKM\n"))

	got := collect(t, path, false)
	want := []Record{
		{Id: "m1", Desc: "first motif", Seq: "ACGTNRY-."},
		{Id: "m2", Seq: "WSKM"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}
}

func TestReadFastq(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reads.fq")
	writeFile(t, path, []byte("@r1\nACGN\n+\nIIII\n"))

	got := collect(t, path, false)
	if len(got) != 1 || got[0].Id != "r1" || got[0].Seq != "ACGN" {
		t.Fatalf("got %#v", got)
	}
}

func TestReadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "motifs.txt")
	writeFile(t, path, []byte("\"m1 desc\"\tACGN\n\nRYKM\n"))

	got := collect(t, path, false)
	want := []Record{
		{Id: "m1", Desc: "desc", Seq: "ACGN"},
		{Id: "motifs_3", Seq: "RYKM"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v want %#v", got, want)
	}

	fastaText := filepath.Join(dir, "fasta.txt")
	writeFile(t, fastaText, []byte(">m1\nAC\nGT\n"))
	got = collect(t, fastaText, false)
	if len(got) != 1 || got[0].Id != "m1" || got[0].Seq != "ACGT" {
		t.Fatalf("sniffed FASTA: got %#v", got)
	}
}

func TestReadCompressed(t *testing.T) {
	dir := t.TempDir()
	data := []byte(">m1\nACGN\n")

	var bgzipped bytes.Buffer
	bgWriter := bgzf.NewWriter(&bgzipped, 1)
	if _, err := bgWriter.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := bgWriter.Close(); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "a.fa.gz"), bgzipped.Bytes())

	var gzipped bytes.Buffer
	gzWriter := gzip.NewWriter(&gzipped)
	if _, err := gzWriter.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := gzWriter.Close(); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "plain.fa.gz"), gzipped.Bytes())

	var zstded bytes.Buffer
	encoder, err := zstd.NewWriter(&zstded)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := encoder.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := encoder.Close(); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "b.fa.zst"), zstded.Bytes())

	for _, name := range []string{"a.fa.gz", "plain.fa.gz", "b.fa.zst"} {
		got := collect(t, filepath.Join(dir, name), false)
		if len(got) != 1 || got[0].Id != "m1" || got[0].Seq != "ACGN" {
			t.Errorf("%s: got %#v", name, got)
		}
	}
}

func TestReadUnsupported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	writeFile(t, path, []byte("ACGT\n"))
	if err := ReadRecords(path, false, func(*Record) error { return nil }); err == nil {
		t.Fatal("expected an error for an unsupported extension")
	}
}
