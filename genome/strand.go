package genome

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/regbench/regbench"
)

// GeneStrand pairs a gene symbol with the strand its annotation sits on.
type GeneStrand struct {
	GeneName string `csv:"gene_name"`
	Strand   string `csv:"strand"`
}

// Strands reads a (possibly gzipped) GTF annotation and returns the strand of
// every named gene. When the same gene name is annotated more than once, the
// first record wins.
func Strands(gtfPath string) ([]GeneStrand, error) {
	f, err := os.Open(gtfPath)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	rc, err := regbench.MaybeDecompressReadCloserFromFile(f)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rc.Close()

	r := bufio.NewReader(rc)

	var out []GeneStrand
	seen := make(map[string]bool)

	var line string
	for i := 0; ; i++ {
		line, err = r.ReadString('\n')
		// A file without a trailing newline still carries a final record.
		if err == io.EOF && line == "" {
			break
		} else if err != nil && err != io.EOF {
			return nil, fmt.Errorf("GTF 0-based row %d error %s: %s", i, err, line)
		}

		lineCandidate := strings.TrimSuffix(line, "\n")
		if strings.HasPrefix(lineCandidate, "#") {
			continue
		}

		row := strings.Split(lineCandidate, "\t")
		if x := len(row); x < 9 {
			return nil, fmt.Errorf("GTF 0-based row %d had %d fields, expected 9", i, x)
		}

		if row[2] != "gene" {
			continue
		}

		attributes, err := ParseAttributes(row[8])
		if err != nil {
			return nil, fmt.Errorf("line %d: %s (%+v)", i, err, row[8])
		}

		for _, attr := range attributes {
			if attr.Key != "gene_name" {
				continue
			}
			if !seen[attr.Value] {
				seen[attr.Value] = true
				out = append(out, GeneStrand{GeneName: attr.Value, Strand: row[6]})
			}
			break
		}
	}

	return out, nil
}

// StrandsCached wraps Strands with a sidecar table next to the GTF, so that
// the annotation is only scanned once per cache lifetime.
func StrandsCached(gtfPath string) ([]GeneStrand, error) {
	sidecar := gtfPath + ".strands.tsv"

	if f, err := os.Open(sidecar); err == nil {
		defer f.Close()

		var records []*GeneStrand
		gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
			r := csv.NewReader(in)
			r.Comma = '\t'
			r.LazyQuotes = true
			return r
		})
		if err := gocsv.UnmarshalFile(f, &records); err != nil {
			return nil, pfx.Err(err)
		}

		out := make([]GeneStrand, 0, len(records))
		for _, record := range records {
			out = append(out, *record)
		}

		return out, nil
	}

	strands, err := Strands(gtfPath)
	if err != nil {
		return nil, err
	}

	if err := writeSidecar(sidecar, strands); err != nil {
		// The sidecar is an optimization; a failed write only costs a
		// rescan next time.
		log.Println("Could not write strand sidecar:", err)
	}

	return strands, nil
}

func writeSidecar(path string, strands []GeneStrand) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		w := csv.NewWriter(out)
		w.Comma = '\t'
		return gocsv.NewSafeCSVWriter(w)
	})
	if err := gocsv.MarshalFile(&strands, f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// StrandLookup indexes gene strands by gene name.
func StrandLookup(strands []GeneStrand) map[string]string {
	out := make(map[string]string, len(strands))
	for _, s := range strands {
		if _, exists := out[s.GeneName]; !exists {
			out[s.GeneName] = s.Strand
		}
	}

	return out
}

// KeyValue is one parsed GTF attribute.
type KeyValue struct {
	Key   string
	Value string
}

// ParseAttributes splits the semicolon-delimited attribute column of a GTF
// row into key-value pairs, stripping the quoting around values.
func ParseAttributes(attr string) ([]KeyValue, error) {
	out := make([]KeyValue, 0)

	attributes := strings.Split(attr, ";")
	for i, attribute := range attributes {
		parts := strings.SplitN(strings.TrimSpace(attribute), " ", 2)
		if x := len(parts); x < 2 {
			// Line ends in a semicolon
			break
		} else if x != 2 {
			return nil, fmt.Errorf("expected 2 parts; attribute %d had %d (%+v)", i, x, parts)
		}

		out = append(out, KeyValue{Key: parts[0], Value: strings.Trim(parts[1], "\"")})
	}

	return out, nil
}
