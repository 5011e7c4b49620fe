package genome

import (
	"path"
	"path/filepath"
	"strings"
	"testing"
)

type fakeFetcher struct {
	dir   string
	calls []string
}

func (f *fakeFetcher) Fetch(url string, force bool) (string, error) {
	f.calls = append(f.calls, url)
	return filepath.Join(f.dir, path.Base(url)), nil
}

func TestReleasesAreComplete(t *testing.T) {
	for _, version := range []string{"hg19", "hg38", "mm10"} {
		release, exists := Releases[version]
		if !exists {
			t.Fatalf("missing release %q", version)
		}
		if release.FASTAURL == "" || release.GTFURL == "" {
			t.Errorf("%s release is missing a URL", version)
		}
		if !strings.HasSuffix(release.GTFURL, ".gtf.gz") {
			t.Errorf("%s GTF URL looks wrong: %s", version, release.GTFURL)
		}
	}
}

func TestDownloadFileSelection(t *testing.T) {
	f := &fakeFetcher{dir: t.TempDir()}

	files, err := Download(f, "hg38", FileTypeBoth)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 || files["fasta"] == "" || files["gtf"] == "" {
		t.Errorf("expected fasta and gtf paths, got %v", files)
	}
	if len(f.calls) != 2 || !strings.Contains(f.calls[0], "genome.fa.gz") {
		t.Errorf("expected the fasta to be fetched first, got %v", f.calls)
	}

	f.calls = nil
	files, err = Download(f, "hg19", FileTypeGTF)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files["gtf"] == "" {
		t.Errorf("expected only the gtf, got %v", files)
	}
	if len(f.calls) != 1 {
		t.Errorf("expected a single fetch, got %v", f.calls)
	}
}

func TestDownloadRejectsUnknownInputs(t *testing.T) {
	f := &fakeFetcher{dir: t.TempDir()}

	if _, err := Download(f, "hg99", FileTypeBoth); err == nil {
		t.Error("expected an error for an unknown genome version")
	}
	if _, err := Download(f, "hg38", FileType("everything")); err == nil {
		t.Error("expected an error for an unknown file type")
	}
	if len(f.calls) != 0 {
		t.Errorf("validation failures must not fetch anything, got %v", f.calls)
	}
}
