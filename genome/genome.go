// Package genome knows where reference genome releases live and extracts
// per-gene annotation details from their GTF files.
package genome

import (
	"fmt"
	"path/filepath"
)

// Release holds the download locations for one reference genome build.
type Release struct {
	FASTAURL string
	GTFURL   string
}

// Releases maps genome build names onto their GENCODE release files.
var Releases = map[string]Release{
	"hg19": {
		FASTAURL: "https://ftp.ebi.ac.uk/pub/databases/gencode/Gencode_human/release_19/GRCh37.p13.genome.fa.gz",
		GTFURL:   "https://ftp.ebi.ac.uk/pub/databases/gencode/Gencode_human/release_19/gencode.v19.annotation.gtf.gz",
	},
	"hg38": {
		FASTAURL: "https://ftp.ebi.ac.uk/pub/databases/gencode/Gencode_human/release_47/GRCh38.p14.genome.fa.gz",
		GTFURL:   "https://ftp.ebi.ac.uk/pub/databases/gencode/Gencode_human/release_47/gencode.v47.annotation.gtf.gz",
	},
	"mm10": {
		FASTAURL: "https://ftp.ebi.ac.uk/pub/databases/gencode/Gencode_mouse/release_M36/GRCm39.genome.fa.gz",
		GTFURL:   "https://ftp.ebi.ac.uk/pub/databases/gencode/Gencode_mouse/release_M36/gencode.vM36.annotation.gtf.gz",
	},
}

// FileType selects which genome files Download retrieves.
type FileType string

const (
	FileTypeFASTA FileType = "fasta"
	FileTypeGTF   FileType = "gtf"
	FileTypeBoth  FileType = "both"
)

// Fetcher retrieves a URL into local storage and returns the local path.
type Fetcher interface {
	Fetch(url string, force bool) (string, error)
}

// CacheDir returns the conventional cache directory for a genome build below
// the given cache root.
func CacheDir(root, version string) string {
	return filepath.Join(root, "reference_genome", version)
}

// Download retrieves the requested files for a genome build through the
// fetcher and returns their local paths keyed by "fasta" and "gtf".
func Download(fetcher Fetcher, version string, fileType FileType) (map[string]string, error) {
	release, exists := Releases[version]
	if !exists {
		return nil, fmt.Errorf("unsupported genome version: %q", version)
	}

	switch fileType {
	case FileTypeFASTA, FileTypeGTF, FileTypeBoth:
	default:
		return nil, fmt.Errorf("unsupported genome file type: %q", fileType)
	}

	out := make(map[string]string)

	if fileType == FileTypeFASTA || fileType == FileTypeBoth {
		path, err := fetcher.Fetch(release.FASTAURL, false)
		if err != nil {
			return nil, fmt.Errorf("failed to download reference genome files: %w", err)
		}
		out["fasta"] = path
	}

	if fileType == FileTypeGTF || fileType == FileTypeBoth {
		path, err := fetcher.Fetch(release.GTFURL, false)
		if err != nil {
			return nil, fmt.Errorf("failed to download reference genome files: %w", err)
		}
		out["gtf"] = path
	}

	return out, nil
}
