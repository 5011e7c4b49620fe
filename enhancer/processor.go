// Package enhancer turns published enhancer-gene benchmark tables into a
// canonical schema, derives distance and label features, and reports ranking
// metrics for a chosen score column.
package enhancer

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/regbench/regbench"
	"github.com/regbench/regbench/datasets"
	"github.com/regbench/regbench/fetch"
	"github.com/regbench/regbench/genome"
	"github.com/regbench/regbench/metrics"
	"github.com/regbench/regbench/tab"
)

// Fetcher retrieves a URL into local storage and returns the local path.
type Fetcher interface {
	Fetch(url string, force bool) (string, error)
}

// Processor drives the processing pipeline for one registered enhancer
// dataset. The zero fetchers are replaced with disk caches below CacheRoot on
// first use.
type Processor struct {
	Dataset   datasets.Descriptor
	CacheRoot string

	// Fetcher retrieves the dataset file and GenomeFetcher the reference
	// genome files. Both default to URL caches below CacheRoot.
	Fetcher       Fetcher
	GenomeFetcher Fetcher

	processed *tab.Table
}

// DefaultCacheRoot is where downloads land when no cache root is given.
func DefaultCacheRoot() string {
	return regbench.ExpandHome("~/.cache/regbench")
}

// NewProcessor resolves the named dataset of the enhancer task. The dataset
// name must be registered; nothing is downloaded until Run.
func NewProcessor(datasetName, cacheRoot string) (*Processor, error) {
	d, err := datasets.Resolve("enhancer", datasetName)
	if err != nil {
		return nil, err
	}

	if cacheRoot == "" {
		cacheRoot = DefaultCacheRoot()
	}

	return &Processor{Dataset: d, CacheRoot: cacheRoot}, nil
}

// RunOptions controls which pipeline stages Run performs.
type RunOptions struct {
	// OutputPath, when set, is where the processed table is written as TSV.
	OutputPath string

	// Threshold overrides the dataset's configured distance cutoff. The
	// zero value applies the configured cutoff; NoLimit() disables
	// filtering.
	Threshold Threshold

	// Force re-downloads the dataset file even when cached.
	Force bool

	// BestEffort keeps going when declared output columns are absent from
	// the processed table, projecting the present subset and reporting the
	// dropped names instead of failing.
	BestEffort bool

	// ClearCache empties the cache root after processing.
	ClearCache bool

	// DoStatistics computes ranking metrics and the label distribution.
	DoStatistics bool

	// ScoreColumn is evaluated by DoStatistics. Defaults to "ABC Score".
	ScoreColumn string

	// DownloadGenome retrieves the reference genome files for the
	// dataset's genome build. GenomeFileType narrows the retrieval and
	// defaults to both files.
	DownloadGenome bool
	GenomeFileType genome.FileType

	// AddStrand annotates each pair with the strand of its gene, read
	// from the genome build's GTF. Implies downloading the GTF.
	AddStrand bool
}

// The pipeline stages a RunReport can record, in execution order.
const (
	StageConfigResolved  = "config_resolved"
	StageFetched         = "fetched"
	StageNormalized      = "normalized"
	StageFeatureComputed = "feature_computed"
	StageFiltered        = "filtered"
	StageStrandAugmented = "strand_augmented"
	StagePersisted       = "persisted"
	StageScored          = "scored"
	StageDone            = "done"
)

// RunReport collects what each stage of Run produced. Fields for stages that
// did not run are left empty. On failure Stage names the last stage that
// completed.
type RunReport struct {
	Status              string                `json:"status"`
	Stage               string                `json:"stage"`
	GenomeFiles         map[string]string     `json:"genome_files,omitempty"`
	GenomeDownloadError string                `json:"genome_download_error,omitempty"`
	DownloadPath        string                `json:"download_path,omitempty"`
	DataShape           []int                 `json:"data_shape,omitempty"`
	Columns             []string              `json:"columns,omitempty"`
	DroppedColumns      []string              `json:"dropped_columns,omitempty"`
	OutputPath          string                `json:"output_path,omitempty"`
	CacheCleared        bool                  `json:"cache_cleared,omitempty"`
	Metrics             *Metrics              `json:"metrics,omitempty"`
	Distribution        *metrics.Distribution `json:"distribution,omitempty"`
	ScoreSummary        *metrics.Summary      `json:"score_summary,omitempty"`
	ErrorMessage        string                `json:"error_message,omitempty"`

	// Result is the processed table, for callers that keep working with
	// the data in memory.
	Result *tab.Table `json:"-"`
}

// Run executes the pipeline stages selected by opts and reports what
// happened. On failure the report carries the error message and everything
// the completed stages produced.
func (p *Processor) Run(opts RunOptions) (RunReport, error) {
	report := RunReport{Stage: StageConfigResolved}

	if err := p.run(opts, &report); err != nil {
		report.Status = "error"
		report.ErrorMessage = err.Error()
		return report, err
	}

	report.Status = "success"
	report.Stage = StageDone

	return report, nil
}

func (p *Processor) run(opts RunOptions, report *RunReport) error {
	log.Println("Dataset name:", p.Dataset.Title)
	log.Println("Description:", p.Dataset.Description)
	version := p.Dataset.GenomeVersion
	if version == "" {
		log.Println("Reference genome version: not specified")
	} else {
		log.Println("Reference genome version:", version)
	}

	// 0. Reference genome, needed up front when strand annotation is on.
	if opts.DownloadGenome || opts.AddStrand {
		if version == "" {
			log.Println("Warning: dataset has no genome version, skipping genome download")
		} else {
			log.Println("0. Downloading reference genome files...")
			files, err := genome.Download(p.genomeFetcher(), version, p.genomeFileType(opts))
			if err != nil {
				log.Println("Failed to download reference genome:", err)
				report.GenomeDownloadError = err.Error()
				if opts.AddStrand {
					return fmt.Errorf("%w: reference genome download failed: %v", ErrStrandUnavailable, err)
				}
			} else {
				report.GenomeFiles = files
			}
		}
	}

	// 1. Dataset download.
	log.Println("1. Starting data download...")
	dataPath, err := p.fetcher().Fetch(p.Dataset.DataURL, opts.Force)
	if err != nil {
		return err
	}
	log.Println("Data downloaded to:", dataPath)
	report.DownloadPath = dataPath
	report.Stage = StageFetched

	// 2. Normalize, derive features, filter, project.
	log.Println("2. Processing data...")
	raw, err := tab.ReadFile(dataPath, p.Dataset.FileFormat)
	if err != nil {
		return err
	}

	normalized, err := Normalize(raw, p.Dataset)
	if err != nil {
		return err
	}
	report.Stage = StageNormalized

	features, err := ComputeFeatures(normalized, p.Dataset)
	if err != nil {
		return err
	}
	report.Stage = StageFeatureComputed

	filtered, err := FilterByDistance(features, opts.Threshold, p.Dataset)
	if err != nil {
		return err
	}

	var processed *tab.Table
	if opts.BestEffort {
		var dropped []string
		processed, dropped, err = ProjectBestEffort(filtered, p.Dataset)
		if err != nil {
			return err
		}
		if len(dropped) > 0 {
			log.Println("Warning: missing columns in processed data:", dropped)
			report.DroppedColumns = dropped
		}
	} else {
		processed, err = Project(filtered, p.Dataset)
		if err != nil {
			return err
		}
	}
	report.Stage = StageFiltered

	// 2.1 Strand annotation.
	if opts.AddStrand {
		gtfPath, ok := report.GenomeFiles["gtf"]
		if !ok {
			return fmt.Errorf("%w: GTF file not available", ErrStrandUnavailable)
		}

		strands, err := genome.StrandsCached(gtfPath)
		if err != nil {
			return err
		}

		processed, _, err = AddStrand(processed, genome.StrandLookup(strands))
		if err != nil {
			return err
		}
		report.Stage = StageStrandAugmented
	}

	p.processed = processed
	report.Result = processed
	report.DataShape = []int{processed.NumRows(), processed.NumCols()}
	report.Columns = processed.Header()
	log.Printf("Data shape: (%d, %d)\n", processed.NumRows(), processed.NumCols())
	log.Println("Columns:", report.Columns)

	// 3. Persist.
	if opts.OutputPath != "" {
		log.Println("3. Saving processed data...")
		if err := tab.WriteTSV(processed, opts.OutputPath); err != nil {
			return err
		}
		log.Println("Data saved to:", opts.OutputPath)
		report.OutputPath = opts.OutputPath
		report.Stage = StagePersisted
	}

	// 4. Cache cleanup.
	if opts.ClearCache {
		log.Println("4. Clearing cache...")
		if err := fetch.ClearAll(p.CacheRoot); err != nil {
			return err
		}
		report.CacheCleared = true
	}

	// 5. Statistics over the in-memory table, after any cleanup.
	if opts.DoStatistics {
		log.Println("5. Performing statistical analysis...")
		scoreColumn := opts.ScoreColumn
		if scoreColumn == "" {
			scoreColumn = "ABC Score"
		}

		m, err := Score(processed, scoreColumn)
		if err != nil {
			return err
		}
		log.Printf("AUROC: %.3f\n", m.AUROC)
		log.Printf("AUPRC: %.3f\n", m.AUPRC)
		report.Metrics = &m

		distribution, err := Distribution(processed)
		if err != nil {
			return err
		}
		log.Printf("Total samples: %d\n", distribution.TotalSamples)
		for _, label := range []int{0, 1} {
			if count, exists := distribution.LabelCounts[label]; exists {
				log.Printf("Label %d: %d (%.2f%%)\n", label, count, distribution.LabelPercentages[label])
			}
		}
		log.Printf("Positive-negative ratio: %.3f\n", distribution.PositiveNegativeRatio)
		report.Distribution = &distribution

		summary, err := ScoreSummary(processed, scoreColumn)
		if err != nil {
			return err
		}
		report.ScoreSummary = &summary
		report.Stage = StageScored
	}

	return nil
}

// SaveProcessed writes the most recent Run result to a TSV, keeping only the
// declared output columns that are actually present and warning about the
// rest.
func (p *Processor) SaveProcessed(outputPath string) ([]string, error) {
	if p.processed == nil {
		return nil, fmt.Errorf("no processed data; call Run first")
	}

	projected, missing, err := ProjectBestEffort(p.processed, p.Dataset)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		log.Println("Warning: missing columns in processed data:", missing)
	}

	if err := tab.WriteTSV(projected, outputPath); err != nil {
		return nil, err
	}
	log.Println("Processed data saved to:", outputPath)

	return missing, nil
}

func (p *Processor) fetcher() Fetcher {
	if p.Fetcher == nil {
		p.Fetcher = &lazyCache{dir: filepath.Join(p.CacheRoot, p.Dataset.Task, p.Dataset.Name)}
	}

	return p.Fetcher
}

func (p *Processor) genomeFetcher() Fetcher {
	if p.GenomeFetcher == nil {
		p.GenomeFetcher = &lazyCache{dir: genome.CacheDir(p.CacheRoot, p.Dataset.GenomeVersion)}
	}

	return p.GenomeFetcher
}

func (p *Processor) genomeFileType(opts RunOptions) genome.FileType {
	if opts.GenomeFileType != "" {
		return opts.GenomeFileType
	}
	if opts.DownloadGenome {
		return genome.FileTypeBoth
	}

	// Strand annotation alone only needs the GTF.
	return genome.FileTypeGTF
}

// lazyCache defers creating the cache directory until the first fetch, so
// that constructing a Processor has no filesystem side effects.
type lazyCache struct {
	dir   string
	cache *fetch.Cache
}

func (l *lazyCache) Fetch(url string, force bool) (string, error) {
	if l.cache == nil {
		cache, err := fetch.New(l.dir)
		if err != nil {
			return "", err
		}
		l.cache = cache
	}

	return l.cache.Fetch(url, force)
}
