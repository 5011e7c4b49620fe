// regbench downloads a registered benchmark dataset, normalizes it into the
// canonical schema, and reports how well the dataset's score column separates
// regulated from unregulated enhancer-gene pairs.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/regbench/regbench"
	_ "github.com/regbench/regbench/compileinfoprint"
	"github.com/regbench/regbench/datasets"
	"github.com/regbench/regbench/enhancer"
	"github.com/regbench/regbench/genome"
)

func main() {
	var taskName, datasetName, cacheRoot, outputFile, scoreColumn, genomeFileType, jsonFile, rocFile string
	var thresholdBP int64
	var listDatasets, noThreshold, force, clearCache, stats, downloadGenome, addStrand, bestEffort, printHist bool

	flag.StringVar(&taskName, "task", "enhancer", "Benchmark task to run. Only the enhancer task has a processor.")
	flag.StringVar(&datasetName, "dataset", "", "Name of the registered dataset to process.")
	flag.BoolVar(&listDatasets, "list", false, "List the registered tasks and datasets, then exit.")
	flag.StringVar(&cacheRoot, "cache", enhancer.DefaultCacheRoot(), "Directory where downloaded files are kept.")
	flag.StringVar(&outputFile, "output", "", "Path for the processed TSV. Defaults to <dataset>_processed.tsv in the working directory.")
	flag.Int64Var(&thresholdBP, "threshold", -1, "Maximum enhancer to TSS distance in base pairs. Negative values keep the dataset's configured cutoff.")
	flag.BoolVar(&noThreshold, "nothreshold", false, "Disable distance filtering entirely, overriding the dataset's configured cutoff.")
	flag.BoolVar(&force, "force", false, "Re-download the dataset even when it is already cached.")
	flag.BoolVar(&clearCache, "clearcache", true, "Empty the cache directory after processing.")
	flag.BoolVar(&stats, "stats", true, "Compute ranking metrics and the label distribution.")
	flag.StringVar(&scoreColumn, "score", "ABC Score", "Score column evaluated by the statistics stage.")
	flag.BoolVar(&downloadGenome, "downloadgenome", false, "Download the reference genome files for the dataset's genome build.")
	flag.StringVar(&genomeFileType, "genomefiletype", "", "Which genome files to download: fasta, gtf, or both. Defaults to both.")
	flag.BoolVar(&addStrand, "addstrand", false, "Annotate each pair with the strand of its gene from the genome build's GTF.")
	flag.BoolVar(&bestEffort, "besteffort", false, "Keep going when declared output columns are absent, dropping them with a warning.")
	flag.StringVar(&jsonFile, "json", "", "Path where the run report is written as JSON.")
	flag.BoolVar(&printHist, "hist", false, "Print a histogram of the enhancer to TSS distances.")
	flag.StringVar(&rocFile, "rocpng", "", "Path where the ROC curve is rendered as a PNG.")
	flag.Parse()

	if listDatasets {
		printRegistry()
		return
	}

	if datasetName == "" {
		flag.Usage()
		log.Println("Must specify a --dataset. The registered datasets are:")
		printRegistry()
		os.Exit(1)
	}

	if taskName != "enhancer" {
		log.Fatalf("Processing for task %q is not implemented\n", taskName)
	}

	if outputFile == "" {
		outputFile = datasetName + "_processed.tsv"
	}
	cacheRoot = regbench.ExpandHome(cacheRoot)

	threshold := enhancer.Threshold{}
	if noThreshold {
		threshold = enhancer.NoLimit()
	} else if thresholdBP >= 0 {
		threshold = enhancer.BP(thresholdBP)
	}

	p, err := enhancer.NewProcessor(datasetName, cacheRoot)
	if err != nil {
		log.Fatalln(err)
	}

	report, err := p.Run(enhancer.RunOptions{
		OutputPath:     outputFile,
		Threshold:      threshold,
		Force:          force,
		ClearCache:     clearCache,
		DoStatistics:   stats,
		ScoreColumn:    scoreColumn,
		DownloadGenome: downloadGenome,
		GenomeFileType: genome.FileType(genomeFileType),
		AddStrand:      addStrand,
		BestEffort:     bestEffort,
	})
	if err != nil {
		log.Fatalln(err)
	}

	if jsonFile != "" {
		if err := writeReport(report, jsonFile); err != nil {
			log.Fatalln(err)
		}
		log.Println("Report written to:", jsonFile)
	}

	if printHist {
		if err := printDistanceHistogram(report.Result); err != nil {
			log.Fatalln(err)
		}
	}

	if rocFile != "" {
		if err := renderROC(report.Result, scoreColumn, rocFile); err != nil {
			log.Fatalln(err)
		}
		log.Println("ROC curve written to:", rocFile)
	}
}

func printRegistry() {
	for _, taskName := range datasets.Tasks() {
		names, err := datasets.Datasets(taskName)
		if err != nil {
			log.Fatalln(err)
		}

		for _, name := range names {
			fmt.Printf("%s\t%s\n", taskName, name)
		}
	}
}

func writeReport(report enhancer.RunReport, filename string) error {
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filename, append(out, '\n'), 0644)
}
