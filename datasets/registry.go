package datasets

import "github.com/regbench/regbench/tab"

type task struct {
	defaults Descriptor
	entries  map[string]Descriptor
}

// e2gMapping is shared by the ENCODE-rE2G exports, which all use the same
// column layout.
func e2gMapping() map[string]string {
	return map[string]string{
		"chr":                 "chrom",
		"start":               "chromStart",
		"end":                 "chromEnd",
		"gene_name":           "measuredGeneSymbol",
		"gene_tss":            "startTSS",
		"ABC Score":           "ABCScoreDNaseOnlyAvgHicTrack2",
		"Significant":         "Significant",
		"hic_contact":         "3DContactAvgHicTrack2",
		"hic_contact_squared": "3DContactAvgHicTrack2_squared",
		"activity_enh":        "activityEnhDNaseOnlyAvgHicTrack2_squared",
		"activity_prom":       "activityPromDNaseOnlyAvgHicTrack2",
	}
}

var registry = map[string]task{
	"enhancer": {
		defaults: Descriptor{
			RequiredColumns: map[string][]string{
				"enhancer_loc": {"chr", "start", "end"},
				"gene_info":    {"gene_name", "gene_tss"},
				"label":        {"Significant"},
			},
			DistanceThreshold: 100000000,
			OutputColumns: []string{
				"chr", "start", "end",
				"gene_name", "gene_tss",
				"distance",
				"ABC Score",
				"labels",
			},
			PositiveLabel: "1",
		},
		entries: map[string]Descriptor{
			"ABC_fulco": {
				Title:         "Fulco Enhancer Dataset",
				Description:   "Fulco K562 enhancer dataset",
				GenomeVersion: "hg19",
				DataURL:       "https://raw.githubusercontent.com/yueyueliu/Benchmark_Genomics/main/data/demo_online/enhancer/ABC_Fulco.xlsx",
				FileFormat:    tab.FormatXLSX,
				LabelColumn:   "Significant",
				ColumnMapping: map[string]string{
					"chr":                     "chr",
					"start":                   "start",
					"end":                     "end",
					"gene_name":               "Gene",
					"gene_tss":                "Gene TSS",
					"Normalized HiC Contacts": "Normalized HiC Contacts",
					"H3K27ac (RPM)":           "H3K27ac (RPM)",
					"Activity":                "Activity",
					"ABC Score":               "ABC Score",
					"Significant":             "Significant",
				},
				AdditionalColumns: []string{},
			},
			"Merged": {
				Title:             "E2G Enhancer Dataset",
				Description:       "E2G K562 enhancer dataset",
				GenomeVersion:     "hg38",
				DataURL:           "https://raw.githubusercontent.com/yueyueliu/Benchmark_Genomics/main/data/demo_online/enhancer/Merged.tsv",
				FileFormat:        tab.FormatTSV,
				LabelColumn:       "Regulated",
				ColumnMapping:     e2gMapping(),
				AdditionalColumns: []string{"EffectSize"},
			},
			"Fulco": {
				Title:             "Fulco K562 Enhancer Dataset",
				Description:       "Fulco K562 enhancer dataset in TSV format",
				GenomeVersion:     "hg38",
				DataURL:           "https://raw.githubusercontent.com/yueyueliu/Benchmark_Genomics/main/data/demo_online/enhancer/Fulco.tsv",
				FileFormat:        tab.FormatTSV,
				LabelColumn:       "Regulated",
				ColumnMapping:     e2gMapping(),
				AdditionalColumns: []string{"EffectSize"},
			},
			"Gasperini": {
				Title:             "Gasperini K562 Enhancer Dataset",
				Description:       "Gasperini K562 enhancer dataset",
				GenomeVersion:     "hg38",
				DataURL:           "https://raw.githubusercontent.com/yueyueliu/Benchmark_Genomics/main/data/demo_online/enhancer/Gasperini.tsv",
				FileFormat:        tab.FormatTSV,
				LabelColumn:       "Regulated",
				ColumnMapping:     e2gMapping(),
				AdditionalColumns: []string{"EffectSize"},
			},
			"Schraivogel": {
				Title:             "Schraivogel K562 Enhancer Dataset",
				Description:       "Schraivogel K562 enhancer dataset",
				GenomeVersion:     "hg38",
				DataURL:           "https://raw.githubusercontent.com/yueyueliu/Benchmark_Genomics/main/data/demo_online/enhancer/Schraivogel.tsv",
				FileFormat:        tab.FormatTSV,
				LabelColumn:       "Regulated",
				ColumnMapping:     e2gMapping(),
				AdditionalColumns: []string{"EffectSize"},
			},
		},
	},
	"eqtl": {
		defaults: Descriptor{
			RequiredColumns: map[string][]string{
				"gene_info":    {"phenotype_id", "gene_name", "biotype"},
				"variant_info": {"variant_id", "pip", "af"},
				"effect_info":  {"afc", "afc_se"},
			},
			OutputColumns: []string{
				"phenotype_id", "gene_name", "biotype",
				"variant_id", "pip", "af",
				"afc", "afc_se",
				"labels",
			},
			PositiveLabel: "1",
		},
		entries: map[string]Descriptor{
			"Adipose_Subcutaneous": {
				Title:         "Adipose Subcutaneous eQTL Dataset",
				Description:   "eQTL data from GTEx v10 for Adipose Subcutaneous tissue",
				GenomeVersion: "hg38",
				DataURL:       "https://raw.githubusercontent.com/yueyueliu/Benchmark_Genomics/main/data/demo_online/eqtl/Adipose_Subcutaneous.v10.eQTLs.SuSiE_summary.parquet",
				FileFormat:    tab.Format("parquet"),
				ColumnMapping: map[string]string{
					"phenotype_id": "phenotype_id",
					"gene_name":    "gene_name",
					"biotype":      "biotype",
					"variant_id":   "variant_id",
					"pip":          "pip",
					"af":           "af",
					"cs_id":        "cs_id",
					"cs_size":      "cs_size",
					"afc":          "afc",
					"afc_se":       "afc_se",
				},
				AdditionalColumns: []string{},
			},
		},
	},
}
