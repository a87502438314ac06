// Command renamer runs the renaming pipeline once against a bulk export
// on disk: aggregate, rank, and write the bulk update workbook plus the
// nomenclature guide.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ignite/ads-renamer/internal/bulkfile"
	"github.com/ignite/ads-renamer/internal/engine"
	"github.com/ignite/ads-renamer/internal/naming"
	"github.com/ignite/ads-renamer/internal/report"
)

func main() {
	var (
		input      = flag.String("input", "", "path to the Sponsored Products bulk export (.xlsx)")
		elements   = flag.String("elements", "prefix,targetingType,matchTypes,bestAsin", "comma-separated naming elements")
		prefix     = flag.String("prefix", "SP", "literal prefix text")
		separator  = flag.String("separator", "-", "separator between all elements")
		shortNames = flag.String("shortnames", "", "optional (ASIN, ShortName) mapping workbook")
		outBulk    = flag.String("out-bulk", "amazon_ads_bulk_update.xlsx", "bulk update output path")
		outGuide   = flag.String("out-guide", "naming_scheme_guide.txt", "nomenclature guide output path")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	parsed, err := naming.ParseElements(strings.Split(*elements, ","))
	if err != nil {
		fatalf("invalid -elements: %v", err)
	}
	scheme := naming.Scheme{Elements: parsed, Prefix: *prefix}
	if *separator != naming.DefaultSeparator {
		scheme.Separators = make(map[int]string, len(parsed))
		for i := range parsed {
			scheme.Separators[i] = *separator
		}
	}

	f, err := os.Open(*input)
	if err != nil {
		fatalf("open input: %v", err)
	}
	sheet, err := bulkfile.ReadWorkbook(f)
	f.Close()
	if err != nil {
		fatalf("read bulk file: %v", err)
	}
	fmt.Printf("Found sheet: %s (%d rows)\n", sheet.Name, len(sheet.Rows))

	res := engine.Aggregate(sheet.Rows)
	engine.Rank(res)
	fmt.Printf("Processed %d campaigns\n", len(res.Order))

	var shorts naming.ShortNames
	if *shortNames != "" {
		sf, err := os.Open(*shortNames)
		if err != nil {
			fatalf("open short-name mapping: %v", err)
		}
		rows, err := bulkfile.ReadMappingRows(sf)
		sf.Close()
		if err != nil {
			fatalf("read short-name mapping: %v", err)
		}
		mapping, issues := naming.BuildShortNames(rows, res.AsinSet())
		if len(issues) > 0 {
			fmt.Fprintln(os.Stderr, "short-name mapping rejected:")
			for _, issue := range issues {
				fmt.Fprintf(os.Stderr, "  - %s\n", issue)
			}
			os.Exit(1)
		}
		shorts = mapping
		fmt.Printf("Short-name mapping accepted (%d entries)\n", len(mapping))
	}

	renames := report.GenerateNames(res, scheme, shorts)

	if err := bulkfile.SaveUpdateFile(report.BuildUpdateRows(renames), *outBulk); err != nil {
		fatalf("write bulk update file: %v", err)
	}
	fmt.Printf("Wrote %s\n", *outBulk)

	guide, err := report.NomenclatureGuide(res, scheme, renames, time.Now())
	if err != nil {
		fatalf("render nomenclature guide: %v", err)
	}
	if err := os.WriteFile(*outGuide, []byte(guide), 0644); err != nil {
		fatalf("write nomenclature guide: %v", err)
	}
	fmt.Printf("Wrote %s\n", *outGuide)

	if len(res.Diagnostics) > 0 {
		fmt.Println("Diagnostics:")
		for _, d := range res.Diagnostics {
			fmt.Printf("  %s\n", d)
		}
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "renamer: "+format+"\n", args...)
	os.Exit(1)
}
