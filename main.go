package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/insightdelivered/bank-txt-converter/internal/api"
	"github.com/insightdelivered/bank-txt-converter/internal/config"
	"github.com/insightdelivered/bank-txt-converter/internal/logger"
	"github.com/insightdelivered/bank-txt-converter/internal/models"
	"github.com/insightdelivered/bank-txt-converter/internal/parser"
	"github.com/insightdelivered/bank-txt-converter/internal/reader"
	"github.com/insightdelivered/bank-txt-converter/internal/writer"
)

const version = "3.6.0"

func main() {
	bankFlag := flag.String("bank", "", "Bank type: jiujiang, icbc, ccb, cmb, ... (auto-detected if omitted)")
	outputFlag := flag.String("output", "", "Output file path (defaults to input filename with the format extension)")
	formatFlag := flag.String("format", "", "Output format: csv, xlsx or json (defaults to xlsx)")
	headerFlag := flag.Bool("header", true, "Include metadata header rows in CSV output")
	serveFlag := flag.Bool("serve", false, "Run the HTTP conversion API instead of converting files")
	verboseFlag := flag.Bool("verbose", false, "Enable debug logging of the parse pipeline")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Bank Statement TXT Converter
by Insight Delivered

Converts Chinese bank statement TXT exports (pre-converted from PDF)
into structured xlsx/csv/json files with classified transactions.

Usage:
  bank-txt-converter [flags] <input.txt> [input2.txt ...]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Auto-detect bank and write an Excel report
  bank-txt-converter statement.txt

  # CSV output with explicit bank
  bank-txt-converter --bank=jiujiang --format=csv statement.txt

  # Run the HTTP API
  bank-txt-converter --serve
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("bank-txt-converter v%s\n", version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fatalf("Failed to load configuration: %v\n", err)
	}

	logLevel := cfg.LogLevel
	if *verboseFlag {
		logLevel = "debug"
	}
	log := logger.New(logLevel)

	if *serveFlag {
		app := api.NewApp(log)
		log.Info().Str("port", cfg.Port).Msg("starting conversion API")
		if err := app.Listen(":" + cfg.Port); err != nil {
			fatalf("Server failed: %v\n", err)
		}
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	// Validate bank flag if provided
	var bankType models.BankType
	if *bankFlag != "" {
		bankType = models.BankType(strings.ToLower(*bankFlag))
		if parser.ProfileFor(bankType) == nil {
			fatalf("Unknown bank type %q.\n", *bankFlag)
		}
	}

	format := cfg.OutputFormat
	if *formatFlag != "" {
		format = strings.ToLower(*formatFlag)
	}
	switch format {
	case "csv", "xlsx", "json":
	default:
		fatalf("Unknown output format %q. Use csv, xlsx or json.\n", format)
	}

	engine := parser.NewEngine(log, parser.WithDefaultCurrency(cfg.DefaultCurrency))

	for _, inputPath := range flag.Args() {
		if err := processFile(engine, inputPath, bankType, *outputFlag, format, *headerFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

func processFile(engine *parser.Engine, inputPath string, bankType models.BankType,
	outputPath, format string, includeHeader bool) error {

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	lines, encoding, err := reader.ReadLines(inputPath)
	if err != nil {
		return fmt.Errorf("reading input failed: %w", err)
	}
	fmt.Printf("  Read %d line(s) (%s)\n", len(lines), encoding)

	info := engine.ParseDocument(lines)

	// Explicit bank flag overrides the advisory detection result
	if bankType != "" {
		info.Bank = bankType
		info.Confidence = 1.0
	}
	fmt.Printf("  Bank: %s (confidence %.0f%%)\n", parser.DisplayName(info.Bank), info.Confidence*100)
	fmt.Printf("  Found %d transaction(s)\n", len(info.Transactions))

	if len(info.Transactions) == 0 {
		fmt.Println("  Warning: No transactions found. The TXT layout may not match expected patterns.")
		return fmt.Errorf("no transactions found in %s", inputPath)
	}
	if info.UsedFallback {
		fmt.Println("  Note: transactions recovered by whole-document rescan.")
	}

	outPath := outputPath
	if outPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outPath = base + "." + format
	}

	switch format {
	case "csv":
		w := &writer.CSVWriter{IncludeHeader: includeHeader}
		if err := w.WriteToFile(outPath, info); err != nil {
			return fmt.Errorf("CSV write failed: %w", err)
		}
	case "xlsx":
		w := &writer.ExcelWriter{BankName: parser.DisplayName(info.Bank)}
		if err := w.WriteToFile(outPath, info); err != nil {
			return fmt.Errorf("Excel write failed: %w", err)
		}
	case "json":
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("JSON encoding failed: %w", err)
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("JSON write failed: %w", err)
		}
	}

	fmt.Printf("  Output: %s\n", outPath)

	summary := models.Summarize(info.Transactions)
	fmt.Printf("  Income: %d txn(s), %s  Expense: %d txn(s), %s  Net: %s\n",
		summary.IncomeCount, summary.TotalIncome.StringFixed(2),
		summary.ExpenseCount, summary.TotalExpense.StringFixed(2),
		summary.NetFlow.StringFixed(2))

	fmt.Println("  Done.")
	return nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
