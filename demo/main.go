package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/magrebiali/FixMySheet-Backend/demo/client"
	"github.com/magrebiali/FixMySheet-Backend/demo/tui"
)

func main() {
	// Load environment
	_ = godotenv.Load()

	// Parse command-line flags
	serviceURL := flag.String("url", client.GetEnvOrDefault("FIXMYSHEET_URL", "http://localhost:8080"), "FixMySheet service URL")
	fileA := flag.String("file", "", "Input file (.csv or .xlsx)")
	fileB := flag.String("file-b", "", "Second input file; enables reconcile mode")
	matchColumn := flag.String("match-column", "", "Shared key column for reconcile mode")
	keyColumn := flag.String("key-column", "", "Key column for column-mode dedupe; empty means row mode")
	ignoreColumns := flag.String("ignore-columns", "", "Comma-separated columns to ignore in row mode")
	keepPolicy := flag.String("keep-policy", "mark_all", "Keep policy: mark_all, keep_first, keep_last")
	ignoreCase := flag.Bool("ignore-case", false, "Case-insensitive comparison")
	ignoreWhitespace := flag.Bool("ignore-whitespace", false, "Whitespace-insensitive comparison")
	outPath := flag.String("out", "result.xlsx", "Where to save the returned workbook")
	flag.Parse()

	if *fileA == "" {
		fmt.Println("Usage: demo -file data.csv [-file-b other.csv -match-column id] [flags]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	job := buildJob(*fileA, *fileB, *matchColumn, *keyColumn, *ignoreColumns, *keepPolicy, *ignoreCase, *ignoreWhitespace, *outPath)

	// Create TUI model
	m := tui.NewModel(client.NewClient(*serviceURL), job)

	// Create the tea program
	program := tea.NewProgram(m)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	// Run the program
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

func buildJob(fileA, fileB, matchColumn, keyColumn, ignoreColumns, keepPolicy string, ignoreCase, ignoreWhitespace bool, outPath string) tui.Job {
	if fileB != "" {
		return tui.Job{Reconcile: &client.ReconcileRequest{
			FileA:       fileA,
			FileB:       fileB,
			MatchColumn: matchColumn,
			OutPath:     outPath,
		}}
	}

	mode := "row"
	if keyColumn != "" {
		mode = "column"
	}
	return tui.Job{Dedupe: &client.DedupeRequest{
		File:             fileA,
		Mode:             mode,
		KeyColumn:        keyColumn,
		IgnoreColumns:    ignoreColumns,
		KeepPolicy:       keepPolicy,
		IgnoreCase:       ignoreCase,
		IgnoreWhitespace: ignoreWhitespace,
		OutPath:          outPath,
	}}
}
