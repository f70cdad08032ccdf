package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"mailsift/internal/core/ruleset"
	"mailsift/internal/platform/config"
	"mailsift/internal/platform/logger"
	str "mailsift/internal/platform/strings"
	"mailsift/internal/platform/store"

	"mailsift/internal/services/insights/domain"
	"mailsift/internal/services/insights/repo"
	inssvc "mailsift/internal/services/insights/service"
	"mailsift/internal/services/mailbox"
)

func main() {
	var (
		input   = flag.String("input", "", "JSON export file or directory of message files")
		format  = flag.String("format", "json", "input format: json or dir")
		name    = flag.String("name", "", "name to search for mentions")
		maxBody = flag.Int("max-body", 0, "max body runes, 0 = CORE_INSIGHTS_MAX_BODY")
		workers = flag.Int("workers", 1, "concurrent message classification (>=1)")
		save    = flag.Bool("save", false, "persist the scan (requires SERVICE_PGSQL_DBURL)")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("-input is required")
	}

	root := config.New()
	insCfg := root.Prefix("CORE_INSIGHTS_")
	l := logger.Get()

	var (
		msgs  []domain.MessageInput
		skips []mailbox.Skip
		err   error
	)
	switch *format {
	case "json":
		msgs, skips, err = mailbox.ReadJSON(*input)
	case "dir":
		msgs, skips, err = mailbox.ReadDir(*input)
	default:
		log.Fatalf("unknown -format %q (want json or dir)", *format)
	}
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	for _, s := range skips {
		l.Warn().Str("ref", s.Ref).Str("reason", s.Reason).Msg("skipped unreadable message")
	}
	if len(msgs) == 0 {
		log.Fatal("no messages found in input")
	}

	pack, err := ruleset.Load()
	if err != nil {
		log.Fatalf("rule pack failed to compile: %v", err)
	}
	svc := inssvc.New(pack, inssvc.Config{
		MaxBodyRunes: insCfg.MayInt("MAX_BODY", 100000),
	})

	rep, err := svc.Analyze(context.Background(), domain.AnalyzeInput{
		Name:         *name,
		MaxBodyRunes: *maxBody,
		Workers:      *workers,
		Messages:     msgs,
	})
	if err != nil {
		log.Fatalf("analyze: %v", err)
	}

	printReport(os.Stdout, rep, *name)

	if *save {
		saveScan(root, l, *name, rep)
	}
}

func saveScan(root config.Conf, l *logger.Logger, name string, rep domain.Report) {
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	url := pgCfg.MayString("DBURL", "")
	if url == "" {
		log.Fatal("-save requires SERVICE_PGSQL_DBURL")
	}

	ctx := context.Background()
	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "mailsift-scan",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         url,
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 2)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		log.Fatalf("store.Open failed: %v", err)
	}
	defer func() {
		if err := st.Close(ctx); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	pgRepo := repo.NewPG(st.PG)
	if err := pgRepo.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema bootstrap failed: %v", err)
	}
	id, err := pgRepo.SaveScan(ctx, name, rep)
	if err != nil {
		log.Fatalf("save scan failed: %v", err)
	}
	fmt.Printf("\nSaved scan %s\n", id)
}

func printReport(w io.Writer, rep domain.Report, name string) {
	fmt.Fprintf(w, "Analyzed %d messages (%d skipped, %d truncated).\n", rep.Messages, rep.Skipped, rep.Truncated)

	fmt.Fprintln(w, "\n--- To-Do Items ---")
	printSection(w, rep.Todos)

	fmt.Fprintln(w, "\n--- Deadlines Mentioned ---")
	printSection(w, rep.Deadlines)

	if strings.TrimSpace(name) != "" {
		fmt.Fprintf(w, "\n--- Mentions of '%s' ---\n", name)
		printSection(w, rep.Mentions)
	}

	fmt.Fprintln(w, "\n--- End of Report ---")
}

func printSection(w io.Writer, ms []domain.Match) {
	if len(ms) == 0 {
		fmt.Fprintln(w, "None found.")
		return
	}
	for _, m := range ms {
		fmt.Fprintf(w, "- [From: %s...] %s\n", str.Clip(m.Subject, 30), m.Sentence)
	}
}
