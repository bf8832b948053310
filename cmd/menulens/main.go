package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"menulens/internal/analysis"
	"menulens/internal/insight"
	"menulens/internal/llm"
	"menulens/internal/review"
	"menulens/internal/util/jsonutil"
)

func main() {
	reviewsPath := flag.String("reviews", "", "path to a file with one review per line")
	restaurant := flag.String("restaurant", "the restaurant", "restaurant name")
	model := flag.String("model", "gemini-2.5-flash", "Gemini model id")
	batchSize := flag.Int("batch-size", 20, "reviews per LLM call")
	maxItems := flag.Int("max-items", 50, "max menu items/drinks in output")
	maxAspects := flag.Int("max-aspects", 12, "max aspects in output")
	mode := flag.String("mode", "unified", "extraction mode: unified, menu, aspects")
	insightsRole := flag.String("insights", "", "also generate insights for role: chef, manager")
	outDir := flag.String("out", "out", "output directory")
	flag.Parse()
	if *reviewsPath == "" {
		log.Fatal("--reviews is required")
	}
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal(err)
	}

	_ = godotenv.Load()
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY is not set")
	}

	raw, err := readLines(*reviewsPath)
	if err != nil {
		log.Fatal(err)
	}
	reviews := review.Clean(raw)
	log.Printf("loaded %d reviews (%d after cleaning) from %s", len(raw), len(reviews), *reviewsPath)

	ctx := context.Background()
	gemini, err := llm.NewGeminiClient(ctx, apiKey, *model)
	if err != nil {
		log.Fatal(err)
	}
	cli := llm.Wrap(gemini,
		llm.Retry(3, 2*time.Second),
		llm.RateLimitFromEnv("LLM", "GEMINI"),
	)
	defer cli.Close()

	m, ok := parseMode(*mode)
	if !ok {
		log.Fatalf("unknown mode %q", *mode)
	}

	az := &analysis.Analyzer{
		LLM:        cli,
		Mode:       m,
		BatchSize:  *batchSize,
		MaxItems:   *maxItems,
		MaxAspects: *maxAspects,
	}
	res := az.Run(ctx, *restaurant, reviews)
	writeJSON(*outDir, "result.json", res)

	if *insightsRole != "" {
		role := insight.Role(strings.ToLower(*insightsRole))
		gen := &insight.Generator{LLM: cli}
		ins, err := gen.Generate(ctx, res, role, *restaurant)
		if err != nil {
			log.Fatalf("insights: %v", err)
		}
		writeJSON(*outDir, "insights_"+string(role)+".json", ins)
	}

	log.Printf("analysis completed, output in %s", *outDir)
}

func parseMode(s string) (analysis.Mode, bool) {
	switch s {
	case "unified":
		return analysis.ModeUnified, true
	case "menu":
		return analysis.ModeMenu, true
	case "aspects":
		return analysis.ModeAspects, true
	default:
		return 0, false
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func writeJSON(dir, name string, v any) {
	b, err := jsonutil.MarshalNoEscapeIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("marshal %s: %v", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), b, 0o644); err != nil {
		log.Fatalf("write %s: %v", name, err)
	}
}
