package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	appconfig "github.com/r-huijts/oorlogsbronnen-mcp/internal/config"
	"github.com/r-huijts/oorlogsbronnen-mcp/internal/archive"
	"github.com/r-huijts/oorlogsbronnen-mcp/internal/metrics"
	"github.com/r-huijts/oorlogsbronnen-mcp/internal/spinque"
)

var (
	searchQuery    string
	searchCategory string
	searchCount    int
	searchJSON     bool
	searchTimeout  int
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the Oorlogsbronnen archive network",
	Long: `
Search WW2 archives across the Netwerk Oorlogsbronnen collections.

Without a category the query fans out over all content categories
(Person, Photograph, Article, VideoObject, Thing, Place, CreativeWork)
and results are distributed according to how often each category
appears in a preview sample. With --type only that category is queried.

Examples:
  # Search all categories
  oorlogsbronnen search -q "amsterdam"

  # Only people, five results
  oorlogsbronnen search -q "roermond" --type Person --count 5

  # Machine-readable output
  oorlogsbronnen search -q "market garden" --json
`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Text query to search for (required)")
	searchCmd.Flags().StringVarP(&searchCategory, "type", "t", "", fmt.Sprintf("Restrict to one category: %s or Book", strings.Join(archive.CategoryNames(), ", ")))
	searchCmd.Flags().IntVarP(&searchCount, "count", "c", 10, "Number of results to return (1-100)")
	searchCmd.Flags().BoolVarP(&searchJSON, "json", "j", false, "Output the report as JSON")
	searchCmd.Flags().IntVar(&searchTimeout, "timeout", 60, "Request timeout in seconds")

	_ = searchCmd.MarkFlagRequired("query")
}

func runSearch(cmd *cobra.Command, args []string) error {
	logger := log.New(os.Stderr, "[Search] ", log.LstdFlags)

	cfg, err := appconfig.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := metrics.Init(); err != nil {
		logger.Printf("metrics disabled: %v", err)
	}

	spinqueCfg, err := spinque.NewConfigFromTypes(cfg)
	if err != nil {
		return fmt.Errorf("failed to create Spinque config: %w", err)
	}

	client, err := spinque.NewClient(spinqueCfg)
	if err != nil {
		return fmt.Errorf("failed to create Spinque client: %w", err)
	}

	aggregator := archive.NewAggregator(client,
		archive.WithPreviewSize(cfg.PreviewSampleSize),
		archive.WithMaxCount(cfg.MaxResultCount),
		archive.WithLogger(logger),
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(searchTimeout)*time.Second)
	defer cancel()

	start := time.Now()
	result, err := aggregator.RunSearch(ctx, searchQuery, searchCategory, searchCount)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	metrics.RecordInvocation(metrics.ModeSearch)

	report := archive.FormatReport(searchQuery, result, time.Since(start))

	if searchJSON {
		encoded, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Println(string(encoded))
		return nil
	}

	fmt.Print(report.Text())

	if len(result.Errors) > 0 {
		logger.Printf("partial results: %d category searches failed", len(result.Errors))
		for _, msg := range result.Errors {
			logger.Printf("  %s", msg)
		}
	}

	return nil
}
