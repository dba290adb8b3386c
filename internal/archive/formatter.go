package archive

import (
	"fmt"
	"strings"
	"time"
)

// filterHintThreshold is the merged item count above which the report
// suggests a follow-up filtered query.
const filterHintThreshold = 10

// Report is the rendered view of an aggregate result. Given the same
// aggregate result and elapsed duration it is fully deterministic.
type Report struct {
	Query            string           `json:"query"`
	TotalResults     int              `json:"total_results"`
	ProcessingTimeMs int64            `json:"processing_time_ms"`
	Categories       []CategoryReport `json:"categories"`
	Hint             string           `json:"hint,omitempty"`
	MediaGroups      []MediaGroup     `json:"media_groups,omitempty"`
	Warnings         []string         `json:"warnings,omitempty"`
}

// CategoryReport lists the normalized items of one non-empty category
type CategoryReport struct {
	Name  string       `json:"name"`
	Total int          `json:"total"`
	Items []ReportItem `json:"items"`
}

// ReportItem is a single listed result with its links and metadata
type ReportItem struct {
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	RecordURL    string `json:"record_url"`
	SourceURL    string `json:"source_url,omitempty"`
	Creator      string `json:"creator,omitempty"`
	Date         string `json:"date,omitempty"`
	Copyright    string `json:"copyright,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// FormatReport renders an aggregate result into the final report structure.
// The elapsed duration is supplied by the caller so the report itself stays
// free of time-dependent content.
func FormatReport(query string, result *AggregateResult, elapsed time.Duration) *Report {
	report := &Report{
		Query:            query,
		TotalResults:     result.TotalItems(),
		ProcessingTimeMs: elapsed.Milliseconds(),
		Warnings:         result.Errors,
	}

	for _, name := range result.CategoryOrder {
		bucket := result.Buckets[name]
		if bucket == nil || bucket.ReportedTotal <= 0 {
			continue
		}

		category := CategoryReport{
			Name:  name,
			Total: bucket.ReportedTotal,
			Items: make([]ReportItem, 0, len(bucket.Items)),
		}
		for i := range bucket.Items {
			category.Items = append(category.Items, reportItem(&bucket.Items[i]))
		}
		report.Categories = append(report.Categories, category)
	}

	if report.TotalResults > filterHintThreshold {
		report.Hint = filterHint(result)
	}

	report.MediaGroups = GroupMedia(result)

	return report
}

func reportItem(rec *NormalizedRecord) ReportItem {
	item := ReportItem{
		Title:       rec.Title,
		Description: rec.Description,
		RecordURL:   rec.URL,
		SourceURL:   rec.WebpageURL,
		Creator:     rec.Creator,
		Date:        rec.Date,
	}
	if rec.Media != nil {
		item.Copyright = rec.Media.CopyrightHolder
		item.ImageURL = rec.Media.ImageURL
		item.ThumbnailURL = rec.Media.ThumbnailURL
	}
	return item
}

// filterHint lists the non-empty categories and their counts so a caller
// can narrow down with a filtered follow-up query.
func filterHint(result *AggregateResult) string {
	var parts []string
	for _, name := range result.CategoryOrder {
		if bucket := result.Buckets[name]; bucket != nil && bucket.ReportedTotal > 0 {
			parts = append(parts, fmt.Sprintf("%s (%d)", name, bucket.ReportedTotal))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return fmt.Sprintf("Large result set; narrow down with a type filter: %s", strings.Join(parts, ", "))
}

// Text renders the report as a human-readable listing
func (r *Report) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Search results for %q: %d results (%d ms)\n", r.Query, r.TotalResults, r.ProcessingTimeMs)

	for _, category := range r.Categories {
		fmt.Fprintf(&b, "\n== %s (%d) ==\n", category.Name, category.Total)
		for i, item := range category.Items {
			fmt.Fprintf(&b, "%d. %s\n", i+1, item.Title)
			if item.Description != "" {
				fmt.Fprintf(&b, "   %s\n", item.Description)
			}
			fmt.Fprintf(&b, "   Record: %s\n", item.RecordURL)
			if item.SourceURL != "" {
				fmt.Fprintf(&b, "   Source: %s\n", item.SourceURL)
			}
			if item.Creator != "" {
				fmt.Fprintf(&b, "   Creator: %s\n", item.Creator)
			}
			if item.Date != "" {
				fmt.Fprintf(&b, "   Date: %s\n", item.Date)
			}
			if item.Copyright != "" {
				fmt.Fprintf(&b, "   Copyright: %s\n", item.Copyright)
			}
			if item.ImageURL != "" {
				fmt.Fprintf(&b, "   Image: %s\n", item.ImageURL)
			}
		}
	}

	if r.Hint != "" {
		fmt.Fprintf(&b, "\n%s\n", r.Hint)
	}

	for _, warning := range r.Warnings {
		fmt.Fprintf(&b, "\nWarning: %s\n", warning)
	}

	return b.String()
}
