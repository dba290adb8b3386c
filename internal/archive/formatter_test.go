package archive

import (
	"strings"
	"testing"
	"time"
)

func sampleResult() *AggregateResult {
	result := newAggregateResult("amsterdam", "")
	result.Buckets["Person"].ReportedTotal = 40
	result.Buckets["Person"].Items = []NormalizedRecord{
		{Title: "Jan Jansen", Type: "Person", URL: RecordPrefix + "p1", Date: "1920"},
	}
	result.Buckets["Photograph"].ReportedTotal = 25
	result.Buckets["Photograph"].Items = []NormalizedRecord{
		{
			Title: "Bevrijding", Type: "Photograph", URL: RecordPrefix + "f1",
			Creator: "NIMH",
			Media: &MediaDetails{
				ImageURL:        "https://img.example/f1.jpg",
				CopyrightHolder: "NIMH",
			},
		},
	}
	return result
}

func TestFormatReportSkipsEmptyCategories(t *testing.T) {
	report := FormatReport("amsterdam", sampleResult(), 120*time.Millisecond)

	if len(report.Categories) != 2 {
		t.Fatalf("len(Categories) = %d, want only non-empty ones", len(report.Categories))
	}
	if report.Categories[0].Name != "Person" || report.Categories[1].Name != "Photograph" {
		t.Errorf("category order = %s, %s", report.Categories[0].Name, report.Categories[1].Name)
	}
	if report.TotalResults != 65 {
		t.Errorf("TotalResults = %d, want 65", report.TotalResults)
	}
	if report.ProcessingTimeMs != 120 {
		t.Errorf("ProcessingTimeMs = %d, want 120", report.ProcessingTimeMs)
	}
}

func TestFormatReportHintThreshold(t *testing.T) {
	report := FormatReport("amsterdam", sampleResult(), 0)
	if report.Hint == "" {
		t.Fatal("expected a filter hint above the threshold")
	}
	if !strings.Contains(report.Hint, "Person (40)") || !strings.Contains(report.Hint, "Photograph (25)") {
		t.Errorf("Hint = %q, want category counts listed", report.Hint)
	}

	small := newAggregateResult("x", "")
	small.Buckets["Person"].ReportedTotal = 2
	small.Buckets["Person"].Items = []NormalizedRecord{{Title: "a"}}
	if got := FormatReport("x", small, 0); got.Hint != "" {
		t.Errorf("Hint = %q, want none for small result sets", got.Hint)
	}
}

func TestFormatReportCarriesWarnings(t *testing.T) {
	result := sampleResult()
	result.Errors = []string{"Place search failed: backend hiccup"}
	result.PartialResults = true

	report := FormatReport("amsterdam", result, 0)

	if len(report.Warnings) != 1 {
		t.Fatalf("Warnings = %v", report.Warnings)
	}
}

func TestReportItemMediaFields(t *testing.T) {
	report := FormatReport("amsterdam", sampleResult(), 0)

	var photo *ReportItem
	for i := range report.Categories {
		if report.Categories[i].Name == "Photograph" {
			photo = &report.Categories[i].Items[0]
		}
	}
	if photo == nil {
		t.Fatal("Photograph item missing")
	}
	if photo.ImageURL != "https://img.example/f1.jpg" {
		t.Errorf("ImageURL = %q", photo.ImageURL)
	}
	if photo.Copyright != "NIMH" {
		t.Errorf("Copyright = %q", photo.Copyright)
	}
}

func TestReportTextRendering(t *testing.T) {
	result := sampleResult()
	result.Errors = []string{"Place search failed"}

	text := FormatReport("amsterdam", result, 50*time.Millisecond).Text()

	for _, want := range []string{
		`Search results for "amsterdam": 65 results (50 ms)`,
		"== Person (40) ==",
		"1. Jan Jansen",
		"Record: " + RecordPrefix + "p1",
		"Image: https://img.example/f1.jpg",
		"Warning: Place search failed",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Text() missing %q in:\n%s", want, text)
		}
	}
}

func TestFormatReportDeterministic(t *testing.T) {
	first := FormatReport("amsterdam", sampleResult(), 10*time.Millisecond)
	second := FormatReport("amsterdam", sampleResult(), 10*time.Millisecond)

	if first.Text() != second.Text() {
		t.Error("identical inputs must render identical reports")
	}
}
