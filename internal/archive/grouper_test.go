package archive

import (
	"testing"
)

func TestGroupMediaByCreator(t *testing.T) {
	result := newAggregateResult("test", "")
	result.Buckets["Photograph"].Items = []NormalizedRecord{
		{Title: "Foto 1", Type: "Photograph", Creator: "NIMH"},
		{Title: "Foto 2", Type: "Photograph", Creator: "NIOD"},
	}
	result.Buckets["Article"].Items = []NormalizedRecord{
		{Title: "Artikel", Type: "Article", Creator: "NIMH"},
	}

	groups := GroupMedia(result)

	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}

	nimh := groups[0]
	if nimh.GroupKey != "NIMH" {
		t.Errorf("GroupKey = %q, want NIMH first", nimh.GroupKey)
	}
	if len(nimh.PrimaryItems) != 1 || nimh.PrimaryItems[0].Title != "Foto 1" {
		t.Errorf("PrimaryItems = %+v", nimh.PrimaryItems)
	}
	if len(nimh.RelatedItems) != 1 || nimh.RelatedItems[0].Title != "Artikel" {
		t.Errorf("RelatedItems = %+v", nimh.RelatedItems)
	}
}

func TestGroupMediaFallbackKeys(t *testing.T) {
	result := newAggregateResult("test", "")
	result.Buckets["Photograph"].Items = []NormalizedRecord{
		{Title: "a", Type: "Photograph", Media: &MediaDetails{Source: SourceRef{Name: "Beeldbank WO2"}}},
		{Title: "b", Type: "Photograph"},
	}

	groups := GroupMedia(result)

	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	if groups[0].GroupKey != "Beeldbank WO2" {
		t.Errorf("GroupKey = %q, want source name fallback", groups[0].GroupKey)
	}
	if groups[1].GroupKey != "Unknown" {
		t.Errorf("GroupKey = %q, want Unknown fallback", groups[1].GroupKey)
	}
}

func TestGroupMediaDeterministicOrder(t *testing.T) {
	build := func() *AggregateResult {
		result := newAggregateResult("test", "")
		result.Buckets["Person"].Items = []NormalizedRecord{
			{Title: "p", Type: "Person", Creator: "Archief B"},
		}
		result.Buckets["VideoObject"].Items = []NormalizedRecord{
			{Title: "v", Type: "VideoObject", Creator: "Archief A"},
		}
		return result
	}

	first := GroupMedia(build())
	for i := 0; i < 10; i++ {
		again := GroupMedia(build())
		if len(again) != len(first) {
			t.Fatalf("group count changed between runs")
		}
		for j := range first {
			if again[j].GroupKey != first[j].GroupKey {
				t.Fatalf("group order changed: %q vs %q", again[j].GroupKey, first[j].GroupKey)
			}
		}
	}

	// Person precedes VideoObject in the category ordering.
	if first[0].GroupKey != "Archief B" {
		t.Errorf("GroupKey = %q, want first-appearance order", first[0].GroupKey)
	}

	// Videos are primary media, people are related material.
	if len(first[1].PrimaryItems) != 1 {
		t.Errorf("VideoObject should be a primary item")
	}
	if len(first[0].RelatedItems) != 1 {
		t.Errorf("Person should be related material")
	}
}
