package archive

import (
	"encoding/json"
	"testing"

	"github.com/r-huijts/oorlogsbronnen-mcp/internal/spinque"
)

// attrBag decodes a JSON object into an attribute bag.
func attrBag(t *testing.T, payload string) spinque.Attributes {
	t.Helper()
	var attrs spinque.Attributes
	if err := json.Unmarshal([]byte(payload), &attrs); err != nil {
		t.Fatalf("build attribute bag: %v", err)
	}
	return attrs
}

func TestResolveImageURLPreferenceOrder(t *testing.T) {
	testcases := []struct {
		name  string
		attrs string
		want  string
	}{
		{
			name: "direct image wins",
			attrs: `{
				"http://schema.org/image": "https://img.example/full.jpg",
				"http://schema.org/contentUrl": "https://img.example/content.jpg",
				"http://schema.org/thumbnail": "https://img.example/thumb.jpg"
			}`,
			want: "https://img.example/full.jpg",
		},
		{
			name: "contentUrl before thumbnail",
			attrs: `{
				"http://schema.org/contentUrl": "https://img.example/content.jpg",
				"http://schema.org/thumbnail": "https://img.example/thumb.jpg"
			}`,
			want: "https://img.example/content.jpg",
		},
		{
			name: "thumbnail before provider reconstruction",
			attrs: `{
				"http://schema.org/thumbnail": "https://img.example/thumb.jpg",
				"http://purl.org/dc/elements/1.1/source": "https://beeldbankwo2.nl/nl/beelden/detail/r1/media/5f2c296b-1b4c-4534-8681-b0c222dbf411"
			}`,
			want: "https://img.example/thumb.jpg",
		},
		{
			name:  "nothing usable",
			attrs: `{"http://schema.org/name": "foto"}`,
			want:  "",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveImageURL(attrBag(t, tc.attrs)); got != tc.want {
				t.Errorf("ResolveImageURL() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestResolveImageURLProviderRules(t *testing.T) {
	testcases := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "beeldbankwo2 uuid",
			source: "https://beeldbankwo2.nl/nl/beelden/detail/r1/media/5f2c296b-1b4c-4534-8681-b0c222dbf411",
			want:   "https://images.memorix.nl/nimh/thumb/500x500/5f2c296b-1b4c-4534-8681-b0c222dbf411.jpg",
		},
		{
			name:   "beeldbankwo2 non-uuid id passes through",
			source: "https://beeldbankwo2.nl/nl/beelden/detail/r1/media/abc-123",
			want:   "https://images.memorix.nl/nimh/thumb/500x500/abc-123.jpg",
		},
		{
			name:   "cultureelerfgoed uses rce host",
			source: "https://beeldbank.cultureelerfgoed.nl/detail/x/media/5f2c296b-1b4c-4534-8681-b0c222dbf411",
			want:   "https://images.memorix.nl/rce/thumb/500x500/5f2c296b-1b4c-4534-8681-b0c222dbf411.jpg",
		},
		{
			name:   "collectiegelderland has no reconstruction",
			source: "https://www.collectiegelderland.nl/organisaties/x/voorwerp-123/media/abc",
			want:   "",
		},
		{
			name:   "matched provider without media segment",
			source: "https://beeldbankwo2.nl/nl/beelden/detail/r1",
			want:   "",
		},
		{
			name:   "unknown provider",
			source: "https://archief.example.nl/record/1/media/abc-123",
			want:   "",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			attrs := attrBag(t, `{"http://purl.org/dc/elements/1.1/source": "`+tc.source+`"}`)
			if got := ResolveImageURL(attrs); got != tc.want {
				t.Errorf("ResolveImageURL() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExtractMediaIDNormalizesUUIDs(t *testing.T) {
	got := extractMediaID("https://beeldbankwo2.nl/x/media/5F2C296B-1B4C-4534-8681-B0C222DBF411")
	if got != "5f2c296b-1b4c-4534-8681-b0c222dbf411" {
		t.Errorf("extractMediaID() = %q, want canonical lowercase form", got)
	}

	if got := extractMediaID("https://beeldbankwo2.nl/x/media/abc-123"); got != "abc-123" {
		t.Errorf("extractMediaID() = %q, want abc-123 passed through", got)
	}

	if got := extractMediaID("https://beeldbankwo2.nl/x/beelden"); got != "" {
		t.Errorf("extractMediaID() = %q, want empty without media segment", got)
	}
}
