package archive

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/r-huijts/oorlogsbronnen-mcp/internal/spinque"
)

// mediaPathPattern extracts the media identifier from image-bank detail URLs
// such as .../detail/<record-id>/media/<media-id>.
var mediaPathPattern = regexp.MustCompile(`/media/([0-9a-fA-F-]+)`)

// providerRule describes how to recover an image URL for one archive
// provider. Rules are evaluated in order against the record's source URL;
// the first matching rule wins. A nil buildURL means the provider exposes no
// reconstructable image URL and only the thumbnail attribute can be used.
type providerRule struct {
	domain   string
	buildURL func(mediaID string) string
}

var providerRules = []providerRule{
	{
		domain: "beeldbankwo2.nl",
		buildURL: func(mediaID string) string {
			return fmt.Sprintf("https://images.memorix.nl/nimh/thumb/500x500/%s.jpg", mediaID)
		},
	},
	{
		domain: "beeldbank.cultureelerfgoed.nl",
		buildURL: func(mediaID string) string {
			return fmt.Sprintf("https://images.memorix.nl/rce/thumb/500x500/%s.jpg", mediaID)
		},
	},
	{
		domain: "collectiegelderland.nl",
	},
}

// ResolveImageURL finds the best available image URL for a record, or ""
// when nothing usable exists. Preference order: direct image attribute,
// content URL, thumbnail, then provider-specific reconstruction from the
// source URL. An empty result means "no image available", not an error.
func ResolveImageURL(attrs spinque.Attributes) string {
	if u := attrs.FirstOf(attrImage, attrContentURL); u != "" {
		return u
	}

	if u := attrs.First(attrThumbnail); u != "" {
		return u
	}

	source := attrs.First(attrSource)
	if source == "" {
		return ""
	}

	for _, rule := range providerRules {
		if !strings.Contains(source, rule.domain) {
			continue
		}

		if rule.buildURL == nil {
			return attrs.First(attrThumbnail)
		}

		mediaID := extractMediaID(source)
		if mediaID == "" {
			return ""
		}
		return rule.buildURL(mediaID)
	}

	return ""
}

// extractMediaID pulls the media identifier out of a source URL. The image
// banks address media by UUID; identifiers that parse as one are normalized
// to canonical lowercase form, anything else is passed through verbatim.
func extractMediaID(sourceURL string) string {
	match := mediaPathPattern.FindStringSubmatch(sourceURL)
	if match == nil {
		return ""
	}

	if parsed, err := uuid.Parse(match[1]); err == nil {
		return parsed.String()
	}

	return match[1]
}
