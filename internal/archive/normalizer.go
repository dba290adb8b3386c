package archive

import (
	"strings"

	"github.com/r-huijts/oorlogsbronnen-mcp/internal/spinque"
)

// RecordPrefix is the canonical URL prefix for public Oorlogsbronnen record pages
const RecordPrefix = "https://www.oorlogsbronnen.nl/record/"

// SourceRef points at the archive institution a record came from
type SourceRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// MediaDetails holds the extension fields of photograph, video and
// creative-work records
type MediaDetails struct {
	ImageURL        string    `json:"imageUrl"`
	ThumbnailURL    string    `json:"thumbnailUrl"`
	MimeType        string    `json:"mimeType"`
	Width           string    `json:"width"`
	Height          string    `json:"height"`
	Duration        string    `json:"duration"`
	License         string    `json:"license"`
	Keywords        []string  `json:"keywords"`
	CopyrightHolder string    `json:"copyrightHolder"`
	Source          SourceRef `json:"source"`
}

// PersonDetails holds the extension fields of person records
type PersonDetails struct {
	BirthPlace    string `json:"birthPlace"`
	DeathPlace    string `json:"deathPlace"`
	JobTitle      string `json:"jobTitle"`
	PreferredName string `json:"preferredName"`
}

// BookDetails holds the extension fields of book records
type BookDetails struct {
	Author    string   `json:"author"`
	Publisher string   `json:"publisher"`
	Subject   []string `json:"subject"`
	Language  string   `json:"language"`
}

// NormalizedRecord is the uniform result shape across all content
// categories. Common fields are always present; missing attributes become
// empty values, never omitted keys. Exactly one of the extension blocks is
// set, depending on the record's category.
type NormalizedRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Date        string `json:"date"`
	Creator     string `json:"creator"`
	Language    string `json:"language"`
	WebpageURL  string `json:"webpageUrl"`

	Media  *MediaDetails  `json:"media,omitempty"`
	Person *PersonDetails `json:"person,omitempty"`
	Book   *BookDetails   `json:"book,omitempty"`
}

// Normalize maps a raw attribute bag to the uniform record shape. It never
// fails: every missing attribute degrades to an empty value.
func Normalize(item *spinque.RawResultItem) NormalizedRecord {
	attrs := item.Attributes()

	rec := NormalizedRecord{
		ID:          item.ID(),
		Title:       recordTitle(attrs),
		Type:        item.Category(),
		Description: attrs.FirstOf(attrDescription, attrDescriptionAlt),
		URL:         ToRecordURL(item.ID()),
		Date:        attrs.FirstOf(attrDate, attrDateAlt),
		Creator:     attrs.FirstOf(attrCreator, attrCreatorAlt),
		Language:    attrs.FirstOf(attrLanguage, attrLanguageAlt),
		WebpageURL:  attrs.First(attrSource),
	}

	if desc, ok := DescriptorFor(rec.Type); ok && desc.Extend != nil {
		desc.Extend(&rec, attrs)
	}

	return rec
}

// recordTitle is never empty: name attribute, then title, then "Untitled"
func recordTitle(attrs spinque.Attributes) string {
	if title := attrs.FirstOf(attrName, attrTitle); title != "" {
		return title
	}
	return "Untitled"
}

// ToRecordURL turns a raw record identifier into a public link. The
// transform is idempotent: applying it to its own output is a no-op.
func ToRecordURL(id string) string {
	// A doubly-prefixed ID embeds a full URL after the record prefix.
	if strings.HasPrefix(id, RecordPrefix) && strings.HasPrefix(id[len(RecordPrefix):], "http") {
		return id[len(RecordPrefix):]
	}

	if strings.HasPrefix(id, "http") {
		return id
	}

	return RecordPrefix + id
}

func extendMedia(rec *NormalizedRecord, attrs spinque.Attributes) {
	rec.Media = &MediaDetails{
		ImageURL:        ResolveImageURL(attrs),
		ThumbnailURL:    attrs.First(attrThumbnail),
		MimeType:        attrs.First(attrEncodingFormat),
		Width:           attrs.First(attrWidth),
		Height:          attrs.First(attrHeight),
		License:         attrs.First(attrLicense),
		Keywords:        attrs.Strings(attrKeywords),
		CopyrightHolder: attrs.First(attrCopyrightHolder),
		Source: SourceRef{
			Name: attrs.FirstOf(attrProvider, attrPublisher),
			URL:  attrs.First(attrSource),
		},
	}
	if rec.Type == "VideoObject" {
		rec.Media.Duration = attrs.First(attrDuration)
	}
}

func extendPerson(rec *NormalizedRecord, attrs spinque.Attributes) {
	rec.Person = &PersonDetails{
		BirthPlace:    attrs.First(attrBirthPlace),
		DeathPlace:    attrs.First(attrDeathPlace),
		JobTitle:      attrs.First(attrJobTitle),
		PreferredName: attrs.First(attrPreferredName),
	}
}

func extendBook(rec *NormalizedRecord, attrs spinque.Attributes) {
	rec.Book = &BookDetails{
		Author:    attrs.First(attrCreator),
		Publisher: attrs.First(attrPublisher),
		Subject:   attrs.Strings(attrSubject),
		Language:  attrs.FirstOf(attrLanguage, attrLanguageAlt),
	}
}
