package archive

import (
	"github.com/r-huijts/oorlogsbronnen-mcp/internal/spinque"
)

// Attribute URIs used by the Oorlogsbronnen backend. The data mixes the
// schema.org, Dublin Core and NIOD vocabularies; accessors that need a
// fallback list the alternate vocabulary key second.
const (
	attrName           = "http://schema.org/name"
	attrTitle          = "http://purl.org/dc/elements/1.1/title"
	attrDescription    = "http://purl.org/dc/elements/1.1/description"
	attrDescriptionAlt = "http://schema.org/description"
	attrDate           = "http://purl.org/dc/elements/1.1/date"
	attrDateAlt        = "http://schema.org/dateCreated"
	attrCreator        = "http://purl.org/dc/elements/1.1/creator"
	attrCreatorAlt     = "http://schema.org/creator"
	attrLanguage       = "http://purl.org/dc/elements/1.1/language"
	attrLanguageAlt    = "http://schema.org/inLanguage"
	attrSource         = "http://purl.org/dc/elements/1.1/source"
	attrPublisher      = "http://purl.org/dc/elements/1.1/publisher"
	attrSubject        = "http://purl.org/dc/elements/1.1/subject"

	attrImage           = "http://schema.org/image"
	attrContentURL      = "http://schema.org/contentUrl"
	attrThumbnail       = "http://schema.org/thumbnail"
	attrWidth           = "http://schema.org/width"
	attrHeight          = "http://schema.org/height"
	attrDuration        = "http://schema.org/duration"
	attrLicense         = "http://schema.org/license"
	attrKeywords        = "http://schema.org/keywords"
	attrCopyrightHolder = "http://schema.org/copyrightHolder"
	attrEncodingFormat  = "http://schema.org/encodingFormat"
	attrProvider        = "http://schema.org/provider"

	attrBirthPlace    = "http://schema.org/birthPlace"
	attrDeathPlace    = "http://schema.org/deathPlace"
	attrJobTitle      = "http://schema.org/jobTitle"
	attrPreferredName = "https://data.niod.nl/preferredName"
)

// CategoryDescriptor describes one content category of the archive. Extend
// populates the category-specific extension fields of a normalized record;
// it is nil for categories that only carry the common fields.
type CategoryDescriptor struct {
	Name   string
	Extend func(rec *NormalizedRecord, attrs spinque.Attributes)
}

// Categories is the closed, ordered category set searched when no filter is
// given. Book is addressable only by explicit request; see bookCategory.
var Categories = []CategoryDescriptor{
	{Name: "Person", Extend: extendPerson},
	{Name: "Photograph", Extend: extendMedia},
	{Name: "Article"},
	{Name: "VideoObject", Extend: extendMedia},
	{Name: "Thing"},
	{Name: "Place"},
	{Name: "CreativeWork", Extend: extendMedia},
}

var bookCategory = CategoryDescriptor{Name: "Book", Extend: extendBook}

// CategoryNames returns the fixed category names in search order
func CategoryNames() []string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = c.Name
	}
	return names
}

// DescriptorFor looks up the descriptor for a category name, including Book
func DescriptorFor(name string) (CategoryDescriptor, bool) {
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}
	if name == bookCategory.Name {
		return bookCategory, true
	}
	return CategoryDescriptor{}, false
}

// IsValidCategory reports whether name is an addressable content category
func IsValidCategory(name string) bool {
	_, ok := DescriptorFor(name)
	return ok
}
