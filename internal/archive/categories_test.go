package archive

import "testing"

func TestCategoryNamesFixedOrder(t *testing.T) {
	want := []string{"Person", "Photograph", "Article", "VideoObject", "Thing", "Place", "CreativeWork"}

	got := CategoryNames()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CategoryNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBookIsAddressableButNotListed(t *testing.T) {
	for _, name := range CategoryNames() {
		if name == "Book" {
			t.Error("Book must not be part of the default fan-out set")
		}
	}

	if !IsValidCategory("Book") {
		t.Error("Book must be addressable by explicit request")
	}

	desc, ok := DescriptorFor("Book")
	if !ok || desc.Extend == nil {
		t.Error("Book descriptor should carry the book extension builder")
	}
}

func TestIsValidCategoryRejectsUnknown(t *testing.T) {
	for _, name := range []string{"", "person", "Unicorn", "Photo"} {
		if IsValidCategory(name) {
			t.Errorf("IsValidCategory(%q) = true, want false", name)
		}
	}
}
