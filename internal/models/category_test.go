package models

import "testing"

func TestIsValidCategory(t *testing.T) {
	for _, c := range Categories {
		if !IsValidCategory(c) {
			t.Errorf("IsValidCategory(%q) = false, want true", c)
		}
	}

	invalid := []string{"", "food", "Groceries", "FOOD", "Other"}
	for _, c := range invalid {
		if IsValidCategory(c) {
			t.Errorf("IsValidCategory(%q) = true, want false", c)
		}
	}
}

func TestDefaultCategoryIsValid(t *testing.T) {
	if !IsValidCategory(DefaultCategory) {
		t.Errorf("default category %q is not in the category list", DefaultCategory)
	}
}
