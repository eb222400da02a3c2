package productcopy

import (
	"fmt"
	"sort"
	"strings"
)

// Copy is the workflow state: the product ID input, the catalog fields the
// lookup node fills in, and the generated marketing copy.
type Copy struct {
	// Input
	ProductID string

	// Catalog fields
	Name           string
	ImageURL       string
	Features       []string
	Category       string
	Specifications map[string]string

	// Generated copy
	ImageFeatures    string
	Description      string
	ShortDescription string
	SEOTitle         string
	SEODescription   string
	Keywords         []string
}

// Merge folds a delta into the state. Populated fields overwrite: non-empty
// strings, non-nil slices and maps.
func (c Copy) Merge(delta Copy) Copy {
	merged := c
	if delta.ProductID != "" {
		merged.ProductID = delta.ProductID
	}
	if delta.Name != "" {
		merged.Name = delta.Name
	}
	if delta.ImageURL != "" {
		merged.ImageURL = delta.ImageURL
	}
	if delta.Features != nil {
		merged.Features = delta.Features
	}
	if delta.Category != "" {
		merged.Category = delta.Category
	}
	if delta.Specifications != nil {
		merged.Specifications = delta.Specifications
	}
	if delta.ImageFeatures != "" {
		merged.ImageFeatures = delta.ImageFeatures
	}
	if delta.Description != "" {
		merged.Description = delta.Description
	}
	if delta.ShortDescription != "" {
		merged.ShortDescription = delta.ShortDescription
	}
	if delta.SEOTitle != "" {
		merged.SEOTitle = delta.SEOTitle
	}
	if delta.SEODescription != "" {
		merged.SEODescription = delta.SEODescription
	}
	if delta.Keywords != nil {
		merged.Keywords = delta.Keywords
	}
	return merged
}

// vars returns the template variables for the prompt chain.
func (c Copy) vars() map[string]any {
	specs := make([]string, 0, len(c.Specifications))
	for k, v := range c.Specifications {
		specs = append(specs, fmt.Sprintf("%s: %s", k, v))
	}
	sort.Strings(specs)

	return map[string]any{
		"product_name":                c.Name,
		"product_features":            strings.Join(c.Features, ", "),
		"product_category":            c.Category,
		"product_specifications":      strings.Join(specs, "; "),
		"product_features_from_image": c.ImageFeatures,
		"product_description":         c.Description,
	}
}
