package codestart

import "strings"

// Category classifies a codestart.
type Category string

const (
	CategoryProject   Category = "project"
	CategoryLanguage  Category = "language"
	CategoryBuildTool Category = "buildtool"
	CategoryConfig    Category = "config"
	CategoryExample   Category = "example"
	CategoryTooling   Category = "tooling"
)

// BaseCategories are the category-defining categories in resolution order.
// A project resolves exactly one codestart for each of them.
var BaseCategories = []Category{
	CategoryProject,
	CategoryLanguage,
	CategoryBuildTool,
	CategoryConfig,
}

// AllCategories lists every known category.
var AllCategories = []Category{
	CategoryProject,
	CategoryLanguage,
	CategoryBuildTool,
	CategoryConfig,
	CategoryExample,
	CategoryTooling,
}

// IsBase reports whether the category is category-defining.
func (c Category) IsBase() bool {
	switch c {
	case CategoryProject, CategoryLanguage, CategoryBuildTool, CategoryConfig:
		return true
	default:
		return false
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory parses a category name case-insensitively. An empty name
// yields CategoryExample.
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CategoryExample, true
	}
	c := Category(s)
	return c, c.Valid()
}
