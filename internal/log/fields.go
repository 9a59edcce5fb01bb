package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldError         = "error"
	FieldNote          = "note"
	FieldDate          = "date"
	FieldCategoryID    = "category_id"
	FieldCategoryCount = "category_count"
	FieldCatalogPath   = "catalog_path"
	FieldFallbackName  = "fallback_name"
	FieldCount         = "count"
	FieldConcurrency   = "concurrency"
	FieldFormat        = "format"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentCatalog = "catalog"
	ComponentBatch   = "batch"
)
