package entity

// ListFilter maps a column name to the exact value it must equal.
// Used by the repository layer to avoid coupling with query parameters.
type ListFilter map[string]string
