package domain

import "strings"

// SortField names a task attribute that task lists can be ordered by.
type SortField string

// Sortable task attributes.
const (
	SortByDescription SortField = "description"
	SortByFinalizedAt SortField = "finalizedAt"
	SortByDuration    SortField = "duration"
	SortByDelay       SortField = "delay"
	SortByStatus      SortField = "status"
)

// DefaultSortField is used when no known alias is requested.
const DefaultSortField = SortByStatus

// sortFieldAliases maps the public orderBy parameter onto task attributes.
// It is never written after initialization.
var sortFieldAliases = map[string]SortField{
	"desc":     SortByDescription,
	"date":     SortByFinalizedAt,
	"duration": SortByDuration,
	"delay":    SortByDelay,
	"status":   SortByStatus,
}

// SortFieldFromAlias resolves a public orderBy alias. Unknown and empty
// aliases resolve to DefaultSortField.
func SortFieldFromAlias(alias string) SortField {
	if f, ok := sortFieldAliases[alias]; ok {
		return f
	}
	return DefaultSortField
}

// SortDirection is the direction of an ordering.
type SortDirection string

// Sort directions.
const (
	SortAscending  SortDirection = "ASC"
	SortDescending SortDirection = "DESC"
)

// ParseSortDirection returns SortAscending for a case-insensitive "ASC"
// and SortDescending for anything else, including the empty string.
func ParseSortDirection(raw string) SortDirection {
	if strings.EqualFold(raw, string(SortAscending)) {
		return SortAscending
	}
	return SortDescending
}

// Sort describes how a task list is ordered.
type Sort struct {
	Field     SortField
	Direction SortDirection
}

// NewSort builds a Sort from the public orderBy and order parameters.
func NewSort(orderBy, order string) Sort {
	return Sort{
		Field:     SortFieldFromAlias(orderBy),
		Direction: ParseSortDirection(order),
	}
}

// Ascending reports whether the sort direction is ascending.
func (s Sort) Ascending() bool {
	return s.Direction == SortAscending
}
