package models

import "errors"

var (
	// ErrEmptyInput is returned when an upload has no header or no data rows.
	ErrEmptyInput = errors.New("input is empty or has no data rows")

	// ErrMissingItemColumn is returned when no header maps to the item name.
	ErrMissingItemColumn = errors.New("no column maps to the item name")

	// ErrDegenerateMargin is returned when the adjusted target margin reaches
	// 100% or more, which makes cost-plus pricing divide by zero.
	ErrDegenerateMargin = errors.New("adjusted target margin must be below 100%")

	// ErrNoSalesData is returned by operations that need history to work from.
	ErrNoSalesData = errors.New("no sales data available")
)
