// Package export holds the quote document exporters.
//
// Subpackages:
//   - excel: XLSX workbook via excelize
//   - pdf: printable quote via maroto
package export
