// Package dataset loads chart series from data files and exports them back.
//
// Three table layouts are understood:
//   - CSV: a header row, then one row per x value. The first column is x, every
//     further column is one series named after its header cell.
//   - XLSX: the same layout on the first sheet of the workbook.
//   - YAML: a list of named series with explicit [x, y] points.
//
// Empty cells leave a gap in the series. Points are returned sorted by x.
//
// Any of these may be compressed; the compression is detected from a trailing
// .zst, .s2 or .lz4 extension, e.g. "cpu.csv.zst".
package dataset
