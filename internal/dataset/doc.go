// Package dataset loads tabular sources into raw row sets and turns them
// into typed scatter points.
//
// The package covers the three ingestion stages of the pipeline:
//
//  1. Reading: a Source adapter reads a file into a Table of raw rows,
//     applying the configured encoding-fallback policy. CSVSource and
//     XLSXSource are the concrete adapters; new formats plug in behind
//     the same interface.
//  2. Cleansing: Cleanse coerces raw rows into domain.ScatterPoint
//     values, dropping rows whose numeric columns are missing, empty, or
//     not parseable as finite numbers. Drops are counted, never fatal.
//  3. Joining: BuildCategoryIndex selects one category column from a
//     category table and Join left-joins it onto the point set by label.
//     Every input point survives the join.
//
// Sources fail with a data-load error (file absent, unreadable, or not
// decodable under any configured encoding). Selecting a category column
// the category table does not have is an analysis error, since it is a
// configuration mistake rather than bad data.
package dataset
