// Package report assembles the findings of a run into a workbook. Each
// named finding set becomes its own sheet, empty sets are dropped, and a
// summary sheet ties the sheets to the run identifier for the working
// papers.
package report
