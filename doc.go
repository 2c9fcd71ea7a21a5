// Package kpichart computes the drawable geometry of multi-series KPI charts.
//
// A KPI chart combines area, column and line series on a shared x axis
// which is either numeric or a date axis. Every series belongs to the
// primary or the secondary y axis and may be stacked on top of one other
// series.
//
// Pipeline
//
// The engine turns raw rows into pixel geometry in a fixed sequence of
// steps which are rerun whenever the configuration, the data, the
// container size or the set of active series changes:
//   1. Normalization:  raw rows become data.Datums with a resolved x.
//   2. Aggregation:    datums are bucketed into one Series per group id.
//   3. Stacking:       every series resolves its baseline y0 against its base.
//   4. Partition:      active series are pooled per y axis.
//   5. Scales:         domains of x, both y axes and z are computed and niced.
//   6. Layout:         each series lays out its bars, lines or areas.
//   7. Decorations:    axis ticks, tooltip hit-regions, band and legend.
// Toggling a series skips the first two steps.
//
// The result of a recompute is a Geometry snapshot which is never mutated
// afterwards. Errors abort a recompute and keep the previous snapshot.
//
// Series are kept in an arena keyed by group id, so updating the data of
// a chart keeps the active state of known series.
package kpichart
