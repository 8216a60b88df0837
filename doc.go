// Package holdings provides types and functions for tracking the daily
// holdings of bond ETFs and analysing how they change over time.
//
// The core functionalities include:
//   - Position Observations: one immutable record per (fund, date, asset),
//     normalized from the fund sponsors' published holdings files.
//   - Snapshots: the validated set of all observations for one fund on one
//     date, indexed by a composite asset key (identifier falling back to
//     the security name when the feed carries no identifier).
//   - Snapshot Diffing: a stateless comparison of two snapshots that
//     classifies every asset as new, removed, or changed in par value,
//     plus a multi-date variant that tracks par changes between every
//     pair of consecutive observations in a range.
//   - Change Reports: summaries of a fund's activity over a period, ready
//     to be rendered as Markdown, HTML or CSV by the renderer package.
//   - Data Persistence: append-only storage of observations in SQLite
//     (store package) and a human-readable CSV interchange format.
//
// This package serves as the foundational logic for the `hld` command-line
// tool, ensuring that all reports are derived from a single source of truth.
package holdings
