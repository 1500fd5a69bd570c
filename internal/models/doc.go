// Package models defines the core domain models for pairtime.
//
// # Models
//
//   - AssignmentRecord: one employee working on one project between two dates
//   - PairKey: canonical identifier for an unordered pair of employees
//   - ProjectOverlap: days a pair spent together on one shared project
//   - BestPairResult: the pair with the highest total, with its per-project breakdown
//   - PairSummary: one entry of a full pair ranking
//
// # Design Principles
//
// 1. **Calendar dates only**: dates are time.Time values at UTC midnight (see Date),
// so subtracting two of them always yields a whole number of days.
// 2. **Values, not pointers**: records and results are plain values owned by a
// single analysis run; nothing is shared between runs.
// 3. **Canonical pairs**: PairKey always stores the smaller ID first, which makes
// it usable directly as a map key.
package models
