// Package classify fuses independent heuristic signals into a single
// plastic-material decision.
//
// Four signal sources feed the engine: visual statistics from the raw
// pixels, a color/texture/shape profile, an optional filename keyword
// match, and optional external votes (a learned vision model, a resin-code
// OCR read). Two fusion strategies exist because they serve different
// calling contexts:
//
//   - Rule-score fusion scores every material's visual profile against an
//     image Analysis.
//   - Additive fusion starts all materials at zero, adds fixed bonuses for
//     crossed visual thresholds, then folds in each external vote as a
//     soft-competitive update.
//
// Classify runs both over the same evidence and keeps the higher-confidence
// answer; a filename keyword match overrides the winner only when its own
// confidence is higher still.
//
// Every contributing signal appends a human-readable line to the result's
// reasoning trail. The trail is display-only: nothing downstream may branch
// on it.
//
// Classification never fails. Signal-source errors are absorbed (the signal
// is simply absent) and a final confidence is always reported within
// [0.40, 0.95]: the floor guarantees a stated best guess, the ceiling
// acknowledges heuristic uncertainty is never fully resolved.
package classify
