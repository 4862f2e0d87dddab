// Package rating supplies the per-jurisdiction rating parameters and
// credibility formulas used by the mod engine. Exactly one jurisdiction
// (Georgia) ships a complete NCCI formula implementation; independent-bureau
// states are registered with their published caps but fail loudly when their
// credibility formula is invoked, rather than silently falling back to NCCI
// math.
package rating
