// Package latency implements the mock latency-neutralization arithmetic used by
// the VDF simulation page.
//
// Nothing here computes a real Verifiable Delay Function. The calculator only
// shows how a fixed delay, added on top of network latency, shrinks the relative
// advantage of a well-connected node:
//
//  advantage  = (slow - fast) / slow * 100
//  difference = ((vdf*1000 + slow) - (vdf*1000 + fast)) / (vdf*1000 + slow) * 100
//
// A difference strictly below 5% is reported as neutralized.
//
// The calculator does not clamp its inputs. Callers keep values inside Bounds
// (see Session in the page package); the calculator only refuses inputs that
// would produce NaN or Inf, such as a non-positive slow latency.
package latency
