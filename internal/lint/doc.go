// Package lint implements the detection pipeline of ioful: given one
// lowered statement, decide whether it discards the transfer count of a
// partial-transfer I/O call, and report which rule it violates.
//
// The pipeline is three pure stages composed per statement:
//
//  1. statement filter: only statements evaluating an expression for its
//     side effect pass through;
//  2. shape matcher: recognizes the propagate-and-discard and
//     unwrap-family-and-discard idioms and extracts the inner call;
//  3. classifier: resolves whether the inner call actually dispatches
//     through a known Read or Write capability interface and emits the
//     matching diagnostic.
//
// The engine holds no state across statements and is safe to call from
// concurrent drivers. Everything it needs from the host (trait
// resolution, try-desugar detection, diagnostic delivery) is injected
// through the TraitResolver, TryDetector, and Sink interfaces.
package lint
