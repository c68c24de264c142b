/*
Package comb is a combinational signal algebra: an embedded language for
building bit-accurate, width-typed digital logic as value-level
expressions.

A signal is a fixed-width bit vector. Backends provide the signal
representation through the Gates interface (and optionally Primitives);
the Comb type derives the full operator surface on top: arithmetic,
relational and logical operators with integer overloads, slicing and
resizing, multiplexers, log-depth tree circuits (popcount, priority
encoders, leading/trailing counts, log2), one-hot and Gray encodings,
and width-inferring Unsigned/Signed arithmetic views.

Two backends ship with the library: bits, a concrete evaluator where the
signal is the bit pattern, and signal, a symbolic builder producing a
shared circuit graph.

Every operator has a precise width contract, checked at construction;
violations panic with an error wrapping one of the Err* classes.
*/
package comb
