// Package aig implements an And-Inverter Graph manager: a structurally
// hashed, reference-counted store of two-input AND gates with inverting
// edges, primary inputs/outputs, latches, and the canonical transforms
// (algebraic balancing, sequential strashing, cut/truth-table computation)
// built on top of it.
//
// A Manager owns every Object it creates. Construction goes through the
// operator constructors in oper.go, which constant-fold and structurally
// hash every call so that two equivalent construction sequences always
// produce the same graph. Mutation goes through Replace and DeleteRec in
// lifecycle.go, which keep reference counts, levels, and the strash table
// consistent.
package aig
