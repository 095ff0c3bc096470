// Package nss computes the Nearest Smaller Suffix relation of a byte text:
// for every interior position i, PSS(i) is the largest j < i whose suffix
// is lexicographically smaller than the suffix at i, and NSS(i) is the
// smallest such j > i. The relation is also the Cartesian tree of suffixes,
// and can be produced either as two integer arrays or as a balanced-
// parenthesis (BP) bitstring encoding the tree directly.
//
// The construction itself lives in internal/xss (package-private, since the
// stack/bitvector/fingerprint machinery it depends on is not meant to be
// part of this module's public surface); this package is the orchestrator
// that loads and sentinel-pads a text (Load), dispatches to the requested
// construction variant (Build), and carries the ISA-PSV reference oracle
// used to check both against ground truth (Config.Algorithm =
// AlgorithmOracle).
//
// Grounded on the teacher's own top-level package layout (github.com/
// gaissmai/bart: a synchronous setup phase in the root package, with the
// hot data structures in internal/) and its cmd/ binary's flag-parsing
// idiom, reused by this module's cmd/xssr.
package nss
