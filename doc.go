// Package treesum computes deterministic, content-addressed fingerprints
// of directory trees and verifies them against a persisted record.
//
// A fingerprint covers every visible regular file beneath a root:
// each file is hashed with BLAKE3-256 in parallel, and the per-file
// digests are folded, in byte-lexicographic path order, into a single
// directory-level digest. Identical content always yields an identical
// fingerprint regardless of traversal or scheduling order.
//
// Fingerprints can be persisted as a plain-text hashfile and later
// replayed with Validate to detect files that were modified or deleted
// since the snapshot was taken. Files added after the snapshot are not
// detected, and the hashfile itself is trusted as written.
package treesum
