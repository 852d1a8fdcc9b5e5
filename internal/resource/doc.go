// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resource implements the create, read, update and delete flow shared
// by every catalog entity.
//
// An entity is described once by a [Schema]: its table, primary key and an
// ordered list of [Field] rules. [NewMutator] turns a schema into a
// [Mutator] that coerces request payloads, validates them, runs uniqueness
// and reference pre-checks, and composes the minimal INSERT, UPDATE or
// DELETE through a [store.Gateway].
//
// Pre-checks only produce friendly, field-specific errors. The unique and
// foreign key constraints of the database remain authoritative, and their
// violations are reported as a [ConflictError] as well.
package resource
