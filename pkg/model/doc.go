// Package model implements the composable value/validation tree that backs
// interactive forms. Leaf fields hold one mutable value together with a
// touched flag, an ordered rule chain, and the rejections recorded by the
// most recent validation pass. Groups compose fields and nested groups
// under unique property names and expose the same Node contract, so
// arbitrarily deep record shapes can be read, written, validated, and
// reset as a unit. Trees are built once from declarative FieldDef/GroupDef
// values via Build and are never restructured afterwards; all state
// changes flow through SetValue, Validate, and Reset. Everything in this
// package is synchronous and free of I/O. Nodes carry no locks: hosts that
// share a tree across goroutines must serialize access themselves, one
// tree per logical form session.
package model
