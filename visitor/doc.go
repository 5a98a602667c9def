// Package visitor offers callback iteration over decoded JSON containers.
// Sequences are visited by index and mappings by string key; typed Go slices and
// string keyed maps are visited through reflection.
package visitor
