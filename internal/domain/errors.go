package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for taxonomy queries
var (
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNullInput        = errors.New("null input")
	ErrUnknownNoun      = errors.New("unknown noun")
	ErrNoCommonAncestor = errors.New("no common ancestor")
	ErrCycle            = errors.New("graph has a cycle")
	ErrNotRooted        = errors.New("graph is not rooted")
)

// VertexError reports a vertex identifier outside [0, V)
type VertexError struct {
	Vertex int
	V      int
}

func (e *VertexError) Error() string {
	return fmt.Sprintf("vertex %d is not between 0 and %d", e.Vertex, e.V-1)
}

func (e *VertexError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// UnknownNounError reports a noun missing from the index
type UnknownNounError struct {
	Noun string
}

func (e *UnknownNounError) Error() string {
	return fmt.Sprintf("%q is not a WordNet noun", e.Noun)
}

func (e *UnknownNounError) Is(target error) bool {
	return target == ErrUnknownNoun
}

// RootsError reports a graph with zero or several roots
type RootsError struct {
	Roots []int
}

func (e *RootsError) Error() string {
	if len(e.Roots) == 0 {
		return "graph has no root"
	}
	return fmt.Sprintf("graph has %d roots: %v", len(e.Roots), e.Roots)
}

func (e *RootsError) Is(target error) bool {
	return target == ErrNotRooted
}
