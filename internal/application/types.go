package application

import "wordnet/internal/domain"

// Re-export domain types for use by adapters
type (
	WordNet   = domain.WordNet
	Synset    = domain.Synset
	Hypernym  = domain.Hypernym
	NounPath  = domain.NounPath
	Path      = domain.Path
	Digraph   = domain.Digraph
	SyncStats = domain.SyncStats
)

// NoAncestor is what SCA reports for nouns with no common ancestor
const NoAncestor = domain.NoAncestor
