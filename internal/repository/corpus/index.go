package corpus

import (
	"fmt"

	"github.com/kailas-cloud/intentd/internal/db"
	"github.com/kailas-cloud/intentd/internal/domain"
)

// IndexParams carries the vector index tuning knobs shared by both namespaces.
type IndexParams struct {
	VectorDim   int
	HNSWM       int
	EFConstruct int
}

func keyPrefix(ns domain.Namespace) string {
	return fmt.Sprintf("%s%s:", domain.KeyPrefix, ns)
}

func indexName(ns domain.Namespace) string {
	return fmt.Sprintf("%s%s:idx", domain.KeyPrefix, ns)
}

func entryKey(ns domain.Namespace, id string) string {
	return keyPrefix(ns) + id
}

// examplesIndex builds the FT definition for the labeled example namespace.
func examplesIndex(p IndexParams) *db.IndexDefinition {
	return &db.IndexDefinition{
		Name:     indexName(domain.NamespaceExamples),
		Prefixes: []string{keyPrefix(domain.NamespaceExamples)},
		Fields: []db.IndexField{
			{Name: fieldLabel, Type: db.IndexFieldTag},
			{Name: fieldExampleID, Type: db.IndexFieldNumeric},
			{Name: fieldTotalExamples, Type: db.IndexFieldNumeric},
			vectorField(p),
		},
	}
}

// chunksIndex builds the FT definition for the document chunk namespace.
func chunksIndex(p IndexParams) *db.IndexDefinition {
	return &db.IndexDefinition{
		Name:     indexName(domain.NamespaceChunks),
		Prefixes: []string{keyPrefix(domain.NamespaceChunks)},
		Fields: []db.IndexField{
			{Name: fieldSource, Type: db.IndexFieldTag},
			{Name: fieldChunk, Type: db.IndexFieldNumeric},
			{Name: fieldTotalChunks, Type: db.IndexFieldNumeric},
			vectorField(p),
		},
	}
}

func vectorField(p IndexParams) db.IndexField {
	return db.IndexField{
		Name:              fieldVector,
		Type:              db.IndexFieldVector,
		VectorAlgo:        db.VectorHNSW,
		VectorDim:         p.VectorDim,
		VectorDistance:    db.DistanceCosine,
		VectorM:           p.HNSWM,
		VectorEFConstruct: p.EFConstruct,
	}
}
