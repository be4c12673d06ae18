package corpus

import (
	"encoding/binary"
	"math"
	"strconv"

	"github.com/kailas-cloud/intentd/internal/domain"
)

// Hash field names. The vector and content fields carry the double underscore
// prefix to keep them apart from metadata.
const (
	fieldContent = "__content"
	fieldVector  = "__vector"

	fieldLabel         = "label"
	fieldExampleID     = "example_id"
	fieldTotalExamples = "total_examples"

	fieldSource      = "source"
	fieldChunk       = "chunk"
	fieldTotalChunks = "total_chunks"
)

// exampleFields converts a labeled example into a flat map for HSET.
func exampleFields(ex *domain.Example) map[string]string {
	return map[string]string{
		fieldContent:       ex.Text,
		fieldVector:        vectorToBytes(ex.Vector),
		fieldLabel:         string(ex.Label),
		fieldExampleID:     strconv.Itoa(ex.ExampleID),
		fieldTotalExamples: strconv.Itoa(ex.TotalExamples),
	}
}

// chunkFields converts a document chunk into a flat map for HSET.
func chunkFields(c *domain.Chunk) map[string]string {
	return map[string]string{
		fieldContent:     c.Content,
		fieldVector:      vectorToBytes(c.Vector),
		fieldSource:      c.Source,
		fieldChunk:       strconv.Itoa(c.Position),
		fieldTotalChunks: strconv.Itoa(c.TotalChunks),
	}
}

// parseExample converts a hash map back into a labeled example. A label
// outside the closed set means a corrupted or foreign record and is an error.
func parseExample(m map[string]string) (domain.Example, error) {
	label, err := domain.ParseLabel(m[fieldLabel])
	if err != nil {
		return domain.Example{}, err
	}

	id, _ := strconv.Atoi(m[fieldExampleID])
	total, _ := strconv.Atoi(m[fieldTotalExamples])
	return domain.Example{
		Text:          m[fieldContent],
		Label:         label,
		ExampleID:     id,
		TotalExamples: total,
		Vector:        bytesToVector(m[fieldVector]),
	}, nil
}

// parseChunk converts a hash map back into a document chunk.
func parseChunk(m map[string]string) domain.Chunk {
	pos, _ := strconv.Atoi(m[fieldChunk])
	total, _ := strconv.Atoi(m[fieldTotalChunks])
	return domain.Chunk{
		Content:     m[fieldContent],
		Source:      m[fieldSource],
		Position:    pos,
		TotalChunks: total,
		Vector:      bytesToVector(m[fieldVector]),
	}
}

// vectorToBytes serializes []float32 to a binary string (4 bytes per float, little-endian).
func vectorToBytes(v []float32) string {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return string(buf)
}

// bytesToVector deserializes a binary string back to []float32.
func bytesToVector(s string) []float32 {
	b := []byte(s)
	if len(b)%4 != 0 {
		return nil
	}
	v := make([]float32, len(b)/4)
	for i := range v {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}
