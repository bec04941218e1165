package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/poiesic/coursematch/core"
)

// ResultsTopN is the number of entries kept per method in the results file.
const ResultsTopN = 3

// KeywordEntry is a keyword baseline hit. It encodes as [code, name, matches].
type KeywordEntry struct {
	Code    string
	Name    string
	Matches int
}

// EmbeddingEntry is an embedding hit. It encodes as [code, name, similarity].
type EmbeddingEntry struct {
	Code       string
	Name       string
	Similarity float64
}

// QueryResult holds the leading results of both methods for one query.
type QueryResult struct {
	Query        string           `json:"query"`
	KeywordTop   []KeywordEntry   `json:"keyword_top3"`
	EmbeddingTop []EmbeddingEntry `json:"embedding_top3"`
}

// Results is the document written to the results file.
type Results struct {
	CorpusDigest string        `json:"corpus_digest"`
	Queries      []QueryResult `json:"queries"`
}

// NewQueryResult keeps the first n entries of each ranking. Keyword scores are
// truncated to whole matches; similarities are rounded to 4 decimal places.
func NewQueryResult(query string, keyword, semantic core.Ranking, n int) QueryResult {
	result := QueryResult{
		Query:        query,
		KeywordTop:   make([]KeywordEntry, 0, n),
		EmbeddingTop: make([]EmbeddingEntry, 0, n),
	}
	for _, sc := range keyword.Top(n) {
		result.KeywordTop = append(result.KeywordTop, KeywordEntry{
			Code:    sc.Course.Code,
			Name:    sc.Course.Name,
			Matches: int(sc.Score),
		})
	}
	for _, sc := range semantic.Top(n) {
		result.EmbeddingTop = append(result.EmbeddingTop, EmbeddingEntry{
			Code:       sc.Course.Code,
			Name:       sc.Course.Name,
			Similarity: Round(sc.Score, 4),
		})
	}
	return result
}

// Round rounds x to the given number of decimal places.
func Round(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}

// WriteResults writes results to path as indented JSON.
func WriteResults(path string, results Results) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close results file: %w", cerr)
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}

// ReadResults loads a file written by WriteResults.
func ReadResults(path string) (Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Results{}, fmt.Errorf("read results file: %w", err)
	}
	var results Results
	if err := json.Unmarshal(data, &results); err != nil {
		return Results{}, fmt.Errorf("decode results: %w", err)
	}
	return results, nil
}

var errEntryShape = errors.New("entry must be a [code, name, score] array")

func (e KeywordEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.Code, e.Name, e.Matches})
}

func (e *KeywordEntry) UnmarshalJSON(data []byte) error {
	return decodeTriple(data, &e.Code, &e.Name, &e.Matches)
}

func (e EmbeddingEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{e.Code, e.Name, e.Similarity})
}

func (e *EmbeddingEntry) UnmarshalJSON(data []byte) error {
	return decodeTriple(data, &e.Code, &e.Name, &e.Similarity)
}

func decodeTriple(data []byte, code, name *string, score any) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return fmt.Errorf("%w: got %d elements", errEntryShape, len(parts))
	}
	if err := json.Unmarshal(parts[0], code); err != nil {
		return err
	}
	if err := json.Unmarshal(parts[1], name); err != nil {
		return err
	}
	return json.Unmarshal(parts[2], score)
}
