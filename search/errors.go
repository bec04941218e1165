// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package search

import "errors"

var (
	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")
	// ErrEmbeddingCountMismatch is returned when the embedder returns a different
	// number of vectors than texts submitted.
	ErrEmbeddingCountMismatch = errors.New("embedding count does not match text count")
	// ErrInvalidMaxAttempts is returned when retry is configured with fewer than one attempt.
	ErrInvalidMaxAttempts = errors.New("maxAttempts must be greater than 0")
	// ErrDimensionMismatch is returned when the embedder returns an empty vector
	// or one whose length differs from the indexed course vectors.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
	// ErrEmptyCatalog is returned when a semantic searcher is built without courses.
	ErrEmptyCatalog = errors.New("no courses to index")
)
