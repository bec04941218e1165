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

// Package search ranks courses against a free-text query.
//
// KeywordSearch is the baseline: it counts how many distinct query words
// appear as substrings of a course's code, name and description.
//
// SemanticSearcher ranks by cosine similarity between embeddings produced
// by an ai.Embedder. Course texts are embedded once, in batches, with
// exponential backoff on failure.
package search
