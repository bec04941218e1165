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

// Package ai provides the abstraction for remote embedding services.
//
// The locally fitted latent semantic model in package embedding needs no
// service. This package exists for the optional remote backend, which ranks
// courses with embeddings from an OpenAI-compatible API instead.
//
// # Implementation Packages
//
//   - ai/openai: OpenAI-compatible implementation built on langchaingo
//   - ai/mock: deterministic test double
//
// Public constructors (openai.NewEmbedder) return the Embedder interface.
// mock.NewMockEmbedder returns the concrete type so tests can inject
// behavior and check call counts.
//
// # Usage Example
//
//	cfg := ai.NewConfig(ai.WithEmbeddingModel("nomic-embed-text"))
//	embedder, err := openai.NewEmbedder(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vector, err := embedder.EmbedText(ctx, "Ethical Hacking")
package ai
