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


// Package openai provides production implementations of the ai package
// interfaces on top of OpenAI-compatible HTTP APIs (OpenAI, Groq,
// Ollama, LocalAI, vLLM).
//
// Both the embedder and completer are thin adapters over langchaingo's
// OpenAI client. They hold no mutable state after construction and are
// safe for concurrent use. Any transport-level failure (network, auth,
// rate limit) is wrapped as core.ErrUpstream so callers can classify it
// without inspecting provider-specific error types.
package openai
