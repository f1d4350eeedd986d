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


package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractObjects locates the first bracket-delimited JSON array in
// arbitrary text (first '[' through last ']', spanning newlines) and
// parses it into a slice of objects. Surrounding prose and markdown are
// tolerated; LLM output is unreliable by nature, so this is a pure
// best-effort parser with explicit failure modes:
//
//   - no '['..']' span in the text: ErrNoJSONArray
//   - the span is not valid JSON, or not an array: wrapped parse error
//   - the array contains non-object elements: ErrNonObjectElement
//
// Field presence inside the objects is not validated; reconciliation
// only needs the key field and tolerates its absence.
func ExtractObjects(text string) ([]map[string]any, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoJSONArray
	}

	var items []any
	if err := json.Unmarshal([]byte(text[start:end+1]), &items); err != nil {
		return nil, fmt.Errorf("invalid JSON array: %w", err)
	}

	objects := make([]map[string]any, 0, len(items))
	for _, item := range items {
		object, ok := item.(map[string]any)
		if !ok {
			return nil, ErrNonObjectElement
		}
		objects = append(objects, object)
	}
	return objects, nil
}
