package pipeline

import "github.com/poiesic/matchbox/core"

// candidateKey pulls the reconciliation key out of an LLM candidate:
// "username" for users, "name" otherwise. A missing or non-string field
// yields an empty string, which never matches.
func candidateKey(candidate map[string]any, t core.EntityType) string {
	field := "name"
	if t == core.EntityTypeUser {
		field = "username"
	}
	key, _ := candidate[field].(string)
	return key
}

// reconcile maps parsed LLM candidates back to canonical entities by
// case-insensitive key lookup. This is the only place untrusted model
// output becomes trusted data: only the key is read from a candidate,
// every other field is taken from the canonical store. Candidates with
// no canonical match are dropped; candidates resolving to the same
// canonical entity are returned once. Result order follows candidate
// order.
func (m *Matcher) reconcile(candidates []map[string]any, t core.EntityType) []core.Entity {
	matched := make([]core.Entity, 0, len(candidates))
	seen := make(map[core.ID]bool, len(candidates))

	for _, candidate := range candidates {
		key := candidateKey(candidate, t)
		entity, ok := m.store.FindByKey(t, key)
		if !ok {
			m.logger.Debug("dropping candidate with no canonical match", "entityType", t.String(), "key", key)
			continue
		}
		if seen[entity.EntityID()] {
			continue
		}
		seen[entity.EntityID()] = true
		matched = append(matched, entity)
	}

	return matched
}
