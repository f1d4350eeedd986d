package pipeline

import (
	"fmt"
	"strings"

	"github.com/poiesic/matchbox/core"
)

// Response is the caller-facing result of a match request: a friendly
// natural-language message plus the matched canonical entities. Zero
// matches produce a suggestion to rephrase, never an error.
type Response struct {
	Message  string
	Entities []core.Entity
}

// BuildResponse shapes a match result for presentation.
func BuildResponse(entities []core.Entity, t core.EntityType) Response {
	if len(entities) == 0 {
		return Response{Message: zeroMatchMessage(t), Entities: []core.Entity{}}
	}

	keys := make([]string, len(entities))
	for i, entity := range entities {
		keys[i] = entity.Key()
	}

	var message string
	switch t {
	case core.EntityTypeEvent:
		message = fmt.Sprintf("Here are the events that suit you according to your preferences: %s", strings.Join(keys, ", "))
	case core.EntityTypeUser:
		message = fmt.Sprintf("Here are the users that match your query: %s", strings.Join(keys, ", "))
	case core.EntityTypeCommunity:
		top := keys
		if len(top) > 3 {
			top = top[:3]
		}
		message = fmt.Sprintf("Found %d communities matching your interests. Top matches include %s.", len(entities), strings.Join(top, ", "))
	}

	return Response{Message: message, Entities: entities}
}

func zeroMatchMessage(t core.EntityType) string {
	switch t {
	case core.EntityTypeEvent:
		return "I couldn't find any events matching your criteria. Would you like to try a different search?"
	case core.EntityTypeUser:
		return "I couldn't find any users matching your criteria. Would you like to try a different search?"
	case core.EntityTypeCommunity:
		return "No matching communities found. Try different interests or keywords."
	default:
		return "No matches found."
	}
}
