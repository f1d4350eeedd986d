package pipeline

import (
	"fmt"
	"strings"

	"github.com/poiesic/matchbox/core"
)

// extractionSystemPrompt pins the model to JSON-array-only output. This
// is a soft contract; ExtractObjects compensates when the model strays.
const extractionSystemPrompt = "You are a JSON-only response bot. Always respond with valid JSON arrays without any additional text."

// entityFields lists the required output fields per entity type. The
// field names must match the labels used in the corpus serialization so
// the model can copy them through.
var entityFields = map[core.EntityType][]string{
	core.EntityTypeEvent:     {"id", "name", "location", "type", "date", "time", "description"},
	core.EntityTypeUser:      {"id", "username", "email", "interests", "community_ids"},
	core.EntityTypeCommunity: {"id", "name", "description", "interests"},
}

// buildPrompt assembles the extraction instruction from the ranked chunk
// text (passed verbatim), the originating query, and the entity type's
// required output fields.
func buildPrompt(query, data string, t core.EntityType) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Based on the following data, find matching %ss for: '%s'.\n\n", t, query)
	fmt.Fprintf(&b, "Data:\n%s\n\n", data)
	b.WriteString("Respond with ONLY a JSON array of the best matches. ")
	fmt.Fprintf(&b, "Each object should have these fields: %s.\n", strings.Join(entityFields[t], ", "))
	b.WriteString("Do NOT include any additional text or explanations. ")
	b.WriteString("Format the response as a JSON array without any markdown or code blocks.")

	return b.String()
}
