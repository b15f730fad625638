package steal

import (
	"encoding/json"
	"regexp"
	"strings"

	"recipe-box/domain"
)

var fencedJSON = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(\\{.*\\})\\s*```")

type modelFailure struct {
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// extractJSON returns the JSON object in a model reply: the fenced block when
// there is one, otherwise the span from the first "{" to the last "}".
func extractJSON(reply string) (string, bool) {
	if m := fencedJSON.FindStringSubmatch(reply); m != nil {
		return m[1], true
	}
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return reply[start : end+1], true
}

// ParseReply turns a model reply into a digest payload. Structured failures
// reported by the model become UpstreamErrors of the matching kind.
func ParseReply(reply string) (domain.DigestRequest, error) {
	raw, ok := extractJSON(reply)
	if !ok {
		return domain.DigestRequest{}, &domain.UpstreamError{
			Kind:    domain.UpstreamNoRecipe,
			Message: "the extraction model did not return a recipe",
		}
	}

	var failure modelFailure
	if err := json.Unmarshal([]byte(raw), &failure); err == nil && failure.Error != nil {
		kind := domain.UpstreamKind(failure.Error.Type)
		switch kind {
		case domain.UpstreamNoRecipe, domain.UpstreamPartialData, domain.UpstreamAmbiguousData:
		default:
			kind = domain.UpstreamNoRecipe
		}
		message := failure.Error.Message
		if message == "" {
			message = string(kind)
		}
		return domain.DigestRequest{}, &domain.UpstreamError{Kind: kind, Message: message}
	}

	var payload domain.DigestRequest
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return domain.DigestRequest{}, &domain.UpstreamError{
			Kind:    domain.UpstreamPartialData,
			Message: "the extraction model returned malformed recipe JSON",
			Err:     err,
		}
	}
	return payload, nil
}
