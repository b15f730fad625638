package domain

var (
	MessageFailedStealRecipe = "Failed to steal recipe"
	MessageFailedStealPrompt = "Failed to build prompt"
)

type (
	StealRequest struct {
		URL    string `json:"url" validate:"required,url"`
		Digest bool   `json:"digest"`
	}

	// StealResponse carries the extracted payload and, when the caller asked
	// for it, the recipe row it was digested into.
	StealResponse struct {
		Payload DigestRequest `json:"payload"`
		Recipe  *Recipe       `json:"recipe,omitempty"`
		Cached  bool          `json:"cached"`
	}

	StealPromptResponse struct {
		URL    string `json:"url"`
		Prompt string `json:"prompt"`
	}
)
