package domain

// GenerationParams carries the sampling parameters for a single text
// generation request, shared by the conversion service and the Bedrock
// integration.
type GenerationParams struct {
	MaxGenLen   int     `json:"max_gen_len"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}
