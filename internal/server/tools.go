package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// imageSourceProperties is the shared path/base64 photo input accepted by
// every image-taking tool. Exactly one of the two must be set.
func imageSourceProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the photo file",
		},
		"image_base64": map[string]interface{}{
			"type":        "string",
			"description": "Photo as base64-encoded PNG/JPEG (data URL prefix allowed). Alternative to path.",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	classifyProps := imageSourceProperties()
	classifyProps["filename"] = map[string]interface{}{
		"type":        "string",
		"description": "Original filename of the photo; keyword hints in it sharpen the result",
	}

	detectProps := imageSourceProperties()
	detectProps["filename"] = map[string]interface{}{
		"type":        "string",
		"description": "Original filename of the photo",
	}

	overlayProps := imageSourceProperties()
	overlayProps["box_color"] = map[string]interface{}{
		"type":        "string",
		"description": "Region box color as hex (default #FF0000)",
		"default":     "#FF0000",
	}

	return []Tool{
		// Classification
		{
			Name:        "classify_image",
			Description: "Identify the plastic material of the main object in a photo. Returns the material, recycling code, confidence, reasoning, and an eco score.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": classifyProps,
			},
		},
		{
			Name:        "detect_objects",
			Description: "Find every distinct plastic material in a photo. Returns one object per material plus an overall eco score.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": detectProps,
			},
		},

		// Pixel Analysis
		{
			Name:        "image_features",
			Description: "Extract raw visual features from a photo: brightness, saturation, contrast, edge density, and transparency, each normalized to 0-1.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": imageSourceProperties(),
			},
		},
		{
			Name:        "image_profile",
			Description: "Build the full visual profile of a photo: dominant colors, texture, shape, transparency, color variance, and how well each material profile matches.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": imageSourceProperties(),
			},
		},

		// Eco Scoring
		{
			Name:        "eco_score",
			Description: "Rate a plastic material on a 0-100 environmental scale. Takes either a material label (PET, HDPE, ...) or a resin code (1-7).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"material": map[string]interface{}{
						"type":        "string",
						"description": "Material label: PET, HDPE, PVC, LDPE, PP, PS, OTHER, NON_PLASTIC",
					},
					"code": map[string]interface{}{
						"type":        "string",
						"description": "Resin identification code 1-7. Alternative to material.",
					},
					"confidence": map[string]interface{}{
						"type":        "number",
						"description": "Classification confidence (0-1, default 1.0)",
						"default":     1.0,
					},
				},
			},
		},

		// Debugging
		{
			Name:        "image_info",
			Description: "Get the dimensions and format of a photo file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the photo file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "region_overlay",
			Description: "Return the photo with the segmenter's candidate regions drawn on it as base64 PNG. Debugging aid for multi-object detection.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": overlayProps,
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
