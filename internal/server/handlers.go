package server

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	"strings"

	"github.com/plastiscan/plastiscan/internal/classify"
	"github.com/plastiscan/plastiscan/internal/detect"
	"github.com/plastiscan/plastiscan/internal/ecoscore"
	"github.com/plastiscan/plastiscan/internal/imaging"
	"github.com/plastiscan/plastiscan/internal/material"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "classify_image").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "classify_image":
		return s.handleClassifyImage(ctx, args)
	case "detect_objects":
		return s.handleDetectObjects(ctx, args)
	case "image_features":
		return s.handleImageFeatures(args)
	case "image_profile":
		return s.handleImageProfile(args)
	case "eco_score":
		return s.handleEcoScore(args)
	case "image_info":
		return s.handleImageInfo(args)
	case "region_overlay":
		return s.handleRegionOverlay(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// imageSourceArgs is the shared photo input: a file path or inline base64.
type imageSourceArgs struct {
	Path        string `json:"path"`
	ImageBase64 string `json:"image_base64"`
}

// loadImage resolves the photo from whichever source was supplied.
func (s *Server) loadImage(a imageSourceArgs) (image.Image, error) {
	switch {
	case a.Path != "" && a.ImageBase64 != "":
		return nil, fmt.Errorf("provide either path or image_base64, not both")
	case a.Path != "":
		return s.cache.Load(a.Path)
	case a.ImageBase64 != "":
		img, _, err := imaging.DecodeBase64(a.ImageBase64)
		return img, err
	default:
		return nil, fmt.Errorf("one of path or image_base64 is required")
	}
}

// === Classification Handlers ===

type classifyImageArgs struct {
	imageSourceArgs
	Filename string `json:"filename"`
}

// classifyImageResult is the classify_image payload: the decision, the
// object metadata card, and the eco rating.
type classifyImageResult struct {
	Material   string                  `json:"material"`
	Confidence float64                 `json:"confidence"`
	Reasoning  []string                `json:"reasoning"`
	Object     material.DetectedObject `json:"object"`
	EcoScore   ecoscore.Score          `json:"eco_score"`
}

func (s *Server) handleClassifyImage(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a classifyImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.imageSourceArgs)
	if err != nil {
		return nil, err
	}

	res := s.classifier.Classify(ctx, img, a.Filename)
	obj := res.Material.Object("", res.Confidence)
	return &classifyImageResult{
		Material:   res.Material.String(),
		Confidence: res.Confidence,
		Reasoning:  res.Reasoning,
		Object:     obj,
		EcoScore:   ecoscore.Compute(obj),
	}, nil
}

type detectObjectsResult struct {
	Objects  []material.DetectedObject `json:"objects"`
	Regions  []detect.Region           `json:"regions"`
	EcoScore ecoscore.Score            `json:"eco_score"`
}

func (s *Server) handleDetectObjects(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a classifyImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.imageSourceArgs)
	if err != nil {
		return nil, err
	}

	det := s.detector.Detect(ctx, img, a.Filename)
	return &detectObjectsResult{
		Objects:  det.Objects,
		Regions:  det.Regions,
		EcoScore: ecoscore.Average(det.Objects),
	}, nil
}

// === Pixel Analysis Handlers ===

func (s *Server) handleImageFeatures(args json.RawMessage) (interface{}, error) {
	var a imageSourceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadImage(a)
	if err != nil {
		return nil, err
	}
	return imaging.ExtractFeatures(img)
}

type imageProfileResult struct {
	Analysis *imaging.Analysis       `json:"analysis"`
	Scores   []classify.ProfileScore `json:"profile_scores"`
}

func (s *Server) handleImageProfile(args json.RawMessage) (interface{}, error) {
	var a imageSourceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadImage(a)
	if err != nil {
		return nil, err
	}

	analysis := imaging.Profile(img)
	return &imageProfileResult{
		Analysis: analysis,
		Scores:   classify.ScoreProfiles(analysis),
	}, nil
}

// === Eco Scoring Handlers ===

type ecoScoreArgs struct {
	Material   string  `json:"material"`
	Code       string  `json:"code"`
	Confidence float64 `json:"confidence"`
}

func (s *Server) handleEcoScore(args json.RawMessage) (interface{}, error) {
	var a ecoScoreArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Confidence == 0 {
		a.Confidence = 1.0
	}

	var mat material.Material
	var ok bool
	switch {
	case a.Material != "":
		mat, ok = material.Parse(strings.ToUpper(strings.TrimSpace(a.Material)))
		if !ok {
			return nil, fmt.Errorf("unknown material: %s", a.Material)
		}
	case a.Code != "":
		mat, ok = material.FromCode(a.Code)
		if !ok {
			return nil, fmt.Errorf("unknown resin code: %s", a.Code)
		}
	default:
		return nil, fmt.Errorf("one of material or code is required")
	}

	return ecoscore.Compute(mat.Object("", a.Confidence)), nil
}

// === Debugging Handlers ===

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type regionOverlayArgs struct {
	imageSourceArgs
	BoxColor string `json:"box_color"`
}

func (s *Server) handleRegionOverlay(args json.RawMessage) (interface{}, error) {
	var a regionOverlayArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loadImage(a.imageSourceArgs)
	if err != nil {
		return nil, err
	}

	regions := detect.SegmentRegions(img)
	boxes := make([]imaging.OverlayBox, 0, len(regions))
	for _, r := range regions {
		boxes = append(boxes, imaging.OverlayBox{
			X:          r.X1,
			Y:          r.Y1,
			Width:      r.X2 - r.X1,
			Height:     r.Y2 - r.Y1,
			Confidence: r.Confidence,
		})
	}
	return imaging.OverlayRegions(img, boxes, a.BoxColor)
}
