// Package server implements the MCP (Model Context Protocol) server for the
// plastic waste scanner.
//
// This package provides a JSON-RPC 2.0 server that exposes the scanner's
// classification pipeline through the MCP protocol, so AI assistants and
// other MCP-compatible clients can identify plastic materials in photos.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Classification:
//   - classify_image: Identify the material of the main object
//   - detect_objects: Find every distinct material in a photo
//
// Pixel Analysis:
//   - image_features: Raw brightness/saturation/contrast/edge/transparency
//   - image_profile: Dominant colors, texture, shape, and profile match scores
//
// Eco Scoring:
//   - eco_score: Rate a material on a 0-100 environmental scale
//
// Debugging:
//   - image_info: Photo dimensions and format
//   - region_overlay: Photo annotated with the segmenter's candidate regions
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded images. Images are cached
// by path and reused across multiple tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process. Photos supplied
// inline as base64 bypass the cache.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// Classification itself never fails on a decodable photo: the pipeline
// degrades to lower-confidence answers instead. Tool errors come from bad
// arguments or unreadable inputs.
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(config.Default())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
