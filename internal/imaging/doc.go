// Package imaging provides the pixel-level analysis primitives for the
// plastic waste classifier.
//
// This package implements image decoding and caching, single-pass visual
// feature extraction (brightness, saturation, contrast, transparency),
// downsampled color/texture/shape profiling, binary edge mapping, region
// cropping, and a debug overlay for detected regions. All operations work
// with standard Go image.Image types and use a coordinate system where
// (0,0) is at the top-left corner, X increases rightward, and Y increases
// downward.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. All analysis functions
// are stateless pure functions over their input image and can be called
// concurrently.
//
// # Error Handling
//
// Only structural failures surface as errors: a nil or zero-sized pixel
// buffer (ErrInvalidInput) and image decode failures. The profiler never
// errors; when it cannot analyze an image it returns a documented default
// Analysis so the classification pipeline can degrade instead of failing.
package imaging
