// Package pixel implements the color and image types used on 32-bit linear framebuffers.
//
// The types are compatible with Go's native [color.Color] and [image.Image] / [draw.Image]
// interfaces, so firmware framebuffers can be used with the standard compositor and encoders.
package pixel
