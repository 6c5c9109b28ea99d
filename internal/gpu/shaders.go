//go:build !nogpu

package gpu

import (
	_ "embed"
	"fmt"

	"github.com/lifer0se/waycolor"
)

// Embedded WGSL shader sources, one self-contained program per
// gradient surface. Every program shares the vertex stage, the Params
// uniform block, and the vs_main/fs_main entry points; only the
// fragment field differs.

//go:embed shaders/plane.wgsl
var planeShaderSource string

//go:embed shaders/slider_r.wgsl
var sliderRShaderSource string

//go:embed shaders/slider_g.wgsl
var sliderGShaderSource string

//go:embed shaders/slider_b.wgsl
var sliderBShaderSource string

//go:embed shaders/slider_h.wgsl
var sliderHShaderSource string

//go:embed shaders/slider_s.wgsl
var sliderSShaderSource string

//go:embed shaders/slider_v.wgsl
var sliderVShaderSource string

// shaderSource returns the WGSL program for kind.
func shaderSource(kind waycolor.Kind) (string, error) {
	switch kind {
	case waycolor.MainPlane:
		return planeShaderSource, nil
	case waycolor.SliderR:
		return sliderRShaderSource, nil
	case waycolor.SliderG:
		return sliderGShaderSource, nil
	case waycolor.SliderB:
		return sliderBShaderSource, nil
	case waycolor.SliderH:
		return sliderHShaderSource, nil
	case waycolor.SliderS:
		return sliderSShaderSource, nil
	case waycolor.SliderV:
		return sliderVShaderSource, nil
	}
	return "", fmt.Errorf("no shader for kind %d", kind)
}
