// Package convolution implements the time-axis filters applied to
// per-utterance frame matrices.
//
// A frame matrix holds one fixed-width feature vector per time step. Each
// filter slides a centred window along the time axis, after padding both ends
// of the sequence with zero frames, and produces a matrix of identical shape.
//
// Three filters are available:
//
//   - RunningMean: box blur, the per-dimension mean of an odd-sized window
//   - Laplacian: fixed 3-tap sharpen with coefficients (-1, 4, -1), or
//     (-1, 8, -1) when MaxSharpen is set
//   - BlurThenSharpen: RunningMean followed by Laplacian, each stage padded
//     for its own window
//
// # Usage
//
//	spec, err := convolution.NewSpec(convolution.RunningMean, 5, false)
//	out, err := convolution.Apply(frames, spec)
//
// Spec.WindowTag names the configuration for output directory layouts:
//
//	av_ws_5
//	lapl_ws_3_max_sharpen
//	av_ws_5_lapl_ws_3
package convolution
