// ABOUTME: Simple linear resampler for converting audio sample rates
// ABOUTME: Converts whole interleaved clips using linear interpolation
package resample

// Clip resamples interleaved samples from inputRate to outputRate using
// linear interpolation. The input is returned unchanged when the rates
// already match.
func Clip(input []int16, channels, inputRate, outputRate int) []int16 {
	if inputRate == outputRate || channels == 0 || len(input) == 0 {
		return input
	}

	inputFrames := len(input) / channels
	if inputFrames < 2 {
		return input
	}

	ratio := float64(inputRate) / float64(outputRate)
	outputFrames := int(float64(inputFrames) / ratio)
	output := make([]int16, 0, outputFrames*channels)

	position := 0.0
	for outIdx := 0; outIdx < outputFrames; outIdx++ {
		inputIdx := int(position)
		if inputIdx > inputFrames-1 {
			inputIdx = inputFrames - 1
		}
		frac := position - float64(inputIdx)

		for ch := 0; ch < channels; ch++ {
			sample1 := input[inputIdx*channels+ch]
			// Past the final frame, interpolate against a held last sample.
			sample2 := sample1
			if inputIdx+1 < inputFrames {
				sample2 = input[(inputIdx+1)*channels+ch]
			}
			interpolated := float64(sample1)*(1.0-frac) + float64(sample2)*frac
			output = append(output, int16(interpolated))
		}

		position += ratio
	}

	return output
}
