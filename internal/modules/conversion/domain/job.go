package domain

import "strconv"

// Visibility is the canned access policy applied to a stored object.
type Visibility string

// VisibilityPublicRead lets anyone read the stored object.
const VisibilityPublicRead Visibility = "public-read"

// Params are the numeric tuning arguments handed to the raw converter.
type Params struct {
	// SpotX and SpotY locate the pixel sampled for spot white balance.
	SpotX int
	SpotY int
	// MinLightness is the lower bound of the target L* window. The converter
	// walks exposure until the sampled spot lands in [MinLightness, MinLightness+0.5].
	MinLightness float64
}

// Args renders the positional converter arguments in their fixed order.
func (p Params) Args(inputPath, outputPath string) []string {
	return []string{
		inputPath,
		outputPath,
		strconv.Itoa(p.SpotX),
		strconv.Itoa(p.SpotY),
		strconv.FormatFloat(p.MinLightness, 'f', -1, 64),
	}
}

// Job is one round trip: a raw object pulled to scratch, developed, and pushed back.
type Job struct {
	SourceKey   string
	RawPath     string
	OutputPath  string
	DestKey     string
	ContentType string
	Visibility  Visibility
	Params      Params
}

const (
	DefaultSourceKey   = "IMG_0416.CR2"
	DefaultRawPath     = "/tmp/IMG_0416.CR2"
	DefaultOutputPath  = "/tmp/out.jpg"
	DefaultDestKey     = "IMG_0416.jpg"
	DefaultContentType = "image/jpg"
)

// DefaultJob returns the fixed job every invocation runs.
func DefaultJob() Job {
	return Job{
		SourceKey:   DefaultSourceKey,
		RawPath:     DefaultRawPath,
		OutputPath:  DefaultOutputPath,
		DestKey:     DefaultDestKey,
		ContentType: DefaultContentType,
		Visibility:  VisibilityPublicRead,
		Params: Params{
			SpotX:        2370,
			SpotY:        1740,
			MinLightness: 79,
		},
	}
}
