package intent

const (
	LabelManual   = "manual"
	LabelNotFound = "not_found"

	// ArtifactSuffix marks a request that also wants a generated file.
	ArtifactSuffix = "-image"

	DefaultSamples     = 3
	DefaultTemperature = 0.9
)
