package domain

const (
	// EnvInputJSON is the environment variable carrying the input envelope.
	EnvInputJSON = "WFE_INPUT_JSON"

	// KeyOutputParamsFile names the envelope field holding the output params file name.
	KeyOutputParamsFile = "WFE_output_params_file"

	// KeyLegacyOutputParamsFile is accepted when KeyOutputParamsFile is absent.
	// Older platform releases sent this name.
	KeyLegacyOutputParamsFile = "output_params_file"

	// OutputRoot is the directory every referenced output file must live under.
	OutputRoot = "/output/"
)
