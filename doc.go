/*
Package adk is the module development kit: it lets a containerized processing
module exchange parameters with the workflow engine that runs it.

The engine hands inputs to the module as a JSON object in the WFE_INPUT_JSON
environment variable. That object also names the output params file, which
the module writes under /output/ when it is done. Files the module produces
must live under /output/ as well; the kit copies them there when needed.

# Usage

	package main

	import (
		"log"

		"github.com/apeer-micro/adk"
	)

	func main() {
		kit, err := adk.New()
		if err != nil {
			log.Fatal(err)
		}

		image, err := kit.GetString("input_image")
		if err != nil {
			log.Fatal(err)
		}
		threshold, err := kit.GetInt("threshold")
		if err != nil {
			log.Fatal(err)
		}

		mask := segment(image, threshold) // writes "mask.tiff"

		if err := kit.SetOutput("foreground_ratio", 0.42); err != nil {
			log.Fatal(err)
		}
		if err := kit.SetFileOutput("mask", mask); err != nil { // copied to /output/mask.tiff
			log.Fatal(err)
		}
		if err := kit.Finalize(); err != nil {
			log.Fatal(err)
		}
	}

# Errors

Every failure is one of three kinds from pkg/domain: EnvironmentError (from
New only), InputError (from a Get call) or OutputError (from Set calls and
Finalize). Match them with errors.As, and the reason with errors.Is against the
sentinels in pkg/domain.

# Testing

Inject an in-memory environment and file output to run a module without a
container:

	out := memory.NewOutput()
	kit, err := adk.New(
		adk.WithEnvironment(env.Map{"WFE_INPUT_JSON": `{"WFE_output_params_file":"out.json"}`}),
		adk.WithFileOutput(out),
	)
*/
package adk
