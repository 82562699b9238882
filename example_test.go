package adk_test

import (
	"fmt"
	"log"

	"github.com/apeer-micro/adk"
	"github.com/apeer-micro/adk/pkg/adapters/env"
	"github.com/apeer-micro/adk/pkg/adapters/memory"
	"github.com/apeer-micro/adk/pkg/domain"
)

// ExampleNew_memory runs a module against an injected environment and an in-memory
// filesystem, which is how modules are usually tested.
func ExampleNew_memory() {
	out := memory.NewOutput()
	_ = out.Seed("result/mask.png", "...")

	kit, err := adk.New(
		adk.WithEnvironment(env.Map{
			domain.EnvInputJSON: `{"WFE_output_params_file":"params.json","input_image":"/input/cells.tif","threshold":12}`,
		}),
		adk.WithFileOutput(out),
	)
	if err != nil {
		log.Fatal(err)
	}

	image, _ := kit.GetString("input_image")
	threshold, _ := kit.GetInt("threshold")
	fmt.Println(image, threshold)

	if err := kit.SetOutput("objects", 3); err != nil {
		log.Fatal(err)
	}
	if err := kit.SetFileOutput("mask", "result/mask.png"); err != nil {
		log.Fatal(err)
	}
	if err := kit.Finalize(); err != nil {
		log.Fatal(err)
	}

	params, _ := out.Written(kit.OutputParamsPath())
	fmt.Println(params)
	// Output:
	// /input/cells.tif 12
	// {"objects":3,"mask":"/output/result/mask.png"}
}

// ExampleDevKit_Bind decodes all inputs into a struct in one call.
func ExampleDevKit_Bind() {
	kit, err := adk.New(
		adk.WithEnvironment(env.Map{
			domain.EnvInputJSON: `{"WFE_output_params_file":"params.json","sigma":1.5,"channels":["red","green"]}`,
		}),
		adk.WithFileOutput(memory.NewOutput()),
	)
	if err != nil {
		log.Fatal(err)
	}

	var in struct {
		Sigma    float64  `mapstructure:"sigma"`
		Channels []string `mapstructure:"channels"`
	}
	if err := kit.Bind(&in); err != nil {
		log.Fatal(err)
	}
	fmt.Println(in.Sigma, in.Channels)
	// Output:
	// 1.5 [red green]
}
