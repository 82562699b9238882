package memory_test

import (
	"errors"
	"os"
	"testing"

	"github.com/apeer-micro/adk/pkg/adapters/memory"
	"github.com/apeer-micro/adk/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryOutput_Contract(t *testing.T) {
	out := memory.NewOutput()
	ports.RunFileOutputContract(t, out, ports.FileFixture{
		Root: "/output/",
		Seed: out.Seed,
		Read: out.Read,
	})
}

func TestMemoryOutput_Records(t *testing.T) {
	out := memory.NewOutput()
	require.NoError(t, out.Seed("a.png", "a"))

	require.NoError(t, out.CopyFile("a.png", "/output/a.png"))
	require.NoError(t, out.WriteTextToFile("/output/out.json", "{}"))

	assert.Equal(t, []memory.Copy{{Src: "a.png", Dst: "/output/a.png"}}, out.Copies)
	text, ok := out.Written("/output/out.json")
	assert.True(t, ok)
	assert.Equal(t, "{}", text)

	_, ok = out.Written("/output/a.png")
	assert.False(t, ok, "copies are not writes")
}

func TestMemoryOutput_Fail(t *testing.T) {
	boom := errors.New("boom")
	out := memory.NewOutput()
	out.Fail = func(op, path string) error {
		if op == "write" {
			return boom
		}
		return nil
	}

	assert.ErrorIs(t, out.WriteTextToFile("/output/out.json", "{}"), boom)
	assert.ErrorIs(t, out.CopyFile("missing.png", "/output/missing.png"), os.ErrNotExist)
	assert.Len(t, out.Writes, 1, "failed calls are still recorded")
}
