package ports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// FileFixture gives the contract suite access to the storage behind a FileOutput.
type FileFixture struct {
	// Seed creates a file with the given content.
	Seed func(path, content string) error
	// Read returns the content of a file.
	Read func(path string) (string, error)
	// Root is a writable directory used as output root, e.g. "/output/".
	Root string
}

// RunFileOutputContract runs a suite of tests to verify that a FileOutput implementation
// adheres to the defined interface contract.
func RunFileOutputContract(t *testing.T, out FileOutput, fx FileFixture) {
	t.Run("Write and Read", func(t *testing.T) {
		target := fx.Root + "params.json"

		err := out.WriteTextToFile(target, `{"key_one":"value_one"}`)
		require.NoError(t, err, "WriteTextToFile should not return error")

		got, err := fx.Read(target)
		require.NoError(t, err)
		assert.Equal(t, `{"key_one":"value_one"}`, got)
	})

	t.Run("Write Truncates", func(t *testing.T) {
		target := fx.Root + "truncate.json"

		require.NoError(t, out.WriteTextToFile(target, `{"a_long_key":"a_long_value"}`))
		require.NoError(t, out.WriteTextToFile(target, `{}`))

		got, err := fx.Read(target)
		require.NoError(t, err)
		assert.Equal(t, `{}`, got)
	})

	t.Run("Copy Keeps Source", func(t *testing.T) {
		src := "contract/image.png"
		dst := fx.Root + "contract/image.png"
		require.NoError(t, fx.Seed(src, "pixels"))

		err := out.CopyFile(src, dst)
		require.NoError(t, err, "CopyFile should not return error")

		copied, err := fx.Read(dst)
		require.NoError(t, err)
		assert.Equal(t, "pixels", copied)

		original, err := fx.Read(src)
		require.NoError(t, err, "source must remain readable after copy")
		assert.Equal(t, "pixels", original)
	})

	t.Run("Copy Missing Source", func(t *testing.T) {
		err := out.CopyFile("contract/missing.png", fx.Root+"contract/missing.png")
		assert.Error(t, err)
	})
}
