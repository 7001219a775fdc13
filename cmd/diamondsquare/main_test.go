package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/src-d/go-billy.v4/memfs"
	"gopkg.in/src-d/go-billy.v4/util"

	"github.com/z21kamon/Diamond-Square-Islands/heightfield"
	"github.com/z21kamon/Diamond-Square-Islands/terrainio"
)

func TestRunWritesArtifacts(t *testing.T) {
	fs := memfs.New()
	var stdout, stderr bytes.Buffer
	require.NoError(t, runFS(context.Background(), fs, []string{
		"-size", "9", "-seed", "3", "-out", "island",
	}, &stdout, &stderr))

	for _, name := range []string{
		terrainio.HeightName,
		terrainio.ColorName,
		terrainio.RawName,
		terrainio.WaterName,
	} {
		_, err := fs.Stat("island/" + name)
		assert.NoError(t, err, "%v", name)
		assert.Contains(t, stdout.String(), "island/"+name)
	}
	assert.Contains(t, stdout.String(), "seed 3 water ")
	assert.Contains(t, stderr.String(), "generated 9x9 terrain seed=3")

	field, err := terrainio.ReadRaw(fs, "island/"+terrainio.RawName, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, field.Size())
}

func TestRunConfigFile(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "terrain.json", []byte(`{"size": 5, "seed": 11}`), 0644))

	var stdout, stderr bytes.Buffer
	require.NoError(t, runFS(context.Background(), fs, []string{
		"-config", "terrain.json", "-seed", "12",
	}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "generated 5x5 terrain seed=12")

	_, err := terrainio.ReadRaw(fs, terrainio.RawName, 5)
	assert.NoError(t, err)
}

func TestRunInvalid(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := runFS(context.Background(), memfs.New(), []string{"-size", "10"}, &stdout, &stderr)
	assert.True(t, errors.Is(err, heightfield.ErrInvalidSize), "got %v", err)

	err = runFS(context.Background(), memfs.New(), []string{"-bogus"}, &stdout, &stderr)
	assert.Error(t, err)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fs := memfs.New()
	var stdout, stderr bytes.Buffer
	err := runFS(ctx, fs, []string{"-size", "5", "-seed", "1"}, &stdout, &stderr)
	assert.Equal(t, context.Canceled, err)
	_, statErr := fs.Stat(terrainio.RawName)
	assert.Error(t, statErr)
}
