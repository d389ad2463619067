// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/fisc/isa"
)

func TestWriteObject(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "loop.hex")

	err := writeObject(path, []isa.Code{0x90, 0x44, 0x04, 0xc5})
	assert.NoError(err)

	data, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Equal("v2.0 raw\n90\n44\n4\nc5\n", string(data))

	// Only the object file remains.
	entries, err := os.ReadDir(dir)
	assert.NoError(err)
	assert.Equal(1, len(entries))

	info, err := os.Stat(path)
	assert.NoError(err)
	assert.Equal(os.FileMode(0o644), info.Mode().Perm())
}

func TestWriteObjectMissingDir(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "missing", "loop.hex")

	err := writeObject(path, []isa.Code{0x90})
	assert.Error(err)

	_, err = os.Stat(path)
	assert.True(os.IsNotExist(err))
}
