/*
 * config_test.go, part of mogura.
 *
 * Copyright 2024 The mogura Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pdb = `ATOM      1  N   ALA A   1       0.000   0.000   0.000  1.00  0.00           N
ATOM      2  CA  ALA A   1       1.458   0.000   0.000  1.00  0.00           C
ATOM      3  C   ALA A   1       2.000   1.400   0.000  1.00  0.00           C
HETATM    4  O   HOH W   2      10.000  10.000  10.000  1.00  0.00           O
END
`

func TestLoadConfig(t *testing.T) {
	c, err := LoadConfig(strings.NewReader(`
log:
  level: debug
selection: "protein and name CA"
playback:
  mode: loop
  ticks: 12
bonds:
  spatial_index: true
`))
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "console", c.Log.Encoding)
	assert.Equal(t, "protein and name CA", c.Selection)
	assert.Equal(t, PlaybackConfig{Mode: "loop", Ticks: 12}, c.Playback)
	assert.True(t, c.Bonds.SpatialIndex)
	assert.Empty(t, c.Plot.Rama)

	c, err = LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestConfigErrors(t *testing.T) {
	cases := map[string]string{
		"unknown field":  "colour: blue\n",
		"bad level":      "log:\n  level: loud\n",
		"bad encoding":   "log:\n  encoding: xml\n",
		"bad mode":       "playback:\n  mode: backwards\n",
		"negative ticks": "playback:\n  ticks: -1\n",
		"bad selection":  "selection: \"resname and\"\n",
		"not yaml":       "log: [\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(content))
			assert.Error(t, err)
		})
	}
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nothere.yaml"))
	assert.Error(t, err)
}

func TestParseArgs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mogura.yaml")
	require.NoError(t, os.WriteFile(path, []byte("selection: water\nplayback:\n  ticks: 3\n"), 0o644))

	opts, c, err := parseArgs([]string{"-s", "x.pdb", "-config", path, "-loop", "-kdtree"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "x.pdb", opts.structure)
	assert.Equal(t, "water", c.Selection)
	assert.Equal(t, 3, c.Playback.Ticks)
	assert.Equal(t, "loop", c.Playback.Mode)
	assert.True(t, c.Bonds.SpatialIndex)

	_, c, err = parseArgs([]string{"-s", "x.pdb", "-config", path, "-select", "protein", "-ticks", "7"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "protein", c.Selection)
	assert.Equal(t, 7, c.Playback.Ticks)
	assert.Equal(t, "once", c.Playback.Mode)

	_, _, err = parseArgs([]string{}, &bytes.Buffer{})
	assert.Error(t, err)
	_, _, err = parseArgs([]string{"-s", "x.pdb", "-fetch", "1ABC"}, &bytes.Buffer{})
	assert.Error(t, err)
	_, _, err = parseArgs([]string{"-s", "x.pdb", "-select", "name"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	structure := filepath.Join(dir, "ala.pdb")
	require.NoError(t, os.WriteFile(structure, []byte(pdb), 0o644))
	out := filepath.Join(dir, "ala.stz")

	var stdout, stderr bytes.Buffer
	rama := filepath.Join(dir, "rama.png")
	code := run([]string{"-s", structure, "-select", "name CA N", "-o", out, "-rama", rama, "-loglevel", "error"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	_, err := os.Stat(rama)
	assert.NoError(t, err)
	assert.Contains(t, stdout.String(), "atoms: 4\n")
	assert.Contains(t, stdout.String(), "residues: 2\n")
	assert.Contains(t, stdout.String(), "bonds: 2\n")
	assert.Contains(t, stdout.String(), "fragments: 2\n")
	assert.Contains(t, stdout.String(), "selected atoms: 2\n")
	assert.Contains(t, stdout.String(), "selected bonds: 1\n")
	assert.Contains(t, stdout.String(), "selected mass: 26.02\n")

	stdout.Reset()
	code = run([]string{"-s", structure, "-f", out, "-ticks", "3", "-loop", "-kdtree", "-loglevel", "error"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "frames: 1\n")
	assert.Contains(t, stdout.String(), "tick 2 frame 0")

	body := strings.TrimSuffix(pdb, "END\n")
	models := filepath.Join(dir, "models.pdb")
	require.NoError(t, os.WriteFile(models, []byte("MODEL        1\n"+body+"ENDMDL\nMODEL        2\n"+body+"ENDMDL\n"), 0o644))
	stdout.Reset()
	code = run([]string{"-s", models, "-f", models, "-ticks", "2", "-loglevel", "error"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), "atoms: 4\n")
	assert.Contains(t, stdout.String(), "frames: 2\n")
	assert.Contains(t, stdout.String(), "tick 1 frame 1")

	assert.Equal(t, 1, run([]string{"-s", filepath.Join(dir, "nothere.pdb"), "-loglevel", "error"}, &stdout, &stderr))
	assert.Equal(t, 2, run([]string{"-nosuchflag"}, &stdout, &stderr))
}
