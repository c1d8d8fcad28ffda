package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestReprCommand(t *testing.T) {

	type test struct {
		args   []string
		output string
	}

	tests := map[string]test{
		"seasonal": {
			args:   []string{"repr", "--method", "seasonal"},
			output: "seasonal(freq=48,func=mean): 50 x 48\n",
		},
		"gam": {
			args:   []string{"repr", "--method", "gam"},
			output: "gam(freq=48/336): 50 x 53\n",
		},
		"dft": {
			args:   []string{"repr", "--method", "dft"},
			output: "dft(coef=48): 50 x 48\n",
		},
		"feaclip-window": {
			args:   []string{"repr", "--method", "feaclip-window", "--norm", "none"},
			output: "window(win=48,feaclip): 50 x 112\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.output, execute(t, tt.args...))
		})
	}
}

func TestReprCommand_Show(t *testing.T) {
	out := execute(t, "repr", "--method", "feaclip", "--norm", "none", "--show", "2")
	assert.Contains(t, out, "feaclip: 50 x 8\n")
	assert.Contains(t, out, "CROSSINGS")
	assert.Contains(t, out, "consumer-01")
	assert.NotContains(t, out, "consumer-03")
}

func TestReprCommand_Norm(t *testing.T) {
	implicit := execute(t, "repr", "--method", "seasonal", "--show", "2")
	explicit := execute(t, "repr", "--method", "seasonal", "--norm", "z", "--show", "2")
	none := execute(t, "repr", "--method", "seasonal", "--norm", "none", "--show", "2")

	assert.Equal(t, explicit, implicit)
	assert.NotEqual(t, none, implicit)
}

func TestGenerateAndRun(t *testing.T) {

	dir := t.TempDir()
	data := filepath.Join(dir, "elec.csv")
	execute(t, "generate", "--out", data)

	_, err := os.Stat(data)
	require.NoError(t, err)

	charts := filepath.Join(dir, "charts")
	out := execute(t, "run", "--data", data, "--method", "dft", "--k", "4", "--out", charts)
	assert.Contains(t, out, "dft(coef=48) k=4")

	files, err := os.ReadDir(charts)
	require.NoError(t, err)
	assert.Equal(t, 2, len(files))
}

func TestRunCommand_Config(t *testing.T) {

	dir := t.TempDir()
	cfg := filepath.Join(dir, "pipeline.json")
	store := filepath.Join(dir, "store")
	require.NoError(t, os.WriteFile(cfg, []byte(`{
  "seed": 7,
  "freq": 48,
  "method": {"name": "feaclip-window"},
  "k_min": 2,
  "k_max": 4,
  "index": "silhouette",
  "output": "",
  "store": "`+store+`"
}`), 0644))

	out := execute(t, "run", "--config", cfg)
	assert.Contains(t, out, "window(win=48,feaclip)")

	_, err := os.Stat(filepath.Join(store, "history", "elec_load", "runs.events.log"))
	assert.NoError(t, err)

	out = execute(t, "history", "--config", cfg)
	assert.Contains(t, out, "window(win=48,feaclip)")
}

func TestRunCommand_Duplicates(t *testing.T) {

	dir := t.TempDir()
	data := filepath.Join(dir, "dupes.csv")
	csv := "id,t1,t2,t3,t4,t5,t6,t7,t8\n" +
		"a,0,0,0,0,0,0,0,0\n" +
		"b,0,0,0,0,0,0,0,0\n" +
		"c,0,0,0,0,0,0,0,0\n" +
		"d,1,2,3,4,5,6,7,8\n" +
		"e,1,2,3,4,5,6,7,8\n" +
		"f,1,2,3,4,5,6,7,8\n"
	require.NoError(t, os.WriteFile(data, []byte(csv), 0644))

	cfg := filepath.Join(dir, "pipeline.json")
	require.NoError(t, os.WriteFile(cfg, []byte(`{
  "freq": 4,
  "method": {"name": "seasonal", "func": "mean", "norm": "z"},
  "k_min": 2,
  "k_max": 4,
  "index": "davies-bouldin",
  "output": "`+filepath.Join(dir, "charts")+`",
  "store": "`+filepath.Join(dir, "store")+`"
}`), 0644))

	out := execute(t, "run", "--config", cfg, "--data", data)
	assert.Contains(t, out, "k=2")
	assert.Contains(t, out, "degenerate")
}

func TestRunCommand_Errors(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"run", "--method", "sax"})
	assert.Error(t, cmd.Execute())
}
