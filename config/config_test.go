package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "types", cfg.OutDir)
	assert.Equal(t, "json", cfg.SidecarFormat)
	assert.Equal(t, TransformPreserve, cfg.Policy.TypeNameTransform)
	assert.Equal(t, TransformCamel, cfg.Policy.MemberNameTransform)
	assert.Empty(t, cfg.Inputs)

	// Defaults alone are not runnable; inputs arrive via flags.
	require.Error(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clrdecl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
inputs:
  - exports/core.clrmeta.json
  - exports/extras.clrmeta.json
outDir: dist/types
sidecarFormat: yaml
policy:
  typeNameTransform: pascal
  includeInternalTypes: true
  allowConstructorConstraintLoss: true
  explicitNameOverrides:
    "Lib|My.Ns.Widget": FancyWidget
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"exports/core.clrmeta.json", "exports/extras.clrmeta.json"}, cfg.Inputs)
	assert.Equal(t, "dist/types", cfg.OutDir)
	assert.Equal(t, "yaml", cfg.SidecarFormat)
	assert.Equal(t, TransformPascal, cfg.Policy.TypeNameTransform)
	assert.Equal(t, TransformCamel, cfg.Policy.MemberNameTransform, "unset key keeps its default")
	assert.True(t, cfg.Policy.IncludeInternalTypes)
	assert.True(t, cfg.Policy.AllowConstructorConstraintLoss)
	// Stable-ID keys are case-sensitive and contain dots; exactly the
	// one key from the file must survive, unlowered and unsplit.
	require.Len(t, cfg.Policy.ExplicitNameOverrides, 1)
	assert.Equal(t, "FancyWidget", cfg.Policy.ExplicitNameOverrides["Lib|My.Ns.Widget"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := func() Config {
		cfg := Default()
		cfg.Inputs = []string{"a.clrmeta.json"}
		return cfg
	}

	good := base()
	require.NoError(t, good.Validate())

	badFormat := base()
	badFormat.SidecarFormat = "toml"
	assert.Error(t, badFormat.Validate())

	badTransform := base()
	badTransform.Policy.MemberNameTransform = "snake"
	assert.Error(t, badTransform.Validate())

	noOut := base()
	noOut.OutDir = ""
	assert.Error(t, noOut.Validate())

	emptyInput := base()
	emptyInput.Inputs = []string{""}
	assert.Error(t, emptyInput.Validate())
}
