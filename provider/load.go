// Package provider decodes assembly metadata exports (*.clrmeta.json)
// into the symbol graph the pipeline consumes. Every loaded member
// starts with EmitScope unspecified, provenance Original, and an empty
// final name; generic constraints stay raw for the shape engine's
// closure pass to resolve.
package provider

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/cockroachdb/errors"

	"github.com/clrdecl/clrdecl/ir"
	"github.com/clrdecl/clrdecl/logger"
)

// supportedFormats is the export format range this build understands.
var supportedFormats = mustConstraint(">= 1.0.0, < 2.0.0")

func mustConstraint(s string) *semver.Constraints {
	c, err := semver.NewConstraint(s)
	if err != nil {
		panic(err)
	}
	return c
}

// AssemblyInfo describes one loaded assembly for the binding sidecar.
type AssemblyInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Manifest summarizes what a load produced.
type Manifest struct {
	FormatVersion string         `json:"formatVersion"`
	Assemblies    []AssemblyInfo `json:"assemblies"`
}

// Load reads and decodes one metadata export file.
func Load(path string) (*ir.SymbolGraph, *Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "reading metadata export %s", path)
	}
	g, m, err := Decode(data)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "decoding %s", path)
	}
	return g, m, nil
}

// LoadAll loads several export files into one merged graph. Types from
// later files join the namespaces of earlier ones; the merged graph is
// re-sorted so input file order never affects output.
func LoadAll(paths []string) (*ir.SymbolGraph, *Manifest, error) {
	merged := &ir.SymbolGraph{}
	manifest := &Manifest{}
	byName := make(map[string]*ir.NamespaceSymbol)

	for _, path := range paths {
		g, m, err := Load(path)
		if err != nil {
			return nil, nil, err
		}
		if manifest.FormatVersion == "" {
			manifest.FormatVersion = m.FormatVersion
		}
		manifest.Assemblies = append(manifest.Assemblies, m.Assemblies...)
		for _, ns := range g.Namespaces {
			target, ok := byName[ns.Name]
			if !ok {
				byName[ns.Name] = ns
				merged.Namespaces = append(merged.Namespaces, ns)
				continue
			}
			target.Types = append(target.Types, ns.Types...)
		}
	}
	merged.Sort()
	return merged, manifest, nil
}

// Decode converts raw export JSON into a sorted symbol graph.
func Decode(data []byte) (*ir.SymbolGraph, *Manifest, error) {
	var file exportFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, errors.Wrap(err, "malformed metadata export")
	}

	version, err := semver.NewVersion(file.FormatVersion)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "invalid formatVersion %q", file.FormatVersion)
	}
	if !supportedFormats.Check(version) {
		return nil, nil, errors.Newf(
			"unsupported export format %s (supported: %s)", version, supportedFormats)
	}

	g := &ir.SymbolGraph{}
	manifest := &Manifest{FormatVersion: file.FormatVersion}
	byName := make(map[string]*ir.NamespaceSymbol)

	for _, asm := range file.Assemblies {
		manifest.Assemblies = append(manifest.Assemblies, AssemblyInfo{
			Name:    asm.Name,
			Version: normalizeVersion(asm.Version),
		})
		for _, tj := range asm.Types {
			t, err := convertType(asm.Name, tj)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "type %s", tj.FullName)
			}
			ns, ok := byName[tj.Namespace]
			if !ok {
				ns = &ir.NamespaceSymbol{Name: tj.Namespace}
				byName[tj.Namespace] = ns
				g.Namespaces = append(g.Namespaces, ns)
			}
			ns.Types = append(ns.Types, t)
		}
		logger.Logger.Debugw("assembly decoded", "assembly", asm.Name, "types", len(asm.Types))
	}

	g.Sort()
	return g, manifest, nil
}

// normalizeVersion coerces a 4-part CLR assembly version to semver form
// ("1.2.3.4" -> "1.2.3"). Unparseable versions pass through unchanged.
func normalizeVersion(v string) string {
	if _, err := semver.NewVersion(v); err == nil {
		return v
	}
	parts := strings.Split(v, ".")
	if len(parts) == 4 {
		candidate := strings.Join(parts[:3], ".")
		if _, err := semver.NewVersion(candidate); err == nil {
			return candidate
		}
	}
	return v
}
