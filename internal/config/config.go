// Package config loads the static topology from a YAML file for the CLI
// entrypoints. Library embedders construct domain.Topology directly.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rahel-ahmed/SCP-firmware/pkg/domain"
)

// File is the on-disk topology schema. Element identities use the
// "module/element" form.
type File struct {
	SYS0               string   `yaml:"sys0"`
	SYS1               string   `yaml:"sys1"`
	AuxUnits           []string `yaml:"aux_units"`
	WakeInterrupt      *int     `yaml:"wake_interrupt"`
	ShutdownDriver     string   `yaml:"shutdown_driver"`
	OrchestratorModule string   `yaml:"orchestrator_module"`
	SoCWakeDomain      string   `yaml:"soc_wake_domain"`
}

// Load reads and validates a topology file.
func Load(path string) (domain.Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Topology{}, fmt.Errorf("reading topology: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates topology YAML.
func Parse(data []byte) (domain.Topology, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return domain.Topology{}, fmt.Errorf("decoding topology: %w", err)
	}
	return f.Topology()
}

// Topology converts the file form into a validated domain.Topology.
func (f File) Topology() (domain.Topology, error) {
	topo := domain.Topology{
		WakeInterrupt:      domain.WakeInterruptNone,
		OrchestratorModule: f.OrchestratorModule,
	}

	var err error
	if topo.SYS0, err = parseID("sys0", f.SYS0); err != nil {
		return domain.Topology{}, err
	}
	if topo.SYS1, err = parseID("sys1", f.SYS1); err != nil {
		return domain.Topology{}, err
	}
	for _, raw := range f.AuxUnits {
		id, err := parseID("aux_units", raw)
		if err != nil {
			return domain.Topology{}, err
		}
		topo.AuxUnits = append(topo.AuxUnits, domain.AuxUnit{ID: id})
	}
	if f.ShutdownDriver != "" {
		if topo.ShutdownDriver, err = parseID("shutdown_driver", f.ShutdownDriver); err != nil {
			return domain.Topology{}, err
		}
	}
	if f.SoCWakeDomain != "" {
		if topo.SoCWakeDomain, err = parseID("soc_wake_domain", f.SoCWakeDomain); err != nil {
			return domain.Topology{}, err
		}
	}
	if f.WakeInterrupt != nil {
		topo.WakeInterrupt = *f.WakeInterrupt
	}

	if err := topo.Validate(); err != nil {
		return domain.Topology{}, err
	}
	return topo, nil
}

func parseID(field, raw string) (domain.ElementID, error) {
	id, err := domain.ParseElementID(raw)
	if err != nil {
		return domain.ElementIDNone, fmt.Errorf("%s: %w", field, err)
	}
	return id, nil
}
