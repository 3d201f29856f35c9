package config

import "sort"

// Presets are named starting setups for the toy.
var Presets = map[string]*Config{
	// The classic single hole in the middle of a drifting field.
	"solo": {
		Window:    WindowConfig{Width: 800, Height: 600, Title: DefaultTitle},
		Particles: 100,
		Holes:     1,
		Physics: PhysicsConfig{
			RefMass: 1000, BaseRadius: 15, MinMass: 1,
			MergeDistance: 30, HoleMass: 1000, WaveLifetime: 2,
		},
		TimeScale: 1, ParticleSize: 1,
	},
	// Two holes that will eventually spiral together and merge.
	"binary": {
		Window:    WindowConfig{Width: 800, Height: 600, Title: DefaultTitle},
		Particles: 150,
		Holes:     2,
		Physics: PhysicsConfig{
			RefMass: 1000, BaseRadius: 15, MinMass: 1,
			MergeDistance: 30, HoleMass: 800, WaveLifetime: 2,
		},
		TimeScale: 1, ParticleSize: 1,
	},
	// A dense particle field around many light holes.
	"swarm": {
		Window:    WindowConfig{Width: 1024, Height: 768, Title: DefaultTitle},
		Particles: 400,
		Holes:     5,
		Physics: PhysicsConfig{
			RefMass: 1000, BaseRadius: 15, MinMass: 1,
			MergeDistance: 30, HoleMass: 300, WaveLifetime: 2,
		},
		TimeScale: 1, ParticleSize: 0.8,
	},
	// Heavy holes with a generous merge radius; constant wave bursts.
	"frenzy": {
		Window:    WindowConfig{Width: 1024, Height: 768, Title: DefaultTitle},
		Particles: 250,
		Holes:     8,
		Physics: PhysicsConfig{
			RefMass: 1000, BaseRadius: 15, MinMass: 1,
			MergeDistance: 60, HoleMass: 1500, WaveLifetime: 3,
		},
		TimeScale: 1.2, ParticleSize: 1,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
