package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// biomeOverrideFile is the on-disk shape of an optional YAML biome table,
// grounded on dmitrymodder-minewire's yaml.v3 config loading: a thin
// struct decoded straight off the file, falling back to built-in defaults
// when the operator supplies nothing.
type biomeOverrideFile struct {
	Biomes []biomeOverrideEntry `yaml:"biomes"`
}

type biomeOverrideEntry struct {
	Name          string  `yaml:"name"`
	ID            int32   `yaml:"id"`
	Precipitation string  `yaml:"precipitation"`
	Temperature   float32 `yaml:"temperature"`
	Downfall      float32 `yaml:"downfall"`
	Category      string  `yaml:"category"`
	SkyColor      int32   `yaml:"sky_color"`
	WaterColor    int32   `yaml:"water_color"`
	WaterFogColor int32   `yaml:"water_fog_color"`
	FogColor      int32   `yaml:"fog_color"`
}

// LoadBiomeOverrides reads a YAML biome table from path and appends its
// entries to the default codec's biome list, replacing any entry that
// shares a name. A missing file is not an error: the caller keeps
// DefaultDimensionCodec() untouched, the same "optional file, built-in
// fallback" shape config.LoadFile uses for server settings.
func LoadBiomeOverrides(path string, codec DimensionCodec) (DimensionCodec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return codec, nil
		}
		return codec, fmt.Errorf("registry: read %s: %w", path, err)
	}

	var file biomeOverrideFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return codec, fmt.Errorf("registry: parse %s: %w", path, err)
	}

	for _, entry := range file.Biomes {
		biome := Biome{
			Name: entry.Name,
			ID:   entry.ID,
			Settings: BiomeSettings{
				Precipitation: entry.Precipitation,
				Temperature:   entry.Temperature,
				Downfall:      entry.Downfall,
				Category:      entry.Category,
				Depth:         0.1,
				Scale:         0.05,
				Effects: BiomeEffects{
					SkyColor:      entry.SkyColor,
					WaterColor:    entry.WaterColor,
					WaterFogColor: entry.WaterFogColor,
					FogColor:      entry.FogColor,
				},
			},
		}
		codec.Biomes = upsertBiome(codec.Biomes, biome)
	}
	return codec, nil
}

func upsertBiome(biomes []Biome, b Biome) []Biome {
	for i, existing := range biomes {
		if existing.Name == b.Name {
			biomes[i] = b
			return biomes
		}
	}
	return append(biomes, b)
}
