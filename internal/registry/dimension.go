// Package registry holds the startup-immutable tables spec.md §5 requires
// readers to take no locks over: the dimension/biome codec, the recipe
// catalogue, block/item/fluid/entity tags, and the command-node graph.
package registry

import "github.com/StoreStation/VibeShitCraft/internal/nbt"

// DimensionSettings is the closed schema spec.md §3 requires for the
// client codec.
type DimensionSettings struct {
	AmbientLight       float32
	Infiniburn         string
	LogicalHeight      int32
	HasRaids           bool
	RespawnAnchorWorks bool
	BedWorks           bool
	PiglinSafe         bool
	CoordinateScale    float32
	Natural            bool
	Ultrawarm          bool
	HasCeiling         bool
	HasSkylight        bool
}

// NBT encodes the settings compound exactly as the client codec expects:
// booleans as bytes, everything else as its natural tag.
func (s DimensionSettings) NBT() nbt.Compound {
	return nbt.Compound{Children: []nbt.Named{
		{Name: "ambient_light", Payload: nbt.FromFloat32(s.AmbientLight)},
		{Name: "infiniburn", Payload: nbt.FromString(s.Infiniburn)},
		{Name: "logical_height", Payload: nbt.FromInt32(s.LogicalHeight)},
		{Name: "has_raids", Payload: nbt.FromBool(s.HasRaids)},
		{Name: "respawn_anchor_works", Payload: nbt.FromBool(s.RespawnAnchorWorks)},
		{Name: "bed_works", Payload: nbt.FromBool(s.BedWorks)},
		{Name: "piglin_safe", Payload: nbt.FromBool(s.PiglinSafe)},
		{Name: "coordinate_scale", Payload: nbt.FromFloat32(s.CoordinateScale)},
		{Name: "natural", Payload: nbt.FromBool(s.Natural)},
		{Name: "ultrawarm", Payload: nbt.FromBool(s.Ultrawarm)},
		{Name: "has_ceiling", Payload: nbt.FromBool(s.HasCeiling)},
		{Name: "has_skylight", Payload: nbt.FromBool(s.HasSkylight)},
	}}
}

// Dimension is a named, numbered dimension with its settings.
type Dimension struct {
	Name     string
	ID       int32
	Settings DimensionSettings
}

// BiomeEffects carries the four color fields the client codec expects.
type BiomeEffects struct {
	SkyColor      int32
	WaterFogColor int32
	WaterColor    int32
	FogColor      int32
}

// BiomeSettings is the closed schema for a biome's NBT element.
type BiomeSettings struct {
	Scale         float32
	Depth         float32
	Category      string
	Precipitation string
	Downfall      float32
	Temperature   float32
	Effects       BiomeEffects
}

// NBT encodes the biome settings compound.
func (s BiomeSettings) NBT() nbt.Compound {
	effects := nbt.Compound{Children: []nbt.Named{
		{Name: "sky_color", Payload: nbt.FromInt32(s.Effects.SkyColor)},
		{Name: "water_fog_color", Payload: nbt.FromInt32(s.Effects.WaterFogColor)},
		{Name: "water_color", Payload: nbt.FromInt32(s.Effects.WaterColor)},
		{Name: "fog_color", Payload: nbt.FromInt32(s.Effects.FogColor)},
	}}
	return nbt.Compound{Children: []nbt.Named{
		{Name: "precipitation", Payload: nbt.FromString(s.Precipitation)},
		{Name: "depth", Payload: nbt.FromFloat32(s.Depth)},
		{Name: "temperature", Payload: nbt.FromFloat32(s.Temperature)},
		{Name: "scale", Payload: nbt.FromFloat32(s.Scale)},
		{Name: "downfall", Payload: nbt.FromFloat32(s.Downfall)},
		{Name: "category", Payload: nbt.FromString(s.Category)},
		{Name: "effects", Payload: effects},
	}}
}

// Biome is a named, numbered biome with its settings.
type Biome struct {
	Name     string
	ID       int32
	Settings BiomeSettings
}

// PlainsBiomeName is the biome spec.md §3 requires to be present or the
// client rejects JoinGame.
const PlainsBiomeName = "minecraft:plains"

// DimensionCodec is the {dimensions, biomes} registry serialized as a
// two-key NBT compound at registry keys "minecraft:dimension_type" and
// "minecraft:worldgen/biome".
type DimensionCodec struct {
	Dimensions []Dimension
	Biomes     []Biome
}

func elementListOf[T any](kind string, items []T, nameOf func(T) string, idOf func(T) int32, elementOf func(T) nbt.Compound) nbt.Compound {
	values := make([]nbt.Tag, len(items))
	for i, it := range items {
		values[i] = nbt.Compound{Children: []nbt.Named{
			{Name: "name", Payload: nbt.FromString(nameOf(it))},
			{Name: "id", Payload: nbt.FromInt32(idOf(it))},
			{Name: "element", Payload: elementOf(it)},
		}}
	}
	elemID := byte(nbt.TagCompound)
	if len(values) == 0 {
		elemID = nbt.TagEnd
	}
	return nbt.Compound{Children: []nbt.Named{
		{Name: "type", Payload: nbt.FromString(kind)},
		{Name: "value", Payload: nbt.List{ElemID: elemID, Items: values}},
	}}
}

// Encode builds the root DimensionCodec compound the JoinGame packet
// embeds.
func (c DimensionCodec) Encode() nbt.Compound {
	dims := elementListOf("minecraft:dimension_type", c.Dimensions,
		func(d Dimension) string { return d.Name },
		func(d Dimension) int32 { return d.ID },
		func(d Dimension) nbt.Compound { return d.Settings.NBT() })
	biomes := elementListOf("minecraft:worldgen/biome", c.Biomes,
		func(b Biome) string { return b.Name },
		func(b Biome) int32 { return b.ID },
		func(b Biome) nbt.Compound { return b.Settings.NBT() })

	return nbt.Compound{Children: []nbt.Named{
		{Name: "minecraft:dimension_type", Payload: dims},
		{Name: "minecraft:worldgen/biome", Payload: biomes},
	}}
}

// HasPlains reports whether the required plains biome is present.
func (c DimensionCodec) HasPlains() bool {
	for _, b := range c.Biomes {
		if b.Name == PlainsBiomeName {
			return true
		}
	}
	return false
}

// DefaultOverworld is the single dimension this design ships.
func DefaultOverworld() Dimension {
	return Dimension{
		Name: "minecraft:overworld",
		ID:   0,
		Settings: DimensionSettings{
			AmbientLight:       0,
			Infiniburn:         "minecraft:infiniburn_overworld",
			LogicalHeight:      256,
			HasRaids:           true,
			RespawnAnchorWorks: false,
			BedWorks:           true,
			PiglinSafe:         false,
			CoordinateScale:    1.0,
			Natural:            true,
			Ultrawarm:          false,
			HasCeiling:         false,
			HasSkylight:        true,
		},
	}
}

// DefaultPlainsBiome is the biome spec.md §3 requires to always be
// present.
func DefaultPlainsBiome() Biome {
	return Biome{
		Name: PlainsBiomeName,
		ID:   1,
		Settings: BiomeSettings{
			Precipitation: "rain",
			Depth:         0.125,
			Temperature:   0.8,
			Scale:         0.05,
			Downfall:      0.4,
			Category:      "plains",
			Effects: BiomeEffects{
				SkyColor:      7907327,
				WaterFogColor: 329011,
				WaterColor:    4159204,
				FogColor:      12638463,
			},
		},
	}
}

// DefaultDimensionCodec returns the single-dimension, single-biome codec
// this design serves.
func DefaultDimensionCodec() DimensionCodec {
	return DimensionCodec{
		Dimensions: []Dimension{DefaultOverworld()},
		Biomes:     []Biome{DefaultPlainsBiome()},
	}
}
