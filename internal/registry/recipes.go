package registry

import (
	"github.com/StoreStation/VibeShitCraft/internal/proto"
)

// Slot is a single candidate item in an ingredient list, or a recipe
// result.
type Slot struct {
	Present bool
	ItemID  int32
	Count   byte
}

// WriteTo encodes a Slot: present flag, and if present the item id
// varint, count byte, and a zero-length NBT (no tag) marker byte.
func (s Slot) WriteTo(w *proto.Writer) {
	w.Bool(s.Present)
	if !s.Present {
		return
	}
	w.VarInt(s.ItemID)
	w.Byte(s.Count)
	w.Byte(0x00) // no NBT data on the ingredient/result
}

// Ingredient is a list of candidate Slots, any of which satisfies the
// recipe.
type Ingredient []Slot

func (ing Ingredient) WriteTo(w *proto.Writer) {
	w.VarInt(int32(len(ing)))
	for _, s := range ing {
		s.WriteTo(w)
	}
}

// RecipeKind identifies which of the closed set of recipe-data shapes a
// Recipe carries.
type RecipeKind string

const (
	KindCraftingShapeless  RecipeKind = "minecraft:crafting_shapeless"
	KindCraftingShaped     RecipeKind = "minecraft:crafting_shaped"
	KindSmelting           RecipeKind = "minecraft:smelting"
	KindBlasting           RecipeKind = "minecraft:blasting"
	KindSmoking            RecipeKind = "minecraft:smoking"
	KindCampfireCooking    RecipeKind = "minecraft:campfire_cooking"
	KindStoneCutting       RecipeKind = "minecraft:stonecutting"
	KindSmithing           RecipeKind = "minecraft:smithing"
	KindCraftingSpecial    RecipeKind = "minecraft:crafting_special"
)

// Recipe is an identifier plus its typed data payload.
type Recipe struct {
	ID   string
	Kind RecipeKind

	// Shapeless/shaped share an ingredient list plus a result; special
	// recipes write no body.
	Group       string
	Width       int32 // shaped only
	Height      int32 // shaped only
	Ingredients []Ingredient
	Result      Slot

	// Smelting-family + stonecutting + smithing.
	Ingredient    Ingredient
	Base          Ingredient // smithing base item
	Addition      Ingredient // smithing addition item
	Experience    float32
	CookingTime   int32
}

// WriteTo encodes one recipe entry: type identifier, recipe identifier,
// then the type-specific body, matching spec.md §3's Recipe data model.
func (r Recipe) WriteTo(w *proto.Writer) {
	w.String(string(r.Kind))
	w.String(r.ID)

	switch r.Kind {
	case KindCraftingShapeless:
		w.String(r.Group)
		w.VarInt(int32(len(r.Ingredients)))
		for _, ing := range r.Ingredients {
			ing.WriteTo(w)
		}
		r.Result.WriteTo(w)
	case KindCraftingShaped:
		w.VarInt(r.Width)
		w.VarInt(r.Height)
		w.String(r.Group)
		for _, ing := range r.Ingredients {
			ing.WriteTo(w)
		}
		r.Result.WriteTo(w)
	case KindCraftingSpecial:
		// No body beyond id/type.
	case KindSmelting, KindBlasting, KindSmoking, KindCampfireCooking:
		w.String(r.Group)
		r.Ingredient.WriteTo(w)
		r.Result.WriteTo(w)
		w.Float32(r.Experience)
		w.VarInt(r.CookingTime)
	case KindStoneCutting:
		w.String(r.Group)
		r.Ingredient.WriteTo(w)
		r.Result.WriteTo(w)
	case KindSmithing:
		r.Base.WriteTo(w)
		r.Addition.WriteTo(w)
		r.Result.WriteTo(w)
	}
}

// DefaultRecipes returns the small built-in recipe set this design ships
// (a stand-in catalogue; world generation and item registries beyond this
// are out of scope per spec.md §1).
func DefaultRecipes() []Recipe {
	return []Recipe{
		{
			ID:   "minecraft:oak_planks",
			Kind: KindCraftingShapeless,
			Ingredients: []Ingredient{
				{{Present: true, ItemID: 17, Count: 1}}, // oak log
			},
			Result: Slot{Present: true, ItemID: 5, Count: 4},
		},
		{
			ID:          "minecraft:furnace",
			Kind:        KindStoneCutting,
			Ingredient:  Ingredient{{Present: true, ItemID: 4, Count: 1}}, // cobblestone
			Result:      Slot{Present: true, ItemID: 61, Count: 1},
		},
	}
}
