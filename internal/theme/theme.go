// Package theme is the catalog of scene presets. Every preset is plain data;
// switching themes is a lookup, not a procedure, so adding one is adding a row.
package theme

import (
	"github.com/siddh-art-codes/tictactoeisfun-public/internal/apperror"
)

// Color - an opaque 0xRRGGBB value, serialized as a number so clients can feed
// it straight into their material setup.
type Color uint32

// Board styles.
const (
	BoardGrid = "grid" // two vertical and two horizontal lines
	BoardRing = "ring" // a ring on each tile
	BoardTri  = "tri"  // diagonal accents
)

// Weapons.
const (
	WeaponBlaster = "blaster"
	WeaponWand    = "wand"
	WeaponTrident = "trident"
	WeaponCandy   = "candy"
	WeaponStaff   = "staff"
	WeaponCube    = "cube"
	WeaponHeart   = "heart"
)

// Projectile styles. ProjectileBolt is the stock green bolt.
const (
	ProjectileBolt   = "bolt"
	ProjectileBubble = "bubble"
	ProjectileEmber  = "ember"
	ProjectileCube   = "cube"
	ProjectileSnow   = "snow"
	ProjectileHeart  = "heart"
)

// DefaultID is the preset active before the player picks anything.
const DefaultID = "default"

// Config - one renderable preset. Visibility flags say which of the shared
// background groups are on; Scenery names the preset-specific group, empty
// when the preset has none.
type Config struct {
	ID string `json:"id"`

	TileColor   Color   `json:"tile_color"`
	TileOpacity float64 `json:"tile_opacity"`
	LineColor   Color   `json:"line_color"`
	FogColor    Color   `json:"fog_color"`

	Stars      bool `json:"stars"`
	Nebula     bool `json:"nebula"`
	Grid       bool `json:"grid"`
	Platform   bool `json:"platform"`
	BoardLines bool `json:"board_lines"`

	Scenery    string `json:"scenery,omitempty"`
	BoardStyle string `json:"board_style"`
	Weapon     string `json:"weapon"`
	Projectile string `json:"projectile"`
}

// catalog order is presentation order in pickers; default stays first.
var catalog = []Config{
	{ID: DefaultID, TileColor: 0x0f1a4a, TileOpacity: 0.42, LineColor: 0x3ea1ff, FogColor: 0x030614, Stars: true, Nebula: true, Grid: true, Platform: true, BoardLines: true, BoardStyle: BoardGrid, Weapon: WeaponBlaster, Projectile: ProjectileBolt},
	{ID: "clouds", TileColor: 0xffffff, TileOpacity: 0.85, LineColor: 0x3ea1ff, FogColor: 0xdde8ff, Scenery: "clouds", BoardStyle: BoardGrid, Weapon: WeaponBlaster, Projectile: ProjectileBolt},
	{ID: "pastel", TileColor: 0x381a44, TileOpacity: 0.5, LineColor: 0xff9ecb, FogColor: 0x1a0e1a, Nebula: true, Platform: true, BoardLines: true, BoardStyle: BoardGrid, Weapon: WeaponWand, Projectile: ProjectileBolt},
	{ID: "tron", TileColor: 0x000a14, TileOpacity: 0.5, LineColor: 0x00f0ff, FogColor: 0x02121a, Stars: true, Grid: true, Platform: true, BoardLines: true, BoardStyle: BoardGrid, Weapon: WeaponCube, Projectile: ProjectileCube},
	{ID: "desert", TileColor: 0xd9c39a, TileOpacity: 0.6, LineColor: 0x3ea1ff, FogColor: 0xf5e3c6, Platform: true, BoardLines: true, Scenery: "sand", BoardStyle: BoardGrid, Weapon: WeaponStaff, Projectile: ProjectileEmber},
	{ID: "ocean", TileColor: 0x0b2a3a, TileOpacity: 0.6, LineColor: 0x3ea1ff, FogColor: 0x052b3a, Nebula: true, Scenery: "bubbles", BoardStyle: BoardGrid, Weapon: WeaponTrident, Projectile: ProjectileBubble},
	{ID: "forest", TileColor: 0x0d2a1a, TileOpacity: 0.5, LineColor: 0x6cff8a, FogColor: 0x082015, Nebula: true, Platform: true, BoardLines: true, Scenery: "trees", BoardStyle: BoardGrid, Weapon: WeaponStaff, Projectile: ProjectileBolt},
	{ID: "ice", TileColor: 0x1a3344, TileOpacity: 0.5, LineColor: 0xb9e8ff, FogColor: 0x0a1b24, Stars: true, Grid: true, Platform: true, BoardLines: true, Scenery: "snow", BoardStyle: BoardGrid, Weapon: WeaponStaff, Projectile: ProjectileSnow},
	{ID: "lava", TileColor: 0x3a140a, TileOpacity: 0.5, LineColor: 0xff7a3a, FogColor: 0x1a0b06, Nebula: true, Platform: true, BoardLines: true, Scenery: "sparks", BoardStyle: BoardGrid, Weapon: WeaponBlaster, Projectile: ProjectileEmber},
	{ID: "cyberpunk", TileColor: 0x120a22, TileOpacity: 0.5, LineColor: 0xff2a7a, FogColor: 0x050314, Stars: true, Nebula: true, Grid: true, Platform: true, BoardLines: true, Scenery: "billboards", BoardStyle: BoardGrid, Weapon: WeaponCube, Projectile: ProjectileCube},
	{ID: "candy", TileColor: 0xfff1f9, TileOpacity: 0.85, LineColor: 0xffb3da, FogColor: 0xffecf7, Platform: true, BoardLines: true, BoardStyle: BoardGrid, Weapon: WeaponCandy, Projectile: ProjectileHeart},
	{ID: "retro", TileColor: 0x0f0030, TileOpacity: 0.5, LineColor: 0x00ff88, FogColor: 0x080018, Stars: true, Grid: true, Platform: true, BoardLines: true, Scenery: "retrogrid", BoardStyle: BoardGrid, Weapon: WeaponCube, Projectile: ProjectileCube},
	{ID: "sunset", TileColor: 0x26120a, TileOpacity: 0.5, LineColor: 0xffb86b, FogColor: 0x1a0b06, Nebula: true, Platform: true, BoardLines: true, BoardStyle: BoardGrid, Weapon: WeaponBlaster, Projectile: ProjectileBolt},
	{ID: "barbie", TileColor: 0xffe3f1, TileOpacity: 0.85, LineColor: 0xff8fc8, FogColor: 0xffecf7, Platform: true, BoardLines: true, Scenery: "barbie", BoardStyle: BoardRing, Weapon: WeaponHeart, Projectile: ProjectileHeart},
	{ID: "nature", TileColor: 0x1b3a24, TileOpacity: 0.55, LineColor: 0x6cff8a, FogColor: 0x0a1f12, Platform: true, BoardLines: true, Scenery: "trees", BoardStyle: BoardTri, Weapon: WeaponStaff, Projectile: ProjectileBolt},
	{ID: "mountains", TileColor: 0x3a3a3a, TileOpacity: 0.45, LineColor: 0x3ea1ff, FogColor: 0x0e1220, Stars: true, Scenery: "mountains", BoardStyle: BoardRing, Weapon: WeaponBlaster, Projectile: ProjectileSnow},
	{ID: "beach", TileColor: 0xfce7b5, TileOpacity: 0.65, LineColor: 0x3ea1ff, FogColor: 0xaad8ff, Scenery: "beach", BoardStyle: BoardRing, Weapon: WeaponTrident, Projectile: ProjectileBubble},
	{ID: "ancient", TileColor: 0xded7c9, TileOpacity: 0.75, LineColor: 0xcac1af, FogColor: 0xeae2cf, Platform: true, BoardLines: true, Scenery: "ancient", BoardStyle: BoardGrid, Weapon: WeaponStaff, Projectile: ProjectileBolt},
	{ID: "pyramid", TileColor: 0xd8c080, TileOpacity: 0.7, LineColor: 0x3ea1ff, FogColor: 0xffedc6, Scenery: "pyramid", BoardStyle: BoardTri, Weapon: WeaponBlaster, Projectile: ProjectileEmber},
	{ID: "ai", TileColor: 0x0a101a, TileOpacity: 0.55, LineColor: 0x66ccff, FogColor: 0x060a14, Nebula: true, Grid: true, Platform: true, BoardLines: true, Scenery: "circuits", BoardStyle: BoardGrid, Weapon: WeaponCube, Projectile: ProjectileCube},
}

var byID = func() map[string]Config {
	index := make(map[string]Config, len(catalog))
	for _, cfg := range catalog {
		index[cfg.ID] = cfg
	}
	return index
}()

// All returns every preset in catalog order. The slice is a copy.
func All() []Config {
	out := make([]Config, len(catalog))
	copy(out, catalog)

	return out
}

// ByID looks a preset up, returning apperror.ErrThemeNotFound for unknown ids.
func ByID(id string) (Config, error) {
	cfg, ok := byID[id]
	if !ok {
		return Config{}, apperror.ErrThemeNotFound
	}

	return cfg, nil
}

// Grayscale derives the endgame monochrome variant of a preset: the scene
// drains to black and white while layout, weapon and scenery stay put.
func Grayscale(cfg Config) Config {
	cfg.TileColor = 0x1a1a1a
	cfg.LineColor = 0xffffff
	cfg.FogColor = 0x000000

	return cfg
}
