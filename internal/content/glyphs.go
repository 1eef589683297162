package content

import "strings"

// Glyph names a renderable icon. The frontend maps these to its icon set;
// this side only decides which one a record gets.
type Glyph string

const (
	GlyphCode       Glyph = "code"
	GlyphServer     Glyph = "server"
	GlyphSmartphone Glyph = "smartphone"
	GlyphPalette    Glyph = "palette"
	GlyphPenTool    Glyph = "pen-tool"
	GlyphDatabase   Glyph = "database"
	GlyphGlobe      Glyph = "globe"
	GlyphCloud      Glyph = "cloud"
	GlyphLayout     Glyph = "layout"
)

// serviceGlyphs maps the icon keys the admin can assign to a service, plus a
// few legacy service titles that were stored as icon values.
var serviceGlyphs = map[string]Glyph{
	"Code":               GlyphCode,
	"Server":             GlyphServer,
	"Smartphone":         GlyphSmartphone,
	"Palette":            GlyphPalette,
	"PenTool":            GlyphPenTool,
	"Database":           GlyphDatabase,
	"Web Development":    GlyphCode,
	"API Design":         GlyphServer,
	"Mobile Development": GlyphSmartphone,
}

// ServiceGlyph resolves a service's symbolic icon key to a glyph.
func ServiceGlyph(icon string) Glyph {
	if g, ok := serviceGlyphs[icon]; ok {
		return g
	}
	return GlyphCode
}

type glyphRule struct {
	key   string
	glyph Glyph
}

// skillGlyphRules is an ordered table: first substring match wins.
var skillGlyphRules = []glyphRule{
	{"django", GlyphDatabase},
	{"drf", GlyphDatabase},
	{"react", GlyphCode},
	{"next", GlyphCode},
	{"python", GlyphCode},
	{"javascript", GlyphGlobe},
	{"typescript", GlyphGlobe},
	{"postgresql", GlyphDatabase},
	{"sql", GlyphDatabase},
	{"docker", GlyphCloud},
	{"aws", GlyphCloud},
	{"server", GlyphServer},
	{"framework", GlyphLayout},
	{"library", GlyphLayout},
	{"mobile", GlyphSmartphone},
	{"ui", GlyphLayout},
	{"ux", GlyphLayout},
	{"design", GlyphLayout},
}

// SkillGlyph picks a glyph for a skill: the category key takes priority,
// then the first rule whose key occurs in the lowercased skill name.
func SkillGlyph(s Skill) Glyph {
	if s.Category != "" {
		for _, r := range skillGlyphRules {
			if r.key == s.Category {
				return r.glyph
			}
		}
	}

	name := strings.ToLower(s.Name)
	for _, r := range skillGlyphRules {
		if strings.Contains(name, r.key) {
			return r.glyph
		}
	}

	return GlyphGlobe
}
