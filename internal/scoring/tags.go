package scoring

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxTags is the platform limit on tags per video.
const MaxTags = 30

var ErrTagLimit = errors.New("tag limit reached")

var tagTemplates = []string{
	"%s",
	"%s tutorial",
	"%s indonesia",
	"%s 2025",
	"cara %s",
	"belajar %s",
	"%s untuk pemula",
	"%s lengkap",
	"%s bahasa indonesia",
	"%s terbaru",
	"tips %s",
	"panduan %s",
	"%s mudah",
	"%s gratis",
	"%s step by step",
	"%s dasar",
	"%s advanced",
	"%s tips dan trik",
	"%s update",
	"%s live",
}

// GenerateTags expands a keyword into the template tags plus lower, upper and
// title case variants, without duplicates and in template order.
func GenerateTags(keyword string) []string {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return []string{}
	}

	candidates := make([]string, 0, len(tagTemplates)+3)
	for _, t := range tagTemplates {
		candidates = append(candidates, strings.ReplaceAll(t, "%s", keyword))
	}
	candidates = append(candidates,
		strings.ToLower(keyword),
		strings.ToUpper(keyword),
		titleCase(keyword),
	)

	return appendUnique(nil, candidates...)
}

// Category is a preset group of tags for a common video genre.
type Category struct {
	Name     string
	Keywords []string
}

var Categories = []Category{
	{Name: "Tutorial", Keywords: []string{"tutorial", "belajar", "cara", "panduan", "guide"}},
	{Name: "Review", Keywords: []string{"review", "unboxing", "hands-on", "first impression"}},
	{Name: "Gaming", Keywords: []string{"gameplay", "walkthrough", "tips", "guide", "gaming"}},
	{Name: "Vlog", Keywords: []string{"vlog", "daily", "life", "story", "behind the scenes"}},
	{Name: "Tech", Keywords: []string{"technology", "gadget", "smartphone", "laptop", "tech"}},
	{Name: "Food", Keywords: []string{"recipe", "cooking", "food", "kuliner", "masak"}},
}

// CategoryNamed finds a category by case-insensitive name.
func CategoryNamed(name string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Category{}, false
}

// AddCategory appends the category keywords missing from tags.
func AddCategory(tags []string, c Category) []string {
	return appendUnique(tags, c.Keywords...)
}

// TagSelection is the set of tags picked for copying, capped at MaxTags.
type TagSelection struct {
	selected []string
}

// Toggle adds tag, or removes it when already selected.
func (s *TagSelection) Toggle(tag string) error {
	for i, t := range s.selected {
		if t == tag {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return nil
		}
	}
	if len(s.selected) >= MaxTags {
		return ErrTagLimit
	}
	s.selected = append(s.selected, tag)
	return nil
}

// SelectAll replaces the selection with the first MaxTags tags.
func (s *TagSelection) SelectAll(tags []string) {
	n := min(len(tags), MaxTags)
	s.selected = append([]string(nil), tags[:n]...)
}

func (s *TagSelection) Clear() {
	s.selected = nil
}

func (s *TagSelection) Selected() []string {
	return append([]string(nil), s.selected...)
}

// Export joins the selection for pasting, or all tags when nothing is selected.
func (s *TagSelection) Export(all []string) string {
	if len(s.selected) > 0 {
		return strings.Join(s.selected, ", ")
	}
	return strings.Join(all, ", ")
}

func appendUnique(dst []string, values ...string) []string {
	seen := make(map[string]struct{}, len(dst)+len(values))
	out := make([]string, 0, len(dst)+len(values))
	for _, v := range append(append([]string(nil), dst...), values...) {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// titleCase upper-cases the first letter of every space separated word.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = strings.ToUpper(string(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
