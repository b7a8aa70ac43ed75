package command

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry is the in-memory command table: a case-insensitive name index
// plus a secondary category index preserving registration order.
type Registry struct {
	mu         sync.RWMutex
	byName     map[string]*Descriptor
	byCategory map[string][]*Descriptor
}

func NewRegistry() *Registry {
	return &Registry{
		byName:     make(map[string]*Descriptor),
		byCategory: make(map[string][]*Descriptor),
	}
}

func key(name string) string { return strings.ToLower(name) }

// Register adds d, overwriting any existing descriptor with the same name
// (case-insensitive) and updating both indices.
func (r *Registry) Register(d Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key(d.Name)
	if existing, ok := r.byName[k]; ok {
		r.removeFromCategoryLocked(existing)
	}
	cp := d
	r.byName[k] = &cp

	catKey := key(d.Category)
	r.byCategory[catKey] = append(r.byCategory[catKey], &cp)
}

func (r *Registry) removeFromCategoryLocked(d *Descriptor) {
	catKey := key(d.Category)
	list := r.byCategory[catKey]
	for i, existing := range list {
		if key(existing.Name) == key(d.Name) {
			r.byCategory[catKey] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// Find looks up a descriptor by name, case-insensitively.
func (r *Registry) Find(name string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byName[key(name)]
	return d, ok
}

// GetCategories returns lexicographically sorted unique category names as
// they were registered (original casing of the first registration wins).
func (r *Registry) GetCategories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]string)
	for _, list := range r.byCategory {
		if len(list) == 0 {
			continue
		}
		seen[key(list[0].Category)] = list[0].Category
	}
	out := make([]string, 0, len(seen))
	for _, name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// GetByCategory returns the descriptors registered under cat, in
// registration order. Unknown categories return an empty, non-nil slice.
func (r *Registry) GetByCategory(cat string) []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.byCategory[key(cat)]
	out := make([]*Descriptor, len(list))
	copy(out, list)
	return out
}

// All returns every registered descriptor in no particular order.
func (r *Registry) All() []*Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Descriptor, 0, len(r.byName))
	for _, d := range r.byName {
		out = append(out, d)
	}
	return out
}

func kindOf(d *Descriptor) string {
	if d.IsMutation {
		return "do"
	}
	return "get"
}

// FormatCategoryList renders the top-level help text: a count line, one
// summary line per category, then a tutorial footer.
func (r *Registry) FormatCategoryList() string {
	cats := r.GetCategories()
	total := 0
	var b strings.Builder
	lines := make([]string, 0, len(cats))
	for _, cat := range cats {
		list := r.GetByCategory(cat)
		total += len(list)
		reads, mutations := 0, 0
		for _, d := range list {
			if d.IsMutation {
				mutations++
			} else {
				reads++
			}
		}
		lines = append(lines, fmt.Sprintf("  %s (%d) — %d read, %d mutation", cat, len(list), reads, mutations))
	}

	fmt.Fprintf(&b, "%d commands in %d categories:\n", total, len(cats))
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\nUse help(\"<category>\") to list commands in a category, or help(\"<category>.<command>\") for details on one command.")
	return b.String()
}

// FormatCategory renders the command list for one category.
func (r *Registry) FormatCategory(cat string) (string, bool) {
	list := r.GetByCategory(cat)
	if len(list) == 0 {
		return "", false
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d commands):\n", cat, len(list))
	for _, d := range list {
		fmt.Fprintf(&b, "  [%s] %s — %s\n", kindOf(d), d.Name, d.Description)
	}
	return strings.TrimRight(b.String(), "\n"), true
}

// FormatCommand renders the detailed help text for one command.
func (r *Registry) FormatCommand(name string) (string, bool) {
	d, ok := r.Find(name)
	if !ok {
		return "", false
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]\n%s\n\n", d.Name, kindOf(d), d.Description)
	if len(d.Parameters) == 0 {
		b.WriteString("No parameters.\n")
	} else {
		b.WriteString("Parameters:\n")
		for _, p := range d.Parameters {
			req := "optional"
			if p.Required {
				req = "required"
			}
			fmt.Fprintf(&b, "  %s (%s, %s) — %s\n", p.Name, p.Type, req, p.Description)
		}
	}
	b.WriteString("\nExample:\n")
	fmt.Fprintf(&b, "%s(\"%s\", '%s')\n", kindOf(d), d.Name, exampleParams(d))
	return strings.TrimRight(b.String(), "\n"), true
}

func exampleParams(d *Descriptor) string {
	if len(d.Parameters) == 0 {
		return "{}"
	}
	var parts []string
	for _, p := range d.Parameters {
		parts = append(parts, fmt.Sprintf("\"%s\": ...", p.Name))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
