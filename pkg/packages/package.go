// Package packages defines the baseline package set installed on a fresh
// Debian/Ubuntu VM and the registry used to look packages up.
package packages

// Category represents a grouping of related packages.
type Category string

const (
	CategoryCLI     Category = "CLI Tools"
	CategoryNetwork Category = "Networking"
	CategoryBuild   Category = "Build Tools"
	CategorySystem  Category = "System"
)

// Package represents one apt package in the provisioning manifest.
type Package struct {
	// Name is the apt package name (e.g., "curl")
	Name string `yaml:"name"`

	// Description is a brief description of the package
	Description string `yaml:"description,omitempty"`

	// Category is the package category for grouping in listings
	Category Category `yaml:"category,omitempty"`

	// Default indicates whether the package is installed by default
	Default bool `yaml:"default"`
}

// Registry holds all manifest packages.
// Note: Registry is not thread-safe and should not be modified concurrently.
type Registry struct {
	// Packages is an ordered list of all packages
	Packages []Package

	// ByName provides quick lookup by package name (stores copies, not pointers)
	ByName map[string]Package

	// ByCategory groups packages by their category
	ByCategory map[Category][]Package
}

// NewRegistry creates an empty package registry.
func NewRegistry() *Registry {
	return &Registry{
		Packages:   make([]Package, 0, 16),
		ByName:     make(map[string]Package),
		ByCategory: make(map[Category][]Package),
	}
}

// Add adds a package to the registry, replacing any entry with the same name.
func (r *Registry) Add(pkg Package) {
	if old, exists := r.ByName[pkg.Name]; exists {
		for i := range r.Packages {
			if r.Packages[i].Name == pkg.Name {
				r.Packages[i] = pkg
				break
			}
		}
		r.removeFromCategory(old)
	} else {
		r.Packages = append(r.Packages, pkg)
	}

	r.ByName[pkg.Name] = pkg // Store copy, not pointer
	r.ByCategory[pkg.Category] = append(r.ByCategory[pkg.Category], pkg)
}

func (r *Registry) removeFromCategory(pkg Package) {
	list := r.ByCategory[pkg.Category]
	for i := range list {
		if list[i].Name == pkg.Name {
			r.ByCategory[pkg.Category] = append(list[:i], list[i+1:]...)
			break
		}
	}
}

// Remove deletes a package from the registry. Returns false if not present.
func (r *Registry) Remove(name string) bool {
	pkg, ok := r.ByName[name]
	if !ok {
		return false
	}

	delete(r.ByName, name)
	r.removeFromCategory(pkg)
	for i := range r.Packages {
		if r.Packages[i].Name == name {
			r.Packages = append(r.Packages[:i], r.Packages[i+1:]...)
			break
		}
	}
	return true
}

// Get returns a package by name, or nil if not found.
func (r *Registry) Get(name string) *Package {
	if pkg, ok := r.ByName[name]; ok {
		return &pkg
	}
	return nil
}

// Categories returns the categories present in the registry, in first-seen
// manifest order.
func (r *Registry) Categories() []Category {
	seen := make(map[Category]bool)
	var categories []Category
	for _, pkg := range r.Packages {
		if !seen[pkg.Category] {
			seen[pkg.Category] = true
			categories = append(categories, pkg.Category)
		}
	}
	return categories
}

// DefaultNames returns the apt names of all packages enabled by default,
// in manifest order.
func (r *Registry) DefaultNames() []string {
	var names []string
	for _, pkg := range r.Packages {
		if pkg.Default {
			names = append(names, pkg.Name)
		}
	}
	return names
}

// Names returns the apt names of all packages, in manifest order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.Packages))
	for _, pkg := range r.Packages {
		names = append(names, pkg.Name)
	}
	return names
}
