package domain

import "slices"

// ModuleRecord is what the manifest remembers about one built module.
type ModuleRecord struct {
	Module        string   `json:"module"`
	InterfacePath string   `json:"interface_path,omitzero"`
	InterfaceHash string   `json:"interface_hash,omitzero"`
	ObjectPaths   []string `json:"object_paths,omitzero"`
	Fingerprint   string   `json:"fingerprint,omitzero"`
}

// Manifest lists built modules in the order they were built.
type Manifest struct {
	Modules []ModuleRecord `json:"modules"`
}

// Get returns the record of a module.
func (m *Manifest) Get(module string) (ModuleRecord, bool) {
	for _, rec := range m.Modules {
		if rec.Module == module {
			return rec, true
		}
	}
	return ModuleRecord{}, false
}

// Put replaces the record of the same module or appends a new one.
func (m *Manifest) Put(rec ModuleRecord) {
	idx := slices.IndexFunc(m.Modules, func(r ModuleRecord) bool { return r.Module == rec.Module })
	if idx >= 0 {
		m.Modules[idx] = rec
		return
	}
	m.Modules = append(m.Modules, rec)
}

// Objects returns every recorded object path in build order.
func (m *Manifest) Objects() []string {
	var out []string
	for _, rec := range m.Modules {
		out = append(out, rec.ObjectPaths...)
	}
	return out
}

// Interfaces maps module names to their recorded interface artifacts.
func (m *Manifest) Interfaces() map[string]string {
	out := make(map[string]string, len(m.Modules))
	for _, rec := range m.Modules {
		if rec.InterfacePath != "" {
			out[rec.Module] = rec.InterfacePath
		}
	}
	return out
}
