package config

// bundleFile mirrors the bundle.yaml project manifest.
type bundleFile struct {
	Name    string              `yaml:"name"`
	Version string              `yaml:"version"`
	Python  string              `yaml:"python"`
	Scripts map[string]string   `yaml:"scripts"`
	Groups  map[string][]string `yaml:"groups"`
}

// lockFile mirrors the bundle.lock locked dependency graph produced by the
// external resolver.
type lockFile struct {
	Version  int         `yaml:"version"`
	Packages []lockEntry `yaml:"packages"`
}

type lockEntry struct {
	Name      string          `yaml:"name"`
	Version   string          `yaml:"version"`
	Requires  []string        `yaml:"requires"`
	Artifacts []artifactEntry `yaml:"artifacts"`
}

type artifactEntry struct {
	File string `yaml:"file"`
	Hash string `yaml:"hash"`
}
