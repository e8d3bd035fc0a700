package catalog

// Catalog is the read-only table of valid option combinations.
type Catalog struct {
	Version string

	// Languages is keyed by language ID ("js", "ts", "py").
	Languages map[string]Language
	// LanguageOrder lists language IDs in declaration order.
	LanguageOrder []string

	// Domains is keyed by domain ID ("backend", "frontend", ...).
	Domains map[string]Domain
	// DomainOrder lists domain IDs in declaration order.
	DomainOrder []string

	Features FeatureCatalog
}

// Language describes one supported programming language.
type Language struct {
	ID              string   `yaml:"-" json:"id"`
	Name            string   `yaml:"name" json:"name"`
	Extensions      []string `yaml:"extensions" json:"extensions"`
	Runtimes        []string `yaml:"runtimes,omitempty" json:"runtimes,omitempty"`
	PackageManagers []string `yaml:"packageManagers,omitempty" json:"packageManagers,omitempty"`
	Versions        []string `yaml:"versions,omitempty" json:"versions,omitempty"`
}

// Domain describes one kind of project and the choices valid inside it.
type Domain struct {
	ID            string          `yaml:"-"`
	Architectures []string        `yaml:"architectures"`
	Patterns      []string        `yaml:"patterns"`
	APIStyles     []string        `yaml:"apiStyles"`
	Rendering     []string        `yaml:"rendering"`
	Frameworks    FrameworkSource `yaml:"frameworks"`
}

// HasArchitecture reports whether name is one of the domain's architectures.
func (d Domain) HasArchitecture(name string) bool {
	return contains(d.Architectures, name)
}

// FeatureCatalog lists the valid values for each optional feature.
type FeatureCatalog struct {
	Authentication   AuthenticationCatalog     `yaml:"authentication"`
	Database         DatabaseCatalog           `yaml:"database"`
	Styling          StylingCatalog            `yaml:"styling"`
	Testing          map[string]TestingCatalog `yaml:"testing"`
	Linting          map[string][]string       `yaml:"linting"`
	Formatting       map[string][]string       `yaml:"formatting"`
	Containerization ContainerizationCatalog   `yaml:"containerization"`
}

// AuthenticationCatalog lists authentication strategies.
type AuthenticationCatalog struct {
	Strategies []string `yaml:"strategies"`
}

// DatabaseCatalog lists SQL and NoSQL databases.
type DatabaseCatalog struct {
	SQL   SQLCatalog   `yaml:"sql"`
	NoSQL NoSQLCatalog `yaml:"nosql"`
}

// SQLCatalog lists SQL databases and the ORMs available per language.
type SQLCatalog struct {
	Databases []string            `yaml:"databases"`
	ORMs      map[string][]string `yaml:"orms"`
}

// NoSQLCatalog lists NoSQL databases.
type NoSQLCatalog struct {
	Databases []string `yaml:"databases"`
}

// StylingCatalog lists CSS frameworks.
type StylingCatalog struct {
	CSSFrameworks []string `yaml:"cssFrameworks"`
}

// TestingCatalog lists test frameworks for one language.
type TestingCatalog struct {
	Unit []string `yaml:"unit"`
}

// ContainerizationCatalog lists container tools.
type ContainerizationCatalog struct {
	Tools []string `yaml:"tools"`
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
