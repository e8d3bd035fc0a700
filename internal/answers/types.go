package answers

// RawAnswers is the unvalidated record produced by the wizard or read from an
// answers file. Empty strings mean "not answered".
type RawAnswers struct {
	Language     string `yaml:"language" json:"language"`
	ProjectName  string `yaml:"projectName" json:"projectName"`
	Domain       string `yaml:"domain" json:"domain"`
	Architecture string `yaml:"architecture,omitempty" json:"architecture,omitempty"`
	Framework    string `yaml:"framework,omitempty" json:"framework,omitempty"`

	// Optional overrides. The resolver fills defaults when they are empty.
	APIStyle          string `yaml:"apiStyle,omitempty" json:"apiStyle,omitempty"`
	RenderingStrategy string `yaml:"renderingStrategy,omitempty" json:"renderingStrategy,omitempty"`
	PackageManager    string `yaml:"packageManager,omitempty" json:"packageManager,omitempty"`

	Features *Features `yaml:"features,omitempty" json:"features,omitempty"`
}

// Features holds the optional feature selections. A nil pointer or empty
// string leaves the feature unset.
type Features struct {
	Authentication   *Authentication `yaml:"authentication,omitempty" json:"authentication,omitempty"`
	Database         *Database       `yaml:"database,omitempty" json:"database,omitempty"`
	Styling          string          `yaml:"styling,omitempty" json:"styling,omitempty"`
	Testing          *Testing        `yaml:"testing,omitempty" json:"testing,omitempty"`
	Quality          *Quality        `yaml:"quality,omitempty" json:"quality,omitempty"`
	Containerization string          `yaml:"containerization,omitempty" json:"containerization,omitempty"`
}

type Authentication struct {
	Strategy string `yaml:"strategy" json:"strategy"`
}

type Database struct {
	SQL   *SQLDatabase   `yaml:"sql,omitempty" json:"sql,omitempty"`
	NoSQL *NoSQLDatabase `yaml:"nosql,omitempty" json:"nosql,omitempty"`
}

type SQLDatabase struct {
	Type string `yaml:"type" json:"type"`
	ORM  string `yaml:"orm,omitempty" json:"orm,omitempty"`
}

type NoSQLDatabase struct {
	Type string `yaml:"type" json:"type"`
}

type Testing struct {
	UnitTest string `yaml:"unitTest" json:"unitTest"`
}

type Quality struct {
	Linter    string `yaml:"linter,omitempty" json:"linter,omitempty"`
	Formatter string `yaml:"formatter,omitempty" json:"formatter,omitempty"`
}

// Clone returns a deep copy of f. Clone of nil is nil.
func (f *Features) Clone() *Features {
	if f == nil {
		return nil
	}
	out := &Features{
		Styling:          f.Styling,
		Containerization: f.Containerization,
	}
	if f.Authentication != nil {
		a := *f.Authentication
		out.Authentication = &a
	}
	if f.Database != nil {
		db := &Database{}
		if f.Database.SQL != nil {
			sql := *f.Database.SQL
			db.SQL = &sql
		}
		if f.Database.NoSQL != nil {
			nosql := *f.Database.NoSQL
			db.NoSQL = &nosql
		}
		out.Database = db
	}
	if f.Testing != nil {
		t := *f.Testing
		out.Testing = &t
	}
	if f.Quality != nil {
		q := *f.Quality
		out.Quality = &q
	}
	return out
}

// SQLType returns the selected SQL database, or "".
func (f *Features) SQLType() string {
	if f == nil || f.Database == nil || f.Database.SQL == nil {
		return ""
	}
	return f.Database.SQL.Type
}

// ORM returns the selected ORM, or "".
func (f *Features) ORM() string {
	if f == nil || f.Database == nil || f.Database.SQL == nil {
		return ""
	}
	return f.Database.SQL.ORM
}

// NoSQLType returns the selected NoSQL database, or "".
func (f *Features) NoSQLType() string {
	if f == nil || f.Database == nil || f.Database.NoSQL == nil {
		return ""
	}
	return f.Database.NoSQL.Type
}

// UsesDocker reports whether Docker containerization was selected.
func (f *Features) UsesDocker() bool {
	return f != nil && f.Containerization == "docker"
}
