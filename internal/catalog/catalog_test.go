package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `
version: "1.2.0"
languages:
  ts:
    name: TypeScript
    extensions: [".ts"]
  py:
    name: Python
    extensions: [".py"]
  js:
    name: JavaScript
    extensions: [".js"]
domains:
  backend:
    architectures: [Monolithic, Microservices]
    apiStyles: [REST]
    frameworks:
      ts: [NestJS, Express.js]
      py: [FastAPI, Express.js]
  mobile:
    frameworks: [React Native, Flutter]
features:
  database:
    sql:
      orms:
        ts: [Prisma]
        py: [SQLAlchemy]
`

func loadTest(t *testing.T, doc string) *Catalog {
	t.Helper()
	c, err := Load([]byte(doc))
	require.NoError(t, err)
	return c
}

func loadIssues(t *testing.T, doc string) []string {
	t.Helper()
	_, err := Load([]byte(doc))
	require.Error(t, err)
	var le *LoadError
	require.True(t, errors.As(err, &le), "expected *LoadError, got %T: %v", err, err)
	return le.Issues
}

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []string{"js", "ts", "py"}, c.LanguageOrder)
	assert.Equal(t, []string{"backend", "frontend", "fullstack", "mobile", "desktop"}, c.DomainOrder)

	py, ok := c.Language("py")
	require.True(t, ok)
	assert.Equal(t, "py", py.ID)
	assert.Equal(t, "Python", py.Name)

	backend, ok := c.Domain("backend")
	require.True(t, ok)
	assert.Equal(t, "backend", backend.ID)
	assert.True(t, backend.HasArchitecture("Clean Architecture"))
	assert.Contains(t, backend.APIStyles, "REST")

	assert.Contains(t, c.Frameworks("backend", "py"), "FastAPI")
	assert.Contains(t, c.Frameworks("frontend", "ts"), "React")
	assert.Nil(t, c.Frameworks("embedded", "ts"))
	assert.Contains(t, c.Features.Containerization.Tools, "docker")

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, c, again)
}

func TestDefaultFeatureLookups(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, c.ORMs("ts"), c.ORMs("js"), "javascript shares the typescript ORM list")
	assert.Contains(t, c.ORMs("py"), "SQLAlchemy")
	assert.NotContains(t, c.ORMs("ts"), "SQLAlchemy")
	assert.Contains(t, c.UnitTestFrameworks("py"), "pytest")
	assert.Contains(t, c.UnitTestFrameworks("ts"), "Vitest")
	assert.Contains(t, c.Linters("ts"), "ESLint + @typescript-eslint")
	assert.Contains(t, c.Formatters("py"), "Black")
	assert.Nil(t, c.Linters("rust"))
}

func TestLoadKeepsDeclarationOrder(t *testing.T) {
	c := loadTest(t, testCatalog)
	assert.Equal(t, []string{"ts", "py", "js"}, c.LanguageOrder)
	assert.Equal(t, []string{"backend", "mobile"}, c.DomainOrder)
	assert.Equal(t, []string{"ts", "py"}, c.Domains["backend"].Frameworks.Languages())
}

func TestEffectiveFrameworks(t *testing.T) {
	c := loadTest(t, testCatalog)

	t.Run("language entry wins", func(t *testing.T) {
		assert.Equal(t, []string{"NestJS", "Express.js"}, c.Frameworks("backend", "ts"))
	})

	t.Run("missing language falls back to deduplicated union", func(t *testing.T) {
		assert.Equal(t, []string{"NestJS", "Express.js", "FastAPI"}, c.Frameworks("backend", "js"))
	})

	t.Run("flat list applies to every language", func(t *testing.T) {
		assert.Equal(t, []string{"React Native", "Flutter"}, c.Frameworks("mobile", "py"))
		assert.True(t, c.Domains["mobile"].Frameworks.IsFlat())
	})
}

func TestFrameworkSourceConstructors(t *testing.T) {
	flat := Flat([]string{"A", "B"})
	assert.True(t, flat.IsFlat())
	_, ok := flat.For("js")
	assert.False(t, ok)
	assert.Equal(t, []string{"A", "B"}, flat.Effective("js"))

	table := PerLanguage([]string{"py", "js", "ts"}, map[string][]string{
		"py": {"Django", "Flask"},
		"js": {"Express.js", "Django"},
		"ts": {},
	})
	assert.False(t, table.IsFlat())
	assert.Equal(t, []string{"py", "js", "ts"}, table.Languages())
	assert.Equal(t, []string{"Django", "Flask"}, table.Effective("py"))
	// an empty entry is treated like a missing one
	assert.Equal(t, []string{"Django", "Flask", "Express.js"}, table.Effective("ts"))

	var zero FrameworkSource
	assert.Empty(t, zero.Effective("js"))
}

func TestPerLanguageUnionMatchesDecodedOrder(t *testing.T) {
	c := loadTest(t, testCatalog)
	decoded := c.Domains["backend"].Frameworks

	table := map[string][]string{}
	for _, lang := range decoded.Languages() {
		names, _ := decoded.For(lang)
		table[lang] = names
	}
	built := PerLanguage(decoded.Languages(), table)

	assert.Equal(t, decoded.Languages(), built.Languages())
	assert.Equal(t, decoded.Effective("js"), built.Effective("js"))
}

func TestPerLanguageKeysOutsideOrder(t *testing.T) {
	src := PerLanguage([]string{"ts", "rust"}, map[string][]string{
		"py": {"FastAPI"},
		"ts": {"NestJS"},
		"js": {"Koa", "NestJS"},
	})
	assert.Equal(t, []string{"ts", "js", "py"}, src.Languages())
	assert.Equal(t, []string{"NestJS", "Koa", "FastAPI"}, src.Effective("go"))
}

func TestEffectiveReturnsCopy(t *testing.T) {
	src := PerLanguage([]string{"js"}, map[string][]string{"js": {"Koa"}})
	got := src.Effective("js")
	got[0] = "mutated"
	assert.Equal(t, []string{"Koa"}, src.Effective("js"))
}

func TestLoadRejectsBrokenFrameworkLists(t *testing.T) {
	t.Run("empty per-language list", func(t *testing.T) {
		doc := strings.Replace(testCatalog, "py: [FastAPI, Express.js]", "py: []", 1)
		assert.Equal(t, []string{"domains.backend.frameworks.py: list is empty"}, loadIssues(t, doc))
	})

	t.Run("duplicate flat entry", func(t *testing.T) {
		doc := strings.Replace(testCatalog, "[React Native, Flutter]", "[Flutter, Flutter]", 1)
		assert.Equal(t, []string{`domains.mobile.frameworks: duplicate "Flutter"`}, loadIssues(t, doc))
	})

	t.Run("problems are reported together", func(t *testing.T) {
		doc := strings.Replace(testCatalog, "[Monolithic, Microservices]", "[Monolithic, Monolithic]", 1)
		doc = strings.Replace(doc, "[React Native, Flutter]", "[]", 1)
		issues := loadIssues(t, doc)
		assert.Len(t, issues, 2)
		assert.Contains(t, issues, `domains.backend.architectures: duplicate "Monolithic"`)
		assert.Contains(t, issues, "domains.mobile.frameworks: list is empty")
	})
}

func TestLoadVersionGate(t *testing.T) {
	t.Run("other major version is refused", func(t *testing.T) {
		doc := strings.Replace(testCatalog, `"1.2.0"`, `"2.0.0"`, 1)
		issues := loadIssues(t, doc)
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0], "not supported")
	})

	t.Run("non-semver version is refused", func(t *testing.T) {
		doc := strings.Replace(testCatalog, `"1.2.0"`, `"latest"`, 1)
		issues := loadIssues(t, doc)
		require.Len(t, issues, 1)
		assert.Contains(t, issues[0], "not semver")
	})

	t.Run("v prefix is accepted", func(t *testing.T) {
		doc := strings.Replace(testCatalog, `"1.2.0"`, `"v1.0.3"`, 1)
		loadTest(t, doc)
	})
}

func TestLoadSchemaViolation(t *testing.T) {
	doc := strings.Replace(testCatalog, "name: Python\n", "", 1)
	issues := loadIssues(t, doc)
	require.NotEmpty(t, issues)
	assert.Contains(t, issues[0], "/languages/py")
}

func TestLoadErrorMessage(t *testing.T) {
	err := &LoadError{Issues: []string{"a", "b"}}
	assert.Equal(t, "invalid catalog:\n  - a\n  - b", err.Error())
}
