package plan

import (
	"encoding/json"
	"log/slog"

	"github.com/nogeniuss/ZygoKit/internal/resolver"
)

// toolConfigs emits config files for the selected testing, quality, and
// database tools, in that order. They are written at the project root.
func toolConfigs(cfg *resolver.Config) []Action {
	var actions []Action
	f := cfg.Features
	if f.Testing != nil {
		actions = append(actions, testConfig(cfg.Language, f.Testing.UnitTest)...)
	}
	if f.Quality != nil {
		actions = append(actions, qualityConfig(cfg.Language, f.Quality.Linter, f.Quality.Formatter)...)
	}
	if f.ORM() == "Prisma" {
		actions = append(actions, prismaSchema(f.SQLType()))
	}
	return actions
}

func testConfig(lang, framework string) []Action {
	switch {
	case isJSFamily(lang) && framework == "Jest":
		return []Action{File("jest.config.js", render("jest.config.js", struct{ TypeScript bool }{lang == "ts"}))}
	case isJSFamily(lang) && framework == "Vitest":
		return []Action{File("vitest.config.ts", render("vitest.config.ts", nil))}
	case lang == "py" && framework == "pytest":
		return []Action{
			File("pytest.ini", render("pytest.ini", nil)),
			File("tests/__init__.py", ""),
		}
	}
	slog.Debug("no config for test framework", "language", lang, "framework", framework)
	return nil
}

type eslintConfig struct {
	Env           eslintEnv           `json:"env"`
	Extends       []string            `json:"extends"`
	ParserOptions eslintParserOptions `json:"parserOptions"`
	Rules         struct{}            `json:"rules"`
}

type eslintEnv struct {
	Node   bool `json:"node"`
	ES2021 bool `json:"es2021"`
}

type eslintParserOptions struct {
	ECMAVersion string `json:"ecmaVersion"`
	SourceType  string `json:"sourceType"`
}

type prettierConfig struct {
	Semi          bool   `json:"semi"`
	TrailingComma string `json:"trailingComma"`
	SingleQuote   bool   `json:"singleQuote"`
	PrintWidth    int    `json:"printWidth"`
	TabWidth      int    `json:"tabWidth"`
}

func qualityConfig(lang, linter, formatter string) []Action {
	var actions []Action
	if isJSFamily(lang) {
		if linter == "ESLint" || linter == "ESLint + @typescript-eslint" {
			extends := []string{"eslint:recommended"}
			if lang == "ts" {
				extends = append(extends, "plugin:@typescript-eslint/recommended")
			}
			actions = append(actions, File(".eslintrc.json", marshalJSON(eslintConfig{
				Env:           eslintEnv{Node: true, ES2021: true},
				Extends:       extends,
				ParserOptions: eslintParserOptions{ECMAVersion: "latest", SourceType: "module"},
			})))
		}
		if formatter == "Prettier" {
			actions = append(actions, File(".prettierrc", marshalJSON(prettierConfig{
				Semi:          true,
				TrailingComma: "es5",
				SingleQuote:   true,
				PrintWidth:    100,
				TabWidth:      2,
			})))
		}
	}
	if lang == "py" {
		if formatter == "Black" {
			actions = append(actions, File("pyproject.toml", render("pyproject.toml", nil)))
		}
		if linter == "Flake8" {
			actions = append(actions, File(".flake8", render("flake8", nil)))
		}
	}
	return actions
}

func prismaSchema(sqlType string) Action {
	provider := "mysql"
	if sqlType == "PostgreSQL" {
		provider = "postgresql"
	}
	return File("prisma/schema.prisma", render("schema.prisma", struct{ Provider string }{provider}))
}

// marshalJSON renders v as two-space indented JSON with a trailing newline.
func marshalJSON(v interface{}) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic("marshaling generated JSON: " + err.Error())
	}
	return string(data) + "\n"
}
