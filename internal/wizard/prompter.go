package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nogeniuss/ZygoKit/internal/answers"
	"github.com/nogeniuss/ZygoKit/internal/catalog"
	"github.com/nogeniuss/ZygoKit/internal/resolver"
)

// DefaultProjectName is used when the project name prompt is left empty.
const DefaultProjectName = "my-app"

// stylingChoices caps the CSS framework menu.
const stylingChoices = 10

// Prompter asks questions with numbered menus. Invalid input is reported and
// the question is asked again.
type Prompter struct {
	cat *catalog.Catalog
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter returns a Prompter offering the choices in cat.
func NewPrompter(cat *catalog.Catalog, r io.Reader, w io.Writer) *Prompter {
	return &Prompter{cat: cat, in: bufio.NewReader(r), out: w}
}

func (p *Prompter) AskLanguage() (string, error) {
	labels := make([]string, len(p.cat.LanguageOrder))
	for i, id := range p.cat.LanguageOrder {
		lang := p.cat.Languages[id]
		labels[i] = fmt.Sprintf("%s (%s)", strings.ToUpper(id), strings.Join(lang.Extensions, ", "))
	}
	idx, err := p.choose("Available languages:", labels, "")
	if err != nil {
		return "", err
	}
	id := p.cat.LanguageOrder[idx]
	p.selected(strings.ToUpper(id))
	return id, nil
}

func (p *Prompter) AskProjectName() (string, error) {
	for {
		fmt.Fprintf(p.out, "\nProject name (%s): ", DefaultProjectName)
		line, err := p.readLine()
		if err != nil {
			return "", fmt.Errorf("reading project name: %w", err)
		}
		name := strings.TrimSpace(line)
		if name == "" {
			name = DefaultProjectName
		}
		if issue := resolver.ValidProjectName(name); issue != "" {
			fmt.Fprintf(p.out, "%s\n", issue)
			continue
		}
		return name, nil
	}
}

func (p *Prompter) AskDomain() (string, error) {
	title := cases.Title(language.English)
	labels := make([]string, len(p.cat.DomainOrder))
	for i, id := range p.cat.DomainOrder {
		labels[i] = title.String(id)
	}
	idx, err := p.choose("Project types:", labels, "Back")
	if err != nil {
		return "", err
	}
	if idx < 0 {
		return "", ErrBack
	}
	id := p.cat.DomainOrder[idx]
	p.selected(id)
	return id, nil
}

func (p *Prompter) AskArchitecture(domain string) (string, error) {
	d, _ := p.cat.Domain(domain)
	if len(d.Architectures) == 0 {
		fmt.Fprintf(p.out, "\nNo architectures are defined for %s.\n", domain)
		return "", ErrSkip
	}
	idx, err := p.choose(fmt.Sprintf("Architectures for %s:", domain), d.Architectures, "Back")
	if err != nil {
		return "", err
	}
	if idx < 0 {
		return "", ErrBack
	}
	p.selected(d.Architectures[idx])
	return d.Architectures[idx], nil
}

func (p *Prompter) AskFramework(domain, lang string) (string, error) {
	names := p.cat.Frameworks(domain, lang)
	if len(names) == 0 {
		fmt.Fprintf(p.out, "\nNo frameworks available for %s in %s.\n", lang, domain)
		ok, err := p.confirm("Continue without a framework?", false)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrBack
		}
		return resolver.FrameworkNone, nil
	}

	idx, err := p.choose(fmt.Sprintf("Frameworks (%s):", lang), names, "Back")
	if err != nil {
		return "", err
	}
	if idx < 0 {
		return "", ErrBack
	}
	p.selected(names[idx])
	return names[idx], nil
}

func (p *Prompter) AskFeatures(domain, lang string) (*answers.Features, error) {
	ok, err := p.confirm("Configure additional features (auth, database, styling, ...)?", false)
	if err != nil || !ok {
		return nil, err
	}

	f := &answers.Features{}
	steps := []func(*answers.Features, string, string) error{
		p.askAuthentication,
		p.askDatabase,
		p.askStyling,
		p.askTesting,
		p.askQuality,
		p.askContainerization,
	}
	for _, step := range steps {
		if err := step(f, domain, lang); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func (p *Prompter) askAuthentication(f *answers.Features, _, _ string) error {
	strategies := p.cat.Features.Authentication.Strategies
	idx, err := p.choose("Authentication strategies:", strategies, "Skip")
	if err != nil || idx < 0 {
		return err
	}
	f.Authentication = &answers.Authentication{Strategy: strategies[idx]}
	p.selected(strategies[idx])
	return nil
}

func (p *Prompter) askDatabase(f *answers.Features, _, lang string) error {
	kinds := []string{"SQL", "NoSQL", "Both"}
	idx, err := p.choose("Database type:", kinds, "Skip")
	if err != nil || idx < 0 {
		return err
	}
	kind := kinds[idx]
	db := &answers.Database{}

	if kind == "SQL" || kind == "Both" {
		sql := p.cat.Features.Database.SQL
		i, err := p.choose("SQL databases:", sql.Databases, "")
		if err != nil {
			return err
		}
		db.SQL = &answers.SQLDatabase{Type: sql.Databases[i]}
		p.selected(sql.Databases[i])

		if orms := p.cat.ORMs(lang); len(orms) > 0 {
			i, err := p.choose("ORMs:", orms, "")
			if err != nil {
				return err
			}
			db.SQL.ORM = orms[i]
			p.selected(orms[i])
		}
	}
	if kind == "NoSQL" || kind == "Both" {
		nosql := p.cat.Features.Database.NoSQL.Databases
		i, err := p.choose("NoSQL databases:", nosql, "")
		if err != nil {
			return err
		}
		db.NoSQL = &answers.NoSQLDatabase{Type: nosql[i]}
		p.selected(nosql[i])
	}
	f.Database = db
	return nil
}

func (p *Prompter) askStyling(f *answers.Features, domain, _ string) error {
	if domain != "frontend" && domain != "fullstack" {
		return nil
	}
	options := p.cat.Features.Styling.CSSFrameworks
	if len(options) > stylingChoices {
		options = options[:stylingChoices]
	}
	idx, err := p.choose("CSS frameworks:", options, "Skip")
	if err != nil || idx < 0 {
		return err
	}
	f.Styling = options[idx]
	p.selected(options[idx])
	return nil
}

func (p *Prompter) askTesting(f *answers.Features, _, lang string) error {
	options := p.cat.UnitTestFrameworks(lang)
	if len(options) == 0 {
		return nil
	}
	ok, err := p.confirm("Add a test setup?", false)
	if err != nil || !ok {
		return err
	}
	idx, err := p.choose("Unit test frameworks:", options, "")
	if err != nil {
		return err
	}
	f.Testing = &answers.Testing{UnitTest: options[idx]}
	p.selected(options[idx])
	return nil
}

func (p *Prompter) askQuality(f *answers.Features, _, lang string) error {
	linters, formatters := p.cat.Linters(lang), p.cat.Formatters(lang)
	if len(linters) == 0 && len(formatters) == 0 {
		return nil
	}
	ok, err := p.confirm("Add linting and formatting?", true)
	if err != nil || !ok {
		return err
	}
	q := &answers.Quality{}
	if len(linters) > 0 {
		idx, err := p.choose("Linters:", linters, "")
		if err != nil {
			return err
		}
		q.Linter = linters[idx]
		p.selected(q.Linter)
	}
	if len(formatters) > 0 {
		idx, err := p.choose("Formatters:", formatters, "")
		if err != nil {
			return err
		}
		q.Formatter = formatters[idx]
		p.selected(q.Formatter)
	}
	f.Quality = q
	return nil
}

func (p *Prompter) askContainerization(f *answers.Features, _, _ string) error {
	ok, err := p.confirm("Add Docker?", false)
	if err != nil || !ok {
		return err
	}
	f.Containerization = "docker"
	return nil
}

// choose prints a numbered menu and returns the chosen index. When zero is
// non-empty a "0) <zero>" entry is offered and choosing it returns -1.
func (p *Prompter) choose(title string, items []string, zero string) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("no options for %q", strings.TrimSuffix(title, ":"))
	}
	low := 1
	if zero != "" {
		low = 0
	}

	fmt.Fprintf(p.out, "\n%s\n", title)
	for i, item := range items {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, item)
	}
	if zero != "" {
		fmt.Fprintf(p.out, "  0) %s\n", zero)
	}

	for {
		fmt.Fprintf(p.out, "Enter number [%d-%d]: ", low, len(items))
		line, err := p.readLine()
		if err != nil {
			return 0, fmt.Errorf("reading selection: %w", err)
		}
		num, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil || num < low || num > len(items) {
			fmt.Fprintf(p.out, "Invalid selection %q: choose %d-%d\n", strings.TrimSpace(line), low, len(items))
			continue
		}
		return num - 1, nil
	}
}

// confirm asks a yes/no question. An empty answer takes def.
func (p *Prompter) confirm(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		fmt.Fprintf(p.out, "\n%s [%s]: ", question, hint)
		line, err := p.readLine()
		if err != nil {
			return false, fmt.Errorf("reading answer: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(p.out, "Please answer y or n\n")
	}
}

func (p *Prompter) selected(v string) {
	fmt.Fprintf(p.out, "✓ Selected: %s\n", v)
}

// readLine returns the next input line without its newline. A final line
// that is not newline-terminated is returned without error.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
