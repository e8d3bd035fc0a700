package plan

import (
	"bytes"

	"github.com/nogeniuss/ZygoKit/internal/resolver"
	"go.yaml.in/yaml/v3"
)

// composeFile is docker-compose.yml. Field order is output order.
type composeFile struct {
	Version  string          `yaml:"version"`
	Services composeServices `yaml:"services"`
	Volumes  composeVolumes  `yaml:"volumes,omitempty"`
}

type composeServices struct {
	API      *composeService `yaml:"api,omitempty"`
	Web      *composeService `yaml:"web,omitempty"`
	Postgres *composeService `yaml:"postgres,omitempty"`
	MySQL    *composeService `yaml:"mysql,omitempty"`
	MongoDB  *composeService `yaml:"mongodb,omitempty"`
	Redis    *composeService `yaml:"redis,omitempty"`
}

type composeService struct {
	Image       string        `yaml:"image,omitempty"`
	Build       *composeBuild `yaml:"build,omitempty"`
	Ports       []string      `yaml:"ports,omitempty"`
	Environment envVars       `yaml:"environment,omitempty"`
	Volumes     []string      `yaml:"volumes,omitempty"`
}

type composeBuild struct {
	Context    string `yaml:"context"`
	Dockerfile string `yaml:"dockerfile"`
}

type composeVolumes struct {
	PostgresData *struct{} `yaml:"postgres_data,omitempty"`
	MySQLData    *struct{} `yaml:"mysql_data,omitempty"`
	MongoData    *struct{} `yaml:"mongo_data,omitempty"`
	RedisData    *struct{} `yaml:"redis_data,omitempty"`
}

func (v composeVolumes) IsZero() bool {
	return v == composeVolumes{}
}

// envVars is an ordered environment mapping.
type envVars [][2]string

func (e envVars) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, kv := range e {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: kv[0]},
			&yaml.Node{Kind: yaml.ScalarNode, Value: kv[1], Style: yaml.DoubleQuotedStyle},
		)
	}
	return node, nil
}

// dockerFiles returns docker-compose.yml, the Dockerfile, and .dockerignore.
func dockerFiles(cfg *resolver.Config, l layout) []Action {
	dockerfile := "Dockerfile"
	if cfg.Domain == "backend" {
		dockerfile = join(l.base, "api", "Dockerfile")
	}
	body := render("dockerfile-node", nil)
	if cfg.Language == "py" {
		body = render("dockerfile-python", nil)
	}
	return []Action{
		File("docker-compose.yml", composeYAML(cfg, l)),
		File(dockerfile, body),
		File(".dockerignore", render("dockerignore", nil)),
	}
}

func composeYAML(cfg *resolver.Config, l layout) string {
	doc := composeFile{Version: "3.8"}
	devEnv := envVars{{"NODE_ENV", "development"}}
	present := &struct{}{}

	if cfg.Domain == "backend" || cfg.Domain == "fullstack" {
		dir := "."
		if cfg.Domain == "backend" {
			dir = join(l.base, "api")
		}
		doc.Services.API = &composeService{
			Build:       &composeBuild{Context: relDir(dir), Dockerfile: "Dockerfile"},
			Ports:       []string{"3000:3000"},
			Environment: devEnv,
			Volumes:     []string{relDir(dir) + ":/app", "/app/node_modules"},
		}
	}
	if cfg.Domain == "frontend" || cfg.Domain == "fullstack" {
		dir := "."
		if cfg.Domain == "frontend" {
			dir = join(l.base, "web")
		}
		doc.Services.Web = &composeService{
			Build:       &composeBuild{Context: relDir(dir), Dockerfile: "Dockerfile"},
			Ports:       []string{"3001:3000"},
			Environment: devEnv,
			Volumes:     []string{relDir(dir) + ":/app", "/app/node_modules"},
		}
	}

	name := dbName(cfg.ProjectName)
	switch cfg.Features.SQLType() {
	case "PostgreSQL":
		doc.Services.Postgres = &composeService{
			Image: "postgres:16-alpine",
			Ports: []string{"5432:5432"},
			Environment: envVars{
				{"POSTGRES_USER", "dev"},
				{"POSTGRES_PASSWORD", "dev"},
				{"POSTGRES_DB", name},
			},
			Volumes: []string{"postgres_data:/var/lib/postgresql/data"},
		}
		doc.Volumes.PostgresData = present
	case "MySQL":
		doc.Services.MySQL = &composeService{
			Image: "mysql:8",
			Ports: []string{"3306:3306"},
			Environment: envVars{
				{"MYSQL_ROOT_PASSWORD", "dev"},
				{"MYSQL_DATABASE", name},
			},
			Volumes: []string{"mysql_data:/var/lib/mysql"},
		}
		doc.Volumes.MySQLData = present
	}
	switch cfg.Features.NoSQLType() {
	case "MongoDB":
		doc.Services.MongoDB = &composeService{
			Image: "mongo:7",
			Ports: []string{"27017:27017"},
			Environment: envVars{
				{"MONGO_INITDB_ROOT_USERNAME", "dev"},
				{"MONGO_INITDB_ROOT_PASSWORD", "dev"},
			},
			Volumes: []string{"mongo_data:/data/db"},
		}
		doc.Volumes.MongoData = present
	case "Redis":
		doc.Services.Redis = &composeService{
			Image:   "redis:7-alpine",
			Ports:   []string{"6379:6379"},
			Volumes: []string{"redis_data:/data"},
		}
		doc.Volumes.RedisData = present
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		panic("encoding docker-compose.yml: " + err.Error())
	}
	_ = enc.Close()
	return buf.String()
}

// relDir formats a project-relative directory for compose paths.
func relDir(dir string) string {
	if dir == "." {
		return "."
	}
	return "./" + dir
}
