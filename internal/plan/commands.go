package plan

import (
	"fmt"
	"log/slog"

	"github.com/nogeniuss/ZygoKit/internal/resolver"
)

// Scaffolding commands run inside their target directory, so generators are
// pointed at ".".

// scaffoldCommand returns the domain's generator command. Domains and
// languages without a command table yield false.
func scaffoldCommand(cfg *resolver.Config, l layout) (Action, bool) {
	var cmd string
	switch {
	case cfg.Domain == "backend" && isJSFamily(cfg.Language):
		cmd = backendNodeCommand(cfg.Framework, cfg.Language)
	case cfg.Domain == "backend" && cfg.Language == "py":
		cmd = backendPythonCommand(cfg.Framework, cfg.ProjectName)
	case cfg.Domain == "frontend" && isJSFamily(cfg.Language):
		cmd = frontendNodeCommand(cfg.Framework, cfg.Language == "ts")
	case cfg.Domain == "frontend" && cfg.Language == "py":
		cmd = frontendPythonCommand(cfg.Framework)
	case cfg.Domain == "fullstack" && isJSFamily(cfg.Language):
		cmd = fullstackNodeCommand(cfg.Framework, cfg.Language == "ts")
	case cfg.Domain == "fullstack" && cfg.Language == "py":
		cmd = fullstackPythonCommand(cfg.Framework, cfg.ProjectName)
	default:
		slog.Debug("no scaffolding command", "domain", cfg.Domain, "language", cfg.Language)
		return Action{}, false
	}
	return Command(l.commandTarget(cfg.Domain), cmd, imageFor(cfg.Language)), true
}

const (
	venv = "python -m venv venv && . venv/bin/activate && "

	fastAPIMain  = `from fastapi import FastAPI\n\napp = FastAPI()\n\n@app.get('/')\ndef read_root():\n    return {'Hello': 'World'}\n`
	flaskApp     = `from flask import Flask\n\napp = Flask(__name__)\n\n@app.route('/')\ndef hello():\n    return 'Hello World!'\n\nif __name__ == '__main__':\n    app.run(debug=True)\n`
	streamlitApp = `import streamlit as st\n\nst.title('Hello Streamlit')\nst.write('Welcome!')\n`

	alpinePage = `<!DOCTYPE html><html><head><script defer src='https://cdn.jsdelivr.net/npm/alpinejs@3.x.x/dist/cdn.min.js'></script></head><body><div x-data='{ count: 0 }'><button @click='count++'>Increment</button><span x-text='count'></span></div></body></html>`
)

func backendNodeCommand(framework, lang string) string {
	switch framework {
	case "NestJS":
		return "npx @nestjs/cli new . --package-manager npm --skip-git"
	case "Express.js":
		return "npx express-generator . --no-view"
	case "Fastify":
		return "npm create fastify@latest . -- --lang=" + lang
	case "Koa":
		return "npm init -y && npm install koa koa-router"
	case "Hono":
		return "npm create hono@latest ."
	case "AdonisJS":
		return "npm init adonisjs@latest ."
	default:
		return "npx express-generator . --no-view"
	}
}

func backendPythonCommand(framework, projectName string) string {
	switch framework {
	case "FastAPI":
		return venv + "pip install fastapi uvicorn && printf \"" + fastAPIMain + "\" > main.py"
	case "Django":
		return djangoCommand(projectName)
	case "Flask":
		return venv + "pip install flask && printf \"" + flaskApp + "\" > app.py"
	case "Starlette":
		return venv + "pip install starlette uvicorn"
	default:
		return venv + "pip install fastapi uvicorn"
	}
}

func frontendNodeCommand(framework string, ts bool) string {
	switch framework {
	case "React":
		return "npx create-react-app ." + ifTS(ts, " --template typescript")
	case "Vue.js":
		return "npm create vue@latest ." + ifTS(ts, " -- --typescript")
	case "Angular":
		return "npx @angular/cli new . --skip-git"
	case "Svelte":
		return "npm create vite@latest . -- --template svelte" + ifTS(ts, "-ts")
	case "Solid.js":
		variant := "js"
		if ts {
			variant = "ts"
		}
		return "npx degit solidjs/templates/" + variant + " ."
	case "Preact":
		return "npx preact-cli create default ."
	case "Alpine.js":
		return `echo "` + alpinePage + `" > index.html`
	case "Lit":
		return "npm create vite@latest . -- --template lit" + ifTS(ts, "-ts")
	default:
		return "npm create vite@latest . -- --template react" + ifTS(ts, "-ts")
	}
}

func frontendPythonCommand(framework string) string {
	switch framework {
	case "Streamlit":
		return venv + "pip install streamlit && printf \"" + streamlitApp + "\" > app.py"
	case "Dash (Plotly)":
		return venv + "pip install dash"
	case "Gradio":
		return venv + "pip install gradio"
	default:
		return venv + "pip install streamlit"
	}
}

func fullstackNodeCommand(framework string, ts bool) string {
	nextApp := "npx create-next-app@latest . --javascript --tailwind --app --no-git"
	if ts {
		nextApp = "npx create-next-app@latest . --typescript --tailwind --app --no-git"
	}
	switch framework {
	case "Next.js":
		return nextApp
	case "Nuxt":
		return "npx nuxi@latest init ."
	case "SvelteKit":
		return "npm create svelte@latest ."
	case "Remix":
		return "npx create-remix@latest ."
	case "Astro":
		return "npm create astro@latest . -- --template minimal --no-git"
	case "Qwik":
		return "npm create qwik@latest ."
	case "SolidStart":
		return "npm create solid@latest ."
	case "Analog":
		return "npx @analogjs/platform@latest new ."
	default:
		return nextApp
	}
}

func fullstackPythonCommand(framework, projectName string) string {
	switch framework {
	case "Django":
		return djangoCommand(projectName)
	case "Flask + Jinja2":
		return venv + "pip install flask && mkdir -p templates static"
	case "Reflex":
		return fmt.Sprintf("pip install reflex && reflex init --name %s", dbName(projectName))
	default:
		return djangoCommand(projectName)
	}
}

func djangoCommand(projectName string) string {
	return fmt.Sprintf("pip install django && django-admin startproject %s .", dbName(projectName))
}

func ifTS(ts bool, s string) string {
	if ts {
		return s
	}
	return ""
}
