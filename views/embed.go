// Package views carries the embedded templates and static assets.
package views

import (
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/gofiber/template/html/v2"

	"otm_dashboard/internals/widgets"
)

//go:embed templates
var templates embed.FS

//go:embed static
var static embed.FS

// Engine builds the html engine over the embedded templates.
func Engine() *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	for name, fn := range Funcs() {
		engine.AddFunc(name, fn)
	}
	return engine
}

// Static is the asset filesystem served under /static.
func Static() http.FileSystem {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func Funcs() map[string]any {
	return map[string]any{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"json": func(v any) (string, error) {
			b, err := sonic.Marshal(v)
			return string(b), err
		},
		"hasPrefix": strings.HasPrefix,
		"short":     widgets.ShortTime,
		// active marks the nav entry of the current page; "/" only matches itself
		"active": func(path, item string) bool {
			if item == "/" {
				return path == "/"
			}
			return path == item || strings.HasPrefix(path, item+"/")
		},
		"dict": func(kv ...any) map[string]any {
			m := make(map[string]any, len(kv)/2)
			for i := 0; i+1 < len(kv); i += 2 {
				if k, ok := kv[i].(string); ok {
					m[k] = kv[i+1]
				}
			}
			return m
		},
	}
}
