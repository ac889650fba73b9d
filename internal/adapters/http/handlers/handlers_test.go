package handlers

import (
	"html/template"

	"github.com/gin-gonic/gin"
)

// testTemplates stands in for web/templates with just enough markup to
// assert on the data each page receives.
func testTemplates() *template.Template {
	return template.Must(template.New("").Parse(`
{{define "error.html"}}{{.status}} {{.code}}: {{.message}}{{end}}
{{define "blog/index.html"}}page {{.current_page}}/{{.total_pages}} filter={{.filter}} categories={{len .categories}}{{range .articles}} [{{.Slug}}]{{end}}{{range $id, $c := .used_categories}} ({{$id}}:{{if $c}}{{$c.Name}}{{end}}){{end}}{{end}}
{{define "blog/article.html"}}{{.article.Title}} series={{.is_in_series}} related={{len .related_articles}}{{range .tags}} #{{.Name}}{{end}}{{end}}
{{define "publisher/account-details.html"}}{{.username}} {{.email}} newsletter={{.subscriptions.newsletter}}{{range .flashes.positive}} +{{.}}{{end}}{{range .flashes.negative}} -{{.}}{{end}}{{end}}
{{define "publisher/developer_programme_agreement.html"}}agreement{{end}}
{{define "publisher/username.html"}}username={{.username}}{{range .error_list}} !{{.Message}}{{end}}{{end}}
`))
}

// newTestEngine returns a test engine with the page templates loaded.
func newTestEngine() *gin.Engine {
	engine := gin.New()
	engine.SetHTMLTemplate(testTemplates())

	return engine
}
