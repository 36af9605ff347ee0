// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// NewEmployeeEmailData holds data for the new-employee notification.
type NewEmployeeEmailData struct {
	SiteName     string
	FullName     string
	Registration string
	Role         string
	BaseURL      string
}

// BuildNewEmployeeEmail creates the admin notification sent when an
// employee record is created. The recipient is set by the caller.
func BuildNewEmployeeEmail(data NewEmployeeEmailData) Email {
	return Email{
		Subject:  fmt.Sprintf("%s: novo funcionário cadastrado", data.SiteName),
		TextBody: buildNewEmployeeText(data),
		HTMLBody: buildNewEmployeeHTML(data),
	}
}

func buildNewEmployeeText(data NewEmployeeEmailData) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Um novo funcionário foi cadastrado em %s.\n\n", data.SiteName)
	fmt.Fprintf(&buf, "Nome: %s\n", data.FullName)
	fmt.Fprintf(&buf, "Matrícula: %s\n", data.Registration)
	fmt.Fprintf(&buf, "Função: %s\n\n", data.Role)
	if data.BaseURL != "" {
		fmt.Fprintf(&buf, "Acesse: %s\n", data.BaseURL)
	}
	return buf.String()
}

func buildNewEmployeeHTML(data NewEmployeeEmailData) string {
	tmpl := template.Must(template.New("new_employee").Parse(newEmployeeHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

const newEmployeeHTMLTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Novo funcionário</title></head>
<body style="font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; color: #1f2937;">
  <h2 style="color: #4f46e5;">{{.SiteName}}</h2>
  <p>Um novo funcionário foi cadastrado:</p>
  <table cellspacing="0" cellpadding="4">
    <tr><td><strong>Nome</strong></td><td>{{.FullName}}</td></tr>
    <tr><td><strong>Matrícula</strong></td><td>{{.Registration}}</td></tr>
    <tr><td><strong>Função</strong></td><td>{{.Role}}</td></tr>
  </table>
  {{if .BaseURL}}<p><a href="{{.BaseURL}}">Abrir o painel</a></p>{{end}}
</body>
</html>`
