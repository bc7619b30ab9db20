package constants

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"text/template"

	"github.com/receiptkeeper/assetkit/internal/paths"
)

var moduleTmpl = template.Must(template.New("constants").Funcs(template.FuncMap{
	"q": quote,
}).Parse(`export const PAYMENT_METHODS = {
{{- range .PaymentMethods}}
  {{.Key}}: {{q .Value}},
{{- end}}
};

export const DEFAULT_CARDS = [
{{- range .DefaultCards}}
  { id: {{q .ID}}, name: {{q .Name}}, color: {{q .Color}} },
{{- end}}
];

export const UPLOAD_STATUS = {
{{- range .UploadStatus}}
  {{.Key}}: {{q .Value}},
{{- end}}
};

export const APP_COLORS = {
{{- range .AppColors}}
  {{.Key}}: {{q .Value}},
{{- end}}
};
`))

var quoter = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// quote renders s as a single-quoted JavaScript string literal.
func quote(s string) string {
	return "'" + quoter.Replace(s) + "'"
}

// Render returns the canonical constants module.
func Render() []byte {
	var buf bytes.Buffer
	data := struct {
		PaymentMethods []Pair
		DefaultCards   []Card
		UploadStatus   []Pair
		AppColors      []Pair
	}{PaymentMethods, DefaultCards, UploadStatus, AppColors}
	if err := moduleTmpl.Execute(&buf, data); err != nil {
		panic("constants: " + err.Error())
	}
	return buf.Bytes()
}

// Write replaces the file at path with the canonical module. Prior contents
// are discarded; with backup set they are first copied to path+".bak".
func Write(path string, backup bool) error {
	if backup {
		prev, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := paths.AtomicWrite(path+paths.BackupSuffix, prev); err != nil {
				return err
			}
		case !errors.Is(err, os.ErrNotExist):
			return &paths.IOError{Op: "read", Path: path, Err: err}
		}
	}
	return paths.AtomicWrite(path, Render())
}
