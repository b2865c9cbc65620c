package formmodel

import (
	"io/fs"

	"github.com/kaid/stupid-form-model/pkg/report"
)

// ReportTemplatesFS exposes the built-in report templates so callers can
// reuse or extend them without importing the report package directly.
func ReportTemplatesFS() fs.FS {
	return report.TemplatesFS()
}
