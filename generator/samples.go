package generator

import (
	"github.com/erraggy/tspgen/internal/issues"
	"github.com/erraggy/tspgen/internal/naming"
	"github.com/erraggy/tspgen/internal/severity"
	"github.com/erraggy/tspgen/model"
)

// sampleData feeds the sample template.
type sampleData struct {
	// ImportPath is the generated module's import path, or a placeholder
	// when no module name was configured.
	ImportPath string
	Package    string
	ClientName string
	Credential *credentialData
	GroupCall  string
	SDKCore    string
	Op         *operationData
}

// serializeSamples renders one runnable sample per operation under samples/.
// Samples are best effort: a failure is recorded as a critical issue against
// the sample artifact and skipped, and never aborts the run.
func (s *serializer) serializeSamples() []GeneratedFile {
	var files []GeneratedFile
	for _, c := range s.cm.Clients {
		for _, g := range c.Groups {
			for _, op := range g.Operations {
				name := "samples/" + naming.ToSnakeCase(op.Name) + "_sample.go"
				d, _ := s.buildOperationData(g.Name+"Client", op)
				importPath := s.cfg.moduleName
				if importPath == "" {
					importPath = "example.com/generated/" + s.cfg.packageName
				}
				data := sampleData{
					ImportPath: importPath,
					Package:    s.cfg.packageName,
					ClientName: c.Name,
					GroupCall:  "New" + g.Name + "Client()",
					SDKCore:    model.SDKCoreModule,
					Op:         d,
				}
				if cred := c.Config.Credential(); cred != nil {
					data.Credential = newCredentialData(cred)
				}
				f, err := s.render("sample.tmpl", name, data)
				if err != nil {
					s.addIssue(issues.Issue{
						Path:     "clients." + c.Name + ".operationGroups." + g.PropertyName + ".operations." + op.Name,
						Artifact: name,
						Message:  "sample generation failed: " + err.Error(),
						Severity: severity.SeverityCritical,
					})
					continue
				}
				files = append(files, f)
			}
		}
	}
	return files
}

// serializeTests renders one construction test scaffold per client. Like
// samples, failures are recorded and skipped rather than aborting.
func (s *serializer) serializeTests() []GeneratedFile {
	var files []GeneratedFile
	for _, c := range s.cm.Clients {
		name := naming.ToSnakeCase(c.Name) + "_test.go"
		d := clientData{
			Name:        c.Name,
			OptionsType: c.Name + "Options",
		}
		if cred := c.Config.Credential(); cred != nil {
			d.Credential = newCredentialData(cred)
		}
		f, err := s.render("client_test.tmpl", name, struct {
			Package string
			Client  clientData
			SDKCore string
		}{Package: s.cfg.packageName, Client: d, SDKCore: model.SDKCoreModule})
		if err != nil {
			s.addIssue(issues.Issue{
				Path:     "clients." + c.Name,
				Artifact: name,
				Message:  "test scaffold generation failed: " + err.Error(),
				Severity: severity.SeverityCritical,
			})
			continue
		}
		files = append(files, f)
	}
	return files
}
