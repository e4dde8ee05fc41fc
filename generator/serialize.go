package generator

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/tspgen/internal/issues"
	"github.com/erraggy/tspgen/internal/maputil"
	"github.com/erraggy/tspgen/internal/naming"
	"github.com/erraggy/tspgen/internal/severity"
	"github.com/erraggy/tspgen/model"
)

// serializer renders the code model into files. One serializer method per
// output file kind; each consumes only its slice of the model plus the
// shared template environment.
type serializer struct {
	cm     *model.CodeModel
	cfg    *generateConfig
	titler cases.Caser
	issues []issues.Issue
}

func newSerializer(cm *model.CodeModel, cfg *generateConfig) *serializer {
	return &serializer{
		cm:     cm,
		cfg:    cfg,
		titler: cases.Title(language.English, cases.NoLower),
	}
}

func (s *serializer) addIssue(i issues.Issue) {
	s.issues = append(s.issues, i)
}

// render executes a Go-source template and records a warning when the
// formatting pass fails. Template execution failure aborts the run.
func (s *serializer) render(templateName, fileName string, data any) (GeneratedFile, error) {
	out, formatted, err := executeTemplate(templateName, data)
	if err != nil {
		return GeneratedFile{}, err
	}
	if !formatted {
		s.addIssue(issues.Issue{
			Artifact: fileName,
			Message:  "generated source did not format cleanly; emitted unformatted",
			Severity: severity.SeverityWarning,
		})
	}
	return GeneratedFile{Name: fileName, Content: out}, nil
}

// serializeAll renders every output file in deterministic order: namespaces
// sorted, then the fixed per-namespace file kinds, then packaging, samples,
// and tests.
func (s *serializer) serializeAll() ([]GeneratedFile, error) {
	var files []GeneratedFile

	partition := s.cm.NamespacePartition()
	for _, ns := range maputil.SortedKeys(partition) {
		entry := partition[ns]
		if entry.Empty() {
			continue
		}
		nsFiles, err := s.serializeNamespace(entry)
		if err != nil {
			return nil, err
		}
		files = append(files, nsFiles...)
	}

	pkgFiles, err := s.serializePackaging(files)
	if err != nil {
		return nil, err
	}
	files = append(files, pkgFiles...)

	if s.cfg.generateSamples {
		files = append(files, s.serializeSamples()...)
	}
	if s.cfg.generateTests {
		files = append(files, s.serializeTests()...)
	}
	return files, nil
}

// serializeNamespace renders the per-package files of one namespace entry.
func (s *serializer) serializeNamespace(entry *model.NamespaceEntry) ([]GeneratedFile, error) {
	dir := s.entryDir(entry.Namespace)
	pkg := s.entryPackage(entry.Namespace)
	var files []GeneratedFile

	add := func(f GeneratedFile, err error) error {
		if err != nil {
			return err
		}
		files = append(files, f)
		return nil
	}

	if len(entry.Models) > 0 && s.cfg.modelsMode != model.ModelsModeNone {
		f, err := s.serializeModels(entry, dir, pkg)
		if err := add(f, err); err != nil {
			return nil, err
		}
	}
	if len(entry.Enums) > 0 {
		f, err := s.serializeEnums(entry, dir, pkg)
		if err := add(f, err); err != nil {
			return nil, err
		}
	}
	if len(entry.Clients) > 0 {
		f, err := s.serializeClients(entry, dir, pkg)
		if err := add(f, err); err != nil {
			return nil, err
		}
		f, err = s.serializeOptions(entry, dir, pkg)
		if err := add(f, err); err != nil {
			return nil, err
		}
	}
	for _, group := range entry.Groups {
		f, err := s.serializeOperations(group, dir, pkg)
		if err := add(f, err); err != nil {
			return nil, err
		}
		f, err = s.serializeRequestBuilders(group, dir, pkg)
		if err := add(f, err); err != nil {
			return nil, err
		}
	}
	return files, nil
}

// entryDir maps a namespace onto its output directory, "" for the root.
// Delegates to the model so import paths and file layout cannot diverge.
func (s *serializer) entryDir(ns string) string {
	return s.cm.PackageDir(ns)
}

// entryPackage maps a namespace onto its Go package name. The root
// namespace uses the configured package name; sub-namespaces use their last
// segment.
func (s *serializer) entryPackage(ns string) string {
	if ns == s.cm.Namespace || ns == "" {
		return s.cfg.packageName
	}
	segments := strings.Split(ns, ".")
	return naming.Identifier(strings.ToLower(segments[len(segments)-1]), "api")
}

func fileInDir(dir, name string) string {
	if dir == "" {
		return name
	}
	return path.Join(dir, name)
}

// serializeModels renders the entry's model structs. The global sorted order
// is computed once on the model and filtered down to the entry's members; a
// topological order restricted to a subset stays topological.
func (s *serializer) serializeModels(entry *model.NamespaceEntry, dir, pkg string) (GeneratedFile, error) {
	all, err := s.cm.SortedModelTypes()
	if err != nil {
		return GeneratedFile{}, err
	}
	members := make(map[*model.ModelType]bool, len(entry.Models))
	for _, m := range entry.Models {
		members[m] = true
	}
	var sorted []*model.ModelType
	for _, m := range all {
		if members[m] {
			sorted = append(sorted, m)
		}
	}
	fi := model.NewFileImport()
	for _, m := range sorted {
		for _, p := range m.AllProperties() {
			fi.Merge(p.Type.Imports())
		}
	}
	return s.render("models.tmpl", fileInDir(dir, "models.go"), modelsFileData{
		fileData: fileData{Package: pkg, Imports: fi},
		Msrest:   s.cfg.modelsMode == model.ModelsModeMsrest,
		Models:   sorted,
	})
}

// serializeEnums renders the entry's enum types.
func (s *serializer) serializeEnums(entry *model.NamespaceEntry, dir, pkg string) (GeneratedFile, error) {
	return s.render("enums.tmpl", fileInDir(dir, "enums.go"), enumsFileData{
		fileData: fileData{Package: pkg},
		Enums:    entry.Enums,
	})
}

// serializeClients renders the entry's client structs, constructors, and
// sub-client accessors.
func (s *serializer) serializeClients(entry *model.NamespaceEntry, dir, pkg string) (GeneratedFile, error) {
	fi := model.NewFileImport()
	fi.Add(model.ImportKindStdlib, "fmt")
	fi.Add(model.ImportKindStdlib, "net/http")
	fi.Add(model.ImportKindStdlib, "strings")

	var clients []clientData
	for _, c := range entry.Clients {
		cd := clientData{
			Name:        c.Name,
			Description: c.Description,
			OptionsType: c.Name + "Options",
		}
		if cred := c.Config.Credential(); cred != nil {
			cd.Credential = newCredentialData(cred)
			fi.Merge(cred.Imports())
		}
		for _, g := range c.Groups {
			cd.Groups = append(cd.Groups, groupAccessor{
				Method:     "New" + g.Name + "Client",
				ClientType: g.Name + "Client",
			})
		}
		clients = append(clients, cd)
	}

	return s.render("client.tmpl", fileInDir(dir, "client.go"), clientFileData{
		fileData: fileData{Package: pkg, Imports: fi},
		Clients:  clients,
	})
}

// serializeOptions renders the client and per-operation options structs.
func (s *serializer) serializeOptions(entry *model.NamespaceEntry, dir, pkg string) (GeneratedFile, error) {
	fi := model.NewFileImport()
	fi.Add(model.ImportKindStdlib, "net/http")

	var structs []optionsStructData
	for _, c := range entry.Clients {
		structs = append(structs, optionsStructData{
			Name:        c.Name + "Options",
			Description: "contains optional settings for New" + c.Name + ".",
			Fields: []optionFieldData{{
				Name:        "HTTPClient",
				GoType:      "*http.Client",
				Description: "HTTPClient overrides the transport used for requests.",
			}},
		})
	}
	for _, g := range entry.Groups {
		for _, op := range g.Operations {
			d, fields := s.buildOperationData(g.Name+"Client", op)
			for _, f := range fields {
				fi.Merge(importsForGoType(f.GoType))
			}
			structs = append(structs, optionsStructData{
				Name:        d.OptionsType,
				Description: "contains the optional parameters for " + d.ClientType + "." + methodDocName(d) + ".",
				Fields:      fields,
			})
		}
	}

	return s.render("options.tmpl", fileInDir(dir, "options.go"), optionsFileData{
		fileData: fileData{Package: pkg, Imports: fi},
		Structs:  structs,
	})
}

// serializeOperations renders one group's operation methods and response
// types.
func (s *serializer) serializeOperations(group *model.OperationGroup, dir, pkg string) (GeneratedFile, error) {
	clientType := group.Name + "Client"
	fi := model.NewFileImport()
	fi.Add(model.ImportKindStdlib, "fmt")
	fi.Add(model.ImportKindStdlib, "encoding/json")

	var ops []*operationData
	for _, op := range group.Operations {
		fi.Merge(op.Imports())
		d, _ := s.buildOperationData(clientType, op)
		ops = append(ops, d)
	}

	name := naming.ToSnakeCase(group.PropertyName) + "_operations.go"
	return s.render("operations.tmpl", fileInDir(dir, name), operationsFileData{
		fileData:   fileData{Package: pkg, Imports: fi},
		ClientType: clientType,
		Operations: ops,
	})
}

// serializeRequestBuilders renders one group's request builder methods.
// Builders are looked up by operation node identity; a miss means the model
// graph lost integrity and is fatal.
func (s *serializer) serializeRequestBuilders(group *model.OperationGroup, dir, pkg string) (GeneratedFile, error) {
	clientType := group.Name + "Client"
	fi := model.NewFileImport()
	fi.Add(model.ImportKindStdlib, "context")
	fi.Add(model.ImportKindStdlib, "fmt")
	fi.Add(model.ImportKindStdlib, "net/http")
	fi.Add(model.ImportKindStdlib, "net/url")
	fi.Add(model.ImportKindStdlib, "strings")

	var ops []*operationData
	for _, op := range group.Operations {
		builder, err := group.Client.RequestBuilder(op.Handle())
		if err != nil {
			return GeneratedFile{}, err
		}
		d, _ := s.buildOperationData(clientType, op)
		d.BuilderName = builder.Name
		if d.Body != "" {
			fi.Add(model.ImportKindStdlib, "bytes")
			fi.Add(model.ImportKindStdlib, "encoding/json")
			if d.BodyOptional {
				fi.Add(model.ImportKindStdlib, "io")
			}
		}
		for _, p := range op.Parameters {
			if p.Location != model.LocationClient && p.Location != model.LocationBody {
				fi.Merge(p.Imports())
			}
		}
		ops = append(ops, d)
	}

	name := naming.ToSnakeCase(group.PropertyName) + "_request_builders.go"
	return s.render("request_builders.tmpl", fileInDir(dir, name), operationsFileData{
		fileData:   fileData{Package: pkg, Imports: fi},
		ClientType: clientType,
		Operations: ops,
	})
}

// methodDocName is the generated method name as it appears in doc text:
// pager and poller methods carry their New/Begin prefix.
func methodDocName(d *operationData) string {
	switch d.Kind {
	case model.OperationKindPaging, model.OperationKindLROPaging:
		return d.PagerName
	case model.OperationKindLRO:
		return d.PollerName
	default:
		return d.Name
	}
}

// importsForGoType recovers the import a rendered Go type expression needs.
// Only stdlib types appear in option fields besides models and enums.
func importsForGoType(goType string) *model.FileImport {
	fi := model.NewFileImport()
	trimmed := strings.TrimLeft(goType, "*[]")
	switch {
	case strings.HasPrefix(trimmed, "time."):
		fi.Add(model.ImportKindStdlib, "time")
	case strings.HasPrefix(trimmed, "sdkcore."):
		fi.Add(model.ImportKindSDKCore, model.SDKCoreModule)
	}
	return fi
}
