package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/erraggy/tspgen"
	"github.com/erraggy/tspgen/ir"
	"github.com/erraggy/tspgen/model"
)

// versionFileData feeds the version template.
type versionFileData struct {
	Package string
	Version string
}

// goModData feeds the go.mod template.
type goModData struct {
	ModuleName   string
	NeedsSDKCore bool
	SDKCore      string
}

// readmeData feeds the README template.
type readmeData struct {
	Title      string
	Namespace  string
	ModuleName string
	Package    string
	Regenerate string
	Files      []string
}

// metadata is the shape of the emitted _metadata.json.
type metadata struct {
	Emitter   string `json:"emitter"`
	Namespace string `json:"namespace"`
	Package   string `json:"package"`
	Module    string `json:"module,omitempty"`
}

// serializePackaging renders the repository-level artifacts: version file,
// go.mod, README, the apiview manifest, and the emitter metadata. existing
// lists the files rendered so far, for the README's file inventory.
func (s *serializer) serializePackaging(existing []GeneratedFile) ([]GeneratedFile, error) {
	var files []GeneratedFile

	versionFile, err := s.render("version.tmpl", "version.go", versionFileData{
		Package: s.cfg.packageName,
		Version: s.cfg.moduleVersion,
	})
	if err != nil {
		return nil, err
	}
	files = append(files, versionFile)

	if s.cfg.moduleName != "" {
		gomod, err := executeTextTemplate("gomod.tmpl", goModData{
			ModuleName:   s.cfg.moduleName,
			NeedsSDKCore: s.needsSDKCore(),
			SDKCore:      model.SDKCoreModule,
		})
		if err != nil {
			return nil, err
		}
		files = append(files, GeneratedFile{Name: "go.mod", Content: gomod})
	}

	licenseFile, hasLicense := s.licenseFile()
	if hasLicense {
		files = append(files, licenseFile)
	}

	if s.cfg.generateReadme {
		names := make([]string, 0, len(existing)+2)
		for _, f := range existing {
			names = append(names, f.Name)
		}
		names = append(names, "version.go")
		if hasLicense {
			names = append(names, licenseFile.Name)
		}
		readme, err := executeTextTemplate("readme.tmpl", readmeData{
			Title:      s.cm.Namespace,
			Namespace:  s.cm.Namespace,
			ModuleName: s.cfg.moduleName,
			Package:    s.cfg.packageName,
			Regenerate: s.regenerateCommand(),
			Files:      names,
		})
		if err != nil {
			return nil, err
		}
		files = append(files, GeneratedFile{Name: "README.md", Content: readme})
	}

	if s.cm.CrossLanguagePackageID != "" {
		manifest, err := s.apiviewManifest()
		if err != nil {
			return nil, err
		}
		files = append(files, GeneratedFile{Name: "apiview-properties.json", Content: manifest})
	}

	meta, err := json.MarshalIndent(metadata{
		Emitter:   "tspgen@" + tspgen.Version(),
		Namespace: s.cm.Namespace,
		Package:   s.cfg.packageName,
		Module:    s.cfg.moduleName,
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	files = append(files, GeneratedFile{Name: "_metadata.json", Content: append(meta, '\n')})

	return files, nil
}

// licenseFile renders the LICENSE text declared by the document's
// licenseInfo block, preferring the full description over the short header.
func (s *serializer) licenseFile() (GeneratedFile, bool) {
	info := s.cm.Doc.LicenseInfo()
	if info == nil {
		return GeneratedFile{}, false
	}
	text := ir.String(info, "description")
	if text == "" {
		text = ir.String(info, "header")
	}
	if text == "" {
		return GeneratedFile{}, false
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return GeneratedFile{Name: "LICENSE.txt", Content: []byte(text)}, true
}

// needsSDKCore reports whether any generated surface references the SDK
// core runtime (credentials, pagers, pollers).
func (s *serializer) needsSDKCore() bool {
	for _, c := range s.cm.Clients {
		if c.Config.Credential() != nil {
			return true
		}
		for _, op := range c.Operations() {
			if op.Paging != nil || op.LRO != nil {
				return true
			}
		}
	}
	return false
}

// regenerateCommand reconstructs the CLI invocation that reproduces this
// output.
func (s *serializer) regenerateCommand() string {
	cmd := "tspgen generate"
	if s.cfg.moduleName != "" {
		cmd += " --module-name=" + s.cfg.moduleName
	}
	if s.cfg.packageName != "api" {
		cmd += " --package-name=" + s.cfg.packageName
	}
	if s.cfg.modelsMode != model.ModelsModeDPG {
		cmd += " --models-mode=" + string(s.cfg.modelsMode)
	}
	if s.cfg.azureArm {
		cmd += " --azure-arm=true"
	}
	if s.cfg.filePath != nil {
		cmd += " " + *s.cfg.filePath
	} else {
		cmd += " <code-model.yaml>"
	}
	return cmd
}

// apiviewManifest maps generated symbols to their cross-language definition
// IDs. encoding/json sorts map keys, so the manifest is deterministic.
func (s *serializer) apiviewManifest() ([]byte, error) {
	ids := make(map[string]string)
	record := func(symbol string, node map[string]any) {
		if id := ir.String(node, "crossLanguageDefinitionId"); id != "" {
			ids[symbol] = id
		}
	}
	for _, m := range s.cm.ModelTypes() {
		record(m.Name, m.YAML())
	}
	for _, e := range s.cm.EnumTypes() {
		record(e.Name, e.YAML())
	}
	for _, c := range s.cm.Clients {
		record(c.Name, c.YAML())
		for _, g := range c.Groups {
			for _, op := range g.Operations {
				record(fmt.Sprintf("%sClient.%s", g.Name, op.Name), op.YAML())
			}
		}
	}

	manifest := map[string]any{
		"CrossLanguagePackageId":    s.cm.CrossLanguagePackageID,
		"CrossLanguageDefinitionId": ids,
	}
	out, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
