package ir

import (
	"fmt"

	"github.com/erraggy/tspgen/tsperrors"
)

// Document is the decoded code-model tree. It is a plain map so the
// preprocess pass can rewrite it in place before model construction.
type Document map[string]any

// Namespace returns the package namespace declared by the document.
func (d Document) Namespace() string {
	return String(d, "namespace")
}

// Clients returns the client declarations.
func (d Document) Clients() []map[string]any {
	return Maps(d, "clients")
}

// Types returns the top-level type declarations.
func (d Document) Types() []map[string]any {
	return Maps(d, "types")
}

// CrossLanguagePackageID returns the cross-language package identifier used
// by the apiview manifest, or "" when absent.
func (d Document) CrossLanguagePackageID() string {
	return String(d, "crossLanguagePackageId")
}

// LicenseInfo returns the license header declaration, or nil when absent.
func (d Document) LicenseInfo() map[string]any {
	return Map(d, "licenseInfo")
}

// Validate checks the required top-level keys. Preprocessing and model
// construction assume these are present; a missing key is fatal for the
// whole invocation.
func (d Document) Validate() error {
	if _, ok := d["namespace"]; !ok {
		return tsperrors.MissingKey("", "namespace")
	}
	if _, ok := d["clients"]; !ok {
		return tsperrors.MissingKey("", "clients")
	}
	for i, client := range d.Clients() {
		if String(client, "name") == "" {
			return tsperrors.MissingKey(fmt.Sprintf("clients.%d", i), "name")
		}
	}
	return nil
}
