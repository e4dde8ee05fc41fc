package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileImport_GroupsOrderedByKind(t *testing.T) {
	fi := NewFileImport()
	fi.Add(ImportKindLocal, "github.com/example/widgets/admin")
	fi.Add(ImportKindStdlib, "time")
	fi.Add(ImportKindStdlib, "context")
	fi.Add(ImportKindSDKCore, SDKCoreModule, "Pager")
	fi.Add(ImportKindThirdParty, "github.com/google/uuid")

	groups := fi.Groups()
	require.Len(t, groups, 4)
	assert.Equal(t, ImportKindStdlib, groups[0].Kind)
	assert.Equal(t, []string{"context", "time"}, groups[0].Modules)
	assert.Equal(t, ImportKindThirdParty, groups[1].Kind)
	assert.Equal(t, ImportKindSDKCore, groups[2].Kind)
	assert.Equal(t, ImportKindLocal, groups[3].Kind)
}

func TestFileImport_MergeDeduplicates(t *testing.T) {
	a := NewFileImport()
	a.Add(ImportKindStdlib, "time")
	a.Add(ImportKindSDKCore, SDKCoreModule, "Pager")

	b := NewFileImport()
	b.Add(ImportKindStdlib, "time")
	b.Add(ImportKindSDKCore, SDKCoreModule, "Pager", "Poller")

	a.Merge(b)
	groups := a.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, []string{"time"}, groups[0].Modules)
	assert.Equal(t, []string{"Pager", "Poller"}, a.Symbols(ImportKindSDKCore, SDKCoreModule))
}

func TestFileImport_Deterministic(t *testing.T) {
	build := func() []ImportGroup {
		fi := NewFileImport()
		for _, mod := range []string{"zeta", "alpha", "mid", "beta", "omega"} {
			fi.Add(ImportKindThirdParty, "example.com/"+mod)
		}
		fi.Add(ImportKindStdlib, "net/http")
		fi.Add(ImportKindStdlib, "context")
		return fi.Groups()
	}

	first := build()
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, build(), "flattened import blocks must not depend on map iteration order")
	}
}

func TestFileImport_MergeNilAndEmpty(t *testing.T) {
	fi := NewFileImport()
	fi.Merge(nil)
	fi.Merge(NewFileImport())
	assert.True(t, fi.Empty())
	assert.Empty(t, fi.Groups())
}
