package preprocess

import (
	"github.com/erraggy/tspgen/internal/issues"
	"github.com/erraggy/tspgen/internal/severity"
	"github.com/erraggy/tspgen/ir"
)

// Default pager/poller class references injected when the source
// declaration omits them.
const (
	defaultPagerName = "Pager"

	defaultPollerName = "Poller"

	// finalStateViaLocation is the non-ARM LRO default: poll the Location
	// header until terminal.
	finalStateViaLocation = "location"
	// finalStateViaAsyncOperation is the ARM LRO default.
	finalStateViaAsyncOperation = "azure-async-operation"
)

// tagOperationKind stamps the operation's discriminator from which feature
// metadata blocks are present, and back-fills pager/poller defaults the
// source declaration omitted.
func (n *normalizer) tagOperationKind(op map[string]any) {
	paging := ir.Map(op, "pagingMetadata")
	lro := ir.Map(op, "lroMetadata")

	switch {
	case paging != nil && lro != nil:
		op["discriminator"] = "lropaging"
	case paging != nil:
		op["discriminator"] = "paging"
	case lro != nil:
		op["discriminator"] = "lro"
	default:
		op["discriminator"] = "operation"
	}

	if paging != nil {
		if ir.String(paging, "itemName") == "" {
			paging["itemName"] = "value"
		}
		if ir.String(paging, "pagerName") == "" {
			paging["pagerName"] = defaultPagerName
			n.addIssue(issues.Issue{
				Path:     "operations." + ir.String(op, "name"),
				Message:  "injected default pager",
				Severity: severity.SeverityInfo,
				Context:  "no pager declared for paging operation",
			})
		}
	}

	if lro != nil {
		if ir.String(lro, "pollerName") == "" {
			lro["pollerName"] = defaultPollerName
			n.addIssue(issues.Issue{
				Path:     "operations." + ir.String(op, "name"),
				Message:  "injected default poller",
				Severity: severity.SeverityInfo,
				Context:  "no poller declared for long-running operation",
			})
		}
		if ir.String(lro, "finalStateVia") == "" {
			if n.opts.AzureArm {
				lro["finalStateVia"] = finalStateViaAsyncOperation
			} else {
				lro["finalStateVia"] = finalStateViaLocation
			}
		}
	}
}
