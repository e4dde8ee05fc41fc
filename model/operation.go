package model

import (
	"github.com/erraggy/tspgen/ir"
	"github.com/erraggy/tspgen/tsperrors"
)

// OperationKind is the discriminator stamped by preprocessing.
type OperationKind string

const (
	// OperationKindBasic is a plain request/response operation.
	OperationKindBasic OperationKind = "operation"
	// OperationKindPaging returns results one page at a time.
	OperationKindPaging OperationKind = "paging"
	// OperationKindLRO is a long-running operation driven by polling.
	OperationKindLRO OperationKind = "lro"
	// OperationKindLROPaging is a long-running operation whose final result
	// pages.
	OperationKindLROPaging OperationKind = "lropaging"
)

// PagingInfo is the pagination feature block of an operation.
type PagingInfo struct {
	// ItemName is the response field holding the page items.
	ItemName string
	// NextLinkName is the response field holding the next-page link, or ""
	// for single-page results.
	NextLinkName string
	// ItemType is the element type of a page, when declared.
	ItemType BaseType
	// ContinuationTokenName is the continuation token parameter name, or "".
	ContinuationTokenName string
	// PagerName is the pager type the generated method returns.
	PagerName string
}

// LROInfo is the long-running feature block of an operation.
type LROInfo struct {
	// PollerName is the poller type the generated method returns.
	PollerName string
	// FinalStateVia names where the terminal resource is fetched from.
	FinalStateVia string
	// Initial is the same-group operation that starts the job. Set by the
	// link pass after all sibling operations exist.
	Initial *Operation

	// initialNode is the identity-linked descriptor of the initial
	// operation, consumed by the link pass.
	initialNode map[string]any
}

// Operation is one API operation. Paging and LRO are optional feature
// blocks, not subtypes: an operation with both blocks present is an
// lropaging operation.
type Operation struct {
	cm   *CodeModel
	yaml map[string]any
	// Group is the owning operation group.
	Group *OperationGroup
	// Name is the generated method name.
	Name string
	// Description is the doc comment text, if any.
	Description string
	// Method is the HTTP verb.
	Method string
	// Path is the request path template.
	Path string
	// Parameters are the operation's parameters in declaration order.
	Parameters []*Parameter
	// Responses are the success responses.
	Responses []*Response
	// Exceptions are the error responses.
	Exceptions []*Response
	// Paging is the pagination feature block, or nil.
	Paging *PagingInfo
	// LRO is the long-running feature block, or nil.
	LRO *LROInfo
	// Overloads are body-variant overloads synthesized by preprocessing.
	Overloads []*Operation
	// IsOverload marks an operation that exists only as an overload of
	// another.
	IsOverload bool
}

func newOperation(cm *CodeModel, group *OperationGroup, node map[string]any) (*Operation, error) {
	op := &Operation{
		cm:          cm,
		yaml:        node,
		Group:       group,
		Name:        ir.String(node, "name"),
		Description: ir.String(node, "doc"),
		Method:      ir.String(node, "method"),
		Path:        ir.String(node, "path"),
		IsOverload:  ir.Bool(node, "isOverload"),
	}
	if op.Name == "" {
		return nil, tsperrors.MissingKey(group.Path()+".operations", "name")
	}

	for _, paramNode := range ir.Maps(node, "parameters") {
		p, err := newParameter(cm, paramNode)
		if err != nil {
			return nil, err
		}
		op.Parameters = append(op.Parameters, p)
	}
	for _, respNode := range ir.Maps(node, "responses") {
		r, err := newResponse(cm, respNode)
		if err != nil {
			return nil, err
		}
		op.Responses = append(op.Responses, r)
	}
	for _, excNode := range ir.Maps(node, "exceptions") {
		r, err := newResponse(cm, excNode)
		if err != nil {
			return nil, err
		}
		op.Exceptions = append(op.Exceptions, r)
	}

	if paging := ir.Map(node, "pagingMetadata"); paging != nil {
		info := &PagingInfo{
			ItemName:              ir.String(paging, "itemName"),
			NextLinkName:          ir.String(paging, "nextLinkName"),
			ContinuationTokenName: ir.String(paging, "continuationTokenName"),
			PagerName:             ir.String(paging, "pagerName"),
		}
		if itemNode := ir.Map(paging, "itemType"); itemNode != nil {
			itemType, err := BuildType(cm, itemNode)
			if err != nil {
				return nil, err
			}
			info.ItemType = itemType
		}
		op.Paging = info
	}

	if lro := ir.Map(node, "lroMetadata"); lro != nil {
		op.LRO = &LROInfo{
			PollerName:    ir.String(lro, "pollerName"),
			FinalStateVia: ir.String(lro, "finalStateVia"),
			initialNode:   ir.Map(lro, "initialOperation"),
		}
	}

	for _, overloadNode := range ir.Maps(node, "overloads") {
		overload, err := newOperation(cm, group, overloadNode)
		if err != nil {
			return nil, err
		}
		overload.IsOverload = true
		op.Overloads = append(op.Overloads, overload)
	}

	return op, nil
}

// YAML returns the originating descriptor node.
func (o *Operation) YAML() map[string]any { return o.yaml }

// Handle returns the identity handle of the originating descriptor node.
func (o *Operation) Handle() NodeHandle { return HandleOf(o.yaml) }

// Kind dispatches on which feature blocks are present.
func (o *Operation) Kind() OperationKind {
	switch {
	case o.Paging != nil && o.LRO != nil:
		return OperationKindLROPaging
	case o.Paging != nil:
		return OperationKindPaging
	case o.LRO != nil:
		return OperationKindLRO
	default:
		return OperationKindBasic
	}
}

// BodyParameter returns the body parameter, or nil.
func (o *Operation) BodyParameter() *Parameter {
	for _, p := range o.Parameters {
		if p.Location == LocationBody {
			return p
		}
	}
	return nil
}

// ResponseDocType returns the documentation type of the first non-empty
// success response, or "" when every response is empty.
func (o *Operation) ResponseDocType() string {
	for _, r := range o.Responses {
		if doc := r.DocType(); doc != "" {
			return doc
		}
	}
	return ""
}

// Imports returns the imports the operation's rendered signature and body
// reference: every parameter and response type, plus the pager and poller
// runtime symbols its kind requires.
func (o *Operation) Imports() *FileImport {
	fi := NewFileImport()
	fi.Add(ImportKindStdlib, "context")
	fi.Add(ImportKindStdlib, "net/http")
	for _, p := range o.Parameters {
		fi.Merge(p.Imports())
	}
	for _, r := range o.Responses {
		fi.Merge(r.Imports())
	}
	for _, r := range o.Exceptions {
		fi.Merge(r.Imports())
	}
	if o.Paging != nil {
		fi.Add(ImportKindSDKCore, SDKCoreModule, "Pager")
	}
	if o.LRO != nil {
		fi.Add(ImportKindSDKCore, SDKCoreModule, "Poller")
	}
	return fi
}

// linkInitial resolves the LRO initial-operation reference against the
// sibling operations in ops, matching by node identity. Operations may be
// declared in any order, which is why this runs after the whole group is
// built rather than during construction.
func (o *Operation) linkInitial(ops []*Operation) error {
	if o.LRO == nil || o.LRO.initialNode == nil {
		return nil
	}
	want := HandleOf(o.LRO.initialNode)
	for _, sibling := range ops {
		if sibling.Handle() == want {
			o.LRO.Initial = sibling
			return nil
		}
	}
	return &tsperrors.LookupError{
		Kind:    "initial operation",
		Context: "operation group " + o.Group.Name,
		Message: "operation " + o.Name + " references an initial operation that was never built",
	}
}
