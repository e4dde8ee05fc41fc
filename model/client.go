package model

import (
	"github.com/erraggy/tspgen/ir"
	"github.com/erraggy/tspgen/tsperrors"
)

// ClientConfig holds the client-construction surface: endpoint, credential,
// and any other client-level parameters.
type ClientConfig struct {
	// Parameters are the client-level parameters in declaration order.
	Parameters []*Parameter
}

// Credential returns the client's credential parameter, or nil.
func (c *ClientConfig) Credential() *Parameter {
	for _, p := range c.Parameters {
		if _, ok := p.Type.(*CredentialType); ok {
			return p
		}
	}
	return nil
}

// OperationGroup is a named set of operations exposed as one sub-client.
type OperationGroup struct {
	cm   *CodeModel
	yaml map[string]any
	// Client is the owning client.
	Client *Client
	// Name is the generated sub-client type name.
	Name string
	// PropertyName is the accessor name on the parent client.
	PropertyName string
	// Operations are the group's operations in declaration order.
	Operations []*Operation
}

// Path returns the dotted document path of the group, for error messages.
func (g *OperationGroup) Path() string {
	return "clients." + g.Client.Name + ".operationGroups." + g.PropertyName
}

// Client is one generated service client.
type Client struct {
	cm   *CodeModel
	yaml map[string]any
	// Name is the generated client type name.
	Name string
	// Namespace is the client namespace.
	Namespace string
	// Description is the doc comment text, if any.
	Description string
	// Config is the client-construction surface.
	Config *ClientConfig
	// Groups are the client's operation groups in declaration order.
	Groups []*OperationGroup

	builders map[NodeHandle]*RequestBuilder
}

func newClient(cm *CodeModel, node map[string]any) (*Client, error) {
	c := &Client{
		cm:          cm,
		yaml:        node,
		Name:        ir.String(node, "name"),
		Namespace:   ir.String(node, "namespace"),
		Description: ir.String(node, "doc"),
		Config:      &ClientConfig{},
		builders:    make(map[NodeHandle]*RequestBuilder),
	}
	if c.Namespace == "" {
		c.Namespace = cm.Namespace
	}

	for _, paramNode := range ir.Maps(node, "parameters") {
		p, err := newParameter(cm, paramNode)
		if err != nil {
			return nil, err
		}
		p.Location = LocationClient
		c.Config.Parameters = append(c.Config.Parameters, p)
	}

	for _, groupNode := range ir.Maps(node, "operationGroups") {
		g := &OperationGroup{
			cm:           cm,
			yaml:         groupNode,
			Client:       c,
			Name:         ir.String(groupNode, "name"),
			PropertyName: ir.String(groupNode, "propertyName"),
		}
		if g.PropertyName == "" {
			g.PropertyName = g.Name
		}
		for _, opNode := range ir.Maps(groupNode, "operations") {
			op, err := newOperation(cm, g, opNode)
			if err != nil {
				return nil, err
			}
			g.Operations = append(g.Operations, op)
			c.builders[op.Handle()] = &RequestBuilder{Operation: op, Name: "build" + op.Name + "Request"}
		}
		// Construct-then-link: initial operations may be declared after the
		// LRO operations that reference them.
		for _, op := range g.Operations {
			if err := op.linkInitial(g.Operations); err != nil {
				return nil, err
			}
		}
		c.Groups = append(c.Groups, g)
	}

	return c, nil
}

// YAML returns the originating descriptor node.
func (c *Client) YAML() map[string]any { return c.yaml }

// RequestBuilder returns the builder for the operation with the given node
// identity. A miss is a schema-integrity error, never an expected runtime
// condition.
func (c *Client) RequestBuilder(h NodeHandle) (*RequestBuilder, error) {
	b, ok := c.builders[h]
	if !ok {
		return nil, &tsperrors.LookupError{
			Kind:    "request builder",
			Context: "client " + c.Name,
			Message: "no operation with that node identity was built",
		}
	}
	return b, nil
}

// RequestBuilders returns every builder in the order its operation was
// declared.
func (c *Client) RequestBuilders() []*RequestBuilder {
	var out []*RequestBuilder
	for _, g := range c.Groups {
		for _, op := range g.Operations {
			if b, ok := c.builders[op.Handle()]; ok {
				out = append(out, b)
			}
		}
	}
	return out
}

// Operations returns every operation across all groups in declaration order.
func (c *Client) Operations() []*Operation {
	var out []*Operation
	for _, g := range c.Groups {
		out = append(out, g.Operations...)
	}
	return out
}
