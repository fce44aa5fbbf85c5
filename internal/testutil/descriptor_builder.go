package testutil

import (
	"regexp"

	"github.com/hupe1980/agentdeck/core"
)

// DescriptorBuilder provides a fluent helper for constructing agent
// descriptors in tests. Example:
//
//	d := NewDescriptorBuilder("hunter").Name("Hunter").Keywords("find", "search").Build()
//
// Chain only the parts you need; sensible defaults are applied.
type DescriptorBuilder struct {
	d core.AgentDescriptor
}

// NewDescriptorBuilder creates a builder for a descriptor with the given ID.
// The display name defaults to the ID.
func NewDescriptorBuilder(id string) *DescriptorBuilder {
	return &DescriptorBuilder{d: core.AgentDescriptor{ID: id, Name: id}}
}

// Name sets the human-readable display name (chainable).
func (b *DescriptorBuilder) Name(n string) *DescriptorBuilder { b.d.Name = n; return b }

// Description sets the short description (chainable).
func (b *DescriptorBuilder) Description(d string) *DescriptorBuilder {
	b.d.Description = d
	return b
}

// Primary appends primary capability identifiers (chainable).
func (b *DescriptorBuilder) Primary(caps ...string) *DescriptorBuilder {
	b.d.Capabilities.Primary = append(b.d.Capabilities.Primary, caps...)
	return b
}

// Secondary appends secondary capability identifiers (chainable).
func (b *DescriptorBuilder) Secondary(caps ...string) *DescriptorBuilder {
	b.d.Capabilities.Secondary = append(b.d.Capabilities.Secondary, caps...)
	return b
}

// Keywords appends trigger keywords (chainable).
func (b *DescriptorBuilder) Keywords(kws ...string) *DescriptorBuilder {
	b.d.Triggers.Keywords = append(b.d.Triggers.Keywords, kws...)
	return b
}

// Pattern compiles and appends a trigger pattern; invalid expressions panic,
// which is acceptable in tests (chainable).
func (b *DescriptorBuilder) Pattern(expr string) *DescriptorBuilder {
	b.d.Triggers.Patterns = append(b.d.Triggers.Patterns, regexp.MustCompile(expr))
	return b
}

// ContextTypes appends context type tags the agent can build on (chainable).
func (b *DescriptorBuilder) ContextTypes(types ...string) *DescriptorBuilder {
	b.d.Triggers.ContextTypes = append(b.d.Triggers.ContextTypes, types...)
	return b
}

// Output sets the output spec (chainable).
func (b *DescriptorBuilder) Output(typ string, formats ...string) *DescriptorBuilder {
	b.d.Output = core.OutputSpec{Type: typ, Formats: formats}
	return b
}

// Category sets the metadata category (chainable).
func (b *DescriptorBuilder) Category(c string) *DescriptorBuilder {
	b.d.Metadata.Category = c
	return b
}

// Build returns the assembled descriptor.
func (b *DescriptorBuilder) Build() core.AgentDescriptor { return b.d }
