package core

import "regexp"

// Capabilities declares what an agent can do. Primary capabilities describe
// the agent's main competencies and participate in capability-boosted
// matching; secondary capabilities only participate in FindByCapability
// lookups.
type Capabilities struct {
	Primary   []string
	Secondary []string
}

// Triggers declares the signals that route free text to an agent.
//
//   - Keywords score by length when found as a case-insensitive substring of
//     the request text, so longer (more specific) keywords outrank short ones.
//   - Patterns add a fixed score per matching regular expression.
//   - ContextTypes name the tags / source agents whose completed results this
//     agent can consume; a non-empty intersection with available context earns
//     a context bonus during matching.
type Triggers struct {
	Keywords     []string
	Patterns     []*regexp.Regexp
	ContextTypes []string
}

// InputSpec declares the input kinds an agent accepts (e.g. "text", "image").
type InputSpec struct {
	Accepts []string
}

// OutputSpec declares the primary output type and the formats an agent can
// produce it in.
type OutputSpec struct {
	Type    string
	Formats []string
}

// DescriptorMetadata carries presentational / organizational attributes that
// do not influence routing.
type DescriptorMetadata struct {
	Category string
}

// AgentDescriptor is the registry entry for one agent: identity, declared
// capabilities, routing triggers and I/O contract. Descriptors are value
// types; the registry stores and returns copies, so holding one is always
// safe.
//
// ID must be unique within a registry. Re-registering an ID overwrites the
// previous descriptor; descriptors are never deleted at runtime.
type AgentDescriptor struct {
	ID           string
	Name         string
	Icon         string
	Description  string
	Capabilities Capabilities
	Triggers     Triggers
	Input        InputSpec
	Output       OutputSpec
	Metadata     DescriptorMetadata
}

// KeywordMatch pairs a descriptor with its keyword/pattern score for one
// FindByKeyword scan.
type KeywordMatch struct {
	Descriptor AgentDescriptor
	Score      int
}

// Registry is the catalog of registered agents. Implementations must preserve
// registration order in every scan (GetAll, FindByCapability, FindByKeyword)
// so that equal-score candidates rank deterministically, and must treat
// lookups that miss as expected outcomes (zero value + false / empty slice,
// never an error).
type Registry interface {
	// Register inserts or overwrites the descriptor by ID. Descriptors with
	// an empty ID are ignored.
	Register(d AgentDescriptor)

	// GetAll returns every descriptor in registration order.
	GetAll() []AgentDescriptor

	// GetByID returns the descriptor registered under id.
	GetByID(id string) (AgentDescriptor, bool)

	// GetByDisplayName returns the descriptor whose Name matches exactly
	// (case-sensitive).
	GetByDisplayName(name string) (AgentDescriptor, bool)

	// FindByCapability returns all descriptors whose primary or secondary
	// capability set contains tag.
	FindByCapability(tag string) []AgentDescriptor

	// FindByKeyword scores every descriptor against text and returns the
	// non-zero scorers sorted descending by score. Ties preserve
	// registration order.
	FindByKeyword(text string) []KeywordMatch
}
